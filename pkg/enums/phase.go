package enums

import "fmt"

// Phase classifies a bid item by construction stage.
type Phase string

const (
	PhaseUnderground Phase = "underground"
	PhaseStackOut    Phase = "stack_out"
	PhaseTrim        Phase = "trim"
)

var validPhases = []Phase{
	PhaseUnderground,
	PhaseStackOut,
	PhaseTrim,
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Phase.
func (p Phase) IsValid() bool {
	for _, candidate := range validPhases {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePhase converts raw input into a Phase.
func ParsePhase(value string) (Phase, error) {
	for _, candidate := range validPhases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid phase %q", value)
}
