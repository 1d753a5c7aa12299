package enums

import "fmt"

// JobStatus tracks where a job sits in the bidding lifecycle.
type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusDeclined  JobStatus = "declined"
	JobStatusCompleted JobStatus = "completed"
)

var validJobStatuses = []JobStatus{
	JobStatusOpen,
	JobStatusAccepted,
	JobStatusDeclined,
	JobStatusCompleted,
}

// String implements fmt.Stringer.
func (j JobStatus) String() string {
	return string(j)
}

// IsValid reports whether the value is a known JobStatus.
func (j JobStatus) IsValid() bool {
	for _, candidate := range validJobStatuses {
		if candidate == j {
			return true
		}
	}
	return false
}

// ParseJobStatus converts raw input into a JobStatus.
func ParseJobStatus(value string) (JobStatus, error) {
	for _, candidate := range validJobStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid job status %q", value)
}
