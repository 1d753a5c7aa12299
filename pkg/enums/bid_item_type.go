package enums

import "fmt"

// BidItemType classifies a catalog line as material, labor, or equipment.
type BidItemType string

const (
	BidItemTypeMaterial  BidItemType = "material"
	BidItemTypeLabor     BidItemType = "labor"
	BidItemTypeEquipment BidItemType = "equipment"
)

var validBidItemTypes = []BidItemType{
	BidItemTypeMaterial,
	BidItemTypeLabor,
	BidItemTypeEquipment,
}

// String implements fmt.Stringer.
func (b BidItemType) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BidItemType.
func (b BidItemType) IsValid() bool {
	for _, candidate := range validBidItemTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBidItemType converts raw input into a BidItemType.
func ParseBidItemType(value string) (BidItemType, error) {
	for _, candidate := range validBidItemTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bid item type %q", value)
}
