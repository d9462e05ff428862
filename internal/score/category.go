package score

import "fmt"

// Category is the four-tier condition classification derived from the
// overall score. Tiers are ordered worst to best.
type Category int

const (
	Discard Category = iota
	UrgentMaintenance
	UseWithCaution
	GoodCondition
)

// Band boundaries. A boundary value belongs to the higher band.
const (
	discardBelow = 3.0
	urgentBelow  = 5.0
	cautionBelow = 7.0
)

// CategoryFor maps an overall score onto its tier.
func CategoryFor(overall float64) Category {
	switch {
	case overall < discardBelow:
		return Discard
	case overall < urgentBelow:
		return UrgentMaintenance
	case overall < cautionBelow:
		return UseWithCaution
	default:
		return GoodCondition
	}
}

func (c Category) String() string {
	switch c {
	case Discard:
		return "Discard"
	case UrgentMaintenance:
		return "Urgent Maintenance"
	case UseWithCaution:
		return "Use With Caution"
	case GoodCondition:
		return "Good Condition"
	default:
		return "Unknown"
	}
}

// Description is the banner line shown next to the category.
func (c Category) Description() string {
	switch c {
	case Discard:
		return "DISCARD - Full upgrade required"
	case UrgentMaintenance:
		return "URGENT MAINTENANCE - Requires corrective action"
	case UseWithCaution:
		return "USE WITH CAUTION - Monitor constantly"
	default:
		return "GOOD CONDITION - Suitable for normal use"
	}
}

// Accent is the display color for the tier, as a hex string so that
// rendering stays the caller's concern.
func (c Category) Accent() string {
	switch c {
	case Discard:
		return "#EF4444"
	case UrgentMaintenance:
		return "#F97316"
	case UseWithCaution:
		return "#EAB308"
	default:
		return "#22C55E"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Discard":
		*c = Discard
	case "Urgent Maintenance":
		*c = UrgentMaintenance
	case "Use With Caution":
		*c = UseWithCaution
	case "Good Condition":
		*c = GoodCondition
	default:
		return fmt.Errorf("unknown category %q", string(text))
	}
	return nil
}
