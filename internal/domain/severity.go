package domain

// Severity is the malnutrition band derived from a rounded WHZ.
type Severity string

const (
	SeverityIndeterminate Severity = ""
	SeverityNone          Severity = "not_malnourished"
	SeverityModerate      Severity = "moderate_malnutrition"
	SeveritySevere        Severity = "severe_malnutrition"
)

const (
	moderateThreshold = -2.0
	severeThreshold   = -3.0
)

// Classify maps a z-score to its severity band. Boundary values belong to
// the better band: -2.0 is not malnourished, -3.0 is moderate.
func Classify(z float64) Severity {
	switch {
	case z >= moderateThreshold:
		return SeverityNone
	case z >= severeThreshold:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// Label is the operator-facing text shown next to the z-score.
func (s Severity) Label() string {
	switch s {
	case SeverityNone:
		return "Non Malnutrito"
	case SeverityModerate:
		return "Malnutrizione Moderata"
	case SeveritySevere:
		return "Malnutrizione Severa"
	default:
		return ""
	}
}

// Color is the hex background used by the display for this band, without
// the leading '#'.
func (s Severity) Color() string {
	switch s {
	case SeverityNone:
		return "2fb538"
	case SeverityModerate:
		return "cedb3b"
	case SeveritySevere:
		return "e03d3a"
	default:
		return ""
	}
}
