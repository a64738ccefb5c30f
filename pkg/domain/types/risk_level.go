package types

// RiskLevel is the coarse banding of an overall compliance score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// AllRiskLevels returns all valid risk levels
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
	}
}

// IsValid checks if the risk level is valid
func (x RiskLevel) IsValid() bool {
	switch x {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x RiskLevel) String() string {
	return string(x)
}

// RiskLevelForScore bands an overall compliance score into a risk level.
// Scores of 40 and below are high risk, 41 to 70 are medium, above 70 are low.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= 40:
		return RiskLevelHigh
	case score <= 70:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}
