package types

import "github.com/m-mizutani/goerr/v2"

// Impact is the severity rating of a templated risk
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// AllImpacts returns all valid impacts
func AllImpacts() []Impact {
	return []Impact{
		ImpactLow,
		ImpactMedium,
		ImpactHigh,
	}
}

// IsValid checks if the impact is valid
func (x Impact) IsValid() bool {
	switch x {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x Impact) String() string {
	return string(x)
}

// ParseImpact parses a string into Impact
func ParseImpact(s string) (Impact, error) {
	impact := Impact(s)
	if !impact.IsValid() {
		return "", goerr.New("invalid impact", goerr.T(ErrTagValidation), goerr.V("impact", s))
	}
	return impact, nil
}
