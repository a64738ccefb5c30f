package types

import "github.com/m-mizutani/goerr/v2"

// PlanType identifies a subscription plan
type PlanType string

const (
	PlanTypeFree         PlanType = "free"
	PlanTypeStarter      PlanType = "starter"
	PlanTypeProfessional PlanType = "professional"
	PlanTypeEnterprise   PlanType = "enterprise"
)

// AllPlanTypes returns all valid plan types
func AllPlanTypes() []PlanType {
	return []PlanType{
		PlanTypeFree,
		PlanTypeStarter,
		PlanTypeProfessional,
		PlanTypeEnterprise,
	}
}

// IsValid checks if the plan type is valid
func (x PlanType) IsValid() bool {
	switch x {
	case PlanTypeFree, PlanTypeStarter, PlanTypeProfessional, PlanTypeEnterprise:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x PlanType) String() string {
	return string(x)
}

// ParsePlanType parses a string into PlanType
func ParsePlanType(s string) (PlanType, error) {
	plan := PlanType(s)
	if !plan.IsValid() {
		return "", goerr.New("invalid plan type", goerr.T(ErrTagValidation), goerr.V("plan_type", s))
	}
	return plan, nil
}
