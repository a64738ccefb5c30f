package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// BusinessType selects which risk template set applies to a user
type BusinessType string

const (
	BusinessTypeRetail               BusinessType = "retail"
	BusinessTypeProfessionalServices BusinessType = "professional_services"
	BusinessTypeHealthcare           BusinessType = "healthcare"
	BusinessTypeTechnology           BusinessType = "technology"
	BusinessTypeManufacturing        BusinessType = "manufacturing"
	BusinessTypeGeneral              BusinessType = "general"
)

// AllBusinessTypes returns all valid business types
func AllBusinessTypes() []BusinessType {
	return []BusinessType{
		BusinessTypeRetail,
		BusinessTypeProfessionalServices,
		BusinessTypeHealthcare,
		BusinessTypeTechnology,
		BusinessTypeManufacturing,
		BusinessTypeGeneral,
	}
}

// IsValid checks if the business type is valid
func (x BusinessType) IsValid() bool {
	switch x {
	case BusinessTypeRetail, BusinessTypeProfessionalServices, BusinessTypeHealthcare,
		BusinessTypeTechnology, BusinessTypeManufacturing, BusinessTypeGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x BusinessType) String() string {
	return string(x)
}

// ParseBusinessType normalizes free-form input such as "Professional Services"
// and parses it into a BusinessType. Unknown values are rejected rather than
// falling back to a default.
func ParseBusinessType(s string) (BusinessType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	bt := BusinessType(normalized)
	if !bt.IsValid() {
		return "", goerr.New("unsupported business type", goerr.T(ErrTagValidation), goerr.V("business_type", s))
	}
	return bt, nil
}
