package types

import "github.com/m-mizutani/goerr/v2"

// ComplianceStatus is the per-framework verdict of a document analysis.
// Values use hyphens because they travel verbatim in the LLM response JSON.
type ComplianceStatus string

const (
	ComplianceStatusCompliant     ComplianceStatus = "compliant"
	ComplianceStatusPartial       ComplianceStatus = "partial"
	ComplianceStatusNonCompliant  ComplianceStatus = "non-compliant"
	ComplianceStatusNotApplicable ComplianceStatus = "not-applicable"
)

// AllComplianceStatuses returns all valid compliance statuses
func AllComplianceStatuses() []ComplianceStatus {
	return []ComplianceStatus{
		ComplianceStatusCompliant,
		ComplianceStatusPartial,
		ComplianceStatusNonCompliant,
		ComplianceStatusNotApplicable,
	}
}

// IsValid checks if the compliance status is valid
func (x ComplianceStatus) IsValid() bool {
	switch x {
	case ComplianceStatusCompliant, ComplianceStatusPartial, ComplianceStatusNonCompliant, ComplianceStatusNotApplicable:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x ComplianceStatus) String() string {
	return string(x)
}

// ParseComplianceStatus parses a string into ComplianceStatus
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	status := ComplianceStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid compliance status", goerr.T(ErrTagValidation), goerr.V("status", s))
	}
	return status, nil
}
