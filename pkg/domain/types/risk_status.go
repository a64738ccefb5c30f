package types

import "github.com/m-mizutani/goerr/v2"

// RiskStatus represents the remediation status of a risk register entry.
// Status only changes through explicit user action, never automatically.
type RiskStatus string

const (
	RiskStatusIdentified RiskStatus = "identified"
	RiskStatusMitigating RiskStatus = "mitigating"
	RiskStatusResolved   RiskStatus = "resolved"
	RiskStatusAccepted   RiskStatus = "accepted"
)

// AllRiskStatuses returns all valid risk statuses
func AllRiskStatuses() []RiskStatus {
	return []RiskStatus{
		RiskStatusIdentified,
		RiskStatusMitigating,
		RiskStatusResolved,
		RiskStatusAccepted,
	}
}

// IsValid checks if the risk status is valid
func (x RiskStatus) IsValid() bool {
	switch x {
	case RiskStatusIdentified, RiskStatusMitigating, RiskStatusResolved, RiskStatusAccepted:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x RiskStatus) String() string {
	return string(x)
}

// ParseRiskStatus parses a string into RiskStatus
func ParseRiskStatus(s string) (RiskStatus, error) {
	status := RiskStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid risk status", goerr.T(ErrTagValidation), goerr.V("status", s))
	}
	return status, nil
}
