package types

// ActionType distinguishes the kinds of entries in the dashboard
// priority action list
type ActionType string

const (
	// ActionTypeComplianceGap points at a questionnaire gap from the
	// latest health check
	ActionTypeComplianceGap ActionType = "compliance_gap"

	// ActionTypePendingAnalysis points at an uploaded document that has
	// not been analyzed yet
	ActionTypePendingAnalysis ActionType = "pending_analysis"
)

// IsValid checks if the action type is valid
func (x ActionType) IsValid() bool {
	switch x {
	case ActionTypeComplianceGap, ActionTypePendingAnalysis:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x ActionType) String() string {
	return string(x)
}
