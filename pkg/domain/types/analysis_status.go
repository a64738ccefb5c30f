package types

import "github.com/m-mizutani/goerr/v2"

// AnalysisStatus is the lifecycle state of a document's compliance analysis
type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

// AllAnalysisStatuses returns all valid analysis statuses
func AllAnalysisStatuses() []AnalysisStatus {
	return []AnalysisStatus{
		AnalysisStatusPending,
		AnalysisStatusCompleted,
		AnalysisStatusFailed,
	}
}

// IsValid checks if the analysis status is valid
func (x AnalysisStatus) IsValid() bool {
	switch x {
	case AnalysisStatusPending, AnalysisStatusCompleted, AnalysisStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x AnalysisStatus) String() string {
	return string(x)
}

// ParseAnalysisStatus parses a string into AnalysisStatus
func ParseAnalysisStatus(s string) (AnalysisStatus, error) {
	status := AnalysisStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid analysis status", goerr.T(ErrTagValidation), goerr.V("status", s))
	}
	return status, nil
}
