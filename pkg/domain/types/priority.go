package types

import "github.com/m-mizutani/goerr/v2"

// Priority ranks gaps and recommended actions for display
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns all valid priorities
func AllPriorities() []Priority {
	return []Priority{
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// IsValid checks if the priority is valid
func (x Priority) IsValid() bool {
	switch x {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x Priority) String() string {
	return string(x)
}

// ParsePriority parses a string into Priority
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.IsValid() {
		return "", goerr.New("invalid priority", goerr.T(ErrTagValidation), goerr.V("priority", s))
	}
	return priority, nil
}

// PriorityForWeight derives a gap priority from a question weight
func PriorityForWeight(weight int) Priority {
	switch {
	case weight >= 3:
		return PriorityHigh
	case weight >= 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
