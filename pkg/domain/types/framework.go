package types

import "github.com/m-mizutani/goerr/v2"

// Framework names the compliance framework an analysis action targets
type Framework string

const (
	FrameworkGDPR            Framework = "GDPR"
	FrameworkCyberEssentials Framework = "Cyber Essentials"
	FrameworkBoth            Framework = "Both"
)

// AllFrameworks returns all valid frameworks
func AllFrameworks() []Framework {
	return []Framework{
		FrameworkGDPR,
		FrameworkCyberEssentials,
		FrameworkBoth,
	}
}

// IsValid checks if the framework is valid
func (x Framework) IsValid() bool {
	switch x {
	case FrameworkGDPR, FrameworkCyberEssentials, FrameworkBoth:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x Framework) String() string {
	return string(x)
}

// ParseFramework parses a string into Framework
func ParseFramework(s string) (Framework, error) {
	framework := Framework(s)
	if !framework.IsValid() {
		return "", goerr.New("invalid framework", goerr.T(ErrTagValidation), goerr.V("framework", s))
	}
	return framework, nil
}
