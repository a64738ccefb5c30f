package types

import "github.com/m-mizutani/goerr/v2"

// Likelihood is the probability rating of a templated risk
type Likelihood string

const (
	LikelihoodLow    Likelihood = "low"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodHigh   Likelihood = "high"
)

// AllLikelihoods returns all valid likelihoods
func AllLikelihoods() []Likelihood {
	return []Likelihood{
		LikelihoodLow,
		LikelihoodMedium,
		LikelihoodHigh,
	}
}

// IsValid checks if the likelihood is valid
func (x Likelihood) IsValid() bool {
	switch x {
	case LikelihoodLow, LikelihoodMedium, LikelihoodHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (x Likelihood) String() string {
	return string(x)
}

// ParseLikelihood parses a string into Likelihood
func ParseLikelihood(s string) (Likelihood, error) {
	likelihood := Likelihood(s)
	if !likelihood.IsValid() {
		return "", goerr.New("invalid likelihood", goerr.T(ErrTagValidation), goerr.V("likelihood", s))
	}
	return likelihood, nil
}
