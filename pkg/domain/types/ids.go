package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// UserID identifies a user account
type UserID string

// NewUserID generates a new user ID with a short random suffix
func NewUserID() UserID {
	return UserID("user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// String returns the string representation
func (x UserID) String() string {
	return string(x)
}

// Validate checks if the user ID is valid
func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("user ID is empty", goerr.T(ErrTagValidation))
	}
	return nil
}

// HealthCheckID identifies a health check submission
type HealthCheckID string

// NewHealthCheckID generates a new health check ID
func NewHealthCheckID() HealthCheckID {
	return HealthCheckID(uuid.NewString())
}

// String returns the string representation
func (x HealthCheckID) String() string {
	return string(x)
}

// Validate checks if the health check ID is valid
func (x HealthCheckID) Validate() error {
	if x == "" {
		return goerr.New("health check ID is empty", goerr.T(ErrTagValidation))
	}
	return nil
}

// DocumentID identifies an uploaded document
type DocumentID string

// NewDocumentID generates a new document ID
func NewDocumentID() DocumentID {
	return DocumentID(uuid.NewString())
}

// String returns the string representation
func (x DocumentID) String() string {
	return string(x)
}

// Validate checks if the document ID is valid
func (x DocumentID) Validate() error {
	if x == "" {
		return goerr.New("document ID is empty", goerr.T(ErrTagValidation))
	}
	return nil
}

// RiskID identifies a single risk entry within a risk register
type RiskID string

// NewRiskID generates a new risk ID
func NewRiskID() RiskID {
	return RiskID(uuid.NewString())
}

// String returns the string representation
func (x RiskID) String() string {
	return string(x)
}

// Validate checks if the risk ID is valid
func (x RiskID) Validate() error {
	if x == "" {
		return goerr.New("risk ID is empty", goerr.T(ErrTagValidation))
	}
	return nil
}

// RegisterID identifies a risk register
type RegisterID string

// NewRegisterID generates a new register ID
func NewRegisterID() RegisterID {
	return RegisterID(uuid.NewString())
}

// String returns the string representation
func (x RegisterID) String() string {
	return string(x)
}

// Validate checks if the register ID is valid
func (x RegisterID) Validate() error {
	if x == "" {
		return goerr.New("register ID is empty", goerr.T(ErrTagValidation))
	}
	return nil
}
