package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// User is an account created on first identity provider exchange. Profile
// fields stay empty until the user fills them in or generates a risk
// register.
type User struct {
	ID            types.UserID       `json:"user_id"`
	Email         string             `json:"email"`
	Name          string             `json:"name"`
	Picture       string             `json:"picture,omitempty"`
	CompanyName   string             `json:"company_name,omitempty"`
	BusinessType  types.BusinessType `json:"business_type,omitempty"`
	EmployeeCount int                `json:"employee_count,omitempty"`
	Industry      string             `json:"industry,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NewUser creates a user from the verified identity provider profile
func NewUser(email, name, picture string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        types.NewUserID(),
		Email:     email,
		Name:      name,
		Picture:   picture,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks if the user has all required fields
func (x *User) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return err
	}
	if x.Email == "" {
		return goerr.New("user email is required", goerr.T(types.ErrTagValidation))
	}
	if x.BusinessType != "" && !x.BusinessType.IsValid() {
		return goerr.New("invalid business type", goerr.T(types.ErrTagValidation), goerr.V("business_type", x.BusinessType))
	}
	return nil
}
