package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// RiskTemplate is a catalog entry describing a typical risk for a business
// type. Templates are static data; they never carry user state.
type RiskTemplate struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Likelihood  types.Likelihood `json:"likelihood"`
	Impact      types.Impact     `json:"impact"`
	Category    string           `json:"category"`
	Mitigation  string           `json:"mitigation"`
}

// Validate checks if the risk template is well formed
func (x *RiskTemplate) Validate() error {
	if x.Title == "" {
		return goerr.New("risk template title is required", goerr.T(types.ErrTagValidation))
	}
	if x.Description == "" {
		return goerr.New("risk template description is required", goerr.T(types.ErrTagValidation), goerr.V("title", x.Title))
	}
	if !x.Likelihood.IsValid() {
		return goerr.New("invalid risk template likelihood",
			goerr.T(types.ErrTagValidation),
			goerr.V("title", x.Title),
			goerr.V("likelihood", x.Likelihood))
	}
	if !x.Impact.IsValid() {
		return goerr.New("invalid risk template impact",
			goerr.T(types.ErrTagValidation),
			goerr.V("title", x.Title),
			goerr.V("impact", x.Impact))
	}
	if x.Category == "" {
		return goerr.New("risk template category is required", goerr.T(types.ErrTagValidation), goerr.V("title", x.Title))
	}
	if x.Mitigation == "" {
		return goerr.New("risk template mitigation is required", goerr.T(types.ErrTagValidation), goerr.V("title", x.Title))
	}
	return nil
}

// Risk is a template instantiated into a user's register. Only status and
// notes change after creation, and only through explicit user updates.
type Risk struct {
	ID          types.RiskID     `json:"risk_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Likelihood  types.Likelihood `json:"likelihood"`
	Impact      types.Impact     `json:"impact"`
	Category    string           `json:"category"`
	Mitigation  string           `json:"mitigation"`
	Status      types.RiskStatus `json:"status"`
	Owner       string           `json:"owner,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// NewRiskFromTemplate instantiates a template as a fresh register entry
func NewRiskFromTemplate(tmpl RiskTemplate) Risk {
	return Risk{
		ID:          types.NewRiskID(),
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Likelihood:  tmpl.Likelihood,
		Impact:      tmpl.Impact,
		Category:    tmpl.Category,
		Mitigation:  tmpl.Mitigation,
		Status:      types.RiskStatusIdentified,
	}
}

// RiskRegister is the per-user set of tracked risks. Regeneration replaces
// the whole set; previously tracked statuses are discarded.
type RiskRegister struct {
	ID           types.RegisterID   `json:"id"`
	UserID       types.UserID       `json:"user_id"`
	BusinessType types.BusinessType `json:"business_type"`
	Industry     string             `json:"industry,omitempty"`
	Risks        []Risk             `json:"risks"`
	TotalRisks   int                `json:"total_risks"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewRiskRegister instantiates all templates for a business type into a
// fresh register owned by the given user
func NewRiskRegister(userID types.UserID, businessType types.BusinessType, industry string, templates []RiskTemplate) *RiskRegister {
	risks := make([]Risk, 0, len(templates))
	for _, tmpl := range templates {
		risks = append(risks, NewRiskFromTemplate(tmpl))
	}

	now := time.Now().UTC()
	return &RiskRegister{
		ID:           types.NewRegisterID(),
		UserID:       userID,
		BusinessType: businessType,
		Industry:     industry,
		Risks:        risks,
		TotalRisks:   len(risks),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// FindRisk returns the index of the risk with the given ID, or -1
func (x *RiskRegister) FindRisk(riskID types.RiskID) int {
	for i := range x.Risks {
		if x.Risks[i].ID == riskID {
			return i
		}
	}
	return -1
}
