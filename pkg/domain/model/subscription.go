package model

import "github.com/complypilot/complypilot/pkg/domain/types"

// PlanFeatures describes what a subscription plan includes. A value of -1
// for a monthly quota means unlimited.
type PlanFeatures struct {
	HealthChecksPerMonth     int  `json:"health_checks_per_month"`
	DocumentAnalysesPerMonth int  `json:"document_analyses_per_month"`
	RiskRegister             bool `json:"risk_register"`
	PrioritySupport          bool `json:"priority_support"`
	ExportReports            bool `json:"export_reports"`
	DedicatedSupport         bool `json:"dedicated_support,omitempty"`
	CustomIntegrations       bool `json:"custom_integrations,omitempty"`
}

// Subscription is a user's current plan. Users without a stored record are
// treated as free tier.
type Subscription struct {
	UserID   types.UserID   `json:"user_id,omitempty"`
	PlanType types.PlanType `json:"plan_type"`
	Status   string         `json:"status"`
	Features PlanFeatures   `json:"features"`
}

// FreeSubscription is the default for users who never picked a plan
func FreeSubscription() *Subscription {
	return &Subscription{
		PlanType: types.PlanTypeFree,
		Status:   "active",
		Features: PlanFeatures{
			HealthChecksPerMonth:     1,
			DocumentAnalysesPerMonth: 3,
			RiskRegister:             true,
		},
	}
}

// Plan is a purchasable subscription tier
type Plan struct {
	ID          types.PlanType `json:"id"`
	Name        string         `json:"name"`
	Price       int            `json:"price"`
	Currency    string         `json:"currency"`
	Interval    string         `json:"interval"`
	Features    PlanFeatures   `json:"features"`
	Description string         `json:"description"`
}

// DefaultPlans returns the published plan table. Prices are GBP per month.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:       types.PlanTypeFree,
			Name:     "Free",
			Price:    0,
			Currency: "GBP",
			Interval: "month",
			Features: PlanFeatures{
				HealthChecksPerMonth:     1,
				DocumentAnalysesPerMonth: 3,
				RiskRegister:             true,
			},
			Description: "Perfect for getting started with compliance",
		},
		{
			ID:       types.PlanTypeStarter,
			Name:     "Starter",
			Price:    29,
			Currency: "GBP",
			Interval: "month",
			Features: PlanFeatures{
				HealthChecksPerMonth:     5,
				DocumentAnalysesPerMonth: 15,
				RiskRegister:             true,
				ExportReports:            true,
			},
			Description: "For small businesses starting their compliance journey",
		},
		{
			ID:       types.PlanTypeProfessional,
			Name:     "Professional",
			Price:    79,
			Currency: "GBP",
			Interval: "month",
			Features: PlanFeatures{
				HealthChecksPerMonth:     -1,
				DocumentAnalysesPerMonth: 50,
				RiskRegister:             true,
				PrioritySupport:          true,
				ExportReports:            true,
			},
			Description: "For growing businesses with serious compliance needs",
		},
		{
			ID:       types.PlanTypeEnterprise,
			Name:     "Enterprise",
			Price:    199,
			Currency: "GBP",
			Interval: "month",
			Features: PlanFeatures{
				HealthChecksPerMonth:     -1,
				DocumentAnalysesPerMonth: -1,
				RiskRegister:             true,
				PrioritySupport:          true,
				ExportReports:            true,
				DedicatedSupport:         true,
				CustomIntegrations:       true,
			},
			Description: "For organisations requiring full compliance support",
		},
	}
}
