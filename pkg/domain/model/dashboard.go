package model

import (
	"time"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// RiskStats counts register entries per remediation status
type RiskStats struct {
	Identified int `json:"identified"`
	Mitigating int `json:"mitigating"`
	Resolved   int `json:"resolved"`
	Accepted   int `json:"accepted"`
	Total      int `json:"total"`
}

// CountRisk adds one risk to the stats
func (x *RiskStats) CountRisk(status types.RiskStatus) {
	switch status {
	case types.RiskStatusMitigating:
		x.Mitigating++
	case types.RiskStatusResolved:
		x.Resolved++
	case types.RiskStatusAccepted:
		x.Accepted++
	default:
		x.Identified++
	}
	x.Total++
}

// DashboardAction is one entry of the dashboard's recommended action list,
// either a questionnaire gap or a document waiting for analysis.
type DashboardAction struct {
	Type        types.ActionType `json:"type"`
	Category    string           `json:"category"`
	Subcategory string           `json:"subcategory,omitempty"`
	Description string           `json:"description"`
	Guidance    string           `json:"guidance,omitempty"`
	DocumentID  types.DocumentID `json:"document_id,omitempty"`
	Priority    types.Priority   `json:"priority"`
}

// Dashboard is the read-only summary for the home screen. Score fields are
// nil when the user has not submitted a health check yet; that is the
// "no data yet" state, not an error.
type Dashboard struct {
	User              *User                          `json:"user"`
	ComplianceScore   *int                           `json:"compliance_score"`
	CategoryScores    map[types.QuestionCategory]int `json:"category_scores,omitempty"`
	RiskLevel         *types.RiskLevel               `json:"risk_level"`
	LastHealthCheck   *time.Time                     `json:"last_health_check"`
	RiskStats         RiskStats                      `json:"risk_stats"`
	TotalDocuments    int                            `json:"total_documents"`
	AnalyzedDocuments int                            `json:"analyzed_documents"`
	PriorityActions   []DashboardAction              `json:"priority_actions"`
	RecentDocuments   []*Document                    `json:"recent_documents"`
}
