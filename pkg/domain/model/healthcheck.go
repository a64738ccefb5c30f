package model

import (
	"time"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// Answer is a single yes/no response to a questionnaire item. Notes are
// optional free text the user can attach to an answer.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     bool   `json:"answer"`
	Notes      string `json:"notes,omitempty"`
}

// Gap is a questionnaire item that was answered "no" or not answered at all,
// representing an unmet compliance control.
type Gap struct {
	QuestionID  string                 `json:"question_id"`
	Category    types.QuestionCategory `json:"category"`
	Subcategory string                 `json:"subcategory"`
	Question    string                 `json:"question"`
	Guidance    string                 `json:"guidance"`
	Weight      int                    `json:"weight"`
	Priority    types.Priority         `json:"priority"`
}

// HealthCheck is one scored questionnaire submission. Records are immutable
// once written; a new submission creates a new record and "latest" is the
// most recent by creation time.
type HealthCheck struct {
	ID              types.HealthCheckID            `json:"id"`
	UserID          types.UserID                   `json:"user_id"`
	Responses       []Answer                       `json:"responses"`
	ComplianceScore int                            `json:"compliance_score"`
	CategoryScores  map[types.QuestionCategory]int `json:"category_scores"`
	RiskLevel       types.RiskLevel                `json:"risk_level"`
	Gaps            []Gap                          `json:"gaps"`
	TotalGaps       int                            `json:"total_gaps"`
	CreatedAt       time.Time                      `json:"created_at"`
}
