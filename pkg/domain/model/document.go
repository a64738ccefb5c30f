package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// Document is the record of an uploaded policy file. The raw content lives
// in object storage keyed by the document ID; the record itself only carries
// metadata and the analysis result.
type Document struct {
	ID         types.DocumentID     `json:"id"`
	UserID     types.UserID         `json:"user_id"`
	Filename   string               `json:"filename"`
	FileType   string               `json:"file_type"`
	FileSize   int64                `json:"file_size"`
	Status     types.AnalysisStatus `json:"analysis_status"`
	Analysis   *DocumentAnalysis    `json:"analysis_result,omitempty"`
	Error      string               `json:"analysis_error,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	AnalyzedAt *time.Time           `json:"analyzed_at,omitempty"`
}

// NewDocument creates a document record for freshly uploaded content
func NewDocument(userID types.UserID, filename, fileType string, fileSize int64) *Document {
	return &Document{
		ID:        types.NewDocumentID(),
		UserID:    userID,
		Filename:  filename,
		FileType:  fileType,
		FileSize:  fileSize,
		Status:    types.AnalysisStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// DocumentAnalysis is the structured result returned by the LLM provider.
// The shape is validated before persisting so a malformed provider response
// fails the analysis instead of leaking partial data to clients.
type DocumentAnalysis struct {
	DocumentType              string               `json:"document_type"`
	OverallAssessment         string               `json:"overall_assessment"`
	GDPRCompliance            *FrameworkAssessment `json:"gdpr_compliance"`
	CyberEssentialsCompliance *FrameworkAssessment `json:"cyber_essentials_compliance"`
	PriorityActions           []AnalysisAction     `json:"priority_actions"`
	RiskSummary               string               `json:"risk_summary"`
}

// FrameworkAssessment scores the document against a single framework
type FrameworkAssessment struct {
	Score           int                    `json:"score"`
	Status          types.ComplianceStatus `json:"status"`
	Strengths       []string               `json:"strengths"`
	Gaps            []string               `json:"gaps"`
	Recommendations []string               `json:"recommendations"`
}

// AnalysisAction is one recommended remediation step from the analysis
type AnalysisAction struct {
	Priority  types.Priority  `json:"priority"`
	Action    string          `json:"action"`
	Framework types.Framework `json:"framework"`
	Rationale string          `json:"rationale"`
}

// Validate checks the analysis result shape
func (x *DocumentAnalysis) Validate() error {
	if x.DocumentType == "" {
		return goerr.New("analysis is missing document type", goerr.T(types.ErrTagUpstream))
	}
	if x.GDPRCompliance == nil {
		return goerr.New("analysis is missing GDPR assessment", goerr.T(types.ErrTagUpstream))
	}
	if err := x.GDPRCompliance.Validate(); err != nil {
		return goerr.Wrap(err, "invalid GDPR assessment")
	}
	if x.CyberEssentialsCompliance == nil {
		return goerr.New("analysis is missing Cyber Essentials assessment", goerr.T(types.ErrTagUpstream))
	}
	if err := x.CyberEssentialsCompliance.Validate(); err != nil {
		return goerr.Wrap(err, "invalid Cyber Essentials assessment")
	}
	for i, action := range x.PriorityActions {
		if err := action.Validate(); err != nil {
			return goerr.Wrap(err, "invalid priority action", goerr.V("index", i))
		}
	}
	return nil
}

// Validate checks the framework assessment shape
func (x *FrameworkAssessment) Validate() error {
	if x.Score < 0 || x.Score > 100 {
		return goerr.New("assessment score out of range",
			goerr.T(types.ErrTagUpstream),
			goerr.V("score", x.Score))
	}
	if !x.Status.IsValid() {
		return goerr.New("invalid assessment status",
			goerr.T(types.ErrTagUpstream),
			goerr.V("status", x.Status))
	}
	return nil
}

// Validate checks the analysis action shape
func (x *AnalysisAction) Validate() error {
	if !x.Priority.IsValid() {
		return goerr.New("invalid action priority",
			goerr.T(types.ErrTagUpstream),
			goerr.V("priority", x.Priority))
	}
	if x.Action == "" {
		return goerr.New("action text is empty", goerr.T(types.ErrTagUpstream))
	}
	if !x.Framework.IsValid() {
		return goerr.New("invalid action framework",
			goerr.T(types.ErrTagUpstream),
			goerr.V("framework", x.Framework))
	}
	return nil
}
