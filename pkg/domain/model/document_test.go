package model_test

import (
	"testing"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func validAnalysis() *model.DocumentAnalysis {
	return &model.DocumentAnalysis{
		DocumentType:      "Privacy Policy",
		OverallAssessment: "Reasonable coverage with a few gaps",
		GDPRCompliance: &model.FrameworkAssessment{
			Score:           72,
			Status:          types.ComplianceStatusPartial,
			Strengths:       []string{"Lawful basis documented"},
			Gaps:            []string{"No retention schedule"},
			Recommendations: []string{"Define retention periods"},
		},
		CyberEssentialsCompliance: &model.FrameworkAssessment{
			Score:  0,
			Status: types.ComplianceStatusNotApplicable,
		},
		PriorityActions: []model.AnalysisAction{
			{
				Priority:  types.PriorityHigh,
				Action:    "Add a data retention schedule",
				Framework: types.FrameworkGDPR,
				Rationale: "Required under storage limitation principle",
			},
		},
		RiskSummary: "Moderate exposure until retention is defined",
	}
}

func TestDocumentAnalysis_Validate(t *testing.T) {
	t.Run("valid analysis passes", func(t *testing.T) {
		gt.NoError(t, validAnalysis().Validate())
	})

	t.Run("missing document type", func(t *testing.T) {
		a := validAnalysis()
		a.DocumentType = ""
		gt.Error(t, a.Validate())
	})

	t.Run("missing gdpr assessment", func(t *testing.T) {
		a := validAnalysis()
		a.GDPRCompliance = nil
		gt.Error(t, a.Validate())
	})

	t.Run("score out of range", func(t *testing.T) {
		a := validAnalysis()
		a.GDPRCompliance.Score = 101
		gt.Error(t, a.Validate())

		a = validAnalysis()
		a.CyberEssentialsCompliance.Score = -1
		gt.Error(t, a.Validate())
	})

	t.Run("unknown compliance status", func(t *testing.T) {
		a := validAnalysis()
		a.GDPRCompliance.Status = types.ComplianceStatus("mostly-fine")
		gt.Error(t, a.Validate())
	})

	t.Run("action with unknown framework", func(t *testing.T) {
		a := validAnalysis()
		a.PriorityActions[0].Framework = types.Framework("ISO 27001")
		gt.Error(t, a.Validate())
	})

	t.Run("empty action list is fine", func(t *testing.T) {
		a := validAnalysis()
		a.PriorityActions = nil
		gt.NoError(t, a.Validate())
	})
}

func TestNewDocument(t *testing.T) {
	doc := model.NewDocument(types.UserID("user_0123456789ab"), "privacy-policy.pdf", "application/pdf", 2048)

	gt.NoError(t, doc.ID.Validate())
	gt.V(t, doc.Status).Equal(types.AnalysisStatusPending)
	gt.V(t, doc.FileSize).Equal(int64(2048))
	gt.B(t, doc.Analysis == nil).True()
	gt.B(t, doc.AnalyzedAt == nil).True()
}
