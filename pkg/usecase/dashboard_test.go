package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/repository/memory"
	"github.com/complypilot/complypilot/pkg/service/storage"
	"github.com/complypilot/complypilot/pkg/usecase"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty account renders zeros, not errors", func(t *testing.T) {
		repo := memory.New()
		user := model.NewUser("iris@example.com", "Iris", "")
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		dashboard, err := usecase.NewDashboardUseCase(repo).Summary(ctx, user.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, dashboard.User.ID).Equal(user.ID)
		gt.Value(t, dashboard.ComplianceScore).Nil()
		gt.Value(t, dashboard.RiskLevel).Nil()
		gt.Value(t, dashboard.LastHealthCheck).Nil()
		gt.Value(t, dashboard.RiskStats.Total).Equal(0)
		gt.Value(t, dashboard.TotalDocuments).Equal(0)
		gt.Value(t, dashboard.AnalyzedDocuments).Equal(0)
		gt.Array(t, dashboard.PriorityActions).Length(0)
		gt.Array(t, dashboard.RecentDocuments).Length(0)
	})

	t.Run("aggregates health check, documents and register", func(t *testing.T) {
		repo := memory.New()
		blobs := storage.NewMemory()
		cat, err := catalog.Load()
		gt.NoError(t, err).Required()

		user := model.NewUser("jack@example.com", "Jack", "")
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		// A submission with no answers leaves all 30 questions as gaps
		healthUC := usecase.NewHealthCheckUseCase(repo, cat)
		check, err := healthUC.Submit(ctx, user.ID, nil)
		gt.NoError(t, err).Required()

		// Six uploads, one analyzed
		docUC := usecase.NewDocumentUseCase(repo, blobs, &stubAnalyzer{result: validAnalysis()}, 0)
		var docs []*model.Document
		for i := 0; i < 6; i++ {
			doc, err := docUC.Upload(ctx, user.ID, fmt.Sprintf("doc-%d.txt", i), "text/plain", []byte("content"))
			gt.NoError(t, err).Required()
			docs = append(docs, doc)
		}
		_, err = docUC.Analyze(ctx, user.ID, docs[0].ID)
		gt.NoError(t, err).Required()

		// Register with mixed remediation states
		registerUC := usecase.NewRiskRegisterUseCase(repo, cat)
		register, err := registerUC.Generate(ctx, user.ID, "general", "")
		gt.NoError(t, err).Required()
		_, err = registerUC.UpdateRiskStatus(ctx, user.ID, register.Risks[0].ID, "mitigating", "")
		gt.NoError(t, err).Required()
		_, err = registerUC.UpdateRiskStatus(ctx, user.ID, register.Risks[1].ID, "resolved", "")
		gt.NoError(t, err).Required()
		_, err = registerUC.UpdateRiskStatus(ctx, user.ID, register.Risks[2].ID, "accepted", "")
		gt.NoError(t, err).Required()

		dashboard, err := usecase.NewDashboardUseCase(repo).Summary(ctx, user.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, dashboard.ComplianceScore).NotNil()
		gt.Value(t, *dashboard.ComplianceScore).Equal(check.ComplianceScore)
		gt.Value(t, *dashboard.RiskLevel).Equal(types.RiskLevelHigh)
		gt.Value(t, dashboard.LastHealthCheck).NotNil()

		gt.Value(t, dashboard.RiskStats.Identified).Equal(2)
		gt.Value(t, dashboard.RiskStats.Mitigating).Equal(1)
		gt.Value(t, dashboard.RiskStats.Resolved).Equal(1)
		gt.Value(t, dashboard.RiskStats.Accepted).Equal(1)
		gt.Value(t, dashboard.RiskStats.Total).Equal(5)

		gt.Value(t, dashboard.TotalDocuments).Equal(6)
		gt.Value(t, dashboard.AnalyzedDocuments).Equal(1)
		gt.Array(t, dashboard.RecentDocuments).Length(5)

		// Top 5 gaps plus at most 3 pending document reminders
		gt.Array(t, dashboard.PriorityActions).Length(8)
		for i := 0; i < 5; i++ {
			gt.Value(t, dashboard.PriorityActions[i].Type).Equal(types.ActionTypeComplianceGap)
		}
		for i := 5; i < 8; i++ {
			gt.Value(t, dashboard.PriorityActions[i].Type).Equal(types.ActionTypePendingAnalysis)
			gt.Value(t, dashboard.PriorityActions[i].Priority).Equal(types.PriorityMedium)
		}
	})

	t.Run("unknown user fails", func(t *testing.T) {
		repo := memory.New()
		_, err := usecase.NewDashboardUseCase(repo).Summary(ctx, types.NewUserID())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagNotFound)).True()
	})
}

func TestBuildPriorityActions(t *testing.T) {
	t.Run("nil health check yields document reminders only", func(t *testing.T) {
		docs := []*model.Document{
			{ID: types.NewDocumentID(), Filename: "a.pdf", Status: types.AnalysisStatusPending},
			{ID: types.NewDocumentID(), Filename: "b.pdf", Status: types.AnalysisStatusCompleted},
		}

		actions := usecase.BuildPriorityActions(nil, docs)
		gt.Array(t, actions).Length(1)
		gt.Value(t, actions[0].Type).Equal(types.ActionTypePendingAnalysis)
		gt.String(t, actions[0].Description).Contains("a.pdf")
		gt.Value(t, actions[0].Category).Equal("Documents")
	})

	t.Run("gap actions carry the questionnaire fields", func(t *testing.T) {
		latest := &model.HealthCheck{
			Gaps: []model.Gap{{
				QuestionID:  "gdpr-q01",
				Category:    types.QuestionCategoryGDPR,
				Subcategory: "Documentation",
				Question:    "Do you have a privacy policy?",
				Guidance:    "Publish one",
				Weight:      3,
				Priority:    types.PriorityHigh,
			}},
		}

		actions := usecase.BuildPriorityActions(latest, nil)
		gt.Array(t, actions).Length(1)
		gt.Value(t, actions[0].Type).Equal(types.ActionTypeComplianceGap)
		gt.Value(t, actions[0].Category).Equal("GDPR")
		gt.Value(t, actions[0].Subcategory).Equal("Documentation")
		gt.Value(t, actions[0].Description).Equal("Do you have a privacy policy?")
		gt.Value(t, actions[0].Guidance).Equal("Publish one")
		gt.Value(t, actions[0].Priority).Equal(types.PriorityHigh)
	})

	t.Run("failed documents are not reminded", func(t *testing.T) {
		docs := []*model.Document{
			{ID: types.NewDocumentID(), Filename: "x.pdf", Status: types.AnalysisStatusFailed},
		}

		actions := usecase.BuildPriorityActions(nil, docs)
		gt.Array(t, actions).Length(0)
	})
}
