package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const (
	dashboardMaxGapActions      = 5
	dashboardMaxDocumentActions = 3
	dashboardRecentDocuments    = 5
)

type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary aggregates the user's compliance state for the home screen. The
// sub-resources are fetched concurrently; whichever of them the user has not
// created yet renders as zeros or nulls, never as an error.
func (uc *DashboardUseCase) Summary(ctx context.Context, userID types.UserID) (*model.Dashboard, error) {
	var (
		user     *model.User
		latest   *model.HealthCheck
		docs     []*model.Document
		register *model.RiskRegister
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		u, err := uc.repo.User().Get(egCtx, userID)
		if err != nil {
			return goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
		}
		user = u
		return nil
	})
	eg.Go(func() error {
		hc, err := uc.repo.HealthCheck().Latest(egCtx, userID)
		if err != nil && !goerr.HasTag(err, types.ErrTagNotFound) {
			return goerr.Wrap(err, "failed to get latest health check", goerr.V("user_id", userID))
		}
		latest = hc
		return nil
	})
	eg.Go(func() error {
		d, err := uc.repo.Document().ListByUser(egCtx, userID)
		if err != nil {
			return goerr.Wrap(err, "failed to list documents", goerr.V("user_id", userID))
		}
		docs = d
		return nil
	})
	eg.Go(func() error {
		r, err := uc.repo.RiskRegister().GetByUser(egCtx, userID)
		if err != nil && !goerr.HasTag(err, types.ErrTagNotFound) {
			return goerr.Wrap(err, "failed to get risk register", goerr.V("user_id", userID))
		}
		register = r
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		User:           user,
		TotalDocuments: len(docs),
	}

	if latest != nil {
		dashboard.ComplianceScore = &latest.ComplianceScore
		dashboard.CategoryScores = latest.CategoryScores
		dashboard.RiskLevel = &latest.RiskLevel
		dashboard.LastHealthCheck = &latest.CreatedAt
	}

	if register != nil {
		for _, risk := range register.Risks {
			dashboard.RiskStats.CountRisk(risk.Status)
		}
	}

	for _, doc := range docs {
		if doc.Status == types.AnalysisStatusCompleted {
			dashboard.AnalyzedDocuments++
		}
	}

	dashboard.PriorityActions = buildPriorityActions(latest, docs)

	recent := docs
	if len(recent) > dashboardRecentDocuments {
		recent = recent[:dashboardRecentDocuments]
	}
	dashboard.RecentDocuments = recent

	return dashboard, nil
}

// buildPriorityActions lists the top questionnaire gaps followed by
// reminders for documents still waiting on analysis. Gaps arrive already
// sorted heaviest first.
func buildPriorityActions(latest *model.HealthCheck, docs []*model.Document) []model.DashboardAction {
	actions := []model.DashboardAction{}

	if latest != nil {
		gaps := latest.Gaps
		if len(gaps) > dashboardMaxGapActions {
			gaps = gaps[:dashboardMaxGapActions]
		}
		for _, gap := range gaps {
			actions = append(actions, model.DashboardAction{
				Type:        types.ActionTypeComplianceGap,
				Category:    gap.Category.String(),
				Subcategory: gap.Subcategory,
				Description: gap.Question,
				Guidance:    gap.Guidance,
				Priority:    gap.Priority,
			})
		}
	}

	pending := 0
	for _, doc := range docs {
		if doc.Status != types.AnalysisStatusPending {
			continue
		}
		if pending >= dashboardMaxDocumentActions {
			break
		}
		actions = append(actions, model.DashboardAction{
			Type:        types.ActionTypePendingAnalysis,
			Category:    "Documents",
			Description: "Analyze document: " + doc.Filename,
			DocumentID:  doc.ID,
			Priority:    types.PriorityMedium,
		})
		pending++
	}

	return actions
}
