package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type HealthCheckUseCase struct {
	repo    interfaces.Repository
	catalog *catalog.Catalog
}

func NewHealthCheckUseCase(repo interfaces.Repository, cat *catalog.Catalog) *HealthCheckUseCase {
	return &HealthCheckUseCase{
		repo:    repo,
		catalog: cat,
	}
}

// Questions returns the active questionnaire
func (uc *HealthCheckUseCase) Questions() []model.Question {
	return uc.catalog.Questions()
}

// CategoryCounts returns how many questions each category holds
func (uc *HealthCheckUseCase) CategoryCounts() map[types.QuestionCategory]int {
	return uc.catalog.CategoryCounts()
}

// Submit scores a questionnaire submission and persists the result as a new
// immutable record. Partial submissions are fine; unanswered questions score
// as "no".
func (uc *HealthCheckUseCase) Submit(ctx context.Context, userID types.UserID, answers []model.Answer) (*model.HealthCheck, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	check := scoreAnswers(uc.catalog, userID, answers)
	if err := uc.repo.HealthCheck().Put(ctx, check); err != nil {
		return nil, goerr.Wrap(err, "failed to store health check result", goerr.V("user_id", userID))
	}

	return check, nil
}

// Latest returns the most recent result, or nil when the user has never
// submitted. Absence is the "no data yet" state, not an error.
func (uc *HealthCheckUseCase) Latest(ctx context.Context, userID types.UserID) (*model.HealthCheck, error) {
	latest, err := uc.repo.HealthCheck().Latest(ctx, userID)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get latest health check", goerr.V("user_id", userID))
	}
	return latest, nil
}

// History returns all results, newest first
func (uc *HealthCheckUseCase) History(ctx context.Context, userID types.UserID) ([]*model.HealthCheck, error) {
	checks, err := uc.repo.HealthCheck().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list health checks", goerr.V("user_id", userID))
	}
	return checks, nil
}
