package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type SubscriptionUseCase struct {
	repo interfaces.Repository
}

func NewSubscriptionUseCase(repo interfaces.Repository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

// Get returns the user's stored subscription; users without one are on the
// free plan.
func (uc *SubscriptionUseCase) Get(ctx context.Context, userID types.UserID) (*model.Subscription, error) {
	sub, err := uc.repo.Subscription().GetByUser(ctx, userID)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagNotFound) {
			free := model.FreeSubscription()
			free.UserID = userID
			return free, nil
		}
		return nil, goerr.Wrap(err, "failed to get subscription", goerr.V("user_id", userID))
	}
	return sub, nil
}

// Plans returns the static plan table
func (uc *SubscriptionUseCase) Plans() []model.Plan {
	return model.DefaultPlans()
}
