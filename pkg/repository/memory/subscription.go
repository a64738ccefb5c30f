package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type subscriptionRepository struct {
	mu            sync.RWMutex
	subscriptions map[types.UserID]*model.Subscription
}

var _ interfaces.SubscriptionRepository = &subscriptionRepository{}

func newSubscriptionRepository() *subscriptionRepository {
	return &subscriptionRepository{
		subscriptions: make(map[types.UserID]*model.Subscription),
	}
}

func copySubscription(sub *model.Subscription) *model.Subscription {
	copied := *sub
	return &copied
}

func (r *subscriptionRepository) Put(ctx context.Context, sub *model.Subscription) error {
	if err := sub.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "subscription has no owner")
	}
	if !sub.PlanType.IsValid() {
		return goerr.New("invalid plan type", goerr.T(types.ErrTagValidation), goerr.V("plan_type", sub.PlanType))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscriptions[sub.UserID] = copySubscription(sub)
	return nil
}

func (r *subscriptionRepository) GetByUser(ctx context.Context, userID types.UserID) (*model.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, exists := r.subscriptions[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "subscription not found", goerr.V("user_id", userID))
	}

	return copySubscription(sub), nil
}
