package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type healthCheckRepository struct {
	mu     sync.RWMutex
	checks map[types.UserID][]*model.HealthCheck
}

var _ interfaces.HealthCheckRepository = &healthCheckRepository{}

func newHealthCheckRepository() *healthCheckRepository {
	return &healthCheckRepository{
		checks: make(map[types.UserID][]*model.HealthCheck),
	}
}

func copyHealthCheck(hc *model.HealthCheck) *model.HealthCheck {
	copied := *hc

	if hc.Responses != nil {
		copied.Responses = make([]model.Answer, len(hc.Responses))
		copy(copied.Responses, hc.Responses)
	}
	if hc.CategoryScores != nil {
		copied.CategoryScores = make(map[types.QuestionCategory]int, len(hc.CategoryScores))
		for k, v := range hc.CategoryScores {
			copied.CategoryScores[k] = v
		}
	}
	if hc.Gaps != nil {
		copied.Gaps = make([]model.Gap, len(hc.Gaps))
		copy(copied.Gaps, hc.Gaps)
	}

	return &copied
}

func (r *healthCheckRepository) Put(ctx context.Context, check *model.HealthCheck) error {
	if err := check.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid health check ID")
	}
	if err := check.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "health check has no owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks[check.UserID] = append(r.checks[check.UserID], copyHealthCheck(check))
	return nil
}

func (r *healthCheckRepository) Latest(ctx context.Context, userID types.UserID) (*model.HealthCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checks, exists := r.checks[userID]
	if !exists || len(checks) == 0 {
		return nil, goerr.Wrap(ErrNotFound, "no health check submissions", goerr.V("user_id", userID))
	}

	latest := checks[0]
	for _, hc := range checks[1:] {
		if hc.CreatedAt.After(latest.CreatedAt) {
			latest = hc
		}
	}

	return copyHealthCheck(latest), nil
}

func (r *healthCheckRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.HealthCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checks, exists := r.checks[userID]
	if !exists {
		return []*model.HealthCheck{}, nil
	}

	result := make([]*model.HealthCheck, 0, len(checks))
	for _, hc := range checks {
		result = append(result, copyHealthCheck(hc))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
