package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/repository/firestore"
	"github.com/complypilot/complypilot/pkg/repository/memory"
)

func newTestHealthCheck(userID types.UserID, score int, createdAt time.Time) *model.HealthCheck {
	return &model.HealthCheck{
		ID:     types.NewHealthCheckID(),
		UserID: userID,
		Responses: []model.Answer{
			{QuestionID: "gdpr_1", Answer: true},
			{QuestionID: "cyber_1", Answer: false, Notes: "no MFA rollout yet"},
		},
		ComplianceScore: score,
		CategoryScores: map[types.QuestionCategory]int{
			types.QuestionCategoryGDPR:            score,
			types.QuestionCategoryCyberEssentials: score,
		},
		RiskLevel: types.RiskLevelForScore(score),
		Gaps: []model.Gap{
			{
				QuestionID: "cyber_1",
				Category:   types.QuestionCategoryCyberEssentials,
				Question:   "Do you use multi-factor authentication?",
				Weight:     3,
				Priority:   types.PriorityHigh,
			},
		},
		TotalGaps: 1,
		CreatedAt: createdAt,
	}
}

func runHealthCheckRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put and Latest round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		check := newTestHealthCheck(userID, 67, time.Now().UTC())
		gt.NoError(t, repo.HealthCheck().Put(ctx, check)).Required()

		latest, err := repo.HealthCheck().Latest(ctx, userID)
		gt.NoError(t, err).Required()

		gt.Value(t, latest.ID).Equal(check.ID)
		gt.Value(t, latest.ComplianceScore).Equal(67)
		gt.Value(t, latest.RiskLevel).Equal(types.RiskLevelMedium)
		gt.Value(t, latest.TotalGaps).Equal(1)
		gt.Array(t, latest.Responses).Length(2)
		gt.Value(t, latest.Responses[1].Notes).Equal("no MFA rollout yet")
		gt.Value(t, latest.CategoryScores[types.QuestionCategoryGDPR]).Equal(67)
		gt.Array(t, latest.Gaps).Length(1)
		gt.Value(t, latest.Gaps[0].Priority).Equal(types.PriorityHigh)
	})

	t.Run("Latest returns newest submission", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		now := time.Now().UTC()

		older := newTestHealthCheck(userID, 40, now.Add(-time.Hour))
		newer := newTestHealthCheck(userID, 80, now)

		gt.NoError(t, repo.HealthCheck().Put(ctx, older)).Required()
		gt.NoError(t, repo.HealthCheck().Put(ctx, newer)).Required()

		latest, err := repo.HealthCheck().Latest(ctx, userID)
		gt.NoError(t, err).Required()
		gt.Value(t, latest.ID).Equal(newer.ID)
		gt.Value(t, latest.ComplianceScore).Equal(80)
	})

	t.Run("Latest returns error when user never submitted", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.HealthCheck().Latest(ctx, types.NewUserID())
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("ListByUser returns submissions newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		now := time.Now().UTC()

		first := newTestHealthCheck(userID, 30, now.Add(-2*time.Hour))
		second := newTestHealthCheck(userID, 50, now.Add(-time.Hour))
		third := newTestHealthCheck(userID, 70, now)

		gt.NoError(t, repo.HealthCheck().Put(ctx, first)).Required()
		gt.NoError(t, repo.HealthCheck().Put(ctx, second)).Required()
		gt.NoError(t, repo.HealthCheck().Put(ctx, third)).Required()

		// Another user's submission must not leak in
		other := newTestHealthCheck(types.NewUserID(), 90, now)
		gt.NoError(t, repo.HealthCheck().Put(ctx, other)).Required()

		checks, err := repo.HealthCheck().ListByUser(ctx, userID)
		gt.NoError(t, err).Required()

		gt.Array(t, checks).Length(3)
		gt.Value(t, checks[0].ID).Equal(third.ID)
		gt.Value(t, checks[1].ID).Equal(second.ID)
		gt.Value(t, checks[2].ID).Equal(first.ID)
	})

	t.Run("ListByUser returns empty slice for unknown user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		checks, err := repo.HealthCheck().ListByUser(ctx, types.NewUserID())
		gt.NoError(t, err).Required()
		gt.Array(t, checks).Length(0)
	})

	t.Run("Put rejects check without owner", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		check := newTestHealthCheck("", 50, time.Now().UTC())
		gt.Value(t, repo.HealthCheck().Put(ctx, check)).NotNil()
	})
}

func TestMemoryHealthCheckRepository(t *testing.T) {
	runHealthCheckRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreHealthCheckRepository(t *testing.T) {
	runHealthCheckRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return newFirestoreTestRepo(t)
	})
}
