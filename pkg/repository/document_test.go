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

func runDocumentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put and Get round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		doc := model.NewDocument(userID, "privacy-policy.pdf", "application/pdf", 2048)
		gt.NoError(t, repo.Document().Put(ctx, doc)).Required()

		retrieved, err := repo.Document().Get(ctx, userID, doc.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(doc.ID)
		gt.Value(t, retrieved.UserID).Equal(userID)
		gt.Value(t, retrieved.Filename).Equal("privacy-policy.pdf")
		gt.Value(t, retrieved.FileType).Equal("application/pdf")
		gt.Value(t, retrieved.FileSize).Equal(int64(2048))
		gt.Value(t, retrieved.Status).Equal(types.AnalysisStatusPending)
		gt.Value(t, retrieved.Analysis).Nil()
		gt.Value(t, retrieved.AnalyzedAt).Nil()
	})

	t.Run("Put persists analysis result", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		doc := model.NewDocument(userID, "dpa.pdf", "application/pdf", 512)

		analyzedAt := time.Now().UTC()
		doc.Status = types.AnalysisStatusCompleted
		doc.AnalyzedAt = &analyzedAt
		doc.Analysis = &model.DocumentAnalysis{
			DocumentType:      "Data processing agreement",
			OverallAssessment: "Solid baseline with gaps around breach notification",
			GDPRCompliance: &model.FrameworkAssessment{
				Score:           72,
				Status:          types.ComplianceStatusPartial,
				Strengths:       []string{"Lawful basis documented"},
				Gaps:            []string{"No breach notification clause"},
				Recommendations: []string{"Add a 72 hour breach notification commitment"},
			},
			CyberEssentialsCompliance: &model.FrameworkAssessment{
				Score:  55,
				Status: types.ComplianceStatusPartial,
				Gaps:   []string{"Patching cadence unspecified"},
			},
			PriorityActions: []model.AnalysisAction{
				{
					Priority:  types.PriorityHigh,
					Action:    "Define breach notification procedure",
					Framework: types.FrameworkGDPR,
					Rationale: "Required by UK GDPR Article 33",
				},
			},
			RiskSummary: "Moderate exposure until notification gaps are closed",
		}

		gt.NoError(t, repo.Document().Put(ctx, doc)).Required()

		retrieved, err := repo.Document().Get(ctx, userID, doc.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.Status).Equal(types.AnalysisStatusCompleted)
		gt.Value(t, retrieved.Analysis).NotNil()
		gt.Value(t, retrieved.Analysis.DocumentType).Equal("Data processing agreement")
		gt.Value(t, retrieved.Analysis.GDPRCompliance.Score).Equal(72)
		gt.Value(t, retrieved.Analysis.GDPRCompliance.Status).Equal(types.ComplianceStatusPartial)
		gt.Value(t, retrieved.Analysis.CyberEssentialsCompliance.Score).Equal(55)
		gt.Array(t, retrieved.Analysis.PriorityActions).Length(1)
		gt.Value(t, retrieved.Analysis.PriorityActions[0].Framework).Equal(types.FrameworkGDPR)
		gt.Value(t, retrieved.AnalyzedAt).NotNil()
	})

	t.Run("Get scopes lookups to the owner", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		owner := types.NewUserID()
		doc := model.NewDocument(owner, "staff-handbook.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 4096)
		gt.NoError(t, repo.Document().Put(ctx, doc)).Required()

		other := types.NewUserID()
		_, err := repo.Document().Get(ctx, other, doc.ID)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("ListByUser returns documents newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		now := time.Now().UTC()

		first := model.NewDocument(userID, "first.txt", "text/plain", 10)
		first.CreatedAt = now.Add(-2 * time.Hour)
		second := model.NewDocument(userID, "second.txt", "text/plain", 20)
		second.CreatedAt = now.Add(-time.Hour)
		third := model.NewDocument(userID, "third.txt", "text/plain", 30)
		third.CreatedAt = now

		gt.NoError(t, repo.Document().Put(ctx, first)).Required()
		gt.NoError(t, repo.Document().Put(ctx, second)).Required()
		gt.NoError(t, repo.Document().Put(ctx, third)).Required()

		docs, err := repo.Document().ListByUser(ctx, userID)
		gt.NoError(t, err).Required()

		gt.Array(t, docs).Length(3)
		gt.Value(t, docs[0].Filename).Equal("third.txt")
		gt.Value(t, docs[1].Filename).Equal("second.txt")
		gt.Value(t, docs[2].Filename).Equal("first.txt")
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		userID := types.NewUserID()
		doc := model.NewDocument(userID, "obsolete.txt", "text/plain", 64)
		gt.NoError(t, repo.Document().Put(ctx, doc)).Required()

		gt.NoError(t, repo.Document().Delete(ctx, userID, doc.ID)).Required()

		_, err := repo.Document().Get(ctx, userID, doc.ID)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("Delete refuses another user's document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		owner := types.NewUserID()
		doc := model.NewDocument(owner, "keep.txt", "text/plain", 64)
		gt.NoError(t, repo.Document().Put(ctx, doc)).Required()

		err := repo.Document().Delete(ctx, types.NewUserID(), doc.ID)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()

		// Record must survive the failed delete
		kept, err := repo.Document().Get(ctx, owner, doc.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, kept.ID).Equal(doc.ID)
	})
}

func TestMemoryDocumentRepository(t *testing.T) {
	runDocumentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreDocumentRepository(t *testing.T) {
	runDocumentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return newFirestoreTestRepo(t)
	})
}
