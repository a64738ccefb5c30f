package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/repository/memory"
	"github.com/complypilot/complypilot/pkg/service/analysis"
	"github.com/complypilot/complypilot/pkg/service/storage"
	"github.com/complypilot/complypilot/pkg/usecase"
)

// stubAnalyzer records its input and returns a canned result or error
type stubAnalyzer struct {
	result *model.DocumentAnalysis
	err    error
	calls  int
	last   analysis.Input
}

func (s *stubAnalyzer) AnalyzeDocument(ctx context.Context, input analysis.Input) (*model.DocumentAnalysis, error) {
	s.calls++
	s.last = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func validAnalysis() *model.DocumentAnalysis {
	return &model.DocumentAnalysis{
		DocumentType:      "Privacy Policy",
		OverallAssessment: "Reasonable baseline with notable gaps",
		GDPRCompliance: &model.FrameworkAssessment{
			Score:  72,
			Status: types.ComplianceStatusPartial,
			Gaps:   []string{"No data retention schedule"},
		},
		CyberEssentialsCompliance: &model.FrameworkAssessment{
			Score:  55,
			Status: types.ComplianceStatusPartial,
		},
		PriorityActions: []model.AnalysisAction{
			{
				Priority:  types.PriorityHigh,
				Action:    "Define a data retention schedule",
				Framework: types.FrameworkGDPR,
				Rationale: "Article 5(1)(e) requires storage limitation",
			},
		},
		RiskSummary: "Moderate exposure until retention rules are defined",
	}
}

type documentFixture struct {
	uc       *usecase.DocumentUseCase
	repo     *memory.Memory
	blobs    *storage.Memory
	analyzer *stubAnalyzer
	userID   types.UserID
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	repo := memory.New()
	blobs := storage.NewMemory()
	analyzer := &stubAnalyzer{result: validAnalysis()}
	return &documentFixture{
		uc:       usecase.NewDocumentUseCase(repo, blobs, analyzer, 0),
		repo:     repo,
		blobs:    blobs,
		analyzer: analyzer,
		userID:   types.NewUserID(),
	}
}

func TestDocumentUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted file is stored with pending status", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "policy.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
		gt.NoError(t, err).Required()
		gt.Value(t, doc.Status).Equal(types.AnalysisStatusPending)
		gt.Value(t, doc.FileSize).Equal(int64(13))

		content, err := f.blobs.Get(ctx, doc.ID.String())
		gt.NoError(t, err).Required()
		gt.Value(t, string(content)).Equal("%PDF-1.4 fake")

		docs, err := f.uc.List(ctx, f.userID)
		gt.NoError(t, err).Required()
		gt.Array(t, docs).Length(1)
	})

	t.Run("unsupported file type is rejected before storing", func(t *testing.T) {
		f := newDocumentFixture(t)

		_, err := f.uc.Upload(ctx, f.userID, "photo.png", "image/png", []byte{0x89, 0x50})
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagValidation)).True()

		docs, err := f.uc.List(ctx, f.userID)
		gt.NoError(t, err).Required()
		gt.Array(t, docs).Length(0)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		f := newDocumentFixture(t)

		_, err := f.uc.Upload(ctx, f.userID, "empty.txt", "text/plain", nil)
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagValidation)).True()
	})

	t.Run("missing filename is rejected", func(t *testing.T) {
		f := newDocumentFixture(t)

		_, err := f.uc.Upload(ctx, f.userID, "", "text/plain", []byte("hello"))
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagValidation)).True()
	})
}

func TestDocumentAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("pending document is analyzed and completed", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "policy.txt", "text/plain", []byte("We keep data forever."))
		gt.NoError(t, err).Required()

		analyzed, err := f.uc.Analyze(ctx, f.userID, doc.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, analyzed.Status).Equal(types.AnalysisStatusCompleted)
		gt.Value(t, analyzed.Analysis).NotNil()
		gt.Value(t, analyzed.Analysis.DocumentType).Equal("Privacy Policy")
		gt.Value(t, analyzed.AnalyzedAt).NotNil()

		// The analyzer saw the stored bytes
		gt.Value(t, f.analyzer.last.Filename).Equal("policy.txt")
		gt.Value(t, string(f.analyzer.last.Content)).Equal("We keep data forever.")
	})

	t.Run("completed document is not re-analyzed", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "policy.txt", "text/plain", []byte("text"))
		gt.NoError(t, err).Required()
		_, err = f.uc.Analyze(ctx, f.userID, doc.ID)
		gt.NoError(t, err).Required()

		_, err = f.uc.Analyze(ctx, f.userID, doc.ID)
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagValidation)).True()
		gt.Value(t, f.analyzer.calls).Equal(1)
	})

	t.Run("delegate failure is recorded and retryable", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.analyzer.err = goerr.New("model unavailable", goerr.T(types.ErrTagUpstream))

		doc, err := f.uc.Upload(ctx, f.userID, "policy.txt", "text/plain", []byte("text"))
		gt.NoError(t, err).Required()

		_, err = f.uc.Analyze(ctx, f.userID, doc.ID)
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagUpstream)).True()

		stored, err := f.uc.Get(ctx, f.userID, doc.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal(types.AnalysisStatusFailed)
		gt.String(t, stored.Error).Contains("model unavailable")

		// An explicit retry succeeds once the provider recovers
		f.analyzer.err = nil
		analyzed, err := f.uc.Analyze(ctx, f.userID, doc.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, analyzed.Status).Equal(types.AnalysisStatusCompleted)
		gt.Value(t, analyzed.Error).Equal("")
	})

	t.Run("unknown document yields not found", func(t *testing.T) {
		f := newDocumentFixture(t)

		_, err := f.uc.Analyze(ctx, f.userID, types.NewDocumentID())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagNotFound)).True()
	})

	t.Run("another user's document is invisible", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "policy.txt", "text/plain", []byte("text"))
		gt.NoError(t, err).Required()

		_, err = f.uc.Analyze(ctx, types.NewUserID(), doc.ID)
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagNotFound)).True()
	})
}

func TestDocumentDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("record and content are both removed", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "old.pdf", "application/pdf", []byte("data"))
		gt.NoError(t, err).Required()

		gt.NoError(t, f.uc.Delete(ctx, f.userID, doc.ID)).Required()

		_, err = f.uc.Get(ctx, f.userID, doc.ID)
		gt.Error(t, err)
		_, err = f.blobs.Get(ctx, doc.ID.String())
		gt.Error(t, err)
	})

	t.Run("unknown document yields not found", func(t *testing.T) {
		f := newDocumentFixture(t)

		err := f.uc.Delete(ctx, f.userID, types.NewDocumentID())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagNotFound)).True()
	})

	t.Run("other users cannot delete the document", func(t *testing.T) {
		f := newDocumentFixture(t)

		doc, err := f.uc.Upload(ctx, f.userID, "keep.pdf", "application/pdf", []byte("data"))
		gt.NoError(t, err).Required()

		err = f.uc.Delete(ctx, types.NewUserID(), doc.ID)
		gt.Error(t, err)

		// Still there for the owner
		_, err = f.uc.Get(ctx, f.userID, doc.ID)
		gt.NoError(t, err)
	})
}
