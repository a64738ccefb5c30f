package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/service/analysis"
	"github.com/complypilot/complypilot/pkg/service/storage"
	"github.com/complypilot/complypilot/pkg/utils/errutil"
)

const defaultAnalysisTimeout = 2 * time.Minute

// allowedFileTypes is the upload MIME allow-list: PDF, plain text and the
// two Word formats.
var allowedFileTypes = map[string]struct{}{
	"application/pdf":    {},
	"text/plain":         {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type DocumentUseCase struct {
	repo            interfaces.Repository
	blobStore       storage.Service
	analyzer        analysis.Service
	analysisTimeout time.Duration
}

func NewDocumentUseCase(repo interfaces.Repository, blobStore storage.Service, analyzer analysis.Service, analysisTimeout time.Duration) *DocumentUseCase {
	if analysisTimeout <= 0 {
		analysisTimeout = defaultAnalysisTimeout
	}
	return &DocumentUseCase{
		repo:            repo,
		blobStore:       blobStore,
		analyzer:        analyzer,
		analysisTimeout: analysisTimeout,
	}
}

// Upload stores the document bytes in the blob store and records the
// metadata with analysis status pending. Nothing is persisted when the file
// type is not allowed.
func (uc *DocumentUseCase) Upload(ctx context.Context, userID types.UserID, filename, fileType string, content []byte) (*model.Document, error) {
	if filename == "" {
		return nil, goerr.New("filename is required", goerr.T(types.ErrTagValidation))
	}
	if _, ok := allowedFileTypes[fileType]; !ok {
		return nil, goerr.New("unsupported file type",
			goerr.T(types.ErrTagValidation),
			goerr.V("file_type", fileType),
			goerr.V("filename", filename))
	}
	if len(content) == 0 {
		return nil, goerr.New("uploaded file is empty", goerr.T(types.ErrTagValidation), goerr.V("filename", filename))
	}

	doc := model.NewDocument(userID, filename, fileType, int64(len(content)))

	if err := uc.blobStore.Put(ctx, doc.ID.String(), content, fileType); err != nil {
		return nil, goerr.Wrap(err, "failed to store document content", goerr.V("document_id", doc.ID))
	}
	if err := uc.repo.Document().Put(ctx, doc); err != nil {
		// Don't leave an orphaned blob behind
		if delErr := uc.blobStore.Delete(ctx, doc.ID.String()); delErr != nil {
			_ = errutil.Handle(ctx, delErr, "failed to clean up blob after metadata failure")
		}
		return nil, goerr.Wrap(err, "failed to store document record", goerr.V("document_id", doc.ID))
	}

	return doc, nil
}

// List returns the user's documents, newest first, metadata only
func (uc *DocumentUseCase) List(ctx context.Context, userID types.UserID) ([]*model.Document, error) {
	docs, err := uc.repo.Document().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents", goerr.V("user_id", userID))
	}
	return docs, nil
}

// Get returns one document owned by the user
func (uc *DocumentUseCase) Get(ctx context.Context, userID types.UserID, id types.DocumentID) (*model.Document, error) {
	doc, err := uc.repo.Document().Get(ctx, userID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("document_id", id))
	}
	return doc, nil
}

// Delete removes the document record and its stored content
func (uc *DocumentUseCase) Delete(ctx context.Context, userID types.UserID, id types.DocumentID) error {
	if err := uc.repo.Document().Delete(ctx, userID, id); err != nil {
		return goerr.Wrap(err, "failed to delete document record", goerr.V("document_id", id))
	}

	if err := uc.blobStore.Delete(ctx, id.String()); err != nil && !goerr.HasTag(err, types.ErrTagNotFound) {
		_ = errutil.Handle(ctx, err, "failed to delete document content")
	}

	return nil
}

// Analyze runs the LLM compliance analysis over a pending or previously
// failed document. Completed documents are immutable; re-running them is
// rejected. The delegate call is bounded by the configured timeout, and a
// failure is recorded on the document so the user can retry explicitly.
func (uc *DocumentUseCase) Analyze(ctx context.Context, userID types.UserID, id types.DocumentID) (*model.Document, error) {
	doc, err := uc.repo.Document().Get(ctx, userID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("document_id", id))
	}

	if doc.Status == types.AnalysisStatusCompleted {
		return nil, goerr.New("document is already analyzed",
			goerr.T(types.ErrTagValidation),
			goerr.V("document_id", id))
	}

	if uc.analyzer == nil {
		return nil, goerr.New("document analysis is not configured",
			goerr.T(types.ErrTagUpstream),
			goerr.V("document_id", id))
	}

	content, err := uc.blobStore.Get(ctx, doc.ID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load document content", goerr.V("document_id", id))
	}

	analysisCtx, cancel := context.WithTimeout(ctx, uc.analysisTimeout)
	defer cancel()

	result, err := uc.analyzer.AnalyzeDocument(analysisCtx, analysis.Input{
		Filename: doc.Filename,
		MIMEType: doc.FileType,
		Content:  content,
	})
	if err != nil {
		doc.Status = types.AnalysisStatusFailed
		doc.Error = err.Error()
		// Persist with the parent context; analysisCtx may already be done
		if putErr := uc.repo.Document().Put(ctx, doc); putErr != nil {
			_ = errutil.Handle(ctx, putErr, "failed to record analysis failure")
		}
		return nil, goerr.Wrap(err, "document analysis failed", goerr.V("document_id", id))
	}

	now := time.Now().UTC()
	doc.Status = types.AnalysisStatusCompleted
	doc.Analysis = result
	doc.Error = ""
	doc.AnalyzedAt = &now
	if err := uc.repo.Document().Put(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to store analysis result", goerr.V("document_id", id))
	}

	return doc, nil
}
