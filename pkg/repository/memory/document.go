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

type documentRepository struct {
	mu        sync.RWMutex
	documents map[types.UserID]map[types.DocumentID]*model.Document
}

var _ interfaces.DocumentRepository = &documentRepository{}

func newDocumentRepository() *documentRepository {
	return &documentRepository{
		documents: make(map[types.UserID]map[types.DocumentID]*model.Document),
	}
}

func copyDocument(doc *model.Document) *model.Document {
	copied := *doc

	if doc.Analysis != nil {
		analysis := *doc.Analysis
		if doc.Analysis.GDPRCompliance != nil {
			gdpr := *doc.Analysis.GDPRCompliance
			analysis.GDPRCompliance = &gdpr
		}
		if doc.Analysis.CyberEssentialsCompliance != nil {
			ce := *doc.Analysis.CyberEssentialsCompliance
			analysis.CyberEssentialsCompliance = &ce
		}
		if doc.Analysis.PriorityActions != nil {
			analysis.PriorityActions = make([]model.AnalysisAction, len(doc.Analysis.PriorityActions))
			copy(analysis.PriorityActions, doc.Analysis.PriorityActions)
		}
		copied.Analysis = &analysis
	}
	if doc.AnalyzedAt != nil {
		at := *doc.AnalyzedAt
		copied.AnalyzedAt = &at
	}

	return &copied
}

func (r *documentRepository) Put(ctx context.Context, doc *model.Document) error {
	if err := doc.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid document ID")
	}
	if err := doc.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "document has no owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[doc.UserID]; !exists {
		r.documents[doc.UserID] = make(map[types.DocumentID]*model.Document)
	}

	r.documents[doc.UserID][doc.ID] = copyDocument(doc)
	return nil
}

func (r *documentRepository) Get(ctx context.Context, userID types.UserID, id types.DocumentID) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket, exists := r.documents[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
	}

	doc, exists := bucket[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
	}

	return copyDocument(doc), nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket, exists := r.documents[userID]
	if !exists {
		return []*model.Document{}, nil
	}

	result := make([]*model.Document, 0, len(bucket))
	for _, doc := range bucket {
		result = append(result, copyDocument(doc))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *documentRepository) Delete(ctx context.Context, userID types.UserID, id types.DocumentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, exists := r.documents[userID]
	if !exists {
		return goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
	}

	if _, exists := bucket[id]; !exists {
		return goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
	}

	delete(bucket, id)
	return nil
}
