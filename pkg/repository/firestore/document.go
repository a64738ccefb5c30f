package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const documentsCollection = "documents"

type documentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.DocumentRepository = &documentRepository{}

func newDocumentRepository(client *firestore.Client) *documentRepository {
	return &documentRepository{
		client: client,
	}
}

// documentDoc is the Firestore persistence model
type documentDoc struct {
	ID         string       `firestore:"id"`
	UserID     string       `firestore:"user_id"`
	Filename   string       `firestore:"filename"`
	FileType   string       `firestore:"file_type"`
	FileSize   int64        `firestore:"file_size"`
	Status     string       `firestore:"status"`
	Analysis   *analysisDoc `firestore:"analysis,omitempty"`
	Error      string       `firestore:"error"`
	CreatedAt  time.Time    `firestore:"created_at"`
	AnalyzedAt *time.Time   `firestore:"analyzed_at,omitempty"`
}

type analysisDoc struct {
	DocumentType              string              `firestore:"document_type"`
	OverallAssessment         string              `firestore:"overall_assessment"`
	GDPRCompliance            *frameworkDoc       `firestore:"gdpr_compliance,omitempty"`
	CyberEssentialsCompliance *frameworkDoc       `firestore:"cyber_essentials_compliance,omitempty"`
	PriorityActions           []analysisActionDoc `firestore:"priority_actions"`
	RiskSummary               string              `firestore:"risk_summary"`
}

type frameworkDoc struct {
	Score           int      `firestore:"score"`
	Status          string   `firestore:"status"`
	Strengths       []string `firestore:"strengths"`
	Gaps            []string `firestore:"gaps"`
	Recommendations []string `firestore:"recommendations"`
}

type analysisActionDoc struct {
	Priority  string `firestore:"priority"`
	Action    string `firestore:"action"`
	Framework string `firestore:"framework"`
	Rationale string `firestore:"rationale"`
}

func (r *documentRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + documentsCollection)
	}
	return r.client.Collection(documentsCollection)
}

func toFrameworkDoc(fa *model.FrameworkAssessment) *frameworkDoc {
	if fa == nil {
		return nil
	}
	return &frameworkDoc{
		Score:           fa.Score,
		Status:          string(fa.Status),
		Strengths:       fa.Strengths,
		Gaps:            fa.Gaps,
		Recommendations: fa.Recommendations,
	}
}

func fromFrameworkDoc(d *frameworkDoc) *model.FrameworkAssessment {
	if d == nil {
		return nil
	}
	return &model.FrameworkAssessment{
		Score:           d.Score,
		Status:          types.ComplianceStatus(d.Status),
		Strengths:       d.Strengths,
		Gaps:            d.Gaps,
		Recommendations: d.Recommendations,
	}
}

func toAnalysisDoc(a *model.DocumentAnalysis) *analysisDoc {
	if a == nil {
		return nil
	}

	doc := &analysisDoc{
		DocumentType:              a.DocumentType,
		OverallAssessment:         a.OverallAssessment,
		GDPRCompliance:            toFrameworkDoc(a.GDPRCompliance),
		CyberEssentialsCompliance: toFrameworkDoc(a.CyberEssentialsCompliance),
		RiskSummary:               a.RiskSummary,
	}

	doc.PriorityActions = make([]analysisActionDoc, 0, len(a.PriorityActions))
	for _, action := range a.PriorityActions {
		doc.PriorityActions = append(doc.PriorityActions, analysisActionDoc{
			Priority:  string(action.Priority),
			Action:    action.Action,
			Framework: string(action.Framework),
			Rationale: action.Rationale,
		})
	}

	return doc
}

func fromAnalysisDoc(d *analysisDoc) *model.DocumentAnalysis {
	if d == nil {
		return nil
	}

	a := &model.DocumentAnalysis{
		DocumentType:              d.DocumentType,
		OverallAssessment:         d.OverallAssessment,
		GDPRCompliance:            fromFrameworkDoc(d.GDPRCompliance),
		CyberEssentialsCompliance: fromFrameworkDoc(d.CyberEssentialsCompliance),
		RiskSummary:               d.RiskSummary,
	}

	a.PriorityActions = make([]model.AnalysisAction, 0, len(d.PriorityActions))
	for _, action := range d.PriorityActions {
		a.PriorityActions = append(a.PriorityActions, model.AnalysisAction{
			Priority:  types.Priority(action.Priority),
			Action:    action.Action,
			Framework: types.Framework(action.Framework),
			Rationale: action.Rationale,
		})
	}

	return a
}

func (r *documentRepository) toDoc(doc *model.Document) *documentDoc {
	return &documentDoc{
		ID:         string(doc.ID),
		UserID:     string(doc.UserID),
		Filename:   doc.Filename,
		FileType:   doc.FileType,
		FileSize:   doc.FileSize,
		Status:     string(doc.Status),
		Analysis:   toAnalysisDoc(doc.Analysis),
		Error:      doc.Error,
		CreatedAt:  doc.CreatedAt,
		AnalyzedAt: doc.AnalyzedAt,
	}
}

func (r *documentRepository) fromDoc(d *documentDoc) *model.Document {
	return &model.Document{
		ID:         types.DocumentID(d.ID),
		UserID:     types.UserID(d.UserID),
		Filename:   d.Filename,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		Status:     types.AnalysisStatus(d.Status),
		Analysis:   fromAnalysisDoc(d.Analysis),
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
		AnalyzedAt: d.AnalyzedAt,
	}
}

func (r *documentRepository) Put(ctx context.Context, doc *model.Document) error {
	if err := doc.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid document ID")
	}
	if err := doc.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "document has no owner")
	}

	docRef := r.collection().Doc(string(doc.ID))
	if _, err := docRef.Set(ctx, r.toDoc(doc)); err != nil {
		return goerr.Wrap(err, "failed to put document", goerr.V("document_id", doc.ID))
	}

	return nil
}

// Get returns the document only when it belongs to userID. Another user's
// document is reported as not found, never as forbidden, so document IDs
// cannot be probed across accounts.
func (r *documentRepository) Get(ctx context.Context, userID types.UserID, id types.DocumentID) (*model.Document, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("document_id", id))
	}

	var d documentDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal document", goerr.V("document_id", id))
	}

	if d.UserID != string(userID) {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("document_id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Document, error) {
	iter := r.collection().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	documents := make([]*model.Document, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("user_id", userID))
		}

		var d documentDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal document", goerr.V("docID", doc.Ref.ID))
		}

		documents = append(documents, r.fromDoc(&d))
	}

	return documents, nil
}

func (r *documentRepository) Delete(ctx context.Context, userID types.UserID, id types.DocumentID) error {
	// Ownership check rides on Get.
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}

	if _, err := r.collection().Doc(string(id)).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete document", goerr.V("document_id", id))
	}

	return nil
}
