package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const healthChecksCollection = "health_checks"

type healthCheckRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.HealthCheckRepository = &healthCheckRepository{}

func newHealthCheckRepository(client *firestore.Client) *healthCheckRepository {
	return &healthCheckRepository{
		client: client,
	}
}

// healthCheckDoc is the Firestore persistence model. Category scores are
// stored under plain string keys; Firestore rejects typed map keys.
type healthCheckDoc struct {
	ID              string         `firestore:"id"`
	UserID          string         `firestore:"user_id"`
	Responses       []answerDoc    `firestore:"responses"`
	ComplianceScore int            `firestore:"compliance_score"`
	CategoryScores  map[string]int `firestore:"category_scores"`
	RiskLevel       string         `firestore:"risk_level"`
	Gaps            []gapDoc       `firestore:"gaps"`
	TotalGaps       int            `firestore:"total_gaps"`
	CreatedAt       time.Time      `firestore:"created_at"`
}

type answerDoc struct {
	QuestionID string `firestore:"question_id"`
	Answer     bool   `firestore:"answer"`
	Notes      string `firestore:"notes"`
}

type gapDoc struct {
	QuestionID  string `firestore:"question_id"`
	Category    string `firestore:"category"`
	Subcategory string `firestore:"subcategory"`
	Question    string `firestore:"question"`
	Guidance    string `firestore:"guidance"`
	Weight      int    `firestore:"weight"`
	Priority    string `firestore:"priority"`
}

func (r *healthCheckRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + healthChecksCollection)
	}
	return r.client.Collection(healthChecksCollection)
}

func (r *healthCheckRepository) toDoc(hc *model.HealthCheck) *healthCheckDoc {
	doc := &healthCheckDoc{
		ID:              string(hc.ID),
		UserID:          string(hc.UserID),
		ComplianceScore: hc.ComplianceScore,
		RiskLevel:       string(hc.RiskLevel),
		TotalGaps:       hc.TotalGaps,
		CreatedAt:       hc.CreatedAt,
	}

	doc.Responses = make([]answerDoc, 0, len(hc.Responses))
	for _, a := range hc.Responses {
		doc.Responses = append(doc.Responses, answerDoc{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
			Notes:      a.Notes,
		})
	}

	doc.CategoryScores = make(map[string]int, len(hc.CategoryScores))
	for cat, score := range hc.CategoryScores {
		doc.CategoryScores[string(cat)] = score
	}

	doc.Gaps = make([]gapDoc, 0, len(hc.Gaps))
	for _, g := range hc.Gaps {
		doc.Gaps = append(doc.Gaps, gapDoc{
			QuestionID:  g.QuestionID,
			Category:    string(g.Category),
			Subcategory: g.Subcategory,
			Question:    g.Question,
			Guidance:    g.Guidance,
			Weight:      g.Weight,
			Priority:    string(g.Priority),
		})
	}

	return doc
}

func (r *healthCheckRepository) fromDoc(doc *healthCheckDoc) *model.HealthCheck {
	hc := &model.HealthCheck{
		ID:              types.HealthCheckID(doc.ID),
		UserID:          types.UserID(doc.UserID),
		ComplianceScore: doc.ComplianceScore,
		RiskLevel:       types.RiskLevel(doc.RiskLevel),
		TotalGaps:       doc.TotalGaps,
		CreatedAt:       doc.CreatedAt,
	}

	hc.Responses = make([]model.Answer, 0, len(doc.Responses))
	for _, a := range doc.Responses {
		hc.Responses = append(hc.Responses, model.Answer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
			Notes:      a.Notes,
		})
	}

	hc.CategoryScores = make(map[types.QuestionCategory]int, len(doc.CategoryScores))
	for cat, score := range doc.CategoryScores {
		hc.CategoryScores[types.QuestionCategory(cat)] = score
	}

	hc.Gaps = make([]model.Gap, 0, len(doc.Gaps))
	for _, g := range doc.Gaps {
		hc.Gaps = append(hc.Gaps, model.Gap{
			QuestionID:  g.QuestionID,
			Category:    types.QuestionCategory(g.Category),
			Subcategory: g.Subcategory,
			Question:    g.Question,
			Guidance:    g.Guidance,
			Weight:      g.Weight,
			Priority:    types.Priority(g.Priority),
		})
	}

	return hc
}

func (r *healthCheckRepository) Put(ctx context.Context, check *model.HealthCheck) error {
	if err := check.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid health check ID")
	}
	if err := check.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "health check has no owner")
	}

	docRef := r.collection().Doc(string(check.ID))
	if _, err := docRef.Set(ctx, r.toDoc(check)); err != nil {
		return goerr.Wrap(err, "failed to put health check", goerr.V("id", check.ID))
	}

	return nil
}

func (r *healthCheckRepository) Latest(ctx context.Context, userID types.UserID) (*model.HealthCheck, error) {
	iter := r.collection().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "no health check submissions", goerr.V("user_id", userID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query latest health check", goerr.V("user_id", userID))
	}

	var d healthCheckDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal health check", goerr.V("user_id", userID))
	}

	return r.fromDoc(&d), nil
}

func (r *healthCheckRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.HealthCheck, error) {
	iter := r.collection().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	checks := make([]*model.HealthCheck, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate health checks", goerr.V("user_id", userID))
		}

		var d healthCheckDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal health check", goerr.V("docID", doc.Ref.ID))
		}

		checks = append(checks, r.fromDoc(&d))
	}

	return checks, nil
}
