package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const subscriptionsCollection = "subscriptions"

type subscriptionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.SubscriptionRepository = &subscriptionRepository{}

func newSubscriptionRepository(client *firestore.Client) *subscriptionRepository {
	return &subscriptionRepository{
		client: client,
	}
}

// subscriptionDoc is the Firestore persistence model
type subscriptionDoc struct {
	UserID   string          `firestore:"user_id"`
	PlanType string          `firestore:"plan_type"`
	Status   string          `firestore:"status"`
	Features planFeaturesDoc `firestore:"features"`
}

type planFeaturesDoc struct {
	HealthChecksPerMonth     int  `firestore:"health_checks_per_month"`
	DocumentAnalysesPerMonth int  `firestore:"document_analyses_per_month"`
	RiskRegister             bool `firestore:"risk_register"`
	PrioritySupport          bool `firestore:"priority_support"`
	ExportReports            bool `firestore:"export_reports"`
	DedicatedSupport         bool `firestore:"dedicated_support"`
	CustomIntegrations       bool `firestore:"custom_integrations"`
}

func (r *subscriptionRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + subscriptionsCollection)
	}
	return r.client.Collection(subscriptionsCollection)
}

func (r *subscriptionRepository) toDoc(sub *model.Subscription) *subscriptionDoc {
	return &subscriptionDoc{
		UserID:   string(sub.UserID),
		PlanType: string(sub.PlanType),
		Status:   sub.Status,
		Features: planFeaturesDoc{
			HealthChecksPerMonth:     sub.Features.HealthChecksPerMonth,
			DocumentAnalysesPerMonth: sub.Features.DocumentAnalysesPerMonth,
			RiskRegister:             sub.Features.RiskRegister,
			PrioritySupport:          sub.Features.PrioritySupport,
			ExportReports:            sub.Features.ExportReports,
			DedicatedSupport:         sub.Features.DedicatedSupport,
			CustomIntegrations:       sub.Features.CustomIntegrations,
		},
	}
}

func (r *subscriptionRepository) fromDoc(d *subscriptionDoc) *model.Subscription {
	return &model.Subscription{
		UserID:   types.UserID(d.UserID),
		PlanType: types.PlanType(d.PlanType),
		Status:   d.Status,
		Features: model.PlanFeatures{
			HealthChecksPerMonth:     d.Features.HealthChecksPerMonth,
			DocumentAnalysesPerMonth: d.Features.DocumentAnalysesPerMonth,
			RiskRegister:             d.Features.RiskRegister,
			PrioritySupport:          d.Features.PrioritySupport,
			ExportReports:            d.Features.ExportReports,
			DedicatedSupport:         d.Features.DedicatedSupport,
			CustomIntegrations:       d.Features.CustomIntegrations,
		},
	}
}

func (r *subscriptionRepository) Put(ctx context.Context, sub *model.Subscription) error {
	if err := sub.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "subscription has no owner")
	}
	if !sub.PlanType.IsValid() {
		return goerr.New("invalid plan type", goerr.T(types.ErrTagValidation), goerr.V("plan_type", sub.PlanType))
	}

	docRef := r.collection().Doc(string(sub.UserID))
	if _, err := docRef.Set(ctx, r.toDoc(sub)); err != nil {
		return goerr.Wrap(err, "failed to put subscription", goerr.V("user_id", sub.UserID))
	}

	return nil
}

func (r *subscriptionRepository) GetByUser(ctx context.Context, userID types.UserID) (*model.Subscription, error) {
	doc, err := r.collection().Doc(string(userID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "subscription not found", goerr.V("user_id", userID))
		}
		return nil, goerr.Wrap(err, "failed to get subscription", goerr.V("user_id", userID))
	}

	var d subscriptionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal subscription", goerr.V("user_id", userID))
	}

	return r.fromDoc(&d), nil
}
