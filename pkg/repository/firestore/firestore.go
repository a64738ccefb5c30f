// Package firestore provides the Google Cloud Firestore implementation of
// the Repository interface. Each record type has its own collection; doc
// structs keep the Firestore schema independent of the domain model.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
)

type Firestore struct {
	client        *firestore.Client
	users         *userRepository
	healthChecks  *healthCheckRepository
	documents     *documentRepository
	riskRegisters *riskRegisterRepository
	subscriptions *subscriptionRepository
	tokenPrefix   string
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prepends a prefix to every collection name. Used by
// integration tests to isolate their data in a shared database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.users.collectionPrefix = prefix
		f.healthChecks.collectionPrefix = prefix
		f.documents.collectionPrefix = prefix
		f.riskRegisters.collectionPrefix = prefix
		f.subscriptions.collectionPrefix = prefix
		f.tokenPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:        client,
		users:         newUserRepository(client),
		healthChecks:  newHealthCheckRepository(client),
		documents:     newDocumentRepository(client),
		riskRegisters: newRiskRegisterRepository(client),
		subscriptions: newSubscriptionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.users
}

func (f *Firestore) HealthCheck() interfaces.HealthCheckRepository {
	return f.healthChecks
}

func (f *Firestore) Document() interfaces.DocumentRepository {
	return f.documents
}

func (f *Firestore) RiskRegister() interfaces.RiskRegisterRepository {
	return f.riskRegisters
}

func (f *Firestore) Subscription() interfaces.SubscriptionRepository {
	return f.subscriptions
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
