package interfaces

import (
	"context"
	"time"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	HealthCheck() HealthCheckRepository
	Document() DocumentRepository
	RiskRegister() RiskRegisterRepository
	Subscription() SubscriptionRepository

	// Auth methods
	PutToken(ctx context.Context, token *auth.Token) error
	GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error)
	DeleteToken(ctx context.Context, tokenID auth.TokenID) error
	// DeleteUserTokens removes the user's tokens that expired before now and
	// returns how many were removed. Live sessions are never touched.
	DeleteUserTokens(ctx context.Context, userID types.UserID, now time.Time) (int, error)
	// DeleteExpiredTokens removes every token whose expiry is before now and
	// returns how many were removed.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)

	Close() error
}

// UserRepository manages user accounts
type UserRepository interface {
	Put(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id types.UserID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// HealthCheckRepository manages scored questionnaire submissions. Records
// are append-only; there is no update or delete.
type HealthCheckRepository interface {
	Put(ctx context.Context, check *model.HealthCheck) error
	// Latest returns the most recent submission of the user, or ErrNotFound
	// when the user has never submitted.
	Latest(ctx context.Context, userID types.UserID) (*model.HealthCheck, error)
	// ListByUser returns submissions ordered most recent first.
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.HealthCheck, error)
}

// DocumentRepository manages uploaded document records. Lookups are scoped
// by owner so one user can never address another user's documents.
type DocumentRepository interface {
	Put(ctx context.Context, doc *model.Document) error
	Get(ctx context.Context, userID types.UserID, id types.DocumentID) (*model.Document, error)
	// ListByUser returns documents ordered most recent first.
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.Document, error)
	Delete(ctx context.Context, userID types.UserID, id types.DocumentID) error
}

// RiskRegisterRepository manages the single active register per user.
// Put replaces the stored register wholesale.
type RiskRegisterRepository interface {
	Put(ctx context.Context, register *model.RiskRegister) error
	GetByUser(ctx context.Context, userID types.UserID) (*model.RiskRegister, error)
}

// SubscriptionRepository manages stored subscription records
type SubscriptionRepository interface {
	Put(ctx context.Context, sub *model.Subscription) error
	GetByUser(ctx context.Context, userID types.UserID) (*model.Subscription, error)
}
