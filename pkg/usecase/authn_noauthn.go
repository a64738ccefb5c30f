package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

// NoAuthnUseCase provides authentication as a fixed user (for development
// and testing). Requests are never rejected; the backing user record is
// created on first use so the rest of the API behaves normally.
type NoAuthnUseCase struct {
	repo  interfaces.Repository
	email string
	name  string
}

// NewNoAuthnUseCase creates a new NoAuthnUseCase instance with specified user info
func NewNoAuthnUseCase(repo interfaces.Repository, email, name string) *NoAuthnUseCase {
	return &NoAuthnUseCase{
		repo:  repo,
		email: email,
		name:  name,
	}
}

func (uc *NoAuthnUseCase) ensureUser(ctx context.Context) (*model.User, error) {
	user, err := uc.repo.User().GetByEmail(ctx, uc.email)
	switch {
	case err == nil:
		return user, nil

	case goerr.HasTag(err, types.ErrTagNotFound):
		user := model.NewUser(uc.email, uc.name, "")
		if err := uc.repo.User().Put(ctx, user); err != nil {
			return nil, goerr.Wrap(err, "failed to create no-auth user", goerr.V("email", uc.email))
		}
		return user, nil

	default:
		return nil, goerr.Wrap(err, "failed to look up no-auth user", goerr.V("email", uc.email))
	}
}

// Login ignores the session ID and returns a session for the fixed user
func (uc *NoAuthnUseCase) Login(ctx context.Context, sessionID string) (*model.User, *auth.Token, error) {
	user, err := uc.ensureUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	return user, auth.NewToken(user.ID, user.Email, user.Name), nil
}

// ValidateToken always returns a fresh token for the fixed user
func (uc *NoAuthnUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error) {
	user, err := uc.ensureUser(ctx)
	if err != nil {
		return nil, err
	}
	return auth.NewToken(user.ID, user.Email, user.Name), nil
}

// Logout does nothing in no-auth mode
func (uc *NoAuthnUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	return nil
}

// IsNoAuthn returns true for NoAuthnUseCase
func (uc *NoAuthnUseCase) IsNoAuthn() bool {
	return true
}
