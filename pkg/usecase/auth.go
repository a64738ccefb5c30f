package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/service/identity"
	"github.com/complypilot/complypilot/pkg/utils/async"
)

// AuthUseCaseInterface abstracts session authentication so the HTTP layer
// can run against either the identity-provider-backed implementation or the
// no-auth development mode.
type AuthUseCaseInterface interface {
	Login(ctx context.Context, sessionID string) (*model.User, *auth.Token, error)
	ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error)
	Logout(ctx context.Context, tokenID auth.TokenID) error
	IsNoAuthn() bool
}

type AuthUseCase struct {
	repo     interfaces.Repository
	identity identity.Service
	cache    *authCache
}

func NewAuthUseCase(repo interfaces.Repository, identitySvc identity.Service) *AuthUseCase {
	return &AuthUseCase{
		repo:     repo,
		identity: identitySvc,
		cache:    newAuthCache(),
	}
}

// IsNoAuthn returns false for regular AuthUseCase
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}

// Login exchanges an identity provider session for a local session token.
// The user record is created on first login and the identity fields are
// refreshed on every subsequent one.
func (uc *AuthUseCase) Login(ctx context.Context, sessionID string) (*model.User, *auth.Token, error) {
	profile, err := uc.identity.Exchange(ctx, sessionID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to exchange session with identity provider")
	}

	user, err := uc.upsertUser(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	token := auth.NewToken(user.ID, user.Email, user.Name)
	if err := uc.repo.PutToken(ctx, token); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to store session token", goerr.V("user_id", user.ID))
	}

	// Collect the user's expired sessions off the request path. Live
	// sessions on other devices stay valid.
	async.Dispatch(ctx, func(ctx context.Context) error {
		if _, err := uc.repo.DeleteUserTokens(ctx, user.ID, time.Now()); err != nil {
			return goerr.Wrap(err, "failed to purge expired session tokens", goerr.V("user_id", user.ID))
		}
		return nil
	})

	return user, token, nil
}

func (uc *AuthUseCase) upsertUser(ctx context.Context, profile *identity.Profile) (*model.User, error) {
	existing, err := uc.repo.User().GetByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		existing.Name = profile.Name
		existing.Picture = profile.Picture
		existing.UpdatedAt = time.Now().UTC()
		if err := uc.repo.User().Put(ctx, existing); err != nil {
			return nil, goerr.Wrap(err, "failed to update user", goerr.V("user_id", existing.ID))
		}
		return existing, nil

	case goerr.HasTag(err, types.ErrTagNotFound):
		user := model.NewUser(profile.Email, profile.Name, profile.Picture)
		if err := uc.repo.User().Put(ctx, user); err != nil {
			return nil, goerr.Wrap(err, "failed to create user", goerr.V("email", profile.Email))
		}
		return user, nil

	default:
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("email", profile.Email))
	}
}

// ValidateToken checks the presented credential pair against the session
// store, via a short-lived in-process cache.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error) {
	return uc.validateTokenWithCache(ctx, tokenID, tokenSecret)
}

// Logout deletes exactly the presented session. Other sessions of the same
// user are untouched.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	uc.cache.remove(tokenID)
	if err := uc.repo.DeleteToken(ctx, tokenID); err != nil {
		return goerr.Wrap(err, "failed to delete session token", goerr.V("token_id", tokenID))
	}
	return nil
}
