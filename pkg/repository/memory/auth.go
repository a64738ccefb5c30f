package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type tokenStore struct {
	mu     sync.RWMutex
	tokens map[auth.TokenID]*auth.Token
}

func newTokenStore() *tokenStore {
	return &tokenStore{
		tokens: make(map[auth.TokenID]*auth.Token),
	}
}

func (x *Memory) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	x.tokens.mu.Lock()
	defer x.tokens.mu.Unlock()

	copied := *token
	x.tokens.tokens[token.ID] = &copied
	return nil
}

func (x *Memory) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	if err := tokenID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid token ID")
	}

	x.tokens.mu.RLock()
	defer x.tokens.mu.RUnlock()

	token, ok := x.tokens.tokens[tokenID]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "token not found", goerr.V("token_id", tokenID))
	}

	copied := *token
	return &copied, nil
}

func (x *Memory) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	if err := tokenID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token ID")
	}

	x.tokens.mu.Lock()
	defer x.tokens.mu.Unlock()

	if _, ok := x.tokens.tokens[tokenID]; !ok {
		return goerr.Wrap(ErrNotFound, "token not found", goerr.V("token_id", tokenID))
	}

	delete(x.tokens.tokens, tokenID)
	return nil
}

// DeleteUserTokens removes the user's tokens that expired before now and
// reports how many were removed. Live sessions of the user are kept.
func (x *Memory) DeleteUserTokens(ctx context.Context, userID types.UserID, now time.Time) (int, error) {
	if err := userID.Validate(); err != nil {
		return 0, goerr.Wrap(err, "invalid user ID")
	}

	x.tokens.mu.Lock()
	defer x.tokens.mu.Unlock()

	deleted := 0
	for id, token := range x.tokens.tokens {
		if token.Sub == userID && token.IsExpired(now) {
			delete(x.tokens.tokens, id)
			deleted++
		}
	}

	return deleted, nil
}

// DeleteExpiredTokens removes every token whose expiry is before now and
// reports how many were removed.
func (x *Memory) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	x.tokens.mu.Lock()
	defer x.tokens.mu.Unlock()

	deleted := 0
	for id, token := range x.tokens.tokens {
		if token.IsExpired(now) {
			delete(x.tokens.tokens, id)
			deleted++
		}
	}

	return deleted, nil
}
