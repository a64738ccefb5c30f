package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewToken(t *testing.T) {
	token := auth.NewToken(types.UserID("user_abc123def456"), "owner@example.co.uk", "Test Owner")

	gt.NoError(t, token.Validate())
	gt.V(t, token.Sub).Equal(types.UserID("user_abc123def456"))
	gt.V(t, token.Email).Equal("owner@example.co.uk")

	gt.B(t, token.IsExpired(time.Now())).False()
	gt.B(t, token.IsExpired(time.Now().Add(8*24*time.Hour))).True()

	// Seven day lifetime
	lifetime := token.ExpiresAt.Sub(token.CreatedAt)
	gt.V(t, lifetime).Equal(7 * 24 * time.Hour)
}

func TestNewTokenSecret_Unique(t *testing.T) {
	seen := make(map[auth.TokenSecret]bool)
	for i := 0; i < 100; i++ {
		secret := auth.NewTokenSecret()
		gt.V(t, len(secret)).Equal(64)
		gt.B(t, seen[secret]).False()
		seen[secret] = true
	}
}

func TestTokenContext(t *testing.T) {
	token := auth.NewToken(types.NewUserID(), "ctx@example.com", "Ctx")

	ctx := auth.ContextWithToken(context.Background(), token)
	got, ok := auth.TokenFromContext(ctx)
	gt.B(t, ok).True()
	gt.V(t, got.ID).Equal(token.ID)

	_, ok = auth.TokenFromContext(context.Background())
	gt.B(t, ok).False()
}

func TestToken_Validate(t *testing.T) {
	token := auth.NewToken(types.NewUserID(), "v@example.com", "V")
	gt.NoError(t, token.Validate())

	broken := *token
	broken.Secret = ""
	gt.Error(t, broken.Validate())

	broken = *token
	broken.Sub = ""
	gt.Error(t, broken.Validate())
}
