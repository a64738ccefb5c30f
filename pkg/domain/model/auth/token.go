package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// TokenID is the public half of a session credential. It is safe to log.
type TokenID string

// NewTokenID generates a new token ID
func NewTokenID() TokenID {
	return TokenID(uuid.NewString())
}

// String returns the string representation
func (x TokenID) String() string {
	return string(x)
}

// Validate checks if the token ID is valid
func (x TokenID) Validate() error {
	if x == "" {
		return goerr.New("token ID is empty", goerr.T(types.ErrTagAuthn))
	}
	return nil
}

// TokenSecret is the private half of a session credential. It must never
// appear in logs; the logger masks it via the masq tag on Token.
type TokenSecret string

// NewTokenSecret generates a new random token secret
func NewTokenSecret() TokenSecret {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random source: " + err.Error())
	}
	return TokenSecret(hex.EncodeToString(buf))
}

// String returns the string representation
func (x TokenSecret) String() string {
	return string(x)
}

// Validate checks if the token secret is valid
func (x TokenSecret) Validate() error {
	if x == "" {
		return goerr.New("token secret is empty", goerr.T(types.ErrTagAuthn))
	}
	return nil
}

// tokenDuration is how long an issued session stays valid
const tokenDuration = 7 * 24 * time.Hour

// Token is a server-issued session credential created after the identity
// provider exchange. Multiple tokens per user may be live at once; expired
// ones are swept in the background rather than at login.
type Token struct {
	ID        TokenID      `json:"id" firestore:"id"`
	Secret    TokenSecret  `json:"secret" firestore:"secret" masq:"secret"`
	Sub       types.UserID `json:"sub" firestore:"sub"`
	Email     string       `json:"email" firestore:"email"`
	Name      string       `json:"name" firestore:"name"`
	ExpiresAt time.Time    `json:"expires_at" firestore:"expires_at"`
	CreatedAt time.Time    `json:"created_at" firestore:"created_at"`
}

// NewToken issues a new session token for the given user
func NewToken(sub types.UserID, email, name string) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        NewTokenID(),
		Secret:    NewTokenSecret(),
		Sub:       sub,
		Email:     email,
		Name:      name,
		ExpiresAt: now.Add(tokenDuration),
		CreatedAt: now,
	}
}

// IsExpired checks if the token is expired at the given time
func (x *Token) IsExpired(now time.Time) bool {
	return now.After(x.ExpiresAt)
}

// Validate checks if the token has all required fields
func (x *Token) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return err
	}
	if err := x.Secret.Validate(); err != nil {
		return err
	}
	if err := x.Sub.Validate(); err != nil {
		return goerr.Wrap(err, "token has no subject")
	}
	if x.ExpiresAt.IsZero() {
		return goerr.New("token has no expiry", goerr.T(types.ErrTagValidation))
	}
	return nil
}
