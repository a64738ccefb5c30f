package identity

import "context"

// Service exchanges hosted OAuth session IDs for verified user profiles
type Service interface {
	// Exchange resolves a one-time session ID issued by the hosted OAuth
	// provider into the authenticated user's profile
	Exchange(ctx context.Context, sessionID string) (*Profile, error)
}

// Profile represents the identity returned by the hosted OAuth provider
type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}
