package auth

import "context"

type ctxTokenKey struct{}

// ContextWithToken returns a new context carrying the validated session token
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

// TokenFromContext extracts the session token from the context. The second
// return value is false when the request was not authenticated.
func TokenFromContext(ctx context.Context) (*Token, bool) {
	token, ok := ctx.Value(ctxTokenKey{}).(*Token)
	return token, ok
}
