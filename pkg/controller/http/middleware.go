package http

import (
	"net/http"
	"strings"

	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/utils/errutil"
)

// authMiddleware validates authentication for protected requests. Credentials
// are accepted either as an Authorization header (Bearer <id>:<secret>) or as
// the token_id/token_secret cookie pair set at login.
func authMiddleware(authUC AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// For NoAuthn mode, every request runs as the configured user
			if authUC.IsNoAuthn() {
				token, err := authUC.ValidateToken(r.Context(), "", "")
				if err != nil {
					errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
					return
				}
				ctx := auth.ContextWithToken(r.Context(), token)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			tokenID, tokenSecret, ok := requestCredentials(r)
			if !ok {
				writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "Authentication required"})
				return
			}

			token, err := authUC.ValidateToken(r.Context(), tokenID, tokenSecret)
			if err != nil {
				writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "Invalid authentication token"})
				return
			}

			ctx := auth.ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestCredentials extracts the session credential pair from the request.
// The Authorization header takes precedence over cookies.
func requestCredentials(r *http.Request) (auth.TokenID, auth.TokenSecret, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, credential, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return "", "", false
		}
		id, secret, ok := strings.Cut(credential, ":")
		if !ok || id == "" || secret == "" {
			return "", "", false
		}
		return auth.TokenID(id), auth.TokenSecret(secret), true
	}

	idCookie, err := r.Cookie("token_id")
	if err != nil {
		return "", "", false
	}
	secretCookie, err := r.Cookie("token_secret")
	if err != nil {
		return "", "", false
	}
	return auth.TokenID(idCookie.Value), auth.TokenSecret(secretCookie.Value), true
}

// corsMiddleware answers cross-origin requests from the configured frontend
// origin. Preflight requests are answered without touching the router. A
// wildcard origin disables credentialed requests per the Fetch standard.
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if origin != "*" {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// currentToken returns the session token injected by authMiddleware. A
// missing token means the route is wired outside the middleware; the handler
// answers 401 rather than panicking.
func currentToken(w http.ResponseWriter, r *http.Request) (*auth.Token, bool) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "Authentication required"})
		return nil, false
	}
	return token, true
}
