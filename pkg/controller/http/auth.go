package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/usecase"
)

type AuthUseCase = usecase.AuthUseCaseInterface

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type sessionResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// authSessionHandler exchanges an identity provider session ID for a server
// session and sets the credential cookies
func authSessionHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.SessionID == "" {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "session_id is required"})
			return
		}

		user, token, err := authUC.Login(r.Context(), req.SessionID)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		tokenIDCookie := &http.Cookie{
			Name:     "token_id",
			Value:    token.ID.String(),
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			Expires:  token.ExpiresAt,
		}

		tokenSecretCookie := &http.Cookie{
			Name:     "token_secret",
			Value:    token.Secret.String(),
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			Expires:  token.ExpiresAt,
		}

		http.SetCookie(w, tokenIDCookie)
		http.SetCookie(w, tokenSecretCookie)

		writeJSON(r.Context(), w, http.StatusOK, sessionResponse{
			Message: "Session created",
			User:    user,
		})
	}
}

// authMeHandler returns the authenticated user's account
func authMeHandler(profileUC *usecase.ProfileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		user, err := profileUC.Get(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, user)
	}
}

// authLogoutHandler invalidates the presented session and clears the
// credential cookies
func authLogoutHandler(authUC AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		if err := authUC.Logout(r.Context(), token.ID); err != nil {
			respondError(r.Context(), w, goerr.Wrap(err, "failed to logout"))
			return
		}

		clearTokenID := &http.Cookie{
			Name:     "token_id",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		}

		clearTokenSecret := &http.Cookie{
			Name:     "token_secret",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		}

		http.SetCookie(w, clearTokenID)
		http.SetCookie(w, clearTokenSecret)

		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}
