package http

import (
	"net/http"

	"github.com/complypilot/complypilot/pkg/usecase"
)

// profileGetHandler returns the authenticated user's profile
func profileGetHandler(profileUC *usecase.ProfileUseCase) http.HandlerFunc {
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

// profileUpdateHandler applies a partial profile update. Absent fields keep
// their stored values.
func profileUpdateHandler(profileUC *usecase.ProfileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		var update usecase.ProfileUpdate
		if !decodeJSON(w, r, &update) {
			return
		}

		user, err := profileUC.Update(r.Context(), token.Sub, update)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, user)
	}
}
