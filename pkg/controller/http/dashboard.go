package http

import (
	"net/http"

	"github.com/complypilot/complypilot/pkg/usecase"
)

// dashboardHandler returns the aggregated account overview
func dashboardHandler(dashUC *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		summary, err := dashUC.Summary(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, summary)
	}
}
