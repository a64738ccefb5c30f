package http

import (
	"net/http"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/usecase"
)

// subscriptionGetHandler returns the user's plan, defaulting to the free tier
func subscriptionGetHandler(subUC *usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		sub, err := subUC.Get(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, sub)
	}
}

// subscriptionPlansHandler serves the static plan table
func subscriptionPlansHandler(subUC *usecase.SubscriptionUseCase) http.HandlerFunc {
	type response struct {
		Plans []model.Plan `json:"plans"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, response{Plans: subUC.Plans()})
	}
}
