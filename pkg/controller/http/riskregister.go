package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/usecase"
)

type riskRegisterGenerateRequest struct {
	BusinessType string `json:"business_type"`
	Industry     string `json:"industry"`
}

// riskRegisterGenerateHandler builds a fresh register from the business type
// templates, replacing any existing one
func riskRegisterGenerateHandler(rrUC *usecase.RiskRegisterUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		var req riskRegisterGenerateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.BusinessType == "" {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "business_type is required"})
			return
		}

		register, err := rrUC.Generate(r.Context(), token.Sub, req.BusinessType, req.Industry)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, register)
	}
}

// riskRegisterGetHandler returns the user's register, or null when none has
// been generated
func riskRegisterGetHandler(rrUC *usecase.RiskRegisterUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		register, err := rrUC.Get(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, register)
	}
}

type riskStatusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// riskStatusUpdateHandler updates the lifecycle status and notes of a single
// risk and returns it
func riskStatusUpdateHandler(rrUC *usecase.RiskRegisterUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		var req riskStatusUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		riskID := types.RiskID(chi.URLParam(r, "riskID"))
		risk, err := rrUC.UpdateRiskStatus(r.Context(), token.Sub, riskID, req.Status, req.Notes)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, risk)
	}
}
