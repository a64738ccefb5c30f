package http

import (
	"net/http"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/usecase"
)

// healthCheckQuestionsHandler serves the questionnaire catalog
func healthCheckQuestionsHandler(hcUC *usecase.HealthCheckUseCase) http.HandlerFunc {
	type response struct {
		Questions      []model.Question               `json:"questions"`
		TotalQuestions int                            `json:"total_questions"`
		Categories     map[types.QuestionCategory]int `json:"categories"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		questions := hcUC.Questions()
		writeJSON(r.Context(), w, http.StatusOK, response{
			Questions:      questions,
			TotalQuestions: len(questions),
			Categories:     hcUC.CategoryCounts(),
		})
	}
}

type healthCheckSubmitRequest struct {
	Responses []model.Answer `json:"responses"`
}

// healthCheckSubmitHandler scores a questionnaire submission and returns the
// persisted result
func healthCheckSubmitHandler(hcUC *usecase.HealthCheckUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		var req healthCheckSubmitRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := hcUC.Submit(r.Context(), token.Sub, req.Responses)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, result)
	}
}

// healthCheckLatestHandler returns the most recent result, or null when the
// user has never submitted
func healthCheckLatestHandler(hcUC *usecase.HealthCheckUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		result, err := hcUC.Latest(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, result)
	}
}

// healthCheckHistoryHandler returns all results, newest first
func healthCheckHistoryHandler(hcUC *usecase.HealthCheckUseCase) http.HandlerFunc {
	type response struct {
		HealthChecks []*model.HealthCheck `json:"health_checks"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		checks, err := hcUC.History(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, response{HealthChecks: checks})
	}
}
