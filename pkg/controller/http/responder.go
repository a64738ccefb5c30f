package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/utils/errutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}

// decodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

// respondError maps an error to an HTTP status via its goerr tags. Untagged
// errors render a generic 500 so internal details never reach the client.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case goerr.HasTag(err, types.ErrTagValidation):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case goerr.HasTag(err, types.ErrTagAuthn):
		errutil.HandleHTTP(ctx, w, err, http.StatusUnauthorized)
	case goerr.HasTag(err, types.ErrTagAuthz):
		errutil.HandleHTTP(ctx, w, err, http.StatusForbidden)
	case goerr.HasTag(err, types.ErrTagNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case goerr.HasTag(err, types.ErrTagUpstream):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadGateway)
	default:
		errutil.Handle(ctx, err, "unhandled error in HTTP handler")
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
