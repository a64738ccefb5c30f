package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/utils/logging"
)

// Handle logs an error with its attached goerr values and reports it to
// Sentry when a client is configured. The error is returned unchanged so
// callers can keep propagating it.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg, "error", err, "values", ge.Values())
	} else {
		logger.Error(msg, "error", err)
	}

	captureSentry(err)

	return err
}

// HandleHTTP logs an error and writes a JSON error response with the given
// status code. Server-side failures (5xx) are also reported to Sentry.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP request failed", "error", err, "status", statusCode, "values", ge.Values())
	} else {
		logger.Error("HTTP request failed", "error", err, "status", statusCode)
	}

	if statusCode >= http.StatusInternalServerError {
		captureSentry(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encodeErr != nil {
		logger.Error("Failed to write error response", "error", encodeErr)
	}
}

func captureSentry(err error) {
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureException(err)
	}
}
