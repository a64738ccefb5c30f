package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures into the API error taxonomy. The HTTP layer
// maps each tag to a status code without parsing error messages.
var (
	// ErrTagAuthn marks missing, invalid or expired session credentials (401)
	ErrTagAuthn = goerr.NewTag("authentication_required")

	// ErrTagAuthz marks access to a resource not owned by the caller (403)
	ErrTagAuthz = goerr.NewTag("authorization_denied")

	// ErrTagValidation marks malformed or unsupported input (400)
	ErrTagValidation = goerr.NewTag("validation_failed")

	// ErrTagNotFound marks lookups of unknown resources (404)
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagUpstream marks identity provider or LLM provider failures (502)
	ErrTagUpstream = goerr.NewTag("upstream_failure")
)
