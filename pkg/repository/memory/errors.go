package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
)

// ErrNotFound is returned when a requested record does not exist. It carries
// the not-found tag so the HTTP layer renders 404 without string matching.
var ErrNotFound = goerr.New("record not found", goerr.T(types.ErrTagNotFound))
