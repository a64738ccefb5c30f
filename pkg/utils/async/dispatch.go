package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/utils/logging"
)

// Dispatch runs handler in a goroutine on a fresh background context so the
// work survives the originating request. The request logger is carried over.
// Panics are recovered and logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("Panic in async handler", "recover", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("Async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
