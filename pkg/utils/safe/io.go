package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/complypilot/complypilot/pkg/utils/logging"
)

// Close closes the closer and logs a failure instead of returning it. Use
// only where the close error cannot change the outcome, e.g. readers.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Write writes data and logs a failure instead of returning it. Used for
// HTTP response bodies where the status line is already gone.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write", slog.Any("error", err))
	}
}
