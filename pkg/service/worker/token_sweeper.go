package worker

import (
	"context"
	"time"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/utils/logging"
)

// TokenSweepWorker removes expired session tokens in the background so the
// tokens collection does not grow without bound.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type TokenSweepWorker struct {
	repo     interfaces.Repository
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewTokenSweepWorker creates a worker that sweeps expired tokens periodically
func NewTokenSweepWorker(repo interfaces.Repository, interval time.Duration) *TokenSweepWorker {
	return &TokenSweepWorker{
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop
// - Initial sweep and periodic sweeps both run in a background goroutine
// - Does not block server startup
func (w *TokenSweepWorker) Start(ctx context.Context) error {
	logging.Default().Info("token sweep worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *TokenSweepWorker) Stop() {
	logging.Default().Info("token sweep worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("token sweep worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *TokenSweepWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	// Initial sweep (runs in goroutine, does not block server startup)
	if err := w.sweep(ctx); err != nil {
		logging.Default().Error("initial token sweep failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("token sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("token sweep worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("token sweep worker context cancelled")
			return
		}
	}
}

// sweep performs a single sweep cycle
func (w *TokenSweepWorker) sweep(ctx context.Context) error {
	deleted, err := w.repo.DeleteExpiredTokens(ctx, time.Now())
	if err != nil {
		return err
	}

	if deleted > 0 {
		logging.Default().Info("expired session tokens swept", "count", deleted)
	}

	return nil
}
