package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/cli/config"
	httpctrl "github.com/complypilot/complypilot/pkg/controller/http"
	"github.com/complypilot/complypilot/pkg/service/analysis"
	"github.com/complypilot/complypilot/pkg/service/worker"
	"github.com/complypilot/complypilot/pkg/usecase"
	"github.com/complypilot/complypilot/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// tokenSweepInterval is how often expired session tokens are purged
const tokenSweepInterval = time.Hour

func cmdServe() *cli.Command {
	var addr string
	var frontendURL string
	var analysisTimeout time.Duration
	var repoCfg config.Repository
	var storageCfg config.Storage
	var identityCfg config.Identity
	var llmCfg config.LLM
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("COMPLYPILOT_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "frontend-url",
			Usage:       "Frontend origin allowed for cross-origin requests (e.g. https://app.example.com)",
			Sources:     cli.EnvVars("COMPLYPILOT_FRONTEND_URL"),
			Destination: &frontendURL,
		},
		&cli.DurationFlag{
			Name:        "analysis-timeout",
			Usage:       "Upper bound for a single document analysis run",
			Value:       2 * time.Minute,
			Sources:     cli.EnvVars("COMPLYPILOT_ANALYSIS_TIMEOUT"),
			Destination: &analysisTimeout,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, identityCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Load and validate the question/template catalog
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Configure authentication
			authUC, err := identityCfg.Configure(ctx, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			if identityCfg.IsNoAuthnMode() {
				logging.Default().Warn("Running in no-authn mode (development only)", "identity", identityCfg)
			} else {
				logging.Default().Info("Identity provider authentication enabled", "identity", identityCfg)
			}

			// Configure document blob storage
			blobStore, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize document storage")
			}

			ucOpts := []usecase.Option{
				usecase.WithAuth(authUC),
				usecase.WithBlobStore(blobStore),
				usecase.WithAnalysisTimeout(analysisTimeout),
			}

			// Configure LLM-backed document analysis if a provider is set
			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM provider")
			}
			if llmClient != nil {
				analyzer, err := analysis.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize analysis service")
				}
				ucOpts = append(ucOpts, usecase.WithAnalyzer(analyzer))
				logging.Default().Info("Document analysis enabled", "llm", llmCfg)
			} else {
				logging.Default().Info("LLM provider not configured, document analysis is disabled")
			}

			uc := usecase.New(repo, cat, ucOpts...)

			// Start expired token sweep worker
			sweeper := worker.NewTokenSweepWorker(repo, tokenSweepInterval)
			if err := sweeper.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start token sweep worker")
			}

			// Create HTTP server
			var httpOpts []httpctrl.Options
			if frontendURL != "" {
				httpOpts = append(httpOpts, httpctrl.WithAllowedOrigin(frontendURL))
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				sweeper.Stop()

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
