package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the document analysis LLM client
type LLM struct {
	provider        string
	openaiAPIKey    string
	openaiModel     string
	geminiProjectID string
	geminiLocation  string
}

// Flags returns CLI flags for LLM configuration
func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider for document analysis (openai or gemini, empty to disable)",
			Category:    "LLM",
			Sources:     cli.EnvVars("COMPLYPILOT_LLM_PROVIDER"),
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "LLM",
			Sources:     cli.EnvVars("COMPLYPILOT_OPENAI_API_KEY"),
			Destination: &x.openaiAPIKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model for document analysis",
			Category:    "LLM",
			Value:       "gpt-4.1",
			Sources:     cli.EnvVars("COMPLYPILOT_OPENAI_MODEL"),
			Destination: &x.openaiModel,
		},
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Usage:       "Google Cloud project ID for Gemini API",
			Category:    "LLM",
			Sources:     cli.EnvVars("COMPLYPILOT_GEMINI_PROJECT_ID"),
			Destination: &x.geminiProjectID,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Category:    "LLM",
			Value:       "us-central1",
			Sources:     cli.EnvVars("COMPLYPILOT_GEMINI_LOCATION"),
			Destination: &x.geminiLocation,
		},
	}
}

func (x LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("provider", x.provider),
		slog.Int("openai-api-key.len", len(x.openaiAPIKey)),
		slog.String("openai-model", x.openaiModel),
		slog.String("gemini-project-id", x.geminiProjectID),
		slog.String("gemini-location", x.geminiLocation),
	)
}

// Configure creates an LLM client for the configured provider.
// Returns nil if no provider is configured (document analysis will be disabled).
func (x *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch x.provider {
	case "":
		return nil, nil

	case "openai":
		if x.openaiAPIKey == "" {
			return nil, goerr.New("openai-api-key is required when using openai provider")
		}
		client, err := openai.New(ctx, x.openaiAPIKey, openai.WithModel(x.openaiModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	case "gemini":
		if x.geminiProjectID == "" {
			return nil, goerr.New("gemini-project-id is required when using gemini provider")
		}
		client, err := gemini.New(ctx, x.geminiProjectID, x.geminiLocation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	default:
		return nil, goerr.New("invalid LLM provider", goerr.V("provider", x.provider))
	}
}
