package config

import (
	"context"
	"log/slog"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/service/identity"
	"github.com/complypilot/complypilot/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Identity holds CLI flags for the identity provider integration
type Identity struct {
	baseURL      string
	jwksURL      string
	noAuthnEmail string
	noAuthnName  string
}

// Flags returns CLI flags for identity provider configuration
func (x *Identity) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "identity-base-url",
			Usage:       "Identity provider base URL for session exchange",
			Category:    "Authentication",
			Sources:     cli.EnvVars("COMPLYPILOT_IDENTITY_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "identity-jwks-url",
			Usage:       "JWKS endpoint URL (defaults to <base-url>/.well-known/jwks.json)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("COMPLYPILOT_IDENTITY_JWKS_URL"),
			Destination: &x.jwksURL,
		},
		&cli.StringFlag{
			Name:        "no-authn-email",
			Usage:       "Skip authentication and run as a fixed user with this email (development only). Example: --no-authn-email=dev@example.com",
			Category:    "Authentication",
			Sources:     cli.EnvVars("COMPLYPILOT_NO_AUTHN_EMAIL"),
			Destination: &x.noAuthnEmail,
		},
		&cli.StringFlag{
			Name:        "no-authn-name",
			Usage:       "Display name for the no-authn user",
			Category:    "Authentication",
			Value:       "Development User",
			Sources:     cli.EnvVars("COMPLYPILOT_NO_AUTHN_NAME"),
			Destination: &x.noAuthnName,
		},
	}
}

func (x Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", x.baseURL),
		slog.String("jwks_url", x.jwksURL),
		slog.Bool("no_authn", x.noAuthnEmail != ""),
	)
}

// IsNoAuthnMode returns true if no-authn mode is enabled
func (x *Identity) IsNoAuthnMode() bool {
	return x.noAuthnEmail != ""
}

// Configure creates an AuthUseCase backed by the identity provider, or a
// NoAuthnUseCase when no-authn mode is enabled.
func (x *Identity) Configure(ctx context.Context, repo interfaces.Repository) (usecase.AuthUseCaseInterface, error) {
	if x.noAuthnEmail != "" {
		// Warn if provider config is also set (no-authn takes precedence)
		if x.baseURL != "" {
			slog.Warn("--no-authn-email is set, ignoring --identity-base-url")
		}
		return usecase.NewNoAuthnUseCase(repo, x.noAuthnEmail, x.noAuthnName), nil
	}

	if x.baseURL == "" {
		return nil, goerr.New("identity provider configuration is required: set --identity-base-url, or use --no-authn-email for development")
	}

	var opts []identity.Option
	if x.jwksURL != "" {
		opts = append(opts, identity.WithJWKSURL(x.jwksURL))
	}
	svc, err := identity.New(x.baseURL, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize identity provider client")
	}

	return usecase.NewAuthUseCase(repo, svc), nil
}
