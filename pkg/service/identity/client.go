package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/utils/safe"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

const sessionDataPath = "/auth/v1/env/oauth/session-data"

// client implements Service against the hosted OAuth provider
type client struct {
	baseURL    string
	httpClient *http.Client
	jwksURL    string
}

// Option is a functional option for the identity client
type Option func(*client)

// WithHTTPClient replaces the HTTP client used for provider calls
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithJWKSURL enables id_token verification against the given JWK set URL.
// Without it, id_token fields in the provider response are ignored.
func WithJWKSURL(jwksURL string) Option {
	return func(c *client) {
		c.jwksURL = jwksURL
	}
}

// New creates an identity client for the provider at baseURL
func New(baseURL string, opts ...Option) (Service, error) {
	if baseURL == "" {
		return nil, goerr.New("identity provider base URL is required")
	}

	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// sessionDataResponse is the provider's session-data payload. id_token is
// only present when the provider signs its responses.
type sessionDataResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
	IDToken      string `json:"id_token"`
}

func (c *client) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is required", goerr.T(types.ErrTagValidation))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sessionDataPath, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session data request")
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call identity provider", goerr.T(types.ErrTagUpstream))
	}
	defer safe.Close(ctx, resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read session data response", goerr.T(types.ErrTagUpstream))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, goerr.New("identity provider rejected session",
			goerr.T(types.ErrTagAuthn),
			goerr.V("status", resp.StatusCode))

	default:
		return nil, goerr.New("identity provider returned error",
			goerr.T(types.ErrTagUpstream),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	var data sessionDataResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to parse session data response", goerr.T(types.ErrTagUpstream))
	}

	if data.Email == "" {
		return nil, goerr.New("identity provider returned no email", goerr.T(types.ErrTagUpstream))
	}

	if data.IDToken != "" && c.jwksURL != "" {
		if err := c.verifyIDToken(ctx, data.IDToken, data.Email); err != nil {
			return nil, err
		}
	}

	return &Profile{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Picture:      data.Picture,
		SessionToken: data.SessionToken,
	}, nil
}

// verifyIDToken validates the provider-signed id_token against the configured
// JWK set. The email claim must match the session data email.
func (c *client) verifyIDToken(ctx context.Context, idToken, email string) error {
	keySet, err := jwk.Fetch(ctx, c.jwksURL)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch identity provider JWKS",
			goerr.T(types.ErrTagUpstream),
			goerr.V("jwks_url", c.jwksURL))
	}

	// Allow 10 seconds of clock skew to handle time synchronization differences
	token, err := jwt.Parse([]byte(idToken),
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(10*time.Second))
	if err != nil {
		return goerr.Wrap(err, "failed to verify id_token", goerr.T(types.ErrTagAuthn))
	}

	claim, ok := token.Get("email")
	if !ok {
		return goerr.New("email claim not found in id_token", goerr.T(types.ErrTagAuthn))
	}

	claimStr, ok := claim.(string)
	if !ok || claimStr != email {
		return goerr.New("id_token email claim does not match session data",
			goerr.T(types.ErrTagAuthn),
			goerr.V("claim", claim))
	}

	return nil
}
