package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

// maxContentChars bounds how much document text goes into a single prompt
const maxContentChars = 15000

// unreadablePlaceholder is sent when no text survives extraction, so the
// analysis still yields a structured verdict instead of an opaque failure
const unreadablePlaceholder = "Unable to extract text content from document"

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a document analysis service backed by the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// AnalyzeDocument runs a compliance gap analysis of one document
func (c *client) AnalyzeDocument(ctx context.Context, input Input) (*model.DocumentAnalysis, error) {
	text := extractText(input.Content)

	// Create session with JSON response type and system prompt
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(buildSystemPrompt()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session", goerr.T(types.ErrTagUpstream))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(input, text)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate analysis from LLM",
			goerr.T(types.ErrTagUpstream),
			goerr.V("filename", input.Filename))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("LLM returned empty analysis", goerr.T(types.ErrTagUpstream))
	}

	var result model.DocumentAnalysis
	if err := json.Unmarshal([]byte(resp.Texts[0]), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to parse analysis response",
			goerr.T(types.ErrTagUpstream),
			goerr.V("response", resp.Texts[0]))
	}

	if err := result.Validate(); err != nil {
		return nil, goerr.Wrap(err, "LLM returned malformed analysis", goerr.T(types.ErrTagUpstream))
	}

	return &result, nil
}

// extractText renders document bytes as prompt text. Binary formats go
// through a lossy UTF-8 scrub (invalid sequences dropped), and the result is
// truncated to maxContentChars.
func extractText(content []byte) string {
	text := strings.ToValidUTF8(string(content), "")
	if runes := []rune(text); len(runes) > maxContentChars {
		text = string(runes[:maxContentChars])
	}
	if strings.TrimSpace(text) == "" {
		return unreadablePlaceholder
	}
	return text
}
