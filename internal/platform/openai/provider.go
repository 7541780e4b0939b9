// Package openai implements the text-generation provider on the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/AdrianTrill/travel-content-hub/internal/generation"
)

// Provider implements generation.Provider against the OpenAI API. It is
// stateless beyond the underlying HTTP client and safe for concurrent use.
type Provider struct {
	client openai.Client
	logger *slog.Logger
}

// Config holds the OpenAI client settings. BaseURL is optional and exists
// for API-compatible gateways.
type Config struct {
	APIKey  string
	BaseURL string
}

// NewProvider creates a Provider. If logger is nil, the default logger is
// used.
func NewProvider(cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		logger: logger.With(slog.String("component", "openai_provider")),
	}, nil
}

// Complete sends one chat completion request and returns the raw text of the
// first choice. Failures are wrapped in the generation package's sentinel
// errors so the dispatcher can classify them.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyAPIError(req.Model, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: model %s returned no choices", generation.ErrTransient, req.Model)
	}

	p.logger.DebugContext(ctx, "completion finished",
		slog.String("model", req.Model),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens))

	return resp.Choices[0].Message.Content, nil
}

// classifyAPIError maps an OpenAI API error onto the dispatcher's failure
// taxonomy. 404 means the model identifier does not exist for this account;
// 429 is a quota or rate-limit response; everything else, including network
// failures with no API response, is transient.
func classifyAPIError(model string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 404:
			return fmt.Errorf("%w: model %s: %v", generation.ErrModelUnavailable, model, err)
		case 429:
			return fmt.Errorf("%w: model %s: %v", generation.ErrQuotaExceeded, model, err)
		}
	}
	return fmt.Errorf("%w: model %s: %v", generation.ErrTransient, model, err)
}
