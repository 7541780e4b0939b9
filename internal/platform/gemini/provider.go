// Package gemini implements the text-generation provider on Google's Gemini
// API. It exists as an alternative to the OpenAI provider, selected through
// configuration; candidate model identifiers then name Gemini models.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/AdrianTrill/travel-content-hub/internal/generation"
)

// Provider implements generation.Provider against the Gemini API.
type Provider struct {
	client *genai.Client
	logger *slog.Logger
}

// Config holds the Gemini client settings.
type Config struct {
	APIKey string
}

// NewProvider creates a Provider. If logger is nil, the default logger is
// used.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Provider{
		client: client,
		logger: logger.With(slog.String("component", "gemini_provider")),
	}, nil
}

// Complete sends one generation request and returns the raw response text.
// Failures are wrapped in the generation package's sentinel errors so the
// dispatcher can classify them.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	start := time.Now()
	resp, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), config)
	if err != nil {
		return "", classifyAPIError(req.Model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: model %s returned empty content", generation.ErrTransient, req.Model)
	}

	p.logger.DebugContext(ctx, "completion finished",
		slog.String("model", req.Model),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return text, nil
}

// classifyAPIError maps a Gemini API error onto the dispatcher's failure
// taxonomy. NOT_FOUND means an unknown model identifier; RESOURCE_EXHAUSTED
// is a quota response; everything else is transient.
func classifyAPIError(model string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 404:
			return fmt.Errorf("%w: model %s: %v", generation.ErrModelUnavailable, model, err)
		case 429:
			return fmt.Errorf("%w: model %s: %v", generation.ErrQuotaExceeded, model, err)
		}
	}
	return fmt.Errorf("%w: model %s: %v", generation.ErrTransient, model, err)
}
