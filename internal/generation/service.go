package generation

import (
	"context"
	"log/slog"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
)

// ContentRequest carries the fields of one generation request. It is
// immutable once dispatched; empty optional fields get their defaults during
// prompt construction.
type ContentRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	ContentType string
	Language    string
	Tone        string
}

// ServiceConfig holds the model preference list and sampling parameters the
// service passes through to the dispatcher.
type ServiceConfig struct {
	// Model is the preferred model identifier, tried first.
	Model string

	// FallbackModels are tried in order after Model.
	FallbackModels []string

	// Temperature is passed through verbatim on every completion call.
	Temperature float64

	// MaxTokens caps completions; zero means provider default.
	MaxTokens int
}

// Service wires the dispatcher and normalizer into the three content
// operations the application exposes. All work is synchronous; the caller
// owns any deadline via ctx.
type Service struct {
	dispatcher *Dispatcher
	candidates []string
	cfg        ServiceConfig
	logger     *slog.Logger
}

// NewService creates a Service around the given provider. If logger is nil,
// the default logger is used.
func NewService(provider Provider, cfg ServiceConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := make([]string, 0, 1+len(cfg.FallbackModels))
	candidates = append(candidates, cfg.Model)
	candidates = append(candidates, cfg.FallbackModels...)

	return &Service{
		dispatcher: NewDispatcher(provider, logger),
		candidates: candidates,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "content_service")),
	}
}

// GenerateSuggestions produces a non-empty suggestion set for the request.
// Malformed model output is normalized, never surfaced; the only errors the
// caller sees are quota exhaustion and dispatch exhaustion.
func (s *Service) GenerateSuggestions(ctx context.Context, req ContentRequest) ([]domain.Suggestion, error) {
	raw, model, err := s.dispatcher.Dispatch(ctx, s.candidates, CompletionRequest{
		SystemPrompt: suggestionSystemPrompt,
		UserPrompt:   buildSuggestionUserPrompt(req),
		Temperature:  s.cfg.Temperature,
		MaxTokens:    s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	suggestions := NormalizeSuggestions(raw, FallbackSpec{
		Destination: req.Destination,
		ContentType: req.ContentType,
	})

	s.logger.InfoContext(ctx, "generated suggestions",
		slog.String("model", model),
		slog.String("destination", req.Destination),
		slog.Int("count", len(suggestions)))

	return suggestions, nil
}

// GenerateCustomSuggestion reworks existing content according to a free-form
// instruction and returns a single suggestion.
func (s *Service) GenerateCustomSuggestion(ctx context.Context, prompt string, req ContentRequest, existingContent string) (domain.Suggestion, error) {
	raw, model, err := s.dispatcher.Dispatch(ctx, s.candidates, CompletionRequest{
		SystemPrompt: customSystemPrompt,
		UserPrompt:   buildCustomUserPrompt(prompt, req, existingContent),
		Temperature:  s.cfg.Temperature,
		MaxTokens:    s.cfg.MaxTokens,
	})
	if err != nil {
		return domain.Suggestion{}, err
	}

	suggestion := NormalizeSuggestion(raw, FallbackSpec{
		Destination: req.Destination,
		ContentType: req.ContentType,
	})

	s.logger.InfoContext(ctx, "generated custom suggestion",
		slog.String("model", model),
		slog.String("destination", req.Destination))

	return suggestion, nil
}

// SearchPlaces returns places matching the query. An empty list is a valid
// outcome; there is no fallback synthesis on this path.
func (s *Service) SearchPlaces(ctx context.Context, query, language string) ([]domain.Place, error) {
	raw, model, err := s.dispatcher.Dispatch(ctx, s.candidates, CompletionRequest{
		SystemPrompt: placesSystemPrompt,
		UserPrompt:   buildPlacesUserPrompt(query, language),
		Temperature:  s.cfg.Temperature,
		MaxTokens:    s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	places := NormalizePlaces(raw)

	s.logger.InfoContext(ctx, "searched places",
		slog.String("model", model),
		slog.String("query", query),
		slog.Int("count", len(places)))

	return places, nil
}
