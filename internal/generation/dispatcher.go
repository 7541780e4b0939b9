package generation

import (
	"context"
	"fmt"
	"log/slog"
)

// Dispatcher tries an ordered list of candidate models against a single
// provider. Candidates are tried strictly sequentially, first success wins,
// and no candidate is ever tried twice within one dispatch.
type Dispatcher struct {
	provider Provider
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher. If logger is nil, the default logger
// is used.
func NewDispatcher(provider Provider, logger *slog.Logger) *Dispatcher {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		provider: provider,
		logger:   logger.With(slog.String("component", "dispatcher")),
	}
}

// Dispatch invokes the provider for each candidate in list order, carrying
// the request through verbatim except for the model identifier. Blank and
// duplicate candidates are skipped. On success it returns the raw response
// text and the model that produced it. A quota failure aborts the dispatch
// immediately; any other failure is remembered as the last seen cause and
// the next candidate is tried. When the list is exhausted the returned error
// is an *ExhaustedError carrying that last cause.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []string, req CompletionRequest) (string, string, error) {
	var lastErr error
	tried := 0
	seen := make(map[string]struct{}, len(candidates))

	for _, model := range candidates {
		if model == "" {
			continue
		}
		if _, dup := seen[model]; dup {
			continue
		}
		seen[model] = struct{}{}
		tried++

		attempt := req
		attempt.Model = model

		raw, err := d.provider.Complete(ctx, attempt)
		if err == nil {
			d.logger.DebugContext(ctx, "candidate succeeded",
				slog.String("model", model),
				slog.Int("attempt", tried))
			return raw, model, nil
		}

		kind := Classify(err)
		d.logger.WarnContext(ctx, "candidate failed",
			slog.String("model", model),
			slog.String("failure_kind", kind.String()),
			slog.String("error", err.Error()))

		if kind == KindQuotaExceeded {
			return "", "", fmt.Errorf("candidate %s: %w", model, err)
		}

		lastErr = err
	}

	if tried == 0 {
		return "", "", ErrNoCandidates
	}

	return "", "", &ExhaustedError{Tried: tried, LastErr: lastErr}
}
