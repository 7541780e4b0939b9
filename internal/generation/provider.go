package generation

import "context"

// CompletionRequest carries everything a provider needs for one completion
// call. Sampling parameters are supplied by the caller and passed through to
// the provider verbatim.
type CompletionRequest struct {
	// Model is the provider-side model identifier to use for this call.
	Model string

	// SystemPrompt sets the assistant instructions.
	SystemPrompt string

	// UserPrompt is the user-role payload.
	UserPrompt string

	// Temperature controls sampling randomness.
	Temperature float64

	// MaxTokens caps the completion length. Zero means provider default.
	MaxTokens int
}

// Provider is the boundary between the dispatch core and a hosted
// text-generation service. Implementations must wrap raw SDK failures in the
// package sentinels (ErrModelUnavailable, ErrQuotaExceeded, ErrTransient) so
// the classifier can route them without knowing the SDK.
type Provider interface {
	// Complete performs a single completion call and returns the raw
	// generated text. The returned text is not guaranteed to be valid JSON;
	// normalization happens downstream.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
