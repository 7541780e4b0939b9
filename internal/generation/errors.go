package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrModelUnavailable is returned when the requested model identifier
	// does not exist or is not permitted for this account. The dispatcher
	// treats it as a signal to try the next candidate.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrQuotaExceeded is returned when the provider reports a billing quota
	// or rate limit. The dispatcher aborts immediately on this error.
	ErrQuotaExceeded = errors.New("quota or rate limit exceeded")

	// ErrTransient is returned for any other provider-side failure that
	// might resolve with a different candidate.
	ErrTransient = errors.New("transient provider error")

	// ErrDispatchExhausted is returned when every candidate failed and no
	// successful response exists.
	ErrDispatchExhausted = errors.New("all candidate models failed")

	// ErrNoCandidates is returned when the candidate list is empty after
	// skipping blank and duplicate entries.
	ErrNoCandidates = errors.New("no candidate models configured")

	// ErrInvalidConfig is returned when a provider configuration is invalid.
	ErrInvalidConfig = errors.New("invalid provider configuration")
)

// ExhaustedError aggregates a failed dispatch: how many candidates were
// tried and the last classified failure seen. It matches
// ErrDispatchExhausted under errors.Is and unwraps to the last failure.
type ExhaustedError struct {
	Tried   int
	LastErr error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d candidate models failed, last error: %v", e.Tried, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrDispatchExhausted
}
