package generation

import "errors"

// FailureKind is the classified category of a provider failure.
type FailureKind int

const (
	// KindTransient covers any provider-side failure that is neither a
	// missing model nor an exhausted quota. The dispatcher continues to the
	// next candidate but records the error as the last seen cause.
	KindTransient FailureKind = iota

	// KindModelUnavailable means the candidate model does not exist or is
	// not permitted; the dispatcher continues to the next candidate.
	KindModelUnavailable

	// KindQuotaExceeded means the account quota or rate limit was hit; the
	// dispatcher aborts the whole dispatch.
	KindQuotaExceeded
)

// String returns a stable label for logging.
func (k FailureKind) String() string {
	switch k {
	case KindModelUnavailable:
		return "model_unavailable"
	case KindQuotaExceeded:
		return "quota_exceeded"
	default:
		return "transient"
	}
}

// classificationRules is evaluated in order, first match wins. The table
// form keeps the priority order auditable and testable on its own.
var classificationRules = []struct {
	sentinel error
	kind     FailureKind
}{
	{ErrQuotaExceeded, KindQuotaExceeded},
	{ErrModelUnavailable, KindModelUnavailable},
}

// Classify maps a raw provider failure to exactly one FailureKind. Errors
// that match none of the sentinels are transient. Pure; no side effects.
func Classify(err error) FailureKind {
	for _, rule := range classificationRules {
		if errors.Is(err, rule.sentinel) {
			return rule.kind
		}
	}
	return KindTransient
}
