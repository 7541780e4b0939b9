package imagegen

import (
	"context"
	"log/slog"
	"sync"
)

// Mode names a diffusion backend by its speed/fidelity trade-off.
type Mode string

const (
	// ModeTurbo is the fast, low-step backend.
	ModeTurbo Mode = "turbo"
	// ModeQuality is the slow, high-fidelity backend.
	ModeQuality Mode = "quality"
	// ModeRefiner is the optional second-pass refinement backend. It is never
	// selected directly; it only chains after a quality generation.
	ModeRefiner Mode = "refiner"
)

// GenerateRequest carries one inference call to a diffusion backend.
// SourceImage is set only for the refinement backend.
type GenerateRequest struct {
	Prompt        string
	Width         int
	Height        int
	Steps         int
	GuidanceScale float64
	SourceImage   []byte
}

// Backend is a single image-diffusion capability. Generate returns encoded
// PNG bytes.
type Backend interface {
	Generate(ctx context.Context, req GenerateRequest) ([]byte, error)
}

// LoadState records whether a backend came up during startup.
type LoadState int

const (
	StateUnavailable LoadState = iota
	StateLoaded
)

func (s LoadState) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "unavailable"
}

// BackendLoader initializes one backend. A loader error marks the mode
// unavailable; it never fails registry construction.
type BackendLoader func(ctx context.Context) (Backend, error)

type backendEntry struct {
	backend Backend

	// mu serializes requests to this backend. The compute device behind a
	// backend handles one generation at a time; concurrent calls would
	// contend for the same memory.
	mu sync.Mutex
}

// Registry holds the set of loaded backends. It is populated once at startup
// and read-only afterward.
type Registry struct {
	entries map[Mode]*backendEntry
	logger  *slog.Logger
}

// LoadRegistry runs every loader and records the outcome. Load failures are
// soft: the failed mode is logged and marked unavailable, and the registry
// continues with whatever loaded.
func LoadRegistry(ctx context.Context, loaders map[Mode]BackendLoader, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		entries: make(map[Mode]*backendEntry, len(loaders)),
		logger:  logger.With(slog.String("component", "pipeline_registry")),
	}
	for mode, load := range loaders {
		backend, err := load(ctx)
		if err != nil {
			r.logger.WarnContext(ctx, "backend failed to load",
				slog.String("mode", string(mode)),
				slog.String("error", err.Error()))
			continue
		}
		r.entries[mode] = &backendEntry{backend: backend}
		r.logger.InfoContext(ctx, "backend loaded", slog.String("mode", string(mode)))
	}
	return r
}

// State reports whether a mode's backend loaded.
func (r *Registry) State(mode Mode) LoadState {
	if _, ok := r.entries[mode]; ok {
		return StateLoaded
	}
	return StateUnavailable
}

// modeFallbackOrder is tried when the requested mode is unavailable: the fast
// backend first, then the high-quality one.
var modeFallbackOrder = []Mode{ModeTurbo, ModeQuality}

// Resolve returns the mode to actually generate with. When the requested
// mode's backend is unavailable it falls back in fixed order; ok is false
// when no generation backend loaded at all.
func (r *Registry) Resolve(requested Mode) (Mode, bool) {
	if requested != ModeRefiner && r.State(requested) == StateLoaded {
		return requested, true
	}
	for _, mode := range modeFallbackOrder {
		if r.State(mode) == StateLoaded {
			return mode, true
		}
	}
	return "", false
}

// Generate runs one inference call on the named backend, serializing access
// to it. The caller must have resolved the mode to a loaded backend first.
func (r *Registry) Generate(ctx context.Context, mode Mode, req GenerateRequest) ([]byte, error) {
	entry, ok := r.entries[mode]
	if !ok {
		return nil, ErrNoBackendAvailable
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.backend.Generate(ctx, req)
}
