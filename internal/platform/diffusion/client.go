// Package diffusion is the HTTP client for the local diffusion sidecar. The
// sidecar hosts the actual pipelines and exposes one probe and one generate
// endpoint per pipeline; this package adapts them to the imagegen.Backend
// interface.
package diffusion

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/AdrianTrill/travel-content-hub/internal/imagegen"
)

const defaultTimeoutSeconds = 300

// Config holds the sidecar connection settings. HalfPrecision follows the
// device class and is passed to the sidecar as the weight variant to load.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	HalfPrecision  bool
}

// Backend drives one named pipeline on the sidecar.
type Backend struct {
	httpClient *http.Client
	baseURL    string
	mode       imagegen.Mode
	variant    string
	logger     *slog.Logger
}

// NewBackend creates a Backend for one pipeline. If logger is nil, the
// default logger is used.
func NewBackend(cfg Config, mode imagegen.Mode, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	variant := ""
	if cfg.HalfPrecision {
		variant = "fp16"
	}

	return &Backend{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:    cfg.BaseURL,
		mode:       mode,
		variant:    variant,
		logger: logger.With(
			slog.String("component", "diffusion_backend"),
			slog.String("mode", string(mode))),
	}
}

// Loader returns a loader that probes the pipeline once and hands the backend
// to the registry. A probe failure marks the pipeline unavailable.
func Loader(cfg Config, mode imagegen.Mode, logger *slog.Logger) imagegen.BackendLoader {
	return func(ctx context.Context) (imagegen.Backend, error) {
		backend := NewBackend(cfg, mode, logger)
		if err := backend.Probe(ctx); err != nil {
			return nil, err
		}
		return backend, nil
	}
}

// Probe checks that the sidecar has this pipeline loaded.
func (b *Backend) Probe(ctx context.Context) error {
	url := fmt.Sprintf("%s/pipelines/%s", b.baseURL, b.mode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pipeline probe failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pipeline %s not loaded: status %d", b.mode, resp.StatusCode)
	}
	return nil
}

// generatePayload is the sidecar's generate request body. InitImage carries
// the base64 source image for the refinement pipeline only.
type generatePayload struct {
	Prompt        string  `json:"prompt"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Steps         int     `json:"num_inference_steps"`
	GuidanceScale float64 `json:"guidance_scale"`
	Variant       string  `json:"variant,omitempty"`
	InitImage     string  `json:"init_image,omitempty"`
}

// Generate runs one inference call and returns the PNG bytes the sidecar
// produced.
func (b *Backend) Generate(ctx context.Context, req imagegen.GenerateRequest) ([]byte, error) {
	payload := generatePayload{
		Prompt:        req.Prompt,
		Width:         req.Width,
		Height:        req.Height,
		Steps:         req.Steps,
		GuidanceScale: req.GuidanceScale,
		Variant:       b.variant,
	}
	if len(req.SourceImage) > 0 {
		payload.InitImage = base64.StdEncoding.EncodeToString(req.SourceImage)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate payload: %w", err)
	}

	url := fmt.Sprintf("%s/pipelines/%s/generate", b.baseURL, b.mode)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/png")

	start := time.Now()
	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	image, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pipeline %s returned status %d: %s", b.mode, resp.StatusCode, string(image))
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read generated image: %w", readErr)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("pipeline %s returned empty image data", b.mode)
	}

	b.logger.DebugContext(ctx, "image generated",
		slog.Int("size_bytes", len(image)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return image, nil
}
