package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
)

// Image-path failures surface as the Err field of a Result, never as a
// returned error.
var (
	ErrNoBackendAvailable = errors.New("no image generation backend available")
	ErrGenerationFailed   = errors.New("image generation failed")
)

// Default generation size when the caller does not specify one.
const (
	defaultWidth  = 1792
	defaultHeight = 1024
)

// Sampling parameters per mode. Turbo ignores classifier-free guidance.
const (
	turboSteps      = 4
	turboGuidance   = 0.0
	qualitySteps    = 32
	qualityGuidance = 6.0
	refinerSteps    = 30
	refinerGuidance = 5.5
)

// Result is the complete outcome of one image request. Prompt and AltText
// are always populated; ImageURL is a base64 data URL when generation
// succeeded, and Err carries the failure otherwise.
type Result struct {
	Prompt   string
	AltText  string
	ImageURL string
	Err      error
}

// Orchestrator composes prompt synthesis, pipeline selection, and the
// diffusion backends into one request/response cycle.
type Orchestrator struct {
	registry *Registry
	device   Device
	logger   *slog.Logger
}

// NewOrchestrator creates an Orchestrator. If logger is nil, the default
// logger is used.
func NewOrchestrator(registry *Registry, device Device, logger *slog.Logger) *Orchestrator {
	if registry == nil {
		panic("imagegen: NewOrchestrator called with nil registry")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		registry: registry,
		device:   device,
		logger:   logger.With(slog.String("component", "image_orchestrator")),
	}
}

// Generate synthesizes the prompt, picks a backend, and produces an image.
// It never returns an error: failures are reported in Result.Err with the
// prompt and alt text still populated so the caller can display them.
func (o *Orchestrator) Generate(ctx context.Context, fields PromptFields, mode Mode, width, height int) Result {
	prompt := Synthesize(fields)
	result := Result{Prompt: prompt.Text, AltText: prompt.AltText}

	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	width, height = o.device.ClampSize(width, height)

	if mode == "" {
		mode = ModeQuality
	}
	resolved, ok := o.registry.Resolve(mode)
	if !ok {
		result.Err = ErrNoBackendAvailable
		return result
	}

	o.logger.InfoContext(ctx, "generating image",
		slog.String("mode", string(resolved)),
		slog.Int("width", width),
		slog.Int("height", height))

	var (
		image []byte
		err   error
	)
	switch resolved {
	case ModeTurbo:
		image, err = o.registry.Generate(ctx, ModeTurbo, GenerateRequest{
			Prompt:        prompt.Text,
			Width:         width,
			Height:        height,
			Steps:         turboSteps,
			GuidanceScale: turboGuidance,
		})
	default:
		image, err = o.generateQuality(ctx, prompt.Text, width, height)
	}
	if err != nil {
		o.logger.ErrorContext(ctx, "image generation failed",
			slog.String("mode", string(resolved)),
			slog.String("error", err.Error()))
		result.Err = fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		return result
	}

	result.ImageURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)
	return result
}

// generateQuality runs the high-quality backend and, when the refinement
// backend also loaded, applies it as a second pass. A refinement failure is
// logged and the unrefined image is returned as success.
func (o *Orchestrator) generateQuality(ctx context.Context, prompt string, width, height int) ([]byte, error) {
	image, err := o.registry.Generate(ctx, ModeQuality, GenerateRequest{
		Prompt:        prompt,
		Width:         width,
		Height:        height,
		Steps:         qualitySteps,
		GuidanceScale: qualityGuidance,
	})
	if err != nil {
		return nil, err
	}

	if o.registry.State(ModeRefiner) != StateLoaded {
		return image, nil
	}

	refined, err := o.registry.Generate(ctx, ModeRefiner, GenerateRequest{
		Prompt:        prompt,
		Width:         width,
		Height:        height,
		Steps:         refinerSteps,
		GuidanceScale: refinerGuidance,
		SourceImage:   image,
	})
	if err != nil {
		o.logger.WarnContext(ctx, "refiner failed, using base result",
			slog.String("error", err.Error()))
		return image, nil
	}
	return refined, nil
}
