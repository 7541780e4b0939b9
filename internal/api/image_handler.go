package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AdrianTrill/travel-content-hub/internal/api/shared"
	"github.com/AdrianTrill/travel-content-hub/internal/imagegen"
)

// ImageService is the part of the image orchestrator the handler needs.
type ImageService interface {
	Generate(ctx context.Context, fields imagegen.PromptFields, mode imagegen.Mode, width, height int) imagegen.Result
}

// ImageHandler handles the image-generation HTTP requests.
type ImageHandler struct {
	service   ImageService
	validator *validator.Validate
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(service ImageService) *ImageHandler {
	return &ImageHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GenerateImage handles POST /api/v1/generate-image requests.
// Generation failures are a 200 with the error field set: the prompt and alt
// text are still useful to the client even without pixels.
func (h *ImageHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result := h.service.Generate(r.Context(), imagegen.PromptFields{
		Title:            req.Title,
		Content:          req.Content,
		Destination:      req.Destination,
		Tags:             req.Tags,
		Neighborhoods:    req.Neighborhoods,
		RecommendedSpots: req.RecommendedSpots,
		BestTimes:        req.BestTimes,
	}, imagegen.Mode(req.Mode), req.Width, req.Height)

	response := GenerateImageResponse{
		ImagePrompt: result.Prompt,
		AltText:     result.AltText,
		ImageURL:    result.ImageURL,
	}
	if result.Err != nil {
		response.Error = result.Err.Error()
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
