package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AdrianTrill/travel-content-hub/internal/api/shared"
	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/generation"
)

// ContentService is the part of the generation service the content handler
// needs.
type ContentService interface {
	GenerateSuggestions(ctx context.Context, req generation.ContentRequest) ([]domain.Suggestion, error)
	GenerateCustomSuggestion(ctx context.Context, prompt string, req generation.ContentRequest, existingContent string) (domain.Suggestion, error)
	SearchPlaces(ctx context.Context, query, language string) ([]domain.Place, error)
}

// ContentHandler handles the text-generation HTTP requests.
type ContentHandler struct {
	service   ContentService
	validator *validator.Validate
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GenerateContent handles POST /api/v1/generate-content requests
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	suggestions, err := h.service.GenerateSuggestions(r.Context(), generation.ContentRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ContentType: req.ContentType,
		Language:    req.Language,
		Tone:        req.Tone,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateContentResponse{Suggestions: suggestions})
}

// GenerateCustomContent handles POST /api/v1/generate-custom-content requests
func (h *ContentHandler) GenerateCustomContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateCustomContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	suggestion, err := h.service.GenerateCustomSuggestion(r.Context(), req.Prompt, generation.ContentRequest{
		Destination: req.Destination,
		ContentType: req.ContentType,
		Language:    req.Language,
	}, req.ExistingContent)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateCustomContentResponse{Suggestion: suggestion})
}

// SearchPlaces handles POST /api/v1/search-places requests
func (h *ContentHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	var req SearchPlacesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	places, err := h.service.SearchPlaces(r.Context(), req.Query, req.Language)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SearchPlacesResponse{
		SearchQuery: req.Query,
		Places:      places,
	})
}
