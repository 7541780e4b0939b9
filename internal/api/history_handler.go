package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AdrianTrill/travel-content-hub/internal/api/shared"
	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// HistoryHandler handles the published content HTTP requests.
type HistoryHandler struct {
	store     store.ContentStore
	validator *validator.Validate
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(contentStore store.ContentStore) *HistoryHandler {
	return &HistoryHandler{
		store:     contentStore,
		validator: validator.New(),
	}
}

// PublishContent handles POST /api/v1/content requests
func (h *HistoryHandler) PublishContent(w http.ResponseWriter, r *http.Request) {
	var req PublishContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	content, err := domain.NewPublishedContent(req.Destination, req.Suggestion, req.ImageURL)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid content data")
		return
	}

	if err := h.store.Save(r.Context(), content); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, contentToResponse(content))
}

// ListContent handles GET /api/v1/content requests
func (h *HistoryHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := ContentListResponse{Content: make([]PublishedContentResponse, 0, len(items))}
	for _, item := range items {
		response.Content = append(response.Content, contentToResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// RecordView handles POST /api/v1/content/{id}/view requests
func (h *HistoryHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	content, err := h.store.RecordView(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contentToResponse(content))
}

// RecordShare handles POST /api/v1/content/{id}/share requests
func (h *HistoryHandler) RecordShare(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	content, err := h.store.RecordShare(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contentToResponse(content))
}

// DeleteContent handles DELETE /api/v1/content/{id} requests
func (h *HistoryHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// contentID parses the {id} URL parameter, writing the error response itself
// when the value is not a valid UUID.
func (h *HistoryHandler) contentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid content ID")
		return uuid.Nil, false
	}
	return id, true
}
