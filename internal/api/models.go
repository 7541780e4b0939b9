package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
)

// Common request/response structures

// GenerateContentRequest defines the payload for the content generation endpoint.
type GenerateContentRequest struct {
	Destination string `json:"destination" validate:"required,min=1"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Language    string `json:"language,omitempty"`
	Tone        string `json:"tone,omitempty"`
}

// GenerateContentResponse wraps the suggestion set produced for a request.
type GenerateContentResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// GenerateCustomContentRequest defines the payload for reworking existing
// content with a free-form instruction.
type GenerateCustomContentRequest struct {
	Prompt          string `json:"prompt" validate:"required,min=1"`
	Destination     string `json:"destination" validate:"required,min=1"`
	ContentType     string `json:"content_type,omitempty"`
	Language        string `json:"language,omitempty"`
	ExistingContent string `json:"existing_content,omitempty"`
}

// GenerateCustomContentResponse wraps the single reworked suggestion.
type GenerateCustomContentResponse struct {
	Suggestion domain.Suggestion `json:"suggestion"`
}

// SearchPlacesRequest defines the payload for the place search endpoint.
type SearchPlacesRequest struct {
	Query    string `json:"query" validate:"required,min=1"`
	Language string `json:"language,omitempty"`
}

// SearchPlacesResponse echoes the query alongside the place list. An empty
// list is a valid result.
type SearchPlacesResponse struct {
	SearchQuery string         `json:"search_query"`
	Places      []domain.Place `json:"places"`
}

// GenerateImageRequest defines the payload for the image generation endpoint.
// Only the destination is required; the remaining fields tighten the
// synthesized prompt.
type GenerateImageRequest struct {
	Title            string   `json:"title,omitempty"`
	Content          string   `json:"content,omitempty"`
	Destination      string   `json:"destination" validate:"required,min=1"`
	Tags             []string `json:"tags,omitempty"`
	Neighborhoods    []string `json:"neighborhoods,omitempty"`
	RecommendedSpots []string `json:"recommended_spots,omitempty"`
	BestTimes        string   `json:"best_times,omitempty"`
	Mode             string   `json:"mode,omitempty" validate:"omitempty,oneof=turbo quality"`
	Width            int      `json:"width,omitempty" validate:"gte=0"`
	Height           int      `json:"height,omitempty" validate:"gte=0"`
}

// GenerateImageResponse mirrors the image orchestrator's result. Prompt and
// alt text are always present; Error is set instead of ImageURL when pixel
// generation failed.
type GenerateImageResponse struct {
	ImagePrompt string `json:"image_prompt"`
	AltText     string `json:"alt_text"`
	ImageURL    string `json:"image_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// PublishContentRequest defines the payload for publishing a suggestion.
type PublishContentRequest struct {
	Destination string            `json:"destination" validate:"required,min=1"`
	Suggestion  domain.Suggestion `json:"suggestion" validate:"required"`
	ImageURL    string            `json:"image_url,omitempty"`
}

// PublishedContentResponse represents one published item with its counters.
type PublishedContentResponse struct {
	ID             uuid.UUID         `json:"id"`
	Destination    string            `json:"destination"`
	Suggestion     domain.Suggestion `json:"suggestion"`
	ImageURL       string            `json:"image_url,omitempty"`
	Views          int               `json:"views"`
	Shares         int               `json:"shares"`
	EngagementRate float64           `json:"engagement_rate"`
	GrowthRate     float64           `json:"growth_rate"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ContentListResponse wraps the published list, most recent first.
type ContentListResponse struct {
	Content []PublishedContentResponse `json:"content"`
}

// contentToResponse converts a domain.PublishedContent to its API shape.
func contentToResponse(content *domain.PublishedContent) PublishedContentResponse {
	return PublishedContentResponse{
		ID:             content.ID,
		Destination:    content.Destination,
		Suggestion:     content.Suggestion,
		ImageURL:       content.ImageURL,
		Views:          content.Views,
		Shares:         content.Shares,
		EngagementRate: content.EngagementRate,
		GrowthRate:     content.GrowthRate,
		CreatedAt:      content.CreatedAt,
		UpdatedAt:      content.UpdatedAt,
	}
}
