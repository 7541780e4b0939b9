package domain

import "errors"

// Quality labels assigned to generated suggestions.
const (
	QualityHigh   = "High"
	QualityMedium = "Medium"
)

// DefaultContentType is used when a request does not specify a content type.
const DefaultContentType = "Blog Post"

// Common validation errors for Suggestion
var (
	ErrEmptySuggestionTitle   = errors.New("suggestion title cannot be empty")
	ErrEmptySuggestionContent = errors.New("suggestion content cannot be empty")
)

// Suggestion is a single piece of generated travel content. Title, Content,
// Type, ReadingTime and Quality are always populated after normalization;
// the remaining fields are optional enrichments the model may or may not
// return. List fields are never nil after normalization, optional scalars
// stay nil when absent.
type Suggestion struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Type             string   `json:"type"`
	ReadingTime      string   `json:"reading_time"`
	Quality          string   `json:"quality"`
	Tags             []string `json:"tags"`
	Highlights       []string `json:"highlights"`
	Neighborhoods    []string `json:"neighborhoods"`
	RecommendedSpots []string `json:"recommended_spots"`
	PriceRange       *string  `json:"price_range,omitempty"`
	BestTimes        *string  `json:"best_times,omitempty"`
	Cautions         *string  `json:"cautions,omitempty"`
}

// Validate checks that the fields required for publication are present.
func (s *Suggestion) Validate() error {
	if s.Title == "" {
		return ErrEmptySuggestionTitle
	}
	if s.Content == "" {
		return ErrEmptySuggestionContent
	}
	return nil
}
