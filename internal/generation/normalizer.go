package generation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
)

// maxFallbackContentChars caps the raw text carried into a synthesized
// fallback suggestion.
const maxFallbackContentChars = 1200

// wordsPerMinute is the reading speed used to derive reading-time labels.
const wordsPerMinute = 200

// FallbackSpec carries the request fields needed to synthesize a fallback
// suggestion when the model output cannot be parsed.
type FallbackSpec struct {
	Destination string
	ContentType string
}

// suggestionPayload is the wire shape of one suggestion as the model emits
// it. Every field is optional here; repair fills the gaps.
type suggestionPayload struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Type             string   `json:"type"`
	ReadingTime      string   `json:"reading_time"`
	Quality          string   `json:"quality"`
	Tags             []string `json:"tags"`
	Highlights       []string `json:"highlights"`
	Neighborhoods    []string `json:"neighborhoods"`
	RecommendedSpots []string `json:"recommended_spots"`
	PriceRange       *string  `json:"price_range"`
	BestTimes        *string  `json:"best_times"`
	Cautions         *string  `json:"cautions"`
}

// NormalizeSuggestions recovers a non-empty suggestion list from raw model
// output. It never fails: fenced code markers are stripped, strict parsing
// is attempted, then a bracket-scan recovery, and if nothing usable remains
// a single fallback suggestion is synthesized from the raw text. Partial
// entries are repaired rather than rejected.
func NormalizeSuggestions(raw string, spec FallbackSpec) []domain.Suggestion {
	cleaned := stripCodeFences(raw)

	var envelope struct {
		Suggestions []suggestionPayload `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		if snippet, ok := scanObject(cleaned); ok {
			envelope.Suggestions = nil
			if err := json.Unmarshal([]byte(snippet), &envelope); err != nil {
				envelope.Suggestions = nil
			}
		}
	}

	if len(envelope.Suggestions) == 0 {
		return []domain.Suggestion{fallbackSuggestion(raw, spec)}
	}

	suggestions := make([]domain.Suggestion, 0, len(envelope.Suggestions))
	for _, payload := range envelope.Suggestions {
		suggestions = append(suggestions, repairSuggestion(payload, spec))
	}
	return suggestions
}

// NormalizeSuggestion recovers a single suggestion from raw model output,
// for the custom-content operation where the model returns one object
// instead of a list. Never fails.
func NormalizeSuggestion(raw string, spec FallbackSpec) domain.Suggestion {
	cleaned := stripCodeFences(raw)

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		if snippet, ok := scanObject(cleaned); ok {
			if err := json.Unmarshal([]byte(snippet), &payload); err != nil {
				payload = suggestionPayload{}
			}
		}
	}

	if payload.Title == "" && payload.Content == "" {
		return fallbackSuggestion(raw, spec)
	}
	return repairSuggestion(payload, spec)
}

// NormalizePlaces recovers a place list from raw model output. Unlike the
// suggestion path there is no fallback synthesis: an unparseable response
// degrades to an empty list, which is a valid search outcome.
func NormalizePlaces(raw string) []domain.Place {
	cleaned := stripCodeFences(raw)

	var envelope struct {
		Places []domain.Place `json:"places"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		if snippet, ok := scanObject(cleaned); ok {
			envelope.Places = nil
			if err := json.Unmarshal([]byte(snippet), &envelope); err != nil {
				envelope.Places = nil
			}
		}
	}

	places := make([]domain.Place, 0, len(envelope.Places))
	for _, place := range envelope.Places {
		if place.Highlights == nil {
			place.Highlights = []string{}
		}
		if place.Categories == nil {
			place.Categories = []string{}
		}
		places = append(places, place)
	}
	return places
}

// stripCodeFences removes a leading and trailing three-backtick marker
// (with optional language tag) from the text, trimming surrounding
// whitespace.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimPrefix(text, "json")
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
	}

	return strings.TrimSpace(text)
}

// scanObject extracts the substring between the first '{' and the last '}'.
// Returns false when no such span exists.
func scanObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// fallbackSuggestion synthesizes exactly one suggestion from unusable raw
// output, so the caller always receives a schema-complete result.
func fallbackSuggestion(raw string, spec FallbackSpec) domain.Suggestion {
	titleType := spec.ContentType
	if titleType == "" {
		titleType = "Content"
	}

	contentType := spec.ContentType
	if contentType == "" {
		contentType = domain.DefaultContentType
	}

	content := strings.TrimSpace(raw)
	if runes := []rune(content); len(runes) > maxFallbackContentChars {
		content = string(runes[:maxFallbackContentChars])
	}

	readingTime := "45 sec"
	if strings.HasSuffix(strings.ToLower(spec.ContentType), "post") {
		words := len(strings.Fields(raw))
		minutes := int(math.Max(1, math.Round(float64(words)/wordsPerMinute)))
		readingTime = fmt.Sprintf("%d min", minutes)
	}

	return domain.Suggestion{
		Title:            fmt.Sprintf("%s for %s", titleType, spec.Destination),
		Content:          content,
		Type:             contentType,
		ReadingTime:      readingTime,
		Quality:          domain.QualityHigh,
		Tags:             []string{spec.Destination, "Travel", "Adventure"},
		Highlights:       []string{},
		Neighborhoods:    []string{},
		RecommendedSpots: []string{},
	}
}

// repairSuggestion applies field-level defaulting to a parsed entry: empty
// lists for absent list fields, request-derived defaults for the required
// labels. Optional scalars stay nil when absent.
func repairSuggestion(payload suggestionPayload, spec FallbackSpec) domain.Suggestion {
	suggestion := domain.Suggestion{
		Title:            payload.Title,
		Content:          payload.Content,
		Type:             payload.Type,
		ReadingTime:      payload.ReadingTime,
		Quality:          payload.Quality,
		Tags:             payload.Tags,
		Highlights:       payload.Highlights,
		Neighborhoods:    payload.Neighborhoods,
		RecommendedSpots: payload.RecommendedSpots,
		PriceRange:       payload.PriceRange,
		BestTimes:        payload.BestTimes,
		Cautions:         payload.Cautions,
	}

	if suggestion.Title == "" {
		titleType := spec.ContentType
		if titleType == "" {
			titleType = "Content"
		}
		suggestion.Title = fmt.Sprintf("%s for %s", titleType, spec.Destination)
	}
	if suggestion.Type == "" {
		if spec.ContentType != "" {
			suggestion.Type = spec.ContentType
		} else {
			suggestion.Type = domain.DefaultContentType
		}
	}
	if suggestion.ReadingTime == "" {
		suggestion.ReadingTime = "3 min"
	}
	if suggestion.Quality != domain.QualityHigh && suggestion.Quality != domain.QualityMedium {
		suggestion.Quality = domain.QualityHigh
	}
	if suggestion.Tags == nil {
		suggestion.Tags = []string{}
	}
	if suggestion.Highlights == nil {
		suggestion.Highlights = []string{}
	}
	if suggestion.Neighborhoods == nil {
		suggestion.Neighborhoods = []string{}
	}
	if suggestion.RecommendedSpots == nil {
		suggestion.RecommendedSpots = []string{}
	}

	return suggestion
}
