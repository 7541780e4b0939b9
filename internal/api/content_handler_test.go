package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/generation"
)

// stubContentService returns canned results and records the last request.
type stubContentService struct {
	suggestions []domain.Suggestion
	suggestion  domain.Suggestion
	places      []domain.Place
	err         error

	lastRequest generation.ContentRequest
	lastPrompt  string
}

func (s *stubContentService) GenerateSuggestions(ctx context.Context, req generation.ContentRequest) ([]domain.Suggestion, error) {
	s.lastRequest = req
	return s.suggestions, s.err
}

func (s *stubContentService) GenerateCustomSuggestion(ctx context.Context, prompt string, req generation.ContentRequest, existingContent string) (domain.Suggestion, error) {
	s.lastRequest = req
	s.lastPrompt = prompt
	return s.suggestion, s.err
}

func (s *stubContentService) SearchPlaces(ctx context.Context, query, language string) ([]domain.Place, error) {
	return s.places, s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestGenerateContent(t *testing.T) {
	service := &stubContentService{
		suggestions: []domain.Suggestion{{Title: "T", Content: "C", Type: "Blog Post"}},
	}
	handler := NewContentHandler(service)

	w := postJSON(t, handler.GenerateContent,
		`{"destination":"Lisbon","content_type":"Blog Post","tone":"playful"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp GenerateContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "T", resp.Suggestions[0].Title)
	assert.Equal(t, "Lisbon", service.lastRequest.Destination)
	assert.Equal(t, "playful", service.lastRequest.Tone)
}

func TestGenerateContentMissingDestination(t *testing.T) {
	handler := NewContentHandler(&stubContentService{})

	w := postJSON(t, handler.GenerateContent, `{"content_type":"Blog Post"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Destination")
}

func TestGenerateContentMalformedBody(t *testing.T) {
	handler := NewContentHandler(&stubContentService{})

	w := postJSON(t, handler.GenerateContent, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateContentQuotaExceeded(t *testing.T) {
	service := &stubContentService{
		err: fmt.Errorf("%w: billing hard limit", generation.ErrQuotaExceeded),
	}
	handler := NewContentHandler(service)

	w := postJSON(t, handler.GenerateContent, `{"destination":"Lisbon"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "quota exceeded")
	// The upstream error detail never reaches the client.
	assert.NotContains(t, w.Body.String(), "billing")
}

func TestGenerateContentDispatchExhausted(t *testing.T) {
	service := &stubContentService{
		err: &generation.ExhaustedError{Tried: 3, LastErr: generation.ErrTransient},
	}
	handler := NewContentHandler(service)

	w := postJSON(t, handler.GenerateContent, `{"destination":"Lisbon"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateCustomContent(t *testing.T) {
	service := &stubContentService{
		suggestion: domain.Suggestion{Title: "Reworked", Content: "Body", Type: "Blog Post"},
	}
	handler := NewContentHandler(service)

	w := postJSON(t, handler.GenerateCustomContent,
		`{"prompt":"shorter please","destination":"Lisbon","existing_content":"old"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp GenerateCustomContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reworked", resp.Suggestion.Title)
	assert.Equal(t, "shorter please", service.lastPrompt)
}

func TestGenerateCustomContentRequiresPrompt(t *testing.T) {
	handler := NewContentHandler(&stubContentService{})

	w := postJSON(t, handler.GenerateCustomContent, `{"destination":"Lisbon"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPlacesEmptyResult(t *testing.T) {
	handler := NewContentHandler(&stubContentService{places: []domain.Place{}})

	w := postJSON(t, handler.SearchPlaces, `{"query":"Atlantis"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"search_query":"Atlantis","places":[]}`, w.Body.String())
}
