package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// fakeContentStore is an in-memory store.ContentStore for handler tests.
type fakeContentStore struct {
	items []*domain.PublishedContent
}

func (f *fakeContentStore) Save(ctx context.Context, content *domain.PublishedContent) error {
	if err := content.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	f.items = append([]*domain.PublishedContent{content}, f.items...)
	return nil
}

func (f *fakeContentStore) List(ctx context.Context) ([]*domain.PublishedContent, error) {
	return f.items, nil
}

func (f *fakeContentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, store.ErrContentNotFound
}

func (f *fakeContentStore) RecordView(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	item, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.RecordView()
	return item, nil
}

func (f *fakeContentStore) RecordShare(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	item, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.RecordShare()
	return item, nil
}

func (f *fakeContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrContentNotFound
}

// historyRouter mounts the handler under the same routes the server uses so
// URL parameters resolve.
func historyRouter(handler *HistoryHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/content", handler.PublishContent)
	r.Get("/content", handler.ListContent)
	r.Post("/content/{id}/view", handler.RecordView)
	r.Post("/content/{id}/share", handler.RecordShare)
	r.Delete("/content/{id}", handler.DeleteContent)
	return r
}

func seedContent(t *testing.T, s *fakeContentStore) *domain.PublishedContent {
	t.Helper()
	content, err := domain.NewPublishedContent("Lisbon", domain.Suggestion{
		Title:   "Hidden Alfama",
		Content: "Climb at dawn.",
		Type:    "Blog Post",
	}, "")
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), content))
	return content
}

func TestPublishContent(t *testing.T) {
	fake := &fakeContentStore{}
	router := historyRouter(NewHistoryHandler(fake))

	body := `{"destination":"Lisbon","suggestion":{"title":"T","content":"C","type":"Blog Post"}}`
	req := httptest.NewRequest(http.MethodPost, "/content", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PublishedContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Lisbon", resp.Destination)
	assert.Zero(t, resp.Views)
	require.Len(t, fake.items, 1)
}

func TestPublishContentInvalidSuggestion(t *testing.T) {
	router := historyRouter(NewHistoryHandler(&fakeContentStore{}))

	body := `{"destination":"Lisbon","suggestion":{"title":"","content":""}}`
	req := httptest.NewRequest(http.MethodPost, "/content", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContent(t *testing.T) {
	fake := &fakeContentStore{}
	seedContent(t, fake)
	router := historyRouter(NewHistoryHandler(fake))

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ContentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Hidden Alfama", resp.Content[0].Suggestion.Title)
}

func TestRecordViewAndShare(t *testing.T) {
	fake := &fakeContentStore{}
	published := seedContent(t, fake)
	router := historyRouter(NewHistoryHandler(fake))

	req := httptest.NewRequest(http.MethodPost, "/content/"+published.ID.String()+"/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PublishedContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Views)
	assert.InDelta(t, 9.1, resp.EngagementRate, 1e-9)

	req = httptest.NewRequest(http.MethodPost, "/content/"+published.ID.String()+"/share", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Shares)
}

func TestRecordViewNotFound(t *testing.T) {
	router := historyRouter(NewHistoryHandler(&fakeContentStore{}))

	req := httptest.NewRequest(http.MethodPost, "/content/"+uuid.NewString()+"/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordViewInvalidID(t *testing.T) {
	router := historyRouter(NewHistoryHandler(&fakeContentStore{}))

	req := httptest.NewRequest(http.MethodPost, "/content/not-a-uuid/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteContent(t *testing.T) {
	fake := &fakeContentStore{}
	published := seedContent(t, fake)
	router := historyRouter(NewHistoryHandler(fake))

	req := httptest.NewRequest(http.MethodDelete, "/content/"+published.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, fake.items)
}
