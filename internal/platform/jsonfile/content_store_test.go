package jsonfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

func newTestStore(t *testing.T) (*ContentStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	s, err := NewContentStore(path, nil)
	require.NoError(t, err)
	return s, path
}

func publish(t *testing.T, s *ContentStore, destination string) *domain.PublishedContent {
	t.Helper()
	content, err := domain.NewPublishedContent(destination, domain.Suggestion{
		Title:   "Title for " + destination,
		Content: "Body",
		Type:    "Blog Post",
	}, "")
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), content))
	return content
}

func TestSaveAndListMostRecentFirst(t *testing.T) {
	s, _ := newTestStore(t)

	first := publish(t, s, "Lisbon")
	second := publish(t, s, "Porto")

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestSaveRejectsInvalidContent(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Save(context.Background(), &domain.PublishedContent{})

	assert.True(t, errors.Is(err, store.ErrInvalidEntity))

	got, listErr := s.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, got)
}

func TestPersistenceAcrossReload(t *testing.T) {
	s, path := newTestStore(t)
	published := publish(t, s, "Lisbon")

	reloaded, err := NewContentStore(path, nil)
	require.NoError(t, err)

	got, err := reloaded.GetByID(context.Background(), published.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, "Title for Lisbon", got.Suggestion.Title)
}

func TestRecordViewUpdatesMetrics(t *testing.T) {
	s, _ := newTestStore(t)
	published := publish(t, s, "Lisbon")

	got, err := s.RecordView(context.Background(), published.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Views)
	// One interaction: 100 * 1 / 11 rounded to one decimal.
	assert.InDelta(t, 9.1, got.EngagementRate, 1e-9)
	assert.Zero(t, got.GrowthRate)
}

func TestRecordShareUpdatesMetrics(t *testing.T) {
	s, _ := newTestStore(t)
	published := publish(t, s, "Lisbon")

	got, err := s.RecordShare(context.Background(), published.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Shares)
	assert.InDelta(t, 9.1, got.EngagementRate, 1e-9)
}

func TestGrowthRateAfterTenViews(t *testing.T) {
	s, _ := newTestStore(t)
	published := publish(t, s, "Lisbon")

	var got *domain.PublishedContent
	var err error
	for i := 0; i < 11; i++ {
		got, err = s.RecordView(context.Background(), published.ID)
		require.NoError(t, err)
	}

	assert.Equal(t, 11, got.Views)
	assert.InDelta(t, 5.5, got.GrowthRate, 1e-9)
}

func TestNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	missing := uuid.New()

	_, err := s.GetByID(context.Background(), missing)
	assert.True(t, errors.Is(err, store.ErrContentNotFound))

	_, err = s.RecordView(context.Background(), missing)
	assert.True(t, errors.Is(err, store.ErrContentNotFound))

	err = s.Delete(context.Background(), missing)
	assert.True(t, errors.Is(err, store.ErrContentNotFound))
}

func TestDelete(t *testing.T) {
	s, path := newTestStore(t)
	published := publish(t, s, "Lisbon")

	require.NoError(t, s.Delete(context.Background(), published.ID))

	reloaded, err := NewContentStore(path, nil)
	require.NoError(t, err)
	got, err := reloaded.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
