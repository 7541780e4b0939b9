package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
)

func validSuggestion() domain.Suggestion {
	return domain.Suggestion{
		Title:   "Hidden Alfama",
		Content: "Climb the miradouros at dawn.",
		Type:    "Blog Post",
	}
}

func TestNewPublishedContent(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "data:image/png;base64,cG5n")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, content.ID)
	assert.Equal(t, "Lisbon", content.Destination)
	assert.Zero(t, content.Views)
	assert.Zero(t, content.Shares)
	assert.Zero(t, content.EngagementRate)
	assert.Zero(t, content.GrowthRate)
	assert.False(t, content.CreatedAt.IsZero())
}

func TestNewPublishedContentValidation(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		suggestion  domain.Suggestion
		wantErr     error
	}{
		{
			name:        "empty destination",
			destination: "",
			suggestion:  validSuggestion(),
			wantErr:     domain.ErrEmptyContentDestination,
		},
		{
			name:        "empty suggestion title",
			destination: "Lisbon",
			suggestion:  domain.Suggestion{Content: "body"},
			wantErr:     domain.ErrEmptySuggestionTitle,
		},
		{
			name:        "empty suggestion content",
			destination: "Lisbon",
			suggestion:  domain.Suggestion{Title: "title"},
			wantErr:     domain.ErrEmptySuggestionContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPublishedContent(tt.destination, tt.suggestion, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordViewRates(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "")
	require.NoError(t, err)

	content.RecordView()

	assert.Equal(t, 1, content.Views)
	// 100 * 1 / (1 + 10) rounded to one decimal.
	assert.InDelta(t, 9.1, content.EngagementRate, 1e-9)
	assert.Zero(t, content.GrowthRate)
}

func TestGrowthRateStartsAfterTenViews(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		content.RecordView()
	}
	assert.Zero(t, content.GrowthRate)

	content.RecordView()
	// 11 views: 11/10*5 = 5.5.
	assert.Equal(t, 11, content.Views)
	assert.InDelta(t, 5.5, content.GrowthRate, 1e-9)
}

func TestGrowthRateCapped(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "")
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		content.RecordView()
	}

	assert.InDelta(t, 25.0, content.GrowthRate, 1e-9)
}

func TestRecordShareAffectsEngagementOnly(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "")
	require.NoError(t, err)

	content.RecordShare()

	assert.Equal(t, 1, content.Shares)
	assert.InDelta(t, 9.1, content.EngagementRate, 1e-9)
	assert.Zero(t, content.GrowthRate)

	// Shares never push the growth rate even past the view threshold.
	for i := 0; i < 10; i++ {
		content.RecordShare()
	}
	assert.Zero(t, content.GrowthRate)
}

func TestRecordViewAdvancesUpdatedAt(t *testing.T) {
	content, err := domain.NewPublishedContent("Lisbon", validSuggestion(), "")
	require.NoError(t, err)

	before := content.UpdatedAt
	content.RecordView()

	assert.False(t, content.UpdatedAt.Before(before))
}
