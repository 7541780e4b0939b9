package domain

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for PublishedContent
var (
	ErrEmptyContentID          = errors.New("published content ID cannot be empty")
	ErrEmptyContentDestination = errors.New("published content destination cannot be empty")
)

// PublishedContent is a suggestion the user decided to keep, together with
// its engagement counters. Views and shares are incremented through
// RecordView/RecordShare so the derived rates stay consistent with the
// counters.
type PublishedContent struct {
	ID             uuid.UUID  `json:"id"`
	Destination    string     `json:"destination"`
	Suggestion     Suggestion `json:"suggestion"`
	ImageURL       string     `json:"image_url,omitempty"`
	Views          int        `json:"views"`
	Shares         int        `json:"shares"`
	EngagementRate float64    `json:"engagement_rate"`
	GrowthRate     float64    `json:"growth_rate"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewPublishedContent creates a PublishedContent with a fresh ID, zeroed
// counters and UTC timestamps. Returns an error if validation fails.
func NewPublishedContent(destination string, suggestion Suggestion, imageURL string) (*PublishedContent, error) {
	content := &PublishedContent{
		ID:          uuid.New(),
		Destination: destination,
		Suggestion:  suggestion,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := content.Validate(); err != nil {
		return nil, err
	}

	return content, nil
}

// Validate checks the invariants required before storing the content.
func (c *PublishedContent) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyContentID
	}
	if c.Destination == "" {
		return ErrEmptyContentDestination
	}
	return c.Suggestion.Validate()
}

// RecordView increments the view counter and recomputes the derived rates.
func (c *PublishedContent) RecordView() {
	c.Views++
	c.recomputeRates()
	c.UpdatedAt = time.Now().UTC()
}

// RecordShare increments the share counter and recomputes the derived rates.
func (c *PublishedContent) RecordShare() {
	c.Shares++
	c.recomputeRates()
	c.UpdatedAt = time.Now().UTC()
}

// recomputeRates derives the engagement and growth rates from the counters.
// Engagement saturates towards 100% as interactions accumulate; growth only
// kicks in once the content has more than 10 views and is capped at 25%.
func (c *PublishedContent) recomputeRates() {
	interactions := float64(c.Views + c.Shares)
	c.EngagementRate = round1(100 * interactions / (interactions + 10))

	if c.Views > 10 {
		c.GrowthRate = round1(math.Min(25, float64(c.Views)/10*5))
	} else {
		c.GrowthRate = 0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
