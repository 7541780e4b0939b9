package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
)

// ContentStore defines the interface for published content persistence.
type ContentStore interface {
	// Save persists a newly published item. It handles domain validation
	// internally and returns ErrInvalidEntity wrapping the validation
	// failure if the item is invalid.
	Save(ctx context.Context, content *domain.PublishedContent) error

	// List retrieves all published items, most recent first.
	List(ctx context.Context) ([]*domain.PublishedContent, error)

	// GetByID retrieves a published item by its unique ID.
	// Returns ErrContentNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error)

	// RecordView increments the view counter and recomputes the derived
	// engagement metrics, returning the updated item.
	// Returns ErrContentNotFound if the item does not exist.
	RecordView(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error)

	// RecordShare increments the share counter and recomputes the derived
	// engagement metrics, returning the updated item.
	// Returns ErrContentNotFound if the item does not exist.
	RecordShare(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error)

	// Delete removes a published item.
	// Returns ErrContentNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
