package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// PostgresContentStore implements store.ContentStore on a PostgreSQL
// database. The suggestion payload is stored as a JSONB column; the counters
// and derived rates live in their own columns so the list query stays cheap.
type PostgresContentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContentStore creates a PostgreSQL implementation of the
// ContentStore interface. The caller owns the database handle. If logger is
// nil, a default logger will be used.
func NewPostgresContentStore(db store.DBTX, logger *slog.Logger) *PostgresContentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContentStore{
		db:     db,
		logger: logger.With(slog.String("component", "content_store")),
	}
}

// Ensure PostgresContentStore implements store.ContentStore
var _ store.ContentStore = (*PostgresContentStore)(nil)

const contentColumns = `id, destination, suggestion, image_url, views, shares,
	engagement_rate, growth_rate, created_at, updated_at`

// Save implements store.ContentStore.Save
func (s *PostgresContentStore) Save(ctx context.Context, content *domain.PublishedContent) error {
	if err := content.Validate(); err != nil {
		s.logger.Warn("content validation failed during save",
			slog.String("error", err.Error()),
			slog.String("content_id", content.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	suggestion, err := json.Marshal(content.Suggestion)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestion: %w", err)
	}

	query := `
		INSERT INTO published_content
			(id, destination, suggestion, image_url, views, shares,
			 engagement_rate, growth_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(ctx, query,
		content.ID,
		content.Destination,
		suggestion,
		content.ImageURL,
		content.Views,
		content.Shares,
		content.EngagementRate,
		content.GrowthRate,
		content.CreatedAt,
		content.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to save published content",
			slog.String("error", err.Error()),
			slog.String("content_id", content.ID.String()))
		return MapError(err)
	}

	s.logger.Info("published content saved",
		slog.String("content_id", content.ID.String()),
		slog.String("destination", content.Destination))
	return nil
}

// List implements store.ContentStore.List
func (s *PostgresContentStore) List(ctx context.Context) ([]*domain.PublishedContent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM published_content
		ORDER BY created_at DESC
	`, contentColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []*domain.PublishedContent{}
	for rows.Next() {
		item, err := scanContent(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return items, nil
}

// GetByID implements store.ContentStore.GetByID
func (s *PostgresContentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM published_content
		WHERE id = $1
	`, contentColumns)

	return scanContent(s.db.QueryRowContext(ctx, query, id).Scan)
}

// RecordView implements store.ContentStore.RecordView
func (s *PostgresContentStore) RecordView(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	return s.updateCounters(ctx, id, (*domain.PublishedContent).RecordView)
}

// RecordShare implements store.ContentStore.RecordShare
func (s *PostgresContentStore) RecordShare(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	return s.updateCounters(ctx, id, (*domain.PublishedContent).RecordShare)
}

// Delete implements store.ContentStore.Delete
func (s *PostgresContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM published_content WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result); err != nil {
		return err
	}

	s.logger.Info("published content deleted", slog.String("content_id", id.String()))
	return nil
}

// updateCounters loads the item, applies the domain mutation so the derived
// rates are recomputed by the same code every store uses, and writes the
// counters back.
func (s *PostgresContentStore) updateCounters(
	ctx context.Context,
	id uuid.UUID,
	apply func(*domain.PublishedContent),
) (*domain.PublishedContent, error) {
	content, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(content)

	query := `
		UPDATE published_content
		SET views = $2, shares = $3, engagement_rate = $4, growth_rate = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		content.ID,
		content.Views,
		content.Shares,
		content.EngagementRate,
		content.GrowthRate,
		content.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	if err := CheckRowsAffected(result); err != nil {
		return nil, err
	}
	return content, nil
}

// scanContent reads one row into a PublishedContent. It takes the Scan
// function so it works for both sql.Row and sql.Rows.
func scanContent(scan func(dest ...any) error) (*domain.PublishedContent, error) {
	var (
		content    domain.PublishedContent
		suggestion []byte
	)
	err := scan(
		&content.ID,
		&content.Destination,
		&suggestion,
		&content.ImageURL,
		&content.Views,
		&content.Shares,
		&content.EngagementRate,
		&content.GrowthRate,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	if err := json.Unmarshal(suggestion, &content.Suggestion); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestion: %w", err)
	}
	return &content, nil
}
