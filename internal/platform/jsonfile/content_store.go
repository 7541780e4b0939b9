// Package jsonfile implements the published content store on a single JSON
// file. It is the default store; the postgres implementation is selected
// through configuration for deployments that already run a database.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/AdrianTrill/travel-content-hub/internal/domain"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// ContentStore keeps the full published list in memory and rewrites the file
// after every mutation. The mutex serializes all access; the file is only
// read once, at construction.
type ContentStore struct {
	mu     sync.Mutex
	path   string
	items  []*domain.PublishedContent
	logger *slog.Logger
}

// Compile-time check that ContentStore implements store.ContentStore.
var _ store.ContentStore = (*ContentStore)(nil)

// NewContentStore loads the store file, creating an empty store when the
// file does not exist yet. If logger is nil, the default logger is used.
func NewContentStore(path string, logger *slog.Logger) (*ContentStore, error) {
	if path == "" {
		return nil, errors.New("content store path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ContentStore{
		path:   path,
		items:  []*domain.PublishedContent{},
		logger: logger.With(slog.String("component", "jsonfile_content_store")),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read content store file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			return nil, fmt.Errorf("failed to parse content store file: %w", err)
		}
	}

	s.logger.Info("content store loaded",
		slog.String("path", path),
		slog.Int("items", len(s.items)))
	return s, nil
}

// Save validates and prepends the item, keeping the list most recent first.
func (s *ContentStore) Save(ctx context.Context, content *domain.PublishedContent) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]*domain.PublishedContent{content}, s.items...)
	if err := s.persist(); err != nil {
		s.items = s.items[1:]
		return err
	}
	return nil
}

// List returns a copy of the published list, most recent first.
func (s *ContentStore) List(ctx context.Context) ([]*domain.PublishedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.PublishedContent, len(s.items))
	for i, item := range s.items {
		copied := *item
		out[i] = &copied
	}
	return out, nil
}

// GetByID returns the item with the given ID.
func (s *ContentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.find(id)
	if err != nil {
		return nil, err
	}
	copied := *item
	return &copied, nil
}

// RecordView increments the view counter and persists the updated metrics.
func (s *ContentStore) RecordView(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	return s.update(id, (*domain.PublishedContent).RecordView)
}

// RecordShare increments the share counter and persists the updated metrics.
func (s *ContentStore) RecordShare(ctx context.Context, id uuid.UUID) (*domain.PublishedContent, error) {
	return s.update(id, (*domain.PublishedContent).RecordShare)
}

// Delete removes the item with the given ID.
func (s *ContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return store.ErrContentNotFound
}

func (s *ContentStore) update(id uuid.UUID, apply func(*domain.PublishedContent)) (*domain.PublishedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.find(id)
	if err != nil {
		return nil, err
	}

	apply(item)
	if err := s.persist(); err != nil {
		return nil, err
	}
	copied := *item
	return &copied, nil
}

func (s *ContentStore) find(id uuid.UUID) (*domain.PublishedContent, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, store.ErrContentNotFound
}

// persist writes the whole list to a temp file and renames it over the store
// file so a crash mid-write cannot truncate existing data. Callers must hold
// the mutex.
func (s *ContentStore) persist() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write content store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace content store file: %w", err)
	}
	return nil
}
