package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrContentNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantErr: store.ErrContentNotFound,
		},
		{
			name:    "check violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23514", ConstraintName: "views_non_negative"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "destination"},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	unknown := errors.New("connection reset")
	assert.Equal(t, unknown, MapError(unknown))
}
