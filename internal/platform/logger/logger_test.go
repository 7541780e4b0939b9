package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianTrill/travel-content-hub/internal/config"
)

func TestSetup(t *testing.T) {
	// Restore the default logger after each Setup call
	oldLogger := slog.Default()
	defer slog.SetDefault(oldLogger)

	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
	}{
		{name: "debug level", logLevel: "debug", debugEnabled: true},
		{name: "info level", logLevel: "info", debugEnabled: false},
		{name: "warn level", logLevel: "warn", debugEnabled: false},
		{name: "error level", logLevel: "error", debugEnabled: false},
		{name: "case insensitive", logLevel: "DEBUG", debugEnabled: true},
		{name: "invalid level falls back to info", logLevel: "verbose", debugEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.debugEnabled, logger.Enabled(context.Background(), slog.LevelDebug))
			// Error level is always enabled
			assert.True(t, logger.Enabled(context.Background(), slog.LevelError))

			// Setup installs the logger as the process default
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	scoped := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = WithLogger(ctx, scoped)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, scoped, got)
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	got := FromContextOrDefault(context.Background(), fallback)
	assert.Same(t, fallback, got)

	got = FromContextOrDefault(context.Background(), nil)
	assert.Same(t, slog.Default(), got)

	scoped := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
