package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, slog.LevelWarn)

	l.Info("dropped")
	assert.Empty(t, buf.String(), "info records must be filtered at warn level")

	l.Warn("kept", slog.String("account", "1234567890"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "1234567890", entry["account"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := logger.New(&buf, slog.LevelDebug).With(slog.String("trace_id", "abc"))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("stored logger is returned", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContext(ctx))
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("fallback used when absent", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("default used when fallback nil", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})
}

func TestTestLogBuffer(t *testing.T) {
	buf, l := logger.NewTestLogger(t)

	l.Debug("first", slog.String("component", "numbers"))
	l.Info("second", slog.Int("attempt", 2))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "DEBUG", entries[0]["level"])

	logger.AssertLogContains(t, buf, "second")
	logger.AssertLogField(t, buf, "component", "numbers")
	logger.AssertLogField(t, buf, "attempt", float64(2))
}
