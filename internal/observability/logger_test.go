package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/lcarotenuto/questionario-ampasilava/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var text bytes.Buffer
	logger := NewLogger(&config.Config{LogLevel: "debug", LogFormat: "text"}, &text)
	_, isText := logger.Handler().(*slog.TextHandler)
	assert.True(t, isText)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	slog.Info("record saved", "taratassi", "AMP-1")
	assert.Contains(t, text.String(), "taratassi=AMP-1")

	var js bytes.Buffer
	logger = NewLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, &js)
	_, isJSON := logger.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	logger.Warn("breaker open")
	assert.Contains(t, js.String(), `"msg":"breaker open"`)
}
