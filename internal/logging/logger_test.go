package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"JSON Info", "json", "info"},
		{"JSON Debug", "json", "debug"},
		{"Console Warn", "console", "warn"},
		{"Text Error", "text", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(Config{Format: tt.format, Level: tt.level, Output: &buf})
			require.NoError(t, err)
			logger.Error().Msg("heartbeat")
			assert.Contains(t, buf.String(), "heartbeat")
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Format: "json", Level: "verbose"})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	logger.Info().Str("method", "prim").Int64("weight", 6).Msg("mst computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mst computed", entry["message"])
	assert.Equal(t, "prim", entry["method"])
	assert.EqualValues(t, 6, entry["weight"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("debug dropped")
	logger.Info().Msg("info dropped")
	logger.Warn().Msg("warn kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "warn kept")
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	logger.Error().Msg("nowhere")
}

func TestNewLogger_TextIsConsoleAlias(t *testing.T) {
	for _, format := range []string{"console", "text"} {
		var buf bytes.Buffer
		logger, err := NewLogger(Config{Format: format, Level: "info", Output: &buf})
		require.NoError(t, err)
		logger.Info().Msg("aliased")

		assert.Contains(t, buf.String(), "aliased", format)
		assert.False(t, json.Valid(buf.Bytes()), "%s output should not be JSON", format)
	}
}
