package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdice/emojisummary/internal/config"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Str("glyphs", "✨🌙🌍").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"glyphs":"✨🌙🌍"`)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LoggingConfig{Level: "", Format: "json"}, &buf)

	l.Debug().Msg("debug")
	l.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojisummary.log")
	var buf bytes.Buffer
	l := New(config.LoggingConfig{Level: "info", Format: "console", File: path, MaxSizeMB: 1}, &buf)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"message":"to file"`))
	assert.Contains(t, buf.String(), "to file")
}

func TestForService(t *testing.T) {
	var buf bytes.Buffer
	l := ForService(New(config.LoggingConfig{Level: "info", Format: "json"}, &buf), &config.ObservabilityConfig{
		ServiceName: "emojisummary",
		Environment: "test",
	})
	l.Info().Msg("hi")
	assert.Contains(t, buf.String(), `"service":"emojisummary"`)
	assert.Contains(t, buf.String(), `"env":"test"`)
}
