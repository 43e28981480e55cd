package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupFiltersByLevel(t *testing.T) {
	defer Setup(os.Stderr, "")

	var buf bytes.Buffer
	log := Setup(&buf, "warn")
	log.Info("tower placed", "id", 1)
	assert.Empty(t, buf.String())

	slog.Warn("castle at 1")
	assert.Contains(t, buf.String(), "castle at 1")
	assert.Contains(t, buf.String(), "level=WARN")
}
