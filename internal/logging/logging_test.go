package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLogging_PlainModeHasNoEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug, false)
	logger.Info("evaluating", "file", "main.weave")
	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "evaluating")
	assert.Contains(t, out, "file=main.weave")
	assert.NotContains(t, out, "\x1b[")
}

func TestLogging_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, false)
	logger.Debug("should not appear")
	logger.Info("also should not appear")
	logger.Warn("this appears")
	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "this appears")
}

func TestLogging_ColorModeWritesEscapeCodes(t *testing.T) {
	// fatih/color auto-detects terminal-ness from os.Stdout, not from the
	// writer passed to Fprintf, so force it on for this assertion and
	// restore afterward.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug, true)
	logger.Error("boom")
	assert.Contains(t, buf.String(), "\x1b[")
}
