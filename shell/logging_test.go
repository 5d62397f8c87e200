package shell_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-coursework/shell"
)

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, shell.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, shell.ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, shell.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, shell.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, shell.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, shell.ParseLevel("verbose"))
}

func Test_NewLoggerWithLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := shell.NewLoggerWithLevel(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func Test_Palette_DisabledLeavesTextAlone(t *testing.T) {
	p := shell.NewPalette(false)

	assert.Equal(t, "text", p.Red("text"))
	assert.Equal(t, "text", p.Header("text"))
	assert.Equal(t, "===", p.Separator("=", 3))
}

func Test_Palette_EnabledWrapsText(t *testing.T) {
	p := shell.NewPalette(true)

	assert.Equal(t, shell.ColorRed+"text"+shell.ColorReset, p.Red("text"))
	assert.True(t, p.Enabled())
}
