package logging

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySinkCapturesAttrs(t *testing.T) {
	sink := NewMemorySink(10, slog.LevelInfo)
	logger := slog.New(sink).With("model", "fake").WithGroup("poem")

	logger.Debug("hidden")
	logger.Info("poem saved", "timestamp", 42)

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, slog.LevelInfo, entries[0].Level)
	assert.Equal(t, "poem saved model=fake poem.timestamp=42", entries[0].Message)
}

func TestMemorySinkBounded(t *testing.T) {
	sink := NewMemorySink(3, slog.LevelDebug)
	logger := slog.New(sink)
	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		logger.Info(msg)
	}

	entries := sink.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Message)
	assert.Equal(t, "e", entries[2].Message)
}

func TestMemorySinkRender(t *testing.T) {
	sink := NewMemorySink(0, nil)
	assert.Equal(t, "(no log entries yet)", sink.Render(80))

	slog.New(sink).Error(strings.Repeat("x", 100))
	lines := strings.Split(strings.TrimRight(sink.Render(40), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERR]")
	assert.True(t, strings.HasSuffix(lines[0], "..."))
	assert.Len(t, []rune(lines[0]), 38)
}
