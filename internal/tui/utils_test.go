package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleValue(t *testing.T) {
	values := []string{"a", "b", "c"}

	assert.Equal(t, "b", cycleValue(values, "a", 1))
	assert.Equal(t, "a", cycleValue(values, "c", 1))
	assert.Equal(t, "c", cycleValue(values, "a", -1))
	assert.Equal(t, "a", cycleValue(values, "zzz", 1))
	assert.Equal(t, "x", cycleValue(nil, "x", 1))
}

func TestPoemMarkdownKeepsLineBreaks(t *testing.T) {
	got := poemMarkdown("Thu", "dòng một\ndòng hai\n\ndòng ba")
	assert.Equal(t, "# Thu\n\ndòng một  \ndòng hai\n\ndòng ba\n", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ngắn", truncate("ngắn", 10))
	assert.Equal(t, "Bài t...", truncate("Bài thơ dài", 8))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "short", wrapText("short", 0))
}
