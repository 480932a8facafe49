package poem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyInspiration(t *testing.T) {
	tests := []struct {
		input string
		want  InspirationKind
	}{
		{"", InspirationNone},
		{"   \n\t", InspirationNone},
		{"https://youtu.be/abc123", InspirationVideo},
		{"https://www.youtube.com/watch?v=abc123", InspirationVideo},
		{"https://m.YouTube.com/shorts/xyz", InspirationVideo},
		{"https://example.com/page", InspirationURL},
		{"  http://example.com  ", InspirationURL},
		{"https://example.com/?q=youtube", InspirationURL},
		{"mùa thu Hà Nội", InspirationText},
		{"example.com/page", InspirationText},
		{"https://", InspirationText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyInspiration(tt.input))
		})
	}
}

func TestToggleEmotion(t *testing.T) {
	opts := Options{Emotions: []string{"Vui tươi", "Hy vọng"}}

	opts.ToggleEmotion("Cô đơn")
	assert.Equal(t, []string{"Vui tươi", "Hy vọng", "Cô đơn"}, opts.Emotions)

	opts.ToggleEmotion("Vui tươi")
	assert.Equal(t, []string{"Hy vọng", "Cô đơn"}, opts.Emotions)
	assert.False(t, opts.HasEmotion("Vui tươi"))
	assert.True(t, opts.HasEmotion("Cô đơn"))
}

func TestToggleEmotionDoesNotAliasCaller(t *testing.T) {
	shared := []string{"a", "b", "c"}
	opts := Options{Emotions: shared}

	opts.ToggleEmotion("a")
	assert.Equal(t, []string{"b", "c"}, opts.Emotions)
	assert.Equal(t, []string{"a", "b", "c"}, shared)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
type: Lục Bát
lines: 12
custom_context: Bình minh trên biển
emotions: []
`))
	require.NoError(t, err)

	assert.Equal(t, "Lục Bát", opts.Type)
	assert.Equal(t, 12, opts.Lines)
	assert.Equal(t, "Bình minh trên biển", opts.CustomContext)
	assert.Empty(t, opts.Emotions)
	// untouched fields keep their defaults
	assert.Equal(t, "Lãng mạn", opts.Style)
	assert.Equal(t, "Người lớn", opts.Audience)
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audience: Trẻ em\nemotions: [Vui tươi, Hy vọng]\n"), 0o600))

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Trẻ em", opts.Audience)
	assert.Equal(t, []string{"Vui tươi", "Hy vọng"}, opts.Emotions)

	_, err = ParseOptions([]byte("lines: [not a number"))
	assert.Error(t, err)
}

func TestResponseSchema(t *testing.T) {
	s := ResponseSchema()
	assert.Equal(t, FieldObject, s.Type)
	assert.ElementsMatch(t, []string{"title", "content"}, s.Required)
	for _, name := range s.Order {
		require.Contains(t, s.Properties, name)
		assert.Equal(t, FieldString, s.Properties[name].Type)
	}
}
