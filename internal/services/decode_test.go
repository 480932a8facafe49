package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mccwk.com/poet/internal/poem"
)

func TestDecodeResult(t *testing.T) {
	got, err := DecodeResult(`{"title":"A","content":"B","extra":1}`)
	require.NoError(t, err)
	assert.Equal(t, poem.Result{Title: "A", Content: "B"}, got)
}

func TestDecodeResultShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing content", `{"title":"A"}`},
		{"missing title", `{"content":"B"}`},
		{"numeric title", `{"title":1,"content":"B"}`},
		{"null content", `{"title":"A","content":null}`},
		{"array content", `{"title":"A","content":["B"]}`},
		{"array payload", `[{"title":"A","content":"B"}]`},
		{"string payload", `"poem"`},
		{"null payload", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResult(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidResponseShape)
			assert.NotErrorIs(t, err, ErrService)
		})
	}
}

func TestDecodeResultMalformedJSON(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"title":"A",`, "```json\n{}\n```"} {
		_, err := DecodeResult(raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, ErrService, raw)
		assert.NotErrorIs(t, err, ErrInvalidResponseShape, raw)
	}
}
