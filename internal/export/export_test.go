package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	assert.Equal(t, "Thu\n\nLá vàng\nrơi", Compose("Thu", "Lá vàng\nrơi"))
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_123)

	tests := []struct {
		title string
		want  string
	}{
		{"Mùa thu Hà Nội", "Mùa_thu_Hà_Nội_1700000000123.txt"},
		{"  ", "Sang_Tac_Tho_AI_1700000000123.txt"},
		{"", "Sang_Tac_Tho_AI_1700000000123.txt"},
		{"a/b\\c", "a_b_c_1700000000123.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.title, at), tt.title)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	at := time.UnixMilli(99)

	path, err := WriteFile(dir, "Thu", "Lá vàng", at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Thu_99.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Thu\n\nLá vàng", string(data))
}
