package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultBaseName names downloads of untitled poems.
const DefaultBaseName = "Sang_Tac_Tho_AI"

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// Compose is the text written to the clipboard and to downloaded files.
func Compose(title, content string) string {
	return title + "\n\n" + content
}

// Filename builds the download name for a poem saved at the given instant.
func Filename(title string, at time.Time) string {
	base := filenameReplacer.Replace(strings.TrimSpace(title))
	if base == "" {
		base = DefaultBaseName
	}
	return fmt.Sprintf("%s_%d.txt", base, at.UnixMilli())
}

// WriteFile writes the poem to dir and returns the file path.
func WriteFile(dir, title, content string, at time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, Filename(title, at))
	if err := os.WriteFile(path, []byte(Compose(title, content)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write poem: %w", err)
	}
	return path, nil
}

// Copy places the composed poem on the system clipboard.
func Copy(title, content string) error {
	if err := clipboard.WriteAll(Compose(title, content)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
