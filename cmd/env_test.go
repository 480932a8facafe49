package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mccwk.com/poet/internal/services"
)

func TestModelConfigFromEnv(t *testing.T) {
	t.Run("gemini by default", func(t *testing.T) {
		t.Setenv("POET_PROVIDER", "")
		t.Setenv("GEMINI_API_KEY", "g-key")
		t.Setenv("API_KEY", "fallback")

		cfg, keyVar := modelConfigFromEnv()
		assert.Equal(t, "GEMINI_API_KEY", keyVar)
		assert.Equal(t, "g-key", cfg.APIKey)
	})

	t.Run("falls back to API_KEY", func(t *testing.T) {
		t.Setenv("POET_PROVIDER", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "fallback")

		cfg, _ := modelConfigFromEnv()
		assert.Equal(t, "fallback", cfg.APIKey)
	})

	t.Run("openai", func(t *testing.T) {
		t.Setenv("POET_PROVIDER", services.ProviderOpenAI)
		t.Setenv("OPENAI_API_KEY", "o-key")
		t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
		t.Setenv("POET_MODEL", "gpt-4o")

		cfg, keyVar := modelConfigFromEnv()
		assert.Equal(t, "OPENAI_API_KEY", keyVar)
		assert.Equal(t, "o-key", cfg.APIKey)
		assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
		assert.Equal(t, "gpt-4o", cfg.Model)
	})
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Setenv("POET_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	_, err := newGenerator(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestDBPath(t *testing.T) {
	t.Cleanup(func() { dbFlag = "" })

	t.Setenv("POET_DB_PATH", "/tmp/poems.db")
	assert.Equal(t, "/tmp/poems.db", dbPath())

	dbFlag = "/var/poet.db"
	assert.Equal(t, "/var/poet.db", dbPath())

	dbFlag = ""
	t.Setenv("POET_DB_PATH", "")
	t.Setenv("HOME", "/home/nguyen")
	assert.Equal(t, filepath.Join("/home/nguyen", ".poet.db"), dbPath())
}

func TestTimeoutFromEnv(t *testing.T) {
	t.Setenv("POET_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, timeoutFromEnv())

	t.Setenv("POET_TIMEOUT", "soon")
	assert.Zero(t, timeoutFromEnv())

	t.Setenv("POET_TIMEOUT", "")
	assert.Zero(t, timeoutFromEnv())
}
