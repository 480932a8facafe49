package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"mccwk.com/poet/internal/services"
)

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "poet"), nil
}

func loadEnvFile(dir string) error {
	return godotenv.Load(filepath.Join(dir, ".env"))
}

// loadEnv reads ./.env then ~/.config/poet/.env. Variables already set in
// the environment win over both.
func loadEnv() {
	_ = godotenv.Load()
	if dir, err := configDir(); err == nil {
		_ = loadEnvFile(dir)
	}
}

func dbPath() string {
	if dbFlag != "" {
		return dbFlag
	}
	if p := os.Getenv("POET_DB_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("failed to get home directory", "error", err)
		return ".poet.db"
	}
	return filepath.Join(home, ".poet.db")
}

func downloadDir() string {
	if d := os.Getenv("POET_DOWNLOAD_DIR"); d != "" {
		return d
	}
	return "."
}

// modelConfigFromEnv returns the backend configuration and the name of the
// variable the API key is expected in.
func modelConfigFromEnv() (services.ModelConfig, string) {
	cfg := services.ModelConfig{
		Provider: os.Getenv("POET_PROVIDER"),
		Model:    os.Getenv("POET_MODEL"),
	}

	keyVar := "GEMINI_API_KEY"
	if cfg.Provider == services.ProviderOpenAI {
		keyVar = "OPENAI_API_KEY"
		cfg.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}
	cfg.APIKey = os.Getenv(keyVar)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	return cfg, keyVar
}

func timeoutFromEnv() time.Duration {
	v := os.Getenv("POET_TIMEOUT")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid POET_TIMEOUT", "value", v, "error", err)
		return 0
	}
	return d
}

// newGenerator builds the generation client. A missing API key is fatal for
// every command that talks to the service.
func newGenerator(ctx context.Context, timeout time.Duration) (*services.Generator, error) {
	cfg, keyVar := modelConfigFromEnv()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s (or API_KEY)", services.ErrMissingAPIKey, keyVar)
	}

	model, err := services.NewModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if timeout == 0 {
		timeout = timeoutFromEnv()
	}
	return services.NewGenerator(model, slog.Default()).WithTimeout(timeout), nil
}
