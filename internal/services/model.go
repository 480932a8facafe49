package services

import (
	"context"
	"fmt"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ModelConfig selects and configures a generative backend.
type ModelConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewModel creates the backend named by cfg.Provider (Gemini by default).
func NewModel(ctx context.Context, cfg ModelConfig) (Model, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		m, err := NewGeminiModel(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return m, nil

	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewOpenAIModel(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
