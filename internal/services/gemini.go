package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"mccwk.com/poet/internal/poem"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiModel is a thin wrapper around the official genai client.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModel{client: client, model: model}, nil
}

func (g *GeminiModel) Name() string { return "gemini:" + g.model }

// GenerateJSON requests application/json output constrained by schema.
func (g *GeminiModel) GenerateJSON(ctx context.Context, prompt string, schema *poem.Schema) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   geminiSchema(schema),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		// thought summaries are not part of the answer
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func geminiSchema(s *poem.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:             geminiType(s.Type),
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.Order,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = geminiSchema(prop)
		}
	}
	return out
}

func geminiType(t string) genai.Type {
	switch t {
	case poem.FieldObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}
