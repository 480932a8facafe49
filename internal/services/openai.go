package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"mccwk.com/poet/internal/poem"
)

// OpenAIModel generates poems through an OpenAI-compatible chat completion
// endpoint using a strict json_schema response format.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

func NewOpenAIModel(apiKey, model, baseURL string) *OpenAIModel {
	if model == "" {
		model = openai.GPT4oMini
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIModel{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenAIModel) Name() string {
	return "openai:" + o.model
}

// GenerateJSON sends prompt as a single user message and returns the raw
// message content.
func (o *OpenAIModel) GenerateJSON(ctx context.Context, prompt string, schema *poem.Schema) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   "poem",
					Schema: openAISchema(schema),
					Strict: true,
				},
			},
			Temperature: 0.9,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}

func openAISchema(s *poem.Schema) *jsonschema.Definition {
	def := &jsonschema.Definition{
		Type:        openAIType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = *openAISchema(prop)
		}
		def.AdditionalProperties = false
	}
	return def
}

func openAIType(t string) jsonschema.DataType {
	switch t {
	case poem.FieldObject:
		return jsonschema.Object
	default:
		return jsonschema.String
	}
}
