package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mccwk.com/poet/internal/poem"
)

func chatServer(t *testing.T, status int, content string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIModelGenerate(t *testing.T) {
	var req map[string]any
	srv := chatServer(t, http.StatusOK, `{"title":"Thu","content":"Lá vàng\nrơi"}`, &req)

	model := NewOpenAIModel("test-key", "", srv.URL+"/v1")
	g := NewGenerator(model, quietLogger())

	got, err := g.Generate(context.Background(), poem.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, poem.Result{Title: "Thu", Content: "Lá vàng\nrơi"}, got)

	assert.Equal(t, "gpt-4o-mini", req["model"])
	format, ok := req["response_format"].(map[string]any)
	require.True(t, ok, "response_format sent")
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "poem", schema["name"])
	assert.Equal(t, true, schema["strict"])

	messages := req["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, poem.BuildPrompt(poem.DefaultOptions()), messages[0].(map[string]any)["content"])
}

func TestOpenAIModelServiceFailure(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, "", nil)

	g := NewGenerator(NewOpenAIModel("test-key", "gpt-4o", srv.URL+"/v1"), quietLogger())

	_, err := g.Generate(context.Background(), poem.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrService)
}

func TestOpenAIModelInvalidShape(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"title":"Thu"}`, nil)

	g := NewGenerator(NewOpenAIModel("test-key", "gpt-4o", srv.URL+"/v1"), quietLogger())

	_, err := g.Generate(context.Background(), poem.DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidResponseShape)
}

func TestOpenAISchema(t *testing.T) {
	def := openAISchema(poem.ResponseSchema())

	data, err := json.Marshal(def)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])
	assert.Equal(t, false, decoded["additionalProperties"])
	assert.ElementsMatch(t, []any{"title", "content"}, decoded["required"])
	props := decoded["properties"].(map[string]any)
	assert.Equal(t, "string", props["title"].(map[string]any)["type"])
	assert.Equal(t, "string", props["content"].(map[string]any)["type"])
}
