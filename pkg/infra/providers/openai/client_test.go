package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_RequiresAPIKey(t *testing.T) {
	c := NewOpenaiClient()
	_, err := c.Ask(context.Background(), &providers.Config{Model: "gpt-4o-mini"}, "hello")
	assert.ErrorIs(t, err, providers.ErrMissingCredentials)
}

func TestAsk_SendsSystemPromptAndParsesUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		messages, _ := req["messages"].([]interface{})
		require.Len(t, messages, 2)
		first, _ := messages[0].(map[string]interface{})
		assert.Equal(t, "system", first["role"])
		format, _ := req["response_format"].(map[string]interface{})
		assert.Equal(t, "json_object", format["type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"approved\": true}"}}],
			"usage": {"prompt_tokens": 40, "completion_tokens": 6, "total_tokens": 46}
		}`))
	}))
	defer srv.Close()

	c := NewOpenaiClient(option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	resp, err := c.Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "sk-test"},
		Model:        "gpt-4o-mini",
		SystemPrompt: "classify",
		JSONResponse: true,
	}, "hello there")

	require.NoError(t, err)
	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, `{"approved": true}`, resp.Response)
	assert.Equal(t, 46, resp.Usage.TotalTokens)
}
