package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_MissingAPIKey(t *testing.T) {
	_, err := NewAnthropicClient().Ask(context.Background(), &providers.Config{}, "hello")
	assert.ErrorIs(t, err, providers.ErrMissingCredentials)
}

func TestAsk_ReturnsFirstTextBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))
		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, float64(defaultMaxTokens), req["max_tokens"])
		assert.NotNil(t, req["system"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "{\"approved\": false}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 50, "output_tokens": 10}
		}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient(option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	resp, err := c.Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "sk-ant"},
		SystemPrompt: "classify",
	}, "some text")

	require.NoError(t, err)
	assert.Equal(t, "msg_1", resp.ID)
	assert.Equal(t, `{"approved": false}`, resp.Response)
	assert.Equal(t, 60, resp.Usage.TotalTokens)
}
