package azure

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsk_APIKeyAuth(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.URL.String() == "https://acme.openai.azure.com/openai/deployments/mod-gpt/chat/completions?api-version=2024-06-01" &&
			req.Header.Get("api-key") == "az-key" &&
			assert.Contains(t, string(body), `"response_format":{"type":"json_object"}`)
	})).Return(mocks.Response(http.StatusOK, `{
		"id": "cmpl-az",
		"choices": [{"message": {"role": "assistant", "content": "{\"approved\": true}"}}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
	}`), nil)

	c := NewAzureClient(httpClient)
	resp, err := c.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{
			ApiKey: "az-key",
			Azure:  &providers.AzureCredentials{Endpoint: "https://acme.openai.azure.com/"},
		},
		Model:        "mod-gpt",
		JSONResponse: true,
	}, "text")

	require.NoError(t, err)
	assert.Equal(t, "cmpl-az", resp.ID)
	assert.Equal(t, 16, resp.Usage.TotalTokens)
	httpClient.AssertExpectations(t)
}

func TestAsk_Non2xxIsError(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(mocks.Response(http.StatusTooManyRequests, `{"error":"throttled"}`), nil)

	_, err := NewAzureClient(httpClient).Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "k", Azure: &providers.AzureCredentials{Endpoint: "https://x"}},
		Model:       "d",
	}, "text")

	assert.ErrorContains(t, err, "429")
}

func TestAsk_MissingEndpoint(t *testing.T) {
	_, err := NewAzureClient(new(mocks.MockHTTPClient)).Ask(context.Background(), &providers.Config{Model: "d"}, "x")
	assert.ErrorIs(t, err, providers.ErrMissingCredentials)
}
