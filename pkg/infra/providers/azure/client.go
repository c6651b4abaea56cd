package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
)

const (
	defaultAPIVersion = "2024-06-01"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
)

type chatRequest struct {
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage providers.Usage `json:"usage"`
}

type client struct {
	httpClient httpx.Client
	credMu     sync.Mutex
	credential azcore.TokenCredential
}

// NewAzureClient calls Azure OpenAI deployments over REST, authenticating
// with an api-key or an Entra ID token from the default credential chain.
func NewAzureClient(httpClient httpx.Client) providers.Client {
	return &client{httpClient: httpClient}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCreds := config.Credentials.Azure
	if azureCreds == nil || azureCreds.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required: %w", providers.ErrMissingCredentials)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}
	if !azureCreds.UseIdentity && config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("api key is required when not using azure identity: %w", providers.ErrMissingCredentials)
	}

	body := chatRequest{Temperature: config.Temperature, MaxTokens: config.MaxTokens}
	if config.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	if instr := providers.FormatInstructions(config.Instructions); instr != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "user", Content: instr})
	}
	if prompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "user", Content: prompt})
	}
	if config.JSONResponse {
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := azureCreds.ApiVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(azureCreds.Endpoint, "/"), config.Model, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if azureCreds.UseIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure request failed: %w", err)
	}
	respBody, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("azure request failed: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	id := parsed.ID
	if id == "" {
		id = providers.ResponseID(ctx, "azure")
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    config.Model,
		Response: parsed.Choices[0].Message.Content,
		Usage:    parsed.Usage,
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.credMu.Lock()
	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			c.credMu.Unlock()
			return "", fmt.Errorf("failed to create azure credential: %w", err)
		}
		c.credential = cred
	}
	cred := c.credential
	c.credMu.Unlock()

	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{cognitiveScope}})
	if err != nil {
		return "", fmt.Errorf("failed to get azure token: %w", err)
	}
	return token.Token, nil
}
