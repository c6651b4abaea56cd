package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	infrabedrock "github.com/NeuralTrust/TrustPost/pkg/infra/bedrock"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	ModelPrefixAnthropicClaude = "anthropic.claude"
	ModelPrefixAmazonTitan     = "amazon.titan"
	ModelPrefixMetaLlama       = "meta.llama"
	ModelPrefixMistral         = "mistral"

	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 1024
)

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	System           string          `json:"system,omitempty"`
	Temperature      float64         `json:"temperature,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	ID      string `json:"id"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type titanRequest struct {
	InputText            string                 `json:"inputText"`
	TextGenerationConfig map[string]interface{} `json:"textGenerationConfig,omitempty"`
}

type titanResponse struct {
	InputTextTokenCount int `json:"inputTextTokenCount"`
	Results             []struct {
		TokenCount int    `json:"tokenCount"`
		OutputText string `json:"outputText"`
	} `json:"results"`
}

type promptRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type promptResponse struct {
	Generation           string `json:"generation"`
	PromptTokenCount     int    `json:"prompt_token_count"`
	GenerationTokenCount int    `json:"generation_token_count"`
	Outputs              []struct {
		Text string `json:"text"`
	} `json:"outputs"`
}

// RuntimeFactory builds a runtime client for a credential set.
type RuntimeFactory func(ctx context.Context, opts infrabedrock.Options) (infrabedrock.Runtime, error)

type client struct {
	clientPool *sync.Map
	newRuntime RuntimeFactory
}

func NewBedrockClient(newRuntime RuntimeFactory) providers.Client {
	if newRuntime == nil {
		newRuntime = infrabedrock.NewRuntime
	}
	return &client{
		clientPool: &sync.Map{},
		newRuntime: newRuntime,
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if config.Credentials.AwsBedrock == nil {
		return nil, fmt.Errorf("aws credentials are required: %w", providers.ErrMissingCredentials)
	}

	runtime, err := c.getOrCreateClient(ctx, config.Credentials.AwsBedrock)
	if err != nil {
		return nil, fmt.Errorf("failed to create bedrock client: %w", err)
	}

	body, err := buildRequest(config, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	out, err := runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(config.Model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	resp, err := parseResponse(config.Model, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.ID == "" {
		resp.ID = providers.ResponseID(ctx, "bedrock")
	}
	resp.Model = config.Model
	return resp, nil
}

func buildRequest(config *providers.Config, prompt string) ([]byte, error) {
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	instr := providers.FormatInstructions(config.Instructions)

	switch {
	case strings.HasPrefix(config.Model, ModelPrefixAnthropicClaude):
		req := claudeRequest{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        maxTokens,
			System:           config.SystemPrompt,
			Temperature:      config.Temperature,
		}
		if instr != "" {
			req.Messages = append(req.Messages, claudeMessage{Role: "user", Content: instr})
		}
		req.Messages = append(req.Messages, claudeMessage{Role: "user", Content: prompt})
		return json.Marshal(req)
	case strings.HasPrefix(config.Model, ModelPrefixAmazonTitan):
		return json.Marshal(titanRequest{
			InputText: joinPrompt(config.SystemPrompt, instr, prompt),
			TextGenerationConfig: map[string]interface{}{
				"maxTokenCount": maxTokens,
				"temperature":   config.Temperature,
			},
		})
	case strings.HasPrefix(config.Model, ModelPrefixMetaLlama):
		return json.Marshal(promptRequest{
			Prompt:      joinPrompt(config.SystemPrompt, instr, prompt),
			MaxGenLen:   maxTokens,
			Temperature: config.Temperature,
		})
	default:
		return json.Marshal(promptRequest{
			Prompt:      joinPrompt(config.SystemPrompt, instr, prompt),
			MaxTokens:   maxTokens,
			Temperature: config.Temperature,
		})
	}
}

func parseResponse(model string, body []byte) (*providers.CompletionResponse, error) {
	switch {
	case strings.HasPrefix(model, ModelPrefixAnthropicClaude):
		var r claudeResponse
		if err := json.Unmarshal(body, &r); err != nil {
			return nil, err
		}
		for _, block := range r.Content {
			if block.Type == "text" && block.Text != "" {
				return &providers.CompletionResponse{
					ID:       r.ID,
					Response: block.Text,
					Usage:    providers.NewUsage(r.Usage.InputTokens, r.Usage.OutputTokens),
				}, nil
			}
		}
	case strings.HasPrefix(model, ModelPrefixAmazonTitan):
		var r titanResponse
		if err := json.Unmarshal(body, &r); err != nil {
			return nil, err
		}
		if len(r.Results) > 0 && r.Results[0].OutputText != "" {
			return &providers.CompletionResponse{
				Response: r.Results[0].OutputText,
				Usage:    providers.NewUsage(r.InputTextTokenCount, r.Results[0].TokenCount),
			}, nil
		}
	default:
		var r promptResponse
		if err := json.Unmarshal(body, &r); err != nil {
			return nil, err
		}
		text := r.Generation
		if text == "" && len(r.Outputs) > 0 {
			text = r.Outputs[0].Text
		}
		if text != "" {
			return &providers.CompletionResponse{
				Response: text,
				Usage:    providers.NewUsage(r.PromptTokenCount, r.GenerationTokenCount),
			}, nil
		}
	}
	return nil, fmt.Errorf("no text content returned")
}

func joinPrompt(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func (c *client) getOrCreateClient(ctx context.Context, creds *providers.AwsCredentials) (infrabedrock.Runtime, error) {
	key := fmt.Sprintf("%s:%s:%s", creds.AccessKey, creds.Region, creds.RoleARN)
	if v, ok := c.clientPool.Load(key); ok {
		if rt, ok := v.(infrabedrock.Runtime); ok {
			return rt, nil
		}
	}
	opts := infrabedrock.Options{
		AccessKey:    creds.AccessKey,
		SecretKey:    creds.SecretKey,
		SessionToken: creds.SessionToken,
		Region:       creds.Region,
	}
	if creds.UseRole {
		opts.RoleARN = creds.RoleARN
	}
	rt, err := c.newRuntime(ctx, opts)
	if err != nil {
		return nil, err
	}
	c.clientPool.Store(key, rt)
	return rt, nil
}
