package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIProvider calls the chat completions API of OpenAI or any
// compatible endpoint selected by BaseURL.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	baseURL string
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return newOpenAICompatible(cfg.APIKey, cfg.BaseURL, resolveModel(cfg.Model, openaiModels)), nil
}

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model
// names are passed through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultOpenRouterBaseURL
	}
	return newOpenAICompatible(cfg.APIKey, base, cfg.Model), nil
}

func newOpenAICompatible(key, baseURL, model string) *OpenAIProvider {
	config := openai.DefaultConfig(key)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: model, baseURL: config.BaseURL}
}

func (p *OpenAIProvider) ModelID() string { return p.model }

// BaseURL returns the endpoint the client talks to.
func (p *OpenAIProvider) BaseURL() string { return p.baseURL }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(apiErr.HTTPStatusCode, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in OpenAI response")}
	}

	choice := resp.Choices[0]
	stop := stopEnd
	if choice.FinishReason == openai.FinishReasonLength {
		stop = stopMaxTokens
	}
	usage := Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	return finish(req, json.RawMessage(choice.Message.Content), usage, resp.Model, stop)
}
