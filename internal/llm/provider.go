// Package llm is a small provider abstraction over the Anthropic, OpenAI
// (and OpenAI-compatible OpenRouter) and Gemini APIs, with retry and event
// recording decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a response for a request. When the request carries a
// Schema, the response Content is JSON that has been validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request describes a single generation.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	// Name is kebab-case, e.g. "coach-line". Anthropic and OpenAI use it as
	// the output format name.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds generated content and accounting.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full IDs can be configured directly.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
