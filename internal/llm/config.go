package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the provider. An empty Provider disables
// LLM features.
type Config struct {
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds one request including retries.
	Timeout time.Duration `yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig has no provider selected. Coach lines are short, so the
// defaults favour small models and a tight timeout.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     2 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 10 * time.Second,
	}
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool { return c.Provider != "" }

// ApplyEnv overlays LESSONBOOK_* variables on c. When no provider is
// selected it falls back to the first well-known API key variable found
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).
func (c *Config) ApplyEnv() {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setStr(&c.Provider, "LESSONBOOK_LLM_PROVIDER")
	setStr(&c.Anthropic.APIKey, "LESSONBOOK_ANTHROPIC_API_KEY")
	setStr(&c.Anthropic.Model, "LESSONBOOK_ANTHROPIC_MODEL")
	setStr(&c.OpenAI.APIKey, "LESSONBOOK_OPENAI_API_KEY")
	setStr(&c.OpenAI.Model, "LESSONBOOK_OPENAI_MODEL")
	setStr(&c.OpenAI.BaseURL, "LESSONBOOK_OPENAI_BASE_URL")
	setStr(&c.Gemini.APIKey, "LESSONBOOK_GEMINI_API_KEY")
	setStr(&c.Gemini.Model, "LESSONBOOK_GEMINI_MODEL")
	setStr(&c.OpenRouter.APIKey, "LESSONBOOK_OPENROUTER_API_KEY")
	setStr(&c.OpenRouter.Model, "LESSONBOOK_OPENROUTER_MODEL")

	if c.Provider != "" {
		return
	}
	for _, d := range []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &c.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &c.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &c.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &c.OpenRouter.APIKey},
	} {
		if k := os.Getenv(d.env); k != "" {
			c.Provider = d.provider
			*d.key = k
			return
		}
	}
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "", ProviderMock:
		return nil
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.Provider)
	}
	return nil
}

// Redacted returns a copy with every API key masked.
func (c Config) Redacted() Config {
	for _, k := range []*string{&c.Anthropic.APIKey, &c.OpenAI.APIKey, &c.Gemini.APIKey, &c.OpenRouter.APIKey} {
		if *k != "" {
			*k = "********"
		}
	}
	return c
}
