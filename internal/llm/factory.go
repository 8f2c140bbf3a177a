package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped as
// caller -> retry -> recording -> provider. It returns ErrDisabled when no
// provider is selected.
func NewProvider(ctx context.Context, cfg Config, repo EventRecorder, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "":
		return nil, ErrDisabled
	case ProviderMock:
		return NewMockProvider(), nil
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithRecording(base, cfg.Provider, repo, logger), cfg.Retry), nil
}
