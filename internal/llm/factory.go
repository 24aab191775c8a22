package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/store"
)

// NewProvider builds the configured backend and wraps it:
// caller → timeout → retry → logging → base. eventRepo may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		m := NewMockProvider()
		m.SetResponder(cfg.MockResponder)
		base = m
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logger.Debug("llm provider ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", base.ModelID()),
		zap.Int("max_attempts", cfg.Retry.MaxAttempts))

	p := WithLogging(base, cfg.Provider, eventRepo, logger)
	p = WithRetry(p, cfg.Retry, logger)
	p = WithTimeout(p, cfg.Timeout)
	return p, nil
}

// NewProviderFromEnv reads SPRINT_* variables, falling back to key
// discovery when no provider was chosen explicitly, and builds a Provider.
// opts apply last.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, logger *zap.Logger, opts ...Option) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if !hasExplicitProvider() {
		if found, ok := DiscoverConfig(); ok {
			found.Retry, found.Timeout = cfg.Retry, cfg.Timeout
			cfg = found
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewProvider(ctx, cfg, eventRepo, logger)
}
