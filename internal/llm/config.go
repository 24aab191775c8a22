package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for every InterviewSprint environment variable.
const EnvPrefix = "SPRINT"

// Config holds all generation-boundary configuration.
type Config struct {
	// Provider selects the backend.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string `envconfig:"LLM_PROVIDER"`

	Gemini     GeminiConfig     `envconfig:"GEMINI"`
	Anthropic  AnthropicConfig  `envconfig:"ANTHROPIC"`
	OpenAI     OpenAIConfig     `envconfig:"OPENAI"`
	OpenRouter OpenRouterConfig `envconfig:"OPENROUTER"`
	Retry      RetryConfig      `envconfig:"LLM"`

	// Timeout bounds a single Generate call including retries.
	// Zero leaves it to the transport.
	Timeout time.Duration `envconfig:"LLM_TIMEOUT"`

	// MockResponder answers calls to the mock provider. Nil leaves it
	// failing every call.
	MockResponder func(Request) MockResponse `ignored:"true"`
}

// Option adjusts a Config after it is read from the environment.
type Option func(*Config)

// WithMockResponder sets the responder used by the mock provider.
func WithMockResponder(fn func(Request) MockResponse) Option {
	return func(c *Config) { c.MockResponder = fn }
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `envconfig:"API_KEY"`
	Model  string `envconfig:"MODEL"` // Default: "gemini-3-pro"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `envconfig:"API_KEY"`
	Model  string `envconfig:"MODEL"` // Default: "claude-sonnet"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL"`    // Default: "gpt-4o-mini"
	BaseURL string `envconfig:"BASE_URL"` // Optional. Any OpenAI-compatible endpoint.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL"`    // Default: "google/gemini-2.5-pro"
	BaseURL string `envconfig:"BASE_URL"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retries of transient failures. MaxAttempts of 1
// disables retrying.
type RetryConfig struct {
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS"`
	InitialWait time.Duration `envconfig:"RETRY_INITIAL_WAIT"`
	MaxWait     time.Duration `envconfig:"RETRY_MAX_WAIT"`
	Multiplier  float64       `envconfig:"RETRY_MULTIPLIER"`
}

// DefaultConfig returns the stock configuration: Gemini, a single attempt
// per call, no extra timeout.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-3-pro",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-pro",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv overlays SPRINT_* environment variables on DefaultConfig.
// Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s_* environment: %w", EnvPrefix, err)
	}
	return cfg, nil
}

// DiscoverConfig probes well-known API key variables in priority order
// (API_KEY/GEMINI_API_KEY → OPENAI_API_KEY → ANTHROPIC_API_KEY →
// OPENROUTER_API_KEY) and returns a Config for the first one found.
// Returns (Config{}, false) if none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, name := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if k := os.Getenv(name); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key and that the
// retry settings are usable.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SPRINT_GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SPRINT_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SPRINT_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("SPRINT_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("SPRINT_LLM_MAX_ATTEMPTS must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

// hasExplicitProvider reports whether the user picked a provider or supplied
// any SPRINT_* key, in which case discovery is skipped.
func hasExplicitProvider() bool {
	for _, name := range []string{
		EnvPrefix + "_LLM_PROVIDER",
		EnvPrefix + "_GEMINI_API_KEY",
		EnvPrefix + "_ANTHROPIC_API_KEY",
		EnvPrefix + "_OPENAI_API_KEY",
		EnvPrefix + "_OPENROUTER_API_KEY",
	} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
