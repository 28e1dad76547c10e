package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter",
	// "mock".
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single batch request, retries included.
	Timeout time.Duration
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI settings.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for compatible APIs
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter settings.
type OpenRouterConfig struct {
	APIKey string
	Model  string
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults. Gemini is the default provider; the
// exam generator was tuned against gemini-2.5-flash.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from BIOGEN_* environment variables,
// falling back to provider auto-discovery via the standard key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("BIOGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	} else if p, ok := discoverProvider(); ok {
		cfg.Provider = p
	}

	cfg.Gemini.APIKey = firstEnv("BIOGEN_GEMINI_API_KEY", "GEMINI_API_KEY")
	cfg.OpenAI.APIKey = firstEnv("BIOGEN_OPENAI_API_KEY", "OPENAI_API_KEY")
	cfg.Anthropic.APIKey = firstEnv("BIOGEN_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	cfg.OpenRouter.APIKey = firstEnv("BIOGEN_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")

	if m := os.Getenv("BIOGEN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("BIOGEN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("BIOGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if m := os.Getenv("BIOGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if m := os.Getenv("BIOGEN_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if v := os.Getenv("BIOGEN_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse BIOGEN_LLM_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

// discoverProvider probes the standard key variables in priority order.
func discoverProvider() (string, bool) {
	probes := []struct{ env, provider string }{
		{"GEMINI_API_KEY", "gemini"},
		{"OPENAI_API_KEY", "openai"},
		{"ANTHROPIC_API_KEY", "anthropic"},
		{"OPENROUTER_API_KEY", "openrouter"},
	}
	for _, p := range probes {
		if os.Getenv(p.env) != "" {
			return p.provider, true
		}
	}
	return "", false
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// RequestLog receives one record per LLM request for diagnostics.
// Implemented by the store package; a nil-safe no-op is fine in tests.
type RequestLog interface {
	AppendRequest(ctx context.Context, rec RequestRecord) error
}

// RequestRecord captures one LLM call for the diagnostics log.
type RequestRecord struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// NewProvider builds the configured provider wrapped with logging and
// retry middleware (caller → retry → logging → base). The log may be nil.
func NewProvider(ctx context.Context, cfg Config, log RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through, allowing direct model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
