package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "openai", "openrouter", "anthropic", "gemini", "mock"
	Provider string `koanf:"provider"`

	Groq       OpenAICompatConfig `koanf:"groq"`
	OpenAI     OpenAICompatConfig `koanf:"openai"`
	OpenRouter OpenAICompatConfig `koanf:"openrouter"`
	Anthropic  AnthropicConfig    `koanf:"anthropic"`
	Gemini     GeminiConfig       `koanf:"gemini"`
	Retry      RetryConfig        `koanf:"retry"`
}

// OpenAICompatConfig configures any backend that speaks the OpenAI chat
// completions API (OpenAI itself, Groq, OpenRouter).
type OpenAICompatConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"` // Optional for OpenAI; defaulted for Groq/OpenRouter.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"` // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"` // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient transport failures.
// It is independent of the question contract's attempt budget.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts"`
	InitialWait time.Duration `koanf:"initial_wait"`
	MaxWait     time.Duration `koanf:"max_wait"`
	Multiplier  float64       `koanf:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: OpenAICompatConfig{
			Model:   "meta-llama/llama-4-scout-17b-16e-instruct",
			BaseURL: defaultGroqBaseURL,
		},
		OpenAI: OpenAICompatConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenAICompatConfig{
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: defaultOpenRouterBaseURL,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// DiscoverKeys fills in the API key of the selected provider from the
// standard, unprefixed env var when none was configured. If the selected
// provider still has no key, the first provider whose standard key is found
// (Groq → OpenAI → Anthropic → Gemini → OpenRouter) is selected instead.
// Reports whether a usable provider was found.
func (c *Config) DiscoverKeys() bool {
	if c.Provider == "mock" || c.hasKey(c.Provider) {
		return true
	}

	probes := []struct {
		provider string
		env      string
		key      *string
	}{
		{"groq", "GROQ_API_KEY", &c.Groq.APIKey},
		{"openai", "OPENAI_API_KEY", &c.OpenAI.APIKey},
		{"anthropic", "ANTHROPIC_API_KEY", &c.Anthropic.APIKey},
		{"gemini", "GEMINI_API_KEY", &c.Gemini.APIKey},
		{"openrouter", "OPENROUTER_API_KEY", &c.OpenRouter.APIKey},
	}

	// Prefer the configured provider's own standard key.
	for _, p := range probes {
		if p.provider == c.Provider {
			if k := os.Getenv(p.env); k != "" {
				*p.key = k
				return true
			}
		}
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			*p.key = k
			c.Provider = p.provider
			return true
		}
	}
	return false
}

func (c Config) hasKey(provider string) bool {
	switch provider {
	case "groq":
		return c.Groq.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "gemini":
		return c.Gemini.APIKey != ""
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq", "openai", "openrouter", "anthropic", "gemini":
		if !c.hasKey(c.Provider) {
			return fmt.Errorf("an API key is required for the %s provider (set TRADEASSESS_LLM__%s__API_KEY)",
				c.Provider, strings.ToUpper(c.Provider))
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm.retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
