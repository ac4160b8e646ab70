package config

import (
	"time"

	"github.com/user/promptgen/internal/limits"
)

// Valid enum values; anything else falls back to the default.
var (
	ValidLangs     = map[string]bool{"en": true}
	ValidStyles    = map[string]bool{"concise": true, "thorough": true, "step-by-step": true}
	ValidProviders = map[string]bool{"lm-studio": true, "openai": true, "ollama": true}
)

// Config holds the resolved application configuration.
type Config struct {
	Lang                  string    `mapstructure:"lang"`
	Style                 string    `mapstructure:"style"` // concise | thorough | step-by-step
	MaxChars              int       `mapstructure:"max_chars"`
	IncludePrivate        bool      `mapstructure:"include_private"`
	MaxFunctionsPerModule int       `mapstructure:"max_functions_per_module"`
	Excludes              []string  `mapstructure:"excludes"`
	LLM                   LLMConfig `mapstructure:"llm"`

	// SourcePath is the config file that was used, if any
	SourcePath string `mapstructure:"-"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"` // lm-studio, openai, ollama
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"` // For OpenAI-compatible endpoints (LM Studio)
	APIKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Timeout     int     `mapstructure:"timeout"` // Timeout in seconds
	Retries     int     `mapstructure:"retries"`
}

// DefaultConfig returns the built-in defaults (LM Studio's OpenAI-compatible
// endpoint on localhost).
func DefaultConfig() *Config {
	return &Config{
		Lang:                  "en",
		Style:                 "thorough",
		MaxChars:              limits.DefaultMaxChars,
		IncludePrivate:        false,
		MaxFunctionsPerModule: limits.DefaultMaxFuncsPerModule,
		Excludes: []string{
			".git/**",
			".venv/**",
			"__pycache__/**",
			"node_modules/**",
			"dist/**",
			"build/**",
		},
		LLM: LLMConfig{
			Provider:    "lm-studio",
			Model:       "gpt-4o-mini",
			BaseURL:     "http://localhost:1234/v1",
			APIKey:      "lm-studio",
			Temperature: 0.2,
			MaxTokens:   2048,
		},
	}
}

// Limits derives the truncation limits from the configuration; fields the
// config does not expose keep their defaults.
func (c *Config) Limits() limits.Limits {
	lim := limits.Default()
	if c.MaxChars > 0 {
		lim.MaxChars = c.MaxChars
	}
	if c.MaxFunctionsPerModule > 0 {
		lim.MaxFuncsPerModule = c.MaxFunctionsPerModule
	}
	return lim
}

// GetTimeout returns the timeout as a time.Duration
func (c *LLMConfig) GetTimeout() time.Duration {
	if c.Timeout == 0 {
		return 180 * time.Second // Default timeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// GetMaxTokens returns the max tokens with a default
func (c *LLMConfig) GetMaxTokens() int {
	if c.MaxTokens == 0 {
		return 2048
	}
	return c.MaxTokens
}

// GetRetries returns the retry count with a default
func (c *LLMConfig) GetRetries() int {
	if c.Retries == 0 {
		return 2
	}
	return c.Retries
}
