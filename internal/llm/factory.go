package llm

import (
	"fmt"

	"github.com/user/promptgen/internal/config"
)

// DefaultLMStudioBaseURL is the LM Studio OpenAI-compatible endpoint.
const DefaultLMStudioBaseURL = "http://localhost:1234/v1"

// NewClient creates an LLM client for the configured provider.
func NewClient(cfg config.LLMConfig) (Client, error) {
	timeout := cfg.GetTimeout()
	retries := cfg.GetRetries()

	switch cfg.Provider {
	case "lm-studio":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultLMStudioBaseURL
		}
		return NewOpenAIClient("lm-studio", cfg.APIKey, baseURL, cfg.Model, timeout, retries), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		return NewOpenAIClient("openai", cfg.APIKey, baseURL, cfg.Model, timeout, retries), nil

	case "ollama":
		return NewOllamaClient(cfg.BaseURL, cfg.Model, timeout, retries), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
