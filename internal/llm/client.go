// Package llm provides thin chat-completion clients for the supported
// providers: LM Studio (OpenAI-compatible), OpenAI, and Ollama.
package llm

import (
	"context"
)

// Message represents one chat message
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// CompletionRequest is a provider-independent completion request
type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
	Temperature  float64
}

// TokenUsage reports token counts for a completion
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// CompletionResponse is a provider-independent completion response
type CompletionResponse struct {
	Content string
	Usage   TokenUsage
}

// Client is the interface for LLM providers
type Client interface {
	// GenerateCompletion generates a completion from the LLM
	GenerateCompletion(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// GetProvider returns the provider name
	GetProvider() string
}
