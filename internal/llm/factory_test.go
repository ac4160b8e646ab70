package llm

import (
	"testing"

	"github.com/user/promptgen/internal/config"
)

func TestNewClientLMStudio(t *testing.T) {
	client, err := NewClient(config.LLMConfig{
		Provider: "lm-studio",
		Model:    "local-model",
		APIKey:   "lm-studio",
	})
	if err != nil {
		t.Fatal(err)
	}
	if client.GetProvider() != "lm-studio" {
		t.Errorf("provider = %q", client.GetProvider())
	}

	oc, ok := client.(*OpenAIClient)
	if !ok {
		t.Fatalf("client type = %T, lm-studio speaks the OpenAI protocol", client)
	}
	if oc.baseURL != DefaultLMStudioBaseURL {
		t.Errorf("base url = %q", oc.baseURL)
	}
}

func TestNewClientOpenAI(t *testing.T) {
	client, err := NewClient(config.LLMConfig{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		APIKey:   "sk-test",
	})
	if err != nil {
		t.Fatal(err)
	}
	if client.GetProvider() != "openai" {
		t.Errorf("provider = %q", client.GetProvider())
	}

	oc := client.(*OpenAIClient)
	if oc.baseURL != "https://api.openai.com/v1" {
		t.Errorf("base url = %q", oc.baseURL)
	}
}

func TestNewClientOpenAIRequiresKey(t *testing.T) {
	if _, err := NewClient(config.LLMConfig{Provider: "openai", Model: "m"}); err == nil {
		t.Error("openai without an API key must fail")
	}
}

func TestNewClientOllama(t *testing.T) {
	client, err := NewClient(config.LLMConfig{Provider: "ollama", Model: "llama3"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := client.(*OllamaClient); !ok {
		t.Errorf("client type = %T", client)
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client, err := NewClient(config.LLMConfig{
		Provider: "lm-studio",
		Model:    "m",
		BaseURL:  "http://remote:9999/v1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if client.(*OpenAIClient).baseURL != "http://remote:9999/v1" {
		t.Errorf("custom base url lost")
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	if _, err := NewClient(config.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("unknown provider must fail")
	}
}
