package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateHome keeps tests away from any real ~/.promptgen.yaml.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeProjectConfig(t *testing.T, workDir, body string) string {
	t.Helper()
	dir := filepath.Join(workDir, ".promptgen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(t.TempDir(), "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Lang != "en" || cfg.Style != "thorough" {
		t.Errorf("lang/style = %q/%q", cfg.Lang, cfg.Style)
	}
	if cfg.MaxChars != 12000 || cfg.MaxFunctionsPerModule != 8 {
		t.Errorf("caps = %d/%d", cfg.MaxChars, cfg.MaxFunctionsPerModule)
	}
	if cfg.LLM.Provider != "lm-studio" || cfg.LLM.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.Model != "gpt-4o-mini" || cfg.LLM.Temperature != 0.2 {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.SourcePath != "" {
		t.Errorf("source path = %q, want empty without a config file", cfg.SourcePath)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()
	path := writeProjectConfig(t, workDir, `
style: concise
max_chars: 9000
llm:
  provider: ollama
  model: llama3
`)

	cfg, err := Load(workDir, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Style != "concise" || cfg.MaxChars != 9000 {
		t.Errorf("style/max_chars = %q/%d", cfg.Style, cfg.MaxChars)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.Model != "llama3" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	// Untouched keys keep defaults.
	if cfg.Lang != "en" {
		t.Errorf("lang = %q", cfg.Lang)
	}
	if cfg.SourcePath != path {
		t.Errorf("source path = %q, want %q", cfg.SourcePath, path)
	}
}

func TestLoadExplicitConfigPath(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("style: step-by-step\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(t.TempDir(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "step-by-step" {
		t.Errorf("style = %q", cfg.Style)
	}
}

func TestLoadExplicitConfigMissingFails(t *testing.T) {
	isolateHome(t)
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err == nil {
		t.Error("an explicitly named missing config file must be an error")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("PROMPTGEN_STYLE", "concise")
	t.Setenv("PROMPTGEN_LLM_PROVIDER", "openai")

	cfg, err := Load(t.TempDir(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "concise" {
		t.Errorf("style = %q, env override lost", cfg.Style)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, env override lost", cfg.LLM.Provider)
	}
}

func TestLoadCLIOverridesBeatFile(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()
	writeProjectConfig(t, workDir, "style: concise\nmax_chars: 9000\n")

	cfg, err := Load(workDir, "", map[string]interface{}{
		"style":     "step-by-step",
		"max_chars": 5000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "step-by-step" || cfg.MaxChars != 5000 {
		t.Errorf("cli overrides lost: %q/%d", cfg.Style, cfg.MaxChars)
	}
}

func TestLoadInvalidEnumsFallBack(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()
	writeProjectConfig(t, workDir, `
lang: xx
style: shouty
max_chars: -5
llm:
  provider: carrier-pigeon
`)

	cfg, err := Load(workDir, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lang != "en" || cfg.Style != "thorough" {
		t.Errorf("invalid enums must fall back: %q/%q", cfg.Lang, cfg.Style)
	}
	if cfg.LLM.Provider != "lm-studio" {
		t.Errorf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.MaxChars != 12000 {
		t.Errorf("max_chars = %d", cfg.MaxChars)
	}
}

func TestLoadWeaklyTypedValues(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()
	writeProjectConfig(t, workDir, `
max_chars: "8000"
include_private: "true"
`)

	cfg, err := Load(workDir, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxChars != 8000 {
		t.Errorf("string max_chars should coerce to int, got %d", cfg.MaxChars)
	}
	if !cfg.IncludePrivate {
		t.Error("string bool should coerce")
	}
}

func TestLimitsDerivation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxChars = 6000
	cfg.MaxFunctionsPerModule = 3

	lim := cfg.Limits()
	if lim.MaxChars != 6000 || lim.MaxFuncsPerModule != 3 {
		t.Errorf("limits = %+v", lim)
	}
	if lim.MaxClassesPerModule != 8 || lim.SnippetMaxLines != 120 || lim.DocstringMaxChars != 1200 {
		t.Errorf("untouched limits must keep defaults: %+v", lim)
	}
}

func TestLLMConfigGetters(t *testing.T) {
	cfg := LLMConfig{}
	if cfg.GetTimeout().Seconds() != 180 {
		t.Errorf("default timeout = %v", cfg.GetTimeout())
	}
	if cfg.GetMaxTokens() != 2048 {
		t.Errorf("default max tokens = %d", cfg.GetMaxTokens())
	}
	if cfg.GetRetries() != 2 {
		t.Errorf("default retries = %d", cfg.GetRetries())
	}

	cfg = LLMConfig{Timeout: 30, MaxTokens: 512, Retries: 5}
	if cfg.GetTimeout().Seconds() != 30 || cfg.GetMaxTokens() != 512 || cfg.GetRetries() != 5 {
		t.Errorf("explicit values lost: %+v", cfg)
	}
}
