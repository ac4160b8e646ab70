package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/user/promptgen/internal/errors"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix("PROMPTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v}
}

// Load resolves configuration with the following precedence:
// CLI overrides > explicit config file (or <workDir>/.promptgen/config.yaml)
// > ~/.promptgen.yaml > PROMPTGEN_* environment > defaults.
// Invalid enum values fall back to defaults rather than erroring.
func Load(workDir, explicitPath string, cliOverrides map[string]interface{}) (*Config, error) {
	loader := NewLoader()

	loader.setDefaults()

	if err := loader.loadGlobalConfig(); err != nil {
		return nil, err
	}

	sourcePath, err := loader.loadProjectConfig(workDir, explicitPath)
	if err != nil {
		return nil, err
	}

	for key, value := range cliOverrides {
		if value != nil {
			loader.v.Set(key, value)
		}
	}

	cfg := DefaultConfig()
	decoderConfig := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
		TagName:          "mapstructure",
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(loader.v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.SourcePath = sourcePath
	normalize(cfg)

	return cfg, nil
}

// setDefaults registers every key with viper so AutomaticEnv can see it.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()
	l.v.SetDefault("lang", defaults.Lang)
	l.v.SetDefault("style", defaults.Style)
	l.v.SetDefault("max_chars", defaults.MaxChars)
	l.v.SetDefault("include_private", defaults.IncludePrivate)
	l.v.SetDefault("max_functions_per_module", defaults.MaxFunctionsPerModule)
	l.v.SetDefault("excludes", defaults.Excludes)
	l.v.SetDefault("llm.provider", defaults.LLM.Provider)
	l.v.SetDefault("llm.model", defaults.LLM.Model)
	l.v.SetDefault("llm.base_url", defaults.LLM.BaseURL)
	l.v.SetDefault("llm.api_key", defaults.LLM.APIKey)
	l.v.SetDefault("llm.temperature", defaults.LLM.Temperature)
	l.v.SetDefault("llm.max_tokens", defaults.LLM.MaxTokens)
	l.v.SetDefault("llm.timeout", defaults.LLM.Timeout)
	l.v.SetDefault("llm.retries", defaults.LLM.Retries)
}

// loadGlobalConfig loads configuration from ~/.promptgen.yaml
func (l *Loader) loadGlobalConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil // Not a fatal error
	}

	globalConfig := filepath.Join(homeDir, ".promptgen.yaml")
	if _, err := os.Stat(globalConfig); err != nil {
		return nil // File doesn't exist, skip
	}

	l.v.SetConfigFile(globalConfig)
	if err := l.v.ReadInConfig(); err != nil {
		return errors.NewConfigFileError(globalConfig, err)
	}

	return nil
}

// loadProjectConfig loads the explicit config file when given, otherwise
// <workDir>/.promptgen/config.yaml when present. Returns the path used.
func (l *Loader) loadProjectConfig(workDir, explicitPath string) (string, error) {
	configPath := explicitPath
	if configPath == "" {
		if workDir == "" {
			workDir = "."
		}
		configPath = filepath.Join(workDir, ".promptgen", "config.yaml")
		if _, err := os.Stat(configPath); err != nil {
			return "", nil // File doesn't exist, skip
		}
	}

	l.v.SetConfigFile(configPath)
	if err := l.v.MergeInConfig(); err != nil {
		return "", errors.NewConfigFileError(configPath, err)
	}

	return configPath, nil
}

// normalize replaces invalid enum values with defaults.
func normalize(cfg *Config) {
	defaults := DefaultConfig()
	if !ValidLangs[cfg.Lang] {
		cfg.Lang = defaults.Lang
	}
	if !ValidStyles[cfg.Style] {
		cfg.Style = defaults.Style
	}
	if !ValidProviders[cfg.LLM.Provider] {
		cfg.LLM.Provider = defaults.LLM.Provider
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = defaults.MaxChars
	}
	if cfg.MaxFunctionsPerModule <= 0 {
		cfg.MaxFunctionsPerModule = defaults.MaxFunctionsPerModule
	}
	if cfg.Excludes == nil {
		cfg.Excludes = defaults.Excludes
	}
}
