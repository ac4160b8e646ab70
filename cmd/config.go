package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration that results from merging defaults, the global
config (~/.promptgen.yaml), the project config (.promptgen/config.yaml),
PROMPTGEN_* environment variables, and CLI flags.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	view := map[string]interface{}{
		"lang":                     cfg.Lang,
		"style":                    cfg.Style,
		"max_chars":                cfg.MaxChars,
		"include_private":          cfg.IncludePrivate,
		"max_functions_per_module": cfg.MaxFunctionsPerModule,
		"excludes":                 cfg.Excludes,
		"llm": map[string]interface{}{
			"provider":    cfg.LLM.Provider,
			"model":       cfg.LLM.Model,
			"base_url":    cfg.LLM.BaseURL,
			"api_key":     maskKey(cfg.LLM.APIKey),
			"temperature": cfg.LLM.Temperature,
			"max_tokens":  cfg.LLM.GetMaxTokens(),
			"timeout":     int(cfg.LLM.GetTimeout().Seconds()),
			"retries":     cfg.LLM.GetRetries(),
		},
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if cfg.SourcePath != "" {
		fmt.Printf("# config file: %s\n", cfg.SourcePath)
	} else {
		fmt.Println("# config file: (none, defaults)")
	}
	fmt.Print(string(data))
	return nil
}

// maskKey hides all but the first characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return key
	}
	return key[:4] + "****"
}
