package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/promptgen/internal/config"
	"github.com/user/promptgen/internal/errors"
	"github.com/user/promptgen/internal/llm"
	"github.com/user/promptgen/internal/logging"
	"github.com/user/promptgen/internal/output"
	"github.com/user/promptgen/internal/prompts"
)

// emitFlags are the delivery flags shared by the prompt commands.
type emitFlags struct {
	copyToClipboard bool
	runLLM          bool
	outPath         string
}

func (f *emitFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.copyToClipboard, "copy", false, "Copy the prompt to the clipboard")
	cmd.Flags().BoolVar(&f.runLLM, "run", false, "Send the prompt to the configured LLM and print the reply")
	cmd.Flags().StringVar(&f.outPath, "out", "", "Save the prompt to a file (a directory gets prompt-<command>.txt)")
}

// InitLogger creates the logger for CLI commands. The log file lives under
// <workDir>/.promptgen/logs; --verbose additionally enables console output
// and --debug adds caller information. The caller owns logger.Sync().
func InitLogger(workDir string, debug, verbose bool) (*logging.Logger, error) {
	logDir := filepath.Join(".promptgen", "logs")
	if workDir != "" && workDir != "." {
		logDir = filepath.Join(workDir, ".promptgen", "logs")
	}

	logCfg := &logging.Config{
		LogDir:         logDir,
		FileLevel:      logging.LevelFromString("info"),
		ConsoleLevel:   logging.LevelFromString("debug"),
		EnableCaller:   debug,
		ConsoleEnabled: verbose,
	}
	if debug {
		logCfg.FileLevel = logging.LevelFromString("debug")
	}

	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// loadConfig resolves the layered configuration, applying only the root
// flags the user actually set as CLI overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cliOverrides := map[string]interface{}{}
	if cmd.Flags().Changed("lang") || rootChanged("lang") {
		cliOverrides["lang"] = langFlag
	}
	if cmd.Flags().Changed("style") || rootChanged("style") {
		cliOverrides["style"] = styleFlag
	}
	if cmd.Flags().Changed("max-chars") || rootChanged("max-chars") {
		cliOverrides["max_chars"] = maxCharsFlag
	}

	return config.Load(".", configFlag, cliOverrides)
}

func rootChanged(name string) bool {
	flag := rootCmd.PersistentFlags().Lookup(name)
	return flag != nil && flag.Changed
}

// newPromptManager loads the built-in templates plus any project overrides
// under .promptgen/prompts/.
func newPromptManager() (*prompts.Manager, error) {
	return prompts.NewManagerWithOverrides(filepath.Join(".promptgen", "prompts"))
}

// resolvePaths defaults the positional arguments to the current directory.
func resolvePaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// emitPrompt truncates the rendered prompt to the configured cap and
// delivers it; with --run it additionally sends the prompt to the LLM and
// prints the reply.
func emitPrompt(ctx context.Context, cfg *config.Config, logger *logging.Logger, tpl *prompts.PromptTemplate, flags emitFlags, commandName string) error {
	text := prompts.Truncate(tpl.SystemPrompt+"\n\n"+tpl.UserPrompt, cfg.MaxChars)

	err := output.Emit(text, output.Options{
		CopyToClipboard: flags.copyToClipboard,
		OutPath:         flags.outPath,
		CommandName:     commandName,
	})
	if err != nil {
		return err
	}

	if !flags.runLLM {
		return nil
	}

	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return errors.NewLLMError(cfg.LLM.Provider, err)
	}

	logger.Info("Sending prompt to LLM",
		logging.String("provider", cfg.LLM.Provider),
		logging.String("model", cfg.LLM.Model),
	)

	resp, err := client.GenerateCompletion(ctx, llm.CompletionRequest{
		SystemPrompt: tpl.SystemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: tpl.UserPrompt}},
		MaxTokens:    cfg.LLM.GetMaxTokens(),
		Temperature:  cfg.LLM.Temperature,
	})
	if err != nil {
		return errors.NewLLMError(client.GetProvider(), err)
	}

	logger.Info("LLM reply received",
		logging.Int("input_tokens", resp.Usage.InputTokens),
		logging.Int("output_tokens", resp.Usage.OutputTokens),
	)

	fmt.Println()
	fmt.Println("--- LLM response ---")
	fmt.Println(resp.Content)
	return nil
}

// HandleCommandError prints the user-facing message for application errors
// and returns the error unchanged for exit-code mapping in Execute.
func HandleCommandError(err error, logger *logging.Logger) error {
	if err == nil {
		return nil
	}
	if logger != nil {
		logger.Error("Command failed", logging.Error(err))
	}
	return err
}
