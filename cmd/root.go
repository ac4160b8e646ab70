package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/promptgen/internal/errors"
)

var (
	configFlag   string
	langFlag     string
	styleFlag    string
	maxCharsFlag int
	debugFlag    bool
	verboseFlag  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptgen",
	Short: "Prompt generator for Python codebases",
	Long: `Generate ready-to-use LLM prompts from a Python source tree.

Promptgen scans the given paths, extracts a lightweight structural summary
of the Python modules it finds (signatures, docstrings, classes), and
renders the summary through a prompt template for one of three domains:
tests, docs, or design. The prompt is printed to stdout and can optionally
be copied to the clipboard, saved to a file, or sent straight to a
configured chat-completion endpoint.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps application errors to their
// exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var uf errors.UserFacing
		if stderrors.As(err, &uf) {
			fmt.Fprintf(os.Stderr, "%s\n", uf.GetUserMessage())
			os.Exit(uf.Code().Int())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitGeneralError.Int())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default .promptgen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Prompt language (en)")
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "Prompt style (concise, thorough, step-by-step)")
	rootCmd.PersistentFlags().IntVar(&maxCharsFlag, "max-chars", 0, "Maximum prompt length in characters")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log to the console in addition to the log file")
}
