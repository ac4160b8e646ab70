package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/promptgen/internal/errors"
	"github.com/user/promptgen/internal/logging"
	"github.com/user/promptgen/internal/scanner"
	"github.com/user/promptgen/internal/summary"
)

var (
	testsFlags          emitFlags
	testsIncludePrivate bool
	testsPytestScope    string
)

// testsCmd represents the tests command
var testsCmd = &cobra.Command{
	Use:   "tests [paths...]",
	Short: "Generate a pytest-writing prompt from Python sources",
	Long: `Scan the given paths (default: current directory) for Python files,
summarize their modules, and render a prompt asking for pytest tests.`,
	RunE: runTests,
}

func init() {
	rootCmd.AddCommand(testsCmd)

	testsFlags.register(testsCmd)
	testsCmd.Flags().BoolVar(&testsIncludePrivate, "include-private", false, "Include underscore-prefixed symbols in the summary")
	testsCmd.Flags().StringVar(&testsPytestScope, "pytest-scope", "unit", "Kind of tests to request (unit, integration, ...)")
}

func runTests(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("include-private") {
		cfg.IncludePrivate = testsIncludePrivate
	}

	logger, err := InitLogger(".", debugFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths := resolvePaths(args)
	logger.Info("Scanning for Python files",
		logging.Any("paths", paths),
		logging.String("style", cfg.Style),
	)

	filter := scanner.NewPathFilter(cfg.Excludes)
	result := scanner.Select(paths, ".", filter, scanner.DefaultExtensions["tests"])
	if len(result.Files) == 0 {
		return HandleCommandError(errors.NewNoFilesError(), logger)
	}

	lim := cfg.Limits()
	modules, stats := summary.Aggregate(result.Files, lim)
	if len(modules) == 0 {
		return HandleCommandError(errors.NewNoFilesError(), logger)
	}
	if !cfg.IncludePrivate {
		summary.StripPrivate(modules)
	}

	logger.Info("Summary built",
		logging.Int("files", len(result.Files)),
		logging.String("stats", stats),
	)

	pm, err := newPromptManager()
	if err != nil {
		return HandleCommandError(err, logger)
	}

	tpl, err := pm.RenderDomain("tests", cfg.Style, map[string]interface{}{
		"pytest_scope":     testsPytestScope,
		"project_summary":  stats,
		"modules_overview": summary.Render(modules, lim),
	})
	if err != nil {
		return HandleCommandError(err, logger)
	}

	return HandleCommandError(emitPrompt(cmd.Context(), cfg, logger, tpl, testsFlags, "tests"), logger)
}
