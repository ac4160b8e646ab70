package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/promptgen/internal/logging"
	"github.com/user/promptgen/internal/scanner"
	"github.com/user/promptgen/internal/summary"
)

var (
	designFlags      emitFlags
	designMaxDepth   int
	designMaxEntries int
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design [paths...]",
	Short: "Generate an architecture-review prompt from the directory tree",
	Long: `Render the directory tree of the given paths (default: current directory)
plus a summary of any Python modules, and produce a prompt asking for an
architecture review. An empty scan still yields a prompt; the tree alone can
carry the review.`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designFlags.register(designCmd)
	designCmd.Flags().IntVar(&designMaxDepth, "max-depth", scanner.DefaultTreeMaxDepth, "Maximum tree depth to render")
	designCmd.Flags().IntVar(&designMaxEntries, "max-entries", scanner.DefaultTreeMaxEntries, "Maximum tree entries to render")
}

func runDesign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := InitLogger(".", debugFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths := resolvePaths(args)
	logger.Info("Rendering project tree",
		logging.Any("paths", paths),
		logging.Int("max_depth", designMaxDepth),
	)

	filter := scanner.NewPathFilter(cfg.Excludes)
	tree := scanner.RenderTree(paths, ".", filter, designMaxDepth, designMaxEntries)
	if tree == "" {
		tree = "(empty)"
	}

	// Python modules enrich the review but their absence is not an error;
	// a tree of configs and assets is still reviewable.
	pyResult := scanner.Select(paths, ".", filter, map[string]bool{".py": true})
	lim := cfg.Limits()
	modules, stats := summary.Aggregate(pyResult.Files, lim)
	if !cfg.IncludePrivate {
		summary.StripPrivate(modules)
	}

	components := "No Python modules found."
	if len(modules) > 0 {
		components = "Stats: " + stats + "\n" + summary.Render(modules, lim)
	}

	pm, err := newPromptManager()
	if err != nil {
		return HandleCommandError(err, logger)
	}

	tpl, err := pm.RenderDomain("design", cfg.Style, map[string]interface{}{
		"tree_overview":      tree,
		"components_summary": components,
	})
	if err != nil {
		return HandleCommandError(err, logger)
	}

	return HandleCommandError(emitPrompt(cmd.Context(), cfg, logger, tpl, designFlags, "design"), logger)
}
