package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/promptgen/internal/errors"
	"github.com/user/promptgen/internal/logging"
	"github.com/user/promptgen/internal/scanner"
	"github.com/user/promptgen/internal/summary"
)

// maxListedMaterials caps how many non-Python files are listed verbatim
// in the materials summary.
const maxListedMaterials = 100

var (
	docsFlags    emitFlags
	docsDocType  string
	docsAudience string
	docsTone     string
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs [paths...]",
	Short: "Generate a documentation-writing prompt from sources and docs",
	Long: `Scan the given paths (default: current directory) for Python files and
existing documentation (.md, .rst, .txt), summarize the Python modules, list
the other materials, and render a prompt asking for documentation.`,
	RunE: runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsFlags.register(docsCmd)
	docsCmd.Flags().StringVar(&docsDocType, "doc-type", "readme", "Kind of document to request (readme, api, tutorial, ...)")
	docsCmd.Flags().StringVar(&docsAudience, "audience", "developers", "Intended audience for the documentation")
	docsCmd.Flags().StringVar(&docsTone, "tone", "neutral", "Tone of the documentation")
}

func runDocs(cmd *cobra.Command, args []string) error {
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
	logger.Info("Scanning for documentation materials",
		logging.Any("paths", paths),
		logging.String("doc_type", docsDocType),
	)

	filter := scanner.NewPathFilter(cfg.Excludes)
	result := scanner.Select(paths, ".", filter, scanner.DefaultExtensions["docs"])
	if len(result.Files) == 0 {
		return HandleCommandError(errors.NewNoFilesError(), logger)
	}

	var pyFiles, otherFiles []string
	for _, f := range result.Files {
		if filepath.Ext(f) == ".py" {
			pyFiles = append(pyFiles, f)
		} else {
			otherFiles = append(otherFiles, f)
		}
	}

	lim := cfg.Limits()
	modules, stats := summary.Aggregate(pyFiles, lim)
	if !cfg.IncludePrivate {
		summary.StripPrivate(modules)
	}

	var b strings.Builder
	b.WriteString("Project stats: " + stats + "\n\n")
	if len(modules) > 0 {
		b.WriteString("Modules overview:\n")
		b.WriteString(summary.Render(modules, lim))
		b.WriteString("\n")
	}
	if len(otherFiles) > 0 {
		b.WriteString("\nOther materials:\n")
		listed := otherFiles
		if len(listed) > maxListedMaterials {
			listed = listed[:maxListedMaterials]
		}
		for _, f := range listed {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		if len(otherFiles) > maxListedMaterials {
			fmt.Fprintf(&b, "- ... and %d more\n", len(otherFiles)-maxListedMaterials)
		}
	}

	logger.Info("Materials collected",
		logging.Int("python_files", len(pyFiles)),
		logging.Int("other_files", len(otherFiles)),
	)

	pm, err := newPromptManager()
	if err != nil {
		return HandleCommandError(err, logger)
	}

	tpl, err := pm.RenderDomain("docs", cfg.Style, map[string]interface{}{
		"materials_summary": strings.TrimRight(b.String(), "\n"),
		"doc_type":          docsDocType,
		"audience":          docsAudience,
		"tone":              docsTone,
	})
	if err != nil {
		return HandleCommandError(err, logger)
	}

	return HandleCommandError(emitPrompt(cmd.Context(), cfg, logger, tpl, docsFlags, "docs"), logger)
}
