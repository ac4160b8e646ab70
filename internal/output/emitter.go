// Package output delivers rendered prompts to stdout, the system
// clipboard, and optional files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/user/promptgen/internal/errors"
)

// Options controls where a rendered prompt is delivered.
type Options struct {
	// CopyToClipboard copies the prompt to the system clipboard.
	CopyToClipboard bool

	// OutPath is a file or directory to save the prompt to. Empty means
	// no file is written.
	OutPath string

	// BaseDir resolves relative OutPath values; empty means the process
	// working directory.
	BaseDir string

	// CommandName names generated files (prompt-<command>.txt).
	CommandName string
}

// Emit writes the prompt to stdout and, per opts, to the clipboard and a
// file. Clipboard failures degrade to a stderr warning; file failures are
// returned as errors.
func Emit(text string, opts Options) error {
	fmt.Println(text)

	if opts.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}

	if opts.OutPath == "" {
		return nil
	}

	target := opts.OutPath
	if !filepath.IsAbs(target) && opts.BaseDir != "" {
		target = filepath.Join(opts.BaseDir, target)
	}

	// A directory target (existing, or a path with a trailing separator)
	// gets a generated file name inside it.
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, fmt.Sprintf("prompt-%s.txt", opts.CommandName))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.NewOutputError(target, err)
	}
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return errors.NewOutputError(target, err)
	}

	fmt.Fprintf(os.Stderr, "Saved prompt to %s\n", target)
	return nil
}

// DefaultSavePath returns a dated path under baseDir for archiving a
// prompt: prompts/YYYY-MM-DD/HHMMSS-<command>.txt.
func DefaultSavePath(baseDir, commandName string, now time.Time) string {
	return filepath.Join(
		baseDir,
		"prompts",
		now.Format("2006-01-02"),
		fmt.Sprintf("%s-%s.txt", now.Format("150405"), commandName),
	)
}
