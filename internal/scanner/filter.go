// Package scanner selects candidate files under a set of root paths and
// renders bounded directory trees. Filtering uses gitignore semantics:
// ordered patterns, `**` segments, trailing-slash directory patterns, and
// `!` negation of earlier matches.
package scanner

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Matcher reports whether a path (relative to the working directory) is
// excluded from a scan.
type Matcher interface {
	Matches(relPath string) bool
}

type gitignoreFilter struct {
	rules *ignore.GitIgnore
}

// NewPathFilter compiles an ordered list of gitignore-style patterns into a
// Matcher. Unparseable patterns are ignored rather than reported; the
// matcher never fails at match time.
func NewPathFilter(patterns []string) Matcher {
	return &gitignoreFilter{rules: ignore.CompileIgnoreLines(patterns...)}
}

func (f *gitignoreFilter) Matches(relPath string) bool {
	return f.rules.MatchesPath(relPath)
}

// relTo returns path relative to workDir for pattern matching, falling back
// to the absolute path when the file lies outside the working directory tree.
func relTo(workDir, path string) string {
	absWD, err := filepath.Abs(workDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absWD, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
