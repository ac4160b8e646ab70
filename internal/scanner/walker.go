package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ScanResult holds the ordered list of files that survived filtering.
type ScanResult struct {
	Files []string
}

// DefaultExtensions maps prompt domains to their extension allow-lists. A
// nil set means all files are eligible (design mode lists files without
// parsing their content).
var DefaultExtensions = map[string]map[string]bool{
	"tests":  {".py": true},
	"docs":   {".py": true, ".md": true, ".rst": true, ".txt": true},
	"design": nil,
}

// Select enumerates files under roots, in the order the roots are given.
// A root that is a file is tested directly; a directory is walked top-down
// in lexical order. Symlinked directories are not followed, which guards
// against cyclic symlinks. Each candidate is matched against the filter
// using its path relative to workDir and against the extension allow-list
// (nil allows everything). Unreadable entries are skipped and the scan
// continues.
func Select(roots []string, workDir string, filter Matcher, exts map[string]bool) ScanResult {
	var result ScanResult
	if len(roots) == 0 {
		return result
	}

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			if keep(abs, workDir, filter, exts) {
				result.Files = append(result.Files, abs)
			}
			continue
		}

		_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d == nil || d.IsDir() {
				return nil
			}
			if keep(path, workDir, filter, exts) {
				result.Files = append(result.Files, path)
			}
			return nil
		})
	}

	return result
}

func keep(path, workDir string, filter Matcher, exts map[string]bool) bool {
	if filter != nil && filter.Matches(relTo(workDir, path)) {
		return false
	}
	if exts != nil && !exts[filepath.Ext(path)] {
		return false
	}
	return true
}
