package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TruncationMarker terminates a tree rendering that hit the entry cap.
const TruncationMarker = "… (truncated)"

// Default bounds for RenderTree.
const (
	DefaultTreeMaxDepth   = 4
	DefaultTreeMaxEntries = 500
)

// RenderTree produces an indented box-drawing listing of the given roots.
// Children are sorted files before directories, then alphabetically
// case-insensitive. maxDepth bounds descent below each root; maxEntries
// caps rendered entry lines across the whole call, appending
// TruncationMarker once reached. Roots that do not exist are skipped
// silently, as are unreadable directories.
func RenderTree(roots []string, workDir string, filter Matcher, maxDepth, maxEntries int) string {
	var lines []string
	count := 0
	truncated := false

	var walk func(dir, prefix string, depth int)
	walk = func(dir, prefix string, depth int) {
		if depth > maxDepth || truncated {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		kept := make([]os.DirEntry, 0, len(entries))
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if filter != nil && filter.Matches(relTo(workDir, full)) {
				continue
			}
			kept = append(kept, entry)
		}
		sort.SliceStable(kept, func(i, j int) bool {
			di, dj := kept[i].IsDir(), kept[j].IsDir()
			if di != dj {
				return !di // files before directories
			}
			return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
		})

		for i, entry := range kept {
			if count >= maxEntries {
				truncated = true
				return
			}
			connector := "├── "
			childPrefix := prefix + "│   "
			if i == len(kept)-1 {
				connector = "└── "
				childPrefix = prefix + "    "
			}
			lines = append(lines, prefix+connector+entry.Name())
			count++
			if entry.IsDir() {
				walk(filepath.Join(dir, entry.Name()), childPrefix, depth+1)
				if truncated {
					return
				}
			}
		}
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
		lines = append(lines, filepath.Base(abs))
		if info.IsDir() {
			walk(abs, "", 1)
		}
		if truncated {
			break
		}
	}

	if truncated {
		lines = append(lines, TruncationMarker)
	}

	return strings.Join(lines, "\n")
}
