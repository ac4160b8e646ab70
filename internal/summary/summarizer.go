// Package summary aggregates extracted module records into the plain-text
// overview consumed by the prompt templates.
package summary

import (
	"fmt"
	"strings"

	"github.com/user/promptgen/internal/limits"
	"github.com/user/promptgen/internal/pyast"
)

// Display caps applied at render time, on top of the stored docstring cap.
const (
	moduleDocDisplayChars = 200
	memberDocDisplayChars = 160
)

// Aggregate parses each path in order, skipping files that fail to read or
// parse, and stops attempting further paths once Limits.MaxModules records
// have accumulated. The stats string has the form
// "modules=N, functions=M, classes=K".
func Aggregate(paths []string, lim limits.Limits) ([]*pyast.ModuleRecord, string) {
	var modules []*pyast.ModuleRecord
	for _, path := range paths {
		if len(modules) >= lim.MaxModules {
			break
		}
		record, skip := pyast.Parse(path, lim)
		if skip != pyast.SkipNone {
			continue
		}
		modules = append(modules, record)
	}

	totalFuncs := 0
	totalClasses := 0
	for _, m := range modules {
		totalFuncs += len(m.Functions)
		totalClasses += len(m.Classes)
	}
	stats := fmt.Sprintf("modules=%d, functions=%d, classes=%d", len(modules), totalFuncs, totalClasses)

	return modules, stats
}

// Render produces the textual overview of modules, one block per module in
// input order. Functions and methods are selected public-first (each group
// keeping source order) and capped at Limits.MaxFuncsPerModule; classes are
// capped at Limits.MaxClassesPerModule. Output is deterministic for the
// same records and limits.
func Render(modules []*pyast.ModuleRecord, lim limits.Limits) string {
	var b strings.Builder
	for _, m := range modules {
		fmt.Fprintf(&b, "- Module: %s\n", m.Path)
		if m.Docstring != "" {
			fmt.Fprintf(&b, "  Doc: %s...\n", capRunes(m.Docstring, moduleDocDisplayChars))
		}

		for _, fn := range selectFunctions(m.Functions, lim.MaxFuncsPerModule) {
			fmt.Fprintf(&b, "  * def %s%s\n", fn.Name, signature(fn))
			if fn.Docstring != "" {
				fmt.Fprintf(&b, "    Doc: %s...\n", capRunes(fn.Docstring, memberDocDisplayChars))
			}
		}

		classes := m.Classes
		if len(classes) > lim.MaxClassesPerModule {
			classes = classes[:lim.MaxClassesPerModule]
		}
		for _, cl := range classes {
			baseStr := ""
			if len(cl.Bases) > 0 {
				baseStr = "(" + strings.Join(cl.Bases, ", ") + ")"
			}
			fmt.Fprintf(&b, "  * class %s%s\n", cl.Name, baseStr)
			if cl.Docstring != "" {
				fmt.Fprintf(&b, "    Doc: %s...\n", capRunes(cl.Docstring, memberDocDisplayChars))
			}
			for _, mn := range selectFunctions(cl.Methods, lim.MaxFuncsPerModule) {
				fmt.Fprintf(&b, "    - def %s%s\n", mn.Name, signature(mn))
			}
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// StripPrivate removes underscore-prefixed functions, methods, and classes
// from the records in place. Callers that only want the public surface run
// this between Aggregate and Render.
func StripPrivate(modules []*pyast.ModuleRecord) {
	for _, m := range modules {
		m.Functions = publicOnly(m.Functions)
		classes := m.Classes[:0]
		for _, cl := range m.Classes {
			if strings.HasPrefix(cl.Name, "_") {
				continue
			}
			cl.Methods = publicOnly(cl.Methods)
			classes = append(classes, cl)
		}
		m.Classes = classes
	}
}

func publicOnly(fns []pyast.FunctionRecord) []pyast.FunctionRecord {
	kept := fns[:0]
	for _, fn := range fns {
		if fn.Public {
			kept = append(kept, fn)
		}
	}
	return kept
}

// selectFunctions orders public functions before private ones, preserving
// source order within each group, then applies the cap.
func selectFunctions(fns []pyast.FunctionRecord, max int) []pyast.FunctionRecord {
	chosen := make([]pyast.FunctionRecord, 0, len(fns))
	for _, fn := range fns {
		if fn.Public {
			chosen = append(chosen, fn)
		}
	}
	for _, fn := range fns {
		if !fn.Public {
			chosen = append(chosen, fn)
		}
	}
	if len(chosen) > max {
		chosen = chosen[:max]
	}
	return chosen
}

func signature(fn pyast.FunctionRecord) string {
	sig := "(" + strings.Join(fn.Params, ", ") + ")"
	if fn.Returns != "" {
		sig += " -> " + fn.Returns
	}
	return sig
}

// capRunes trims whitespace after cutting s at n runes, mirroring how the
// display caps interact with the trailing ellipsis.
func capRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		s = string(runes[:n])
	}
	return strings.TrimSpace(s)
}
