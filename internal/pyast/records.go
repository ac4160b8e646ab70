// Package pyast parses Python source files into lightweight structural
// records: imports, top-level functions, and classes with their methods.
// Parsing is purely syntactic; the input is untrusted source and is never
// evaluated.
package pyast

// FunctionRecord is an immutable snapshot of one function or method
// definition. Params lists parameter names in declaration order, with
// variadic entries marked as "*name" and "**name". Line numbers are
// 1-based and inclusive.
type FunctionRecord struct {
	Name       string
	Params     []string
	Returns    string   // textual return annotation, empty if absent
	Decorators []string // decorator expressions in source form, without '@'
	Public     bool     // name does not start with an underscore
	Docstring  string   // truncated to Limits.DocstringMaxChars, no marker
	Snippet    string   // source lines [StartLine, EndLine], possibly capped
	StartLine  int
	EndLine    int
}

// ClassRecord is a snapshot of one top-level class definition. Methods are
// the functions defined directly in the class body, in source order; nested
// classes are not flattened in.
type ClassRecord struct {
	Name      string
	Bases     []string // base-class expressions in source form
	Methods   []FunctionRecord
	Docstring string
	StartLine int
	EndLine   int
}

// ModuleRecord is the structural summary of one successfully parsed file.
type ModuleRecord struct {
	Path      string
	Imports   []string // import statements in source form
	Functions []FunctionRecord
	Classes   []ClassRecord
	Docstring string
}

// Skip explains why Parse produced no record, so callers can distinguish
// unreadable input from invalid syntax without side-channel logging.
type Skip int

const (
	SkipNone Skip = iota
	SkipReadError
	SkipSyntaxError
)

func (s Skip) String() string {
	switch s {
	case SkipNone:
		return "none"
	case SkipReadError:
		return "read error"
	case SkipSyntaxError:
		return "syntax error"
	default:
		return "unknown"
	}
}
