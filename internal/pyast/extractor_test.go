package pyast

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/promptgen/internal/limits"
)

func parseSource(t *testing.T, source string) *ModuleRecord {
	t.Helper()
	record, skip := ParseSource("test.py", []byte(source), limits.Default())
	if skip != SkipNone {
		t.Fatalf("ParseSource skipped: %v", skip)
	}
	return record
}

func TestParseSourceCounts(t *testing.T) {
	record := parseSource(t, `"""Module doc."""
import os
from typing import List

def alpha():
    pass

def _beta():
    pass

class Gamma:
    def method(self):
        pass
`)

	if record.Docstring != "Module doc." {
		t.Errorf("module docstring = %q", record.Docstring)
	}
	if len(record.Imports) != 2 {
		t.Errorf("imports = %v", record.Imports)
	}
	if len(record.Functions) != 2 {
		t.Fatalf("functions = %d", len(record.Functions))
	}
	if len(record.Classes) != 1 {
		t.Fatalf("classes = %d", len(record.Classes))
	}
	if !record.Functions[0].Public || record.Functions[1].Public {
		t.Error("alpha should be public, _beta private")
	}
	if len(record.Classes[0].Methods) != 1 || record.Classes[0].Methods[0].Name != "method" {
		t.Errorf("methods = %+v", record.Classes[0].Methods)
	}
}

func TestParseSourceParameterOrder(t *testing.T) {
	record := parseSource(t, `def f(pos_only, /, regular, default=1, *args, kw_only, **kwargs):
    pass
`)

	want := []string{"pos_only", "regular", "default", "*args", "kw_only", "**kwargs"}
	got := record.Functions[0].Params
	if len(got) != len(want) {
		t.Fatalf("params = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseSourceTypedParameters(t *testing.T) {
	record := parseSource(t, `def g(a: int, b: str = "x", *args: int, **kwargs: str) -> bool:
    return True
`)

	fn := record.Functions[0]
	want := []string{"a", "b", "*args", "**kwargs"}
	if len(fn.Params) != len(want) {
		t.Fatalf("params = %v, want %v", fn.Params, want)
	}
	for i := range want {
		if fn.Params[i] != want[i] {
			t.Errorf("param %d = %q, want %q", i, fn.Params[i], want[i])
		}
	}
	if fn.Returns != "bool" {
		t.Errorf("returns = %q", fn.Returns)
	}
}

func TestParseSourceDecorators(t *testing.T) {
	record := parseSource(t, `@staticmethod
@functools.lru_cache(maxsize=16)
def cached():
    pass
`)

	fn := record.Functions[0]
	if len(fn.Decorators) != 2 {
		t.Fatalf("decorators = %v", fn.Decorators)
	}
	if fn.Decorators[0] != "staticmethod" {
		t.Errorf("decorator 0 = %q", fn.Decorators[0])
	}
	if fn.Decorators[1] != "functools.lru_cache(maxsize=16)" {
		t.Errorf("decorator 1 = %q", fn.Decorators[1])
	}
	// The span covers the def, not the decorators above it.
	if fn.StartLine != 3 {
		t.Errorf("start line = %d, want 3", fn.StartLine)
	}
}

func TestParseSourceDecoratedClass(t *testing.T) {
	record := parseSource(t, `@dataclass
class Point:
    x: int
    y: int
`)

	if len(record.Classes) != 1 || record.Classes[0].Name != "Point" {
		t.Fatalf("classes = %+v", record.Classes)
	}
}

func TestParseSourceClassBases(t *testing.T) {
	record := parseSource(t, `class Child(Base, mixins.LoggerMixin, metaclass=Meta):
    """Child doc."""
    pass
`)

	cl := record.Classes[0]
	if len(cl.Bases) != 2 {
		t.Fatalf("bases = %v", cl.Bases)
	}
	if cl.Bases[0] != "Base" || cl.Bases[1] != "mixins.LoggerMixin" {
		t.Errorf("bases = %v", cl.Bases)
	}
	if cl.Docstring != "Child doc." {
		t.Errorf("class docstring = %q", cl.Docstring)
	}
}

func TestParseSourceAsyncFunction(t *testing.T) {
	record := parseSource(t, `async def fetch(url):
    return url
`)

	if len(record.Functions) != 1 || record.Functions[0].Name != "fetch" {
		t.Fatalf("async def not extracted: %+v", record.Functions)
	}
}

func TestParseSourceNestedClassNotFlattened(t *testing.T) {
	record := parseSource(t, `class Outer:
    class Inner:
        def hidden(self):
            pass

    def visible(self):
        pass
`)

	if len(record.Classes) != 1 {
		t.Fatalf("classes = %d, want only Outer", len(record.Classes))
	}
	methods := record.Classes[0].Methods
	if len(methods) != 1 || methods[0].Name != "visible" {
		t.Errorf("methods = %+v, Inner's must not leak", methods)
	}
}

func TestParseSourceDunderIsPrivate(t *testing.T) {
	record := parseSource(t, `class C:
    def __init__(self):
        pass

    def work(self):
        pass
`)

	methods := record.Classes[0].Methods
	if methods[0].Public {
		t.Error("__init__ must be private (leading underscore)")
	}
	if !methods[1].Public {
		t.Error("work must be public")
	}
}

func TestParseSourceDocstringTruncation(t *testing.T) {
	long := strings.Repeat("x", 5000)
	record := parseSource(t, `def doc():
    """`+long+`"""
    pass
`)

	doc := record.Functions[0].Docstring
	if len(doc) != limits.Default().DocstringMaxChars {
		t.Errorf("docstring length = %d, want %d", len(doc), limits.Default().DocstringMaxChars)
	}
	if strings.Contains(doc, "truncated") {
		t.Error("stored docstrings carry no truncation marker")
	}
}

func TestParseSourceConcatenatedDocstring(t *testing.T) {
	record := parseSource(t, `def f():
    "first part, " "second part."
    pass
`)

	if got := record.Functions[0].Docstring; got != "first part, second part." {
		t.Errorf("concatenated docstring = %q", got)
	}
}

func TestParseSourceConcatenatedModuleDocstring(t *testing.T) {
	record := parseSource(t, `"Module " "doc."

def f():
    pass
`)

	if record.Docstring != "Module doc." {
		t.Errorf("module docstring = %q", record.Docstring)
	}
}

func TestParseSourceDocstringKeepsInnerQuotes(t *testing.T) {
	record := parseSource(t, `def f():
    '''"Quoted" opening and closing "words"'''
    pass
`)

	if got := record.Functions[0].Docstring; got != `"Quoted" opening and closing "words"` {
		t.Errorf("docstring = %q, inner quotes must survive", got)
	}
}

func TestParseSourceRawStringDocstring(t *testing.T) {
	record := parseSource(t, `def f():
    r"""raw \d+ pattern"""
    pass
`)

	if got := record.Functions[0].Docstring; got != `raw \d+ pattern` {
		t.Errorf("docstring = %q", got)
	}
}

func TestParseSourceSnippetCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("def big():\n")
	for i := 0; i < 200; i++ {
		b.WriteString("    x = 1\n")
	}

	lim := limits.Default()
	record, skip := ParseSource("big.py", []byte(b.String()), lim)
	if skip != SkipNone {
		t.Fatalf("skip = %v", skip)
	}

	snippet := record.Functions[0].Snippet
	snippetLines := strings.Split(snippet, "\n")
	if len(snippetLines) != lim.SnippetMaxLines+1 {
		t.Fatalf("snippet lines = %d, want %d plus marker", len(snippetLines), lim.SnippetMaxLines)
	}
	if snippetLines[len(snippetLines)-1] != SnippetTruncationMarker {
		t.Errorf("last snippet line = %q", snippetLines[len(snippetLines)-1])
	}
}

func TestParseSourceLineNumbers(t *testing.T) {
	record := parseSource(t, `import os


def first():
    pass
`)

	fn := record.Functions[0]
	if fn.StartLine != 4 {
		t.Errorf("start line = %d, want 4", fn.StartLine)
	}
	if fn.EndLine != 5 {
		t.Errorf("end line = %d, want 5", fn.EndLine)
	}
	if !strings.HasPrefix(fn.Snippet, "def first():") {
		t.Errorf("snippet = %q", fn.Snippet)
	}
}

func TestParseSourceSyntaxErrorSkipped(t *testing.T) {
	_, skip := ParseSource("bad.py", []byte("def broken(:\n    pass\n"), limits.Default())
	if skip != SkipSyntaxError {
		t.Errorf("skip = %v, want syntax error", skip)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, skip := Parse(filepath.Join(t.TempDir(), "missing.py"), limits.Default())
	if skip != SkipReadError {
		t.Errorf("skip = %v, want read error", skip)
	}
}

func TestParseNonUTF8File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.py")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, skip := Parse(path, limits.Default())
	if skip != SkipReadError {
		t.Errorf("skip = %v, want read error", skip)
	}
}

func TestParseReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.py")
	if err := os.WriteFile(path, []byte("def ok():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	record, skip := Parse(path, limits.Default())
	if skip != SkipNone {
		t.Fatalf("skip = %v", skip)
	}
	if record.Path != path {
		t.Errorf("record path = %q, want %q", record.Path, path)
	}
	if len(record.Functions) != 1 {
		t.Errorf("functions = %+v", record.Functions)
	}
}

func TestSkipString(t *testing.T) {
	if SkipNone.String() != "none" || SkipReadError.String() != "read error" || SkipSyntaxError.String() != "syntax error" {
		t.Error("Skip.String labels changed")
	}
}
