package pyast

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/user/promptgen/internal/limits"
)

// SnippetTruncationMarker is appended when a source snippet is cut at
// Limits.SnippetMaxLines.
const SnippetTruncationMarker = "# ... (truncated)"

// Parse reads and parses one Python file. It fails soft: an unreadable or
// non-UTF-8 file yields (nil, SkipReadError), a file with syntax errors
// yields (nil, SkipSyntaxError). A single malformed file never aborts a
// multi-file scan.
func Parse(path string, lim limits.Limits) (*ModuleRecord, Skip) {
	content, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(content) {
		return nil, SkipReadError
	}
	return ParseSource(path, content, lim)
}

// ParseSource parses Python source that has already been read.
func ParseSource(path string, content []byte, lim limits.Limits) (*ModuleRecord, Skip) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, SkipSyntaxError
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, SkipSyntaxError
	}

	lines := strings.Split(string(content), "\n")

	record := &ModuleRecord{
		Path:      path,
		Docstring: truncateRunes(moduleDocstring(root, content), lim.DocstringMaxChars),
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		node := root.Child(i)
		switch node.Type() {
		case "import_statement", "import_from_statement", "future_import_statement":
			record.Imports = append(record.Imports, node.Content(content))
		case "function_definition":
			if fn := extractFunction(node, nil, content, lines, lim); fn != nil {
				record.Functions = append(record.Functions, *fn)
			}
		case "class_definition":
			if cl := extractClass(node, content, lines, lim); cl != nil {
				record.Classes = append(record.Classes, *cl)
			}
		case "decorated_definition":
			decorators := extractDecorators(node, content)
			inner := node.ChildByFieldName("definition")
			if inner == nil {
				continue
			}
			switch inner.Type() {
			case "function_definition":
				if fn := extractFunction(inner, decorators, content, lines, lim); fn != nil {
					record.Functions = append(record.Functions, *fn)
				}
			case "class_definition":
				if cl := extractClass(inner, content, lines, lim); cl != nil {
					record.Classes = append(record.Classes, *cl)
				}
			}
		}
	}

	return record, SkipNone
}

// extractFunction builds a FunctionRecord from a function_definition node.
// Line numbers span the `def` line through the end of the body; decorators
// are passed in separately and do not extend the span.
func extractFunction(node *sitter.Node, decorators []string, content []byte, lines []string, lim limits.Limits) *FunctionRecord {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(content)

	returns := ""
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		returns = strings.TrimSpace(ret.Content(content))
	}

	startLine := int(node.StartPoint().Row) + 1
	endLine := int(node.EndPoint().Row) + 1

	return &FunctionRecord{
		Name:       name,
		Params:     extractParams(node.ChildByFieldName("parameters"), content),
		Returns:    returns,
		Decorators: decorators,
		Public:     isPublic(name),
		Docstring:  truncateRunes(bodyDocstring(node.ChildByFieldName("body"), content), lim.DocstringMaxChars),
		Snippet:    extractSnippet(lines, startLine, endLine, lim),
		StartLine:  startLine,
		EndLine:    endLine,
	}
}

// extractClass builds a ClassRecord from a class_definition node, collecting
// methods defined directly in the class body. Nested class definitions are
// left alone.
func extractClass(node *sitter.Node, content []byte, lines []string, lim limits.Limits) *ClassRecord {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	record := &ClassRecord{
		Name:      nameNode.Content(content),
		Bases:     extractBases(node.ChildByFieldName("superclasses"), content),
		Docstring: truncateRunes(bodyDocstring(node.ChildByFieldName("body"), content), lim.DocstringMaxChars),
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return record
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		switch child.Type() {
		case "function_definition":
			if fn := extractFunction(child, nil, content, lines, lim); fn != nil {
				record.Methods = append(record.Methods, *fn)
			}
		case "decorated_definition":
			decorators := extractDecorators(child, content)
			if inner := child.ChildByFieldName("definition"); inner != nil && inner.Type() == "function_definition" {
				if fn := extractFunction(inner, decorators, content, lines, lim); fn != nil {
					record.Methods = append(record.Methods, *fn)
				}
			}
		}
	}

	return record
}

// extractParams enumerates parameter names from a parameters node.
// Positional-only and regular parameters come through in source order;
// splat parameters are marked "*name" and "**name". The bare "/" and "*"
// separators are not emitted.
func extractParams(node *sitter.Node, content []byte) []string {
	if node == nil {
		return nil
	}

	var params []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			params = append(params, child.Content(content))
		case "typed_parameter":
			if name := typedParamName(child, content); name != "" {
				params = append(params, name)
			}
		case "default_parameter", "typed_default_parameter":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				params = append(params, splatName(nameNode, content))
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			params = append(params, splatName(child, content))
		}
	}
	return params
}

// typedParamName resolves the name of a `name: type` parameter, whose first
// child may itself be a splat pattern.
func typedParamName(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			return child.Content(content)
		case "list_splat_pattern", "dictionary_splat_pattern":
			return splatName(child, content)
		}
	}
	return ""
}

// splatName renders *args / **kwargs markers; plain identifiers pass through.
func splatName(node *sitter.Node, content []byte) string {
	switch node.Type() {
	case "list_splat_pattern":
		if id := firstChildOfType(node, "identifier"); id != nil {
			return "*" + id.Content(content)
		}
	case "dictionary_splat_pattern":
		if id := firstChildOfType(node, "identifier"); id != nil {
			return "**" + id.Content(content)
		}
	}
	return node.Content(content)
}

// extractDecorators collects decorator expressions from a
// decorated_definition node, in source form without the leading '@'.
func extractDecorators(node *sitter.Node, content []byte) []string {
	var decorators []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "decorator" {
			continue
		}
		text := strings.TrimSpace(child.Content(content))
		text = strings.TrimPrefix(text, "@")
		if text != "" {
			decorators = append(decorators, text)
		}
	}
	return decorators
}

// extractBases collects base-class expressions from a superclasses
// argument_list. Keyword arguments such as metaclass= are skipped.
func extractBases(node *sitter.Node, content []byte) []string {
	if node == nil {
		return nil
	}
	var bases []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "keyword_argument" || child.Type() == "comment" {
			continue
		}
		bases = append(bases, child.Content(content))
	}
	return bases
}

// moduleDocstring finds the module docstring: the first statement, when it
// is a bare string expression.
func moduleDocstring(root *sitter.Node, content []byte) string {
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() == "comment" {
			continue
		}
		if child.Type() == "expression_statement" && child.ChildCount() > 0 {
			if str := child.Child(0); isStringNode(str) {
				return stringContent(str, content)
			}
		}
		return ""
	}
	return ""
}

// bodyDocstring finds a function or class docstring: the first statement of
// the body block, when it is a bare string expression.
func bodyDocstring(body *sitter.Node, content []byte) string {
	if body == nil || body.ChildCount() == 0 {
		return ""
	}
	first := body.Child(0)
	if first.Type() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	if str := first.Child(0); isStringNode(str) {
		return stringContent(str, content)
	}
	return ""
}

// stringContent extracts the text of a string or concatenated_string node:
// prefix letters (r, b, f, u) are dropped and only the actual quote
// delimiter is stripped, so content that itself starts or ends with a quote
// survives. Implicit concatenation joins the pieces the way the runtime
// would.
func stringContent(node *sitter.Node, content []byte) string {
	if node.Type() == "concatenated_string" {
		var b strings.Builder
		for i := 0; i < int(node.ChildCount()); i++ {
			if child := node.Child(i); child.Type() == "string" {
				b.WriteString(stringContent(child, content))
			}
		}
		return b.String()
	}

	raw := node.Content(content)
	if i := strings.IndexAny(raw, `"'`); i > 0 {
		raw = raw[i:]
	}
	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(raw, quote) {
			raw = strings.TrimPrefix(raw, quote)
			return strings.TrimSuffix(raw, quote)
		}
	}
	return raw
}

// isStringNode reports whether a node can carry a docstring.
func isStringNode(node *sitter.Node) bool {
	return node.Type() == "string" || node.Type() == "concatenated_string"
}

// extractSnippet returns the source lines in [start, end] (1-based,
// inclusive), keeping at most Limits.SnippetMaxLines lines and appending a
// truncation marker when cut.
func extractSnippet(lines []string, start, end int, lim limits.Limits) string {
	startIdx := start - 1
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := end
	if endIdx > len(lines) {
		endIdx = len(lines)
	}
	if startIdx >= endIdx {
		return ""
	}
	snippet := lines[startIdx:endIdx]
	if len(snippet) > lim.SnippetMaxLines {
		capped := make([]string, 0, lim.SnippetMaxLines+1)
		capped = append(capped, snippet[:lim.SnippetMaxLines]...)
		capped = append(capped, SnippetTruncationMarker)
		snippet = capped
	}
	return strings.Join(snippet, "\n")
}

func firstChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func isPublic(name string) bool {
	return !strings.HasPrefix(name, "_")
}

// truncateRunes caps s at n runes. No marker is added; display-level
// ellipses are the summarizer's concern.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
