// Package limits centralizes the truncation and selection limits applied
// when summarizing scanned modules.
package limits

// Default limit values. These match the defaults exposed through
// configuration; commands override MaxChars and MaxFuncsPerModule from the
// loaded config.
const (
	DefaultMaxChars            = 12000
	DefaultMaxFuncsPerModule   = 8
	DefaultMaxClassesPerModule = 8
	DefaultMaxModules          = 50
	DefaultSnippetMaxLines     = 120
	DefaultDocstringMaxChars   = 1200
)

// Limits bounds how much extracted structure ends up in a rendered prompt.
// A Limits value is immutable once constructed.
type Limits struct {
	MaxChars            int // max characters in the final rendered prompt
	MaxFuncsPerModule   int // functions (and methods per class) shown per module
	MaxClassesPerModule int // classes shown per module
	MaxModules          int // modules aggregated before later paths are ignored
	SnippetMaxLines     int // lines kept of a function source snippet
	DocstringMaxChars   int // characters kept of a captured docstring
}

// Default returns the default limits.
func Default() Limits {
	return Limits{
		MaxChars:            DefaultMaxChars,
		MaxFuncsPerModule:   DefaultMaxFuncsPerModule,
		MaxClassesPerModule: DefaultMaxClassesPerModule,
		MaxModules:          DefaultMaxModules,
		SnippetMaxLines:     DefaultSnippetMaxLines,
		DocstringMaxChars:   DefaultDocstringMaxChars,
	}
}
