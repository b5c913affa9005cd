package analyzer

import "strings"

// Strategy extracts typed symbols from one language's source text using
// lexical patterns. Implementations must tolerate arbitrary input: a file
// that parses to nothing yields an empty slice, never an error.
type Strategy interface {
	Extract(content, relPath string) []Symbol
}

// strategies maps lowercase file extensions to their extraction strategy.
// Adding a language means registering one entry here; existing strategies
// are never touched.
var strategies = map[string]Strategy{}

func registerStrategy(s Strategy, exts ...string) {
	for _, ext := range exts {
		strategies[ext] = s
	}
}

// StrategyFor returns the extraction strategy for an extension, or nil
// when the language is unsupported.
func StrategyFor(ext string) Strategy {
	return strategies[strings.ToLower(ext)]
}

// lineAt converts a byte offset into a 1-based line number
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
