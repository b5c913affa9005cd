package mapper

import (
	"regexp"
	"strings"
	"unicode"
)

// stopWords are discarded during tokenization. The set mixes English filler
// with generic ticket verbs ("fix", "update") that carry no file-level signal.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "shall": true, "can": true,
	"not": true, "no": true, "nor": true, "so": true, "yet": true,
	"both": true, "either": true, "neither": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"than": true, "too": true, "very": true, "just": true, "this": true,
	"that": true, "these": true, "those": true, "it": true, "its": true,
	"their": true, "they": true, "we": true, "you": true, "he": true,
	"she": true, "him": true, "her": true, "his": true, "our": true,
	"your": true, "my": true, "any": true, "all": true, "one": true,
	"two": true, "new": true, "also": true, "when": true, "where": true,
	"how": true, "what": true, "which": true, "who": true, "need": true,
	"update": true, "add": true, "use": true, "get": true, "set": true,
	"null": true, "true": true, "false": true, "return": true, "if": true,
	"else": true, "then": true, "fix": true, "bug": true, "change": true,
	"test": true, "run": true, "make": true, "into": true, "up": true,
	"out": true, "over": true,
}

const (
	maxDescriptionChars = 3000
	maxComments         = 5
	maxCommentChars     = 500
)

var wordRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9]*`)

// splitCaseParts splits camelCase and PascalCase into lowercase words.
// Acronym runs stay together: "parseHTTPResponse" -> parse, http, response.
func splitCaseParts(s string) []string {
	var parts []string
	runes := []rune(s)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		if unicode.IsUpper(cur) && unicode.IsLower(prev) {
			boundary = true
		} else if i+1 < len(runes) && unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(runes[i+1]) {
			boundary = true
		}
		if boundary {
			parts = append(parts, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	parts = append(parts, strings.ToLower(string(runes[start:])))
	return parts
}

// splitDelimiters splits snake_case, kebab-case and whitespace-joined names
func splitDelimiters(s string) []string {
	var parts []string
	for _, p := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}) {
		parts = append(parts, strings.ToLower(p))
	}
	return parts
}

// Tokenize extracts normalized keywords from free text: alphabetic-leading
// alphanumeric runs, lowercased, at least 3 characters, no stop words, plus
// the case-style sub-parts of each surviving token under the same filter.
// Deduplication preserves first-occurrence order.
func Tokenize(text string) []string {
	var tokens []string
	seen := map[string]bool{}

	add := func(tok string) {
		if len(tok) >= 3 && !stopWords[tok] && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	for _, word := range wordRe.FindAllString(text, -1) {
		add(strings.ToLower(word))
		for _, part := range splitCaseParts(word) {
			add(part)
		}
	}
	return tokens
}

// ExtractKeywords builds the keyword set for a requirement. Sources are
// visited in a fixed priority order; verbatim lowercased labels and
// components are appended last as exact terms regardless of length.
func ExtractKeywords(req Requirement) []string {
	var sources []string

	sources = append(sources, req.Summary, req.AcceptanceCriteria)
	sources = append(sources, truncate(req.Description, maxDescriptionChars))
	sources = append(sources, req.Labels...)
	sources = append(sources, req.Components...)
	for _, st := range req.Subtasks {
		sources = append(sources, st.Summary)
	}
	for _, li := range req.LinkedIssues {
		sources = append(sources, li.Summary)
	}
	for i, c := range req.Comments {
		if i >= maxComments {
			break
		}
		sources = append(sources, truncate(c.Body, maxCommentChars))
	}

	keywords := Tokenize(strings.Join(sources, " "))

	seen := map[string]bool{}
	for _, kw := range keywords {
		seen[kw] = true
	}
	for _, label := range append(append([]string{}, req.Labels...), req.Components...) {
		if label == "" {
			continue
		}
		lw := strings.ToLower(label)
		if !seen[lw] {
			seen[lw] = true
			keywords = append(keywords, lw)
		}
	}

	return keywords
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
