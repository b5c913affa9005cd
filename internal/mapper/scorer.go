package mapper

import "strings"

// Scoring constants. These are design constants of the ranking contract,
// not tunables: downstream stages rely on the 2.0 cutoff and top-30 bound.
const (
	exactMatchScore   = 10.0
	substringScore    = 5.0
	partMatchScore    = 3.0
	contentHitScore   = 0.5
	modifyThreshold   = 2.0
	maxRankedFiles    = 30
	maxMatchesPerFile = 10
	maxLocations      = 10
)

// scoreableExts are the extensions whose raw content participates in
// frequency scoring.
var scoreableExts = map[string]bool{
	".java": true, ".py": true, ".js": true, ".jsx": true, ".ts": true,
	".tsx": true, ".xml": true, ".yml": true, ".yaml": true, ".json": true,
	".properties": true,
}

// NameParts returns the meaningful lowercase parts of a symbol name: the
// whole name plus its case-style and delimiter splits, each at least 3
// characters.
func NameParts(name string) []string {
	var parts []string
	seen := map[string]bool{}
	add := func(p string) {
		if len(p) >= 3 && !seen[p] {
			seen[p] = true
			parts = append(parts, p)
		}
	}

	add(strings.ToLower(name))
	for _, p := range splitCaseParts(name) {
		add(p)
	}
	for _, p := range splitDelimiters(name) {
		add(p)
	}
	return parts
}

// ScoreSymbolName scores one symbol name against the keyword set. Each
// keyword lands in at most one tier, exact match first, and every keyword's
// contribution is summed: two keywords can both score the same symbol.
func ScoreSymbolName(name string, keywords []string) float64 {
	nameLower := strings.ToLower(name)
	parts := NameParts(name)
	score := 0.0

	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		switch {
		case kwLower == nameLower:
			score += exactMatchScore
		case strings.Contains(nameLower, kwLower) || strings.Contains(kwLower, nameLower):
			score += substringScore
		case partMatches(kwLower, parts):
			score += partMatchScore
		}
	}
	return score
}

func partMatches(kw string, parts []string) bool {
	for _, part := range parts {
		if kw == part || strings.Contains(part, kw) || strings.Contains(kw, part) {
			return true
		}
	}
	return false
}

// ScoreContent scores raw file content by case-insensitive keyword frequency
func ScoreContent(content string, keywords []string) float64 {
	contentLower := strings.ToLower(content)
	score := 0.0
	for _, kw := range keywords {
		score += float64(strings.Count(contentLower, strings.ToLower(kw))) * contentHitScore
	}
	return score
}
