package mapper

import (
	"sort"
	"strings"
)

const (
	clusterWindow   = 5   // lines of context on each side of a hit line
	maxCandidates   = 50  // hit lines considered per file
	maxSnippetChars = 500 // snippet length cap
)

// FindKeywordClusters locates line windows where keywords co-occur. The line
// with the most distinct keyword hits seeds each window; a window expands up
// to clusterWindow lines in both directions but never over a line already
// consumed by an earlier window, so emitted locations never overlap.
func FindKeywordClusters(content string, keywords []string, maxLoc int) []KeywordLocation {
	locations := []KeywordLocation{}
	if content == "" || len(keywords) == 0 {
		return locations
	}

	kwSet := dedupeLower(keywords)
	lines := strings.Split(content, "\n")

	// hits maps a 0-based line index to the keywords it contains.
	hits := map[int][]string{}
	var hitLines []int
	for i, line := range lines {
		lineLower := strings.ToLower(line)
		for _, kw := range kwSet {
			if strings.Contains(lineLower, kw) {
				if len(hits[i]) == 0 {
					hitLines = append(hitLines, i)
				}
				hits[i] = append(hits[i], kw)
			}
		}
	}
	if len(hitLines) == 0 {
		return locations
	}

	// Most distinct hits first; earlier lines win ties.
	sort.SliceStable(hitLines, func(a, b int) bool {
		return len(hits[hitLines[a]]) > len(hits[hitLines[b]])
	})
	if len(hitLines) > maxCandidates {
		hitLines = hitLines[:maxCandidates]
	}

	used := map[int]bool{}
	for _, center := range hitLines {
		if used[center] {
			continue
		}

		start, end := center, center
		for i := center - 1; i >= center-clusterWindow && i >= 0 && !used[i]; i-- {
			start = i
		}
		for i := center + 1; i <= center+clusterWindow && i < len(lines) && !used[i]; i++ {
			end = i
		}
		for i := start; i <= end; i++ {
			used[i] = true
		}

		var found []string
		seen := map[string]bool{}
		for i := start; i <= end; i++ {
			for _, kw := range hits[i] {
				if !seen[kw] {
					seen[kw] = true
					found = append(found, kw)
				}
			}
		}

		snippet := strings.Join(lines[start:end+1], "\n")
		if len(snippet) > maxSnippetChars {
			snippet = snippet[:maxSnippetChars]
		}

		locations = append(locations, KeywordLocation{
			StartLine:     start + 1,
			EndLine:       end + 1,
			KeywordsFound: found,
			Snippet:       snippet,
		})
		if len(locations) >= maxLoc {
			break
		}
	}

	return locations
}

func dedupeLower(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		lw := strings.ToLower(item)
		if !seen[lw] {
			seen[lw] = true
			out = append(out, lw)
		}
	}
	return out
}
