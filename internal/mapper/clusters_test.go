package mapper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindKeywordClustersBasic(t *testing.T) {
	content := strings.Join([]string{
		"import os",
		"",
		"def charge_payment():",
		"    amount = 0",
		"    return amount",
	}, "\n")

	locs := FindKeywordClusters(content, []string{"payment", "amount"}, 10)
	require.Len(t, locs, 1)

	loc := locs[0]
	assert.Equal(t, 1, loc.StartLine)
	assert.Equal(t, 5, loc.EndLine)
	assert.Equal(t, []string{"payment", "amount"}, loc.KeywordsFound)
	assert.Contains(t, loc.Snippet, "charge_payment")
}

func TestFindKeywordClustersNoOverlap(t *testing.T) {
	var lines []string
	for i := 0; i < 60; i++ {
		if i%20 == 0 {
			lines = append(lines, "payment handler")
		} else {
			lines = append(lines, fmt.Sprintf("line %d", i))
		}
	}

	locs := FindKeywordClusters(strings.Join(lines, "\n"), []string{"payment"}, 10)
	require.Len(t, locs, 3)

	for i := 1; i < len(locs); i++ {
		for j := 0; j < i; j++ {
			disjoint := locs[i].StartLine > locs[j].EndLine || locs[i].EndLine < locs[j].StartLine
			assert.True(t, disjoint, "locations %d and %d overlap", j, i)
		}
	}
}

func TestFindKeywordClustersMaxLocations(t *testing.T) {
	var lines []string
	for i := 0; i < 300; i++ {
		if i%15 == 0 {
			lines = append(lines, "billing code")
		} else {
			lines = append(lines, "filler")
		}
	}

	locs := FindKeywordClusters(strings.Join(lines, "\n"), []string{"billing"}, 3)
	assert.Len(t, locs, 3)
}

func TestFindKeywordClustersSnippetCap(t *testing.T) {
	long := strings.Repeat("x", 200) + " payment " + strings.Repeat("y", 400)
	locs := FindKeywordClusters(long, []string{"payment"}, 10)
	require.Len(t, locs, 1)
	assert.LessOrEqual(t, len(locs[0].Snippet), 500)
}

func TestFindKeywordClustersDensestFirst(t *testing.T) {
	content := strings.Join([]string{
		"payment",
		strings.Repeat("pad\n", 20),
		"payment refund invoice",
	}, "\n")

	locs := FindKeywordClusters(content, []string{"payment", "refund", "invoice"}, 10)
	require.NotEmpty(t, locs)
	assert.Equal(t, []string{"payment", "refund", "invoice"}, locs[0].KeywordsFound)
}

func TestFindKeywordClustersEmpty(t *testing.T) {
	assert.Empty(t, FindKeywordClusters("", []string{"x"}, 10))
	assert.Empty(t, FindKeywordClusters("content", nil, 10))
	assert.Empty(t, FindKeywordClusters("no hits here", []string{"zebra"}, 10))
}
