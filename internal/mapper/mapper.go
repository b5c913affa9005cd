package mapper

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/codescout/codescout/internal/analyzer"
	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/logging"
)

// configHintWords trigger configuration-change suggestions when present in
// the requirement text.
var configHintWords = []string{
	"config", "environment", "variable", "property", "setting",
	"database", "connection", "url", "port", "host",
}

// Mapper ranks a repository's files against a requirement's keyword set
type Mapper struct {
	cfg config.MapperConfig
	log *slog.Logger
}

// NewMapper creates a mapper with the given configuration
func NewMapper(cfg config.MapperConfig, log *slog.Logger) *Mapper {
	if log == nil {
		log = logging.NewDiscard()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxContentBytes <= 0 {
		cfg.MaxContentBytes = 100_000
	}
	return &Mapper{cfg: cfg, log: log}
}

// ScoreFiles scores every indexed symbol and every scoreable file's content
// against the keyword set, merges the two signals per file, and returns the
// ranked top files with their match evidence and snippet clusters.
//
// Ties break by discovery order: symbol index order first, then content
// traversal order, preserved by a stable sort.
func (m *Mapper) ScoreFiles(report *analyzer.AnalysisReport, keywords []string) []ScoredFile {
	fileScores := map[string]float64{}
	fileMatches := map[string][]Match{}
	var order []string
	touch := func(file string) {
		if _, ok := fileScores[file]; !ok {
			order = append(order, file)
			fileScores[file] = 0
		}
	}

	// Symbol scoring works entirely off the analysis report.
	for _, group := range report.CodeIndex.All() {
		for _, sym := range group.Symbols {
			if sym.Name == "" {
				continue
			}
			score := ScoreSymbolName(sym.Name, keywords)
			if score <= 0 {
				continue
			}
			touch(sym.File)
			fileScores[sym.File] += score
			fileMatches[sym.File] = append(fileMatches[sym.File], Match{
				Kind:  group.Kind,
				Name:  sym.Name,
				Score: score,
				Line:  sym.Line,
			})
		}
	}

	// Content scoring re-reads the live tree.
	if info, err := os.Stat(report.RepoPath); err == nil && info.IsDir() {
		files := analyzer.NewScanner(report.RepoPath).Scan()
		for _, sf := range m.scoreContents(files, keywords) {
			touch(sf.file)
			fileScores[sf.file] += sf.score
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return fileScores[order[a]] > fileScores[order[b]]
	})
	if len(order) > maxRankedFiles {
		order = order[:maxRankedFiles]
	}

	results := make([]ScoredFile, 0, len(order))
	for _, file := range order {
		matches := fileMatches[file]
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Score > matches[b].Score
		})
		if len(matches) > maxMatchesPerFile {
			matches = matches[:maxMatchesPerFile]
		}
		if matches == nil {
			matches = []Match{}
		}

		locations := []KeywordLocation{}
		path := filepath.Join(report.RepoPath, filepath.FromSlash(file))
		if raw, err := os.ReadFile(path); err == nil {
			locations = FindKeywordClusters(string(raw), keywords, maxLocations)
		}

		results = append(results, ScoredFile{
			File:             file,
			Score:            math.Round(fileScores[file]*100) / 100,
			Matches:          matches,
			KeywordLocations: locations,
		})
	}
	return results
}

type contentScore struct {
	file  string
	score float64
}

// scoreContents fans frequency scoring across a bounded worker pool.
// Results are collected by position so the merged order stays the
// deterministic traversal order.
func (m *Mapper) scoreContents(files []analyzer.FileEntry, keywords []string) []contentScore {
	scores := make([]float64, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, m.cfg.Workers)

	for i, file := range files {
		if !scoreableExts[file.Ext] {
			continue
		}
		wg.Add(1)
		go func(i int, f analyzer.FileEntry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			content := analyzer.ReadFileCapped(f.Path, m.cfg.MaxContentBytes)
			if content == "" {
				return
			}
			scores[i] = ScoreContent(content, keywords)
		}(i, file)
	}
	wg.Wait()

	var out []contentScore
	for i, s := range scores {
		if s > 0 {
			out = append(out, contentScore{file: files[i].RelPath, score: s})
		}
	}
	return out
}

// GenerateProposal runs keyword extraction and file scoring and assembles
// the change proposal for downstream review.
func (m *Mapper) GenerateProposal(report *analyzer.AnalysisReport, req Requirement) *ChangeProposal {
	keywords := ExtractKeywords(req)
	m.log.Info("extracted keywords", "count", len(keywords))

	scored := m.ScoreFiles(report, keywords)
	m.log.Info("scored files", "matched", len(scored))

	filesToModify := []ScoredFile{}
	for _, sf := range scored {
		if sf.Score >= modifyThreshold {
			filesToModify = append(filesToModify, sf)
		}
	}

	proposal := &ChangeProposal{
		TicketID:          req.TicketID,
		TicketSummary:     req.Summary,
		KeywordsUsed:      keywords,
		FilesToModify:     filesToModify,
		FilesToCreate:     []ScoredFile{},
		FilesToDelete:     []ScoredFile{},
		ConfigChanges:     m.configChanges(report, req),
		TestChanges:       m.testChanges(report),
		Notes:             m.notes(req),
		TotalFilesMatched: len(scored),
	}

	m.log.Info("proposal generated",
		"modify", len(proposal.FilesToModify),
		"config_hints", len(proposal.ConfigChanges))
	return proposal
}

// configChanges suggests configuration files to review when the requirement
// text mentions configuration concerns. Capped at 5, sorted by path for
// reproducible output.
func (m *Mapper) configChanges(report *analyzer.AnalysisReport, req Requirement) []ConfigChange {
	changes := []ConfigChange{}

	reqText := strings.ToLower(req.Description + req.AcceptanceCriteria)
	hinted := false
	for _, w := range configHintWords {
		if strings.Contains(reqText, w) {
			hinted = true
			break
		}
	}
	if !hinted {
		return changes
	}

	paths := make([]string, 0, len(report.Configuration.ConfigFiles))
	for p := range report.Configuration.ConfigFiles {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if len(changes) >= 5 {
			break
		}
		changes = append(changes, ConfigChange{
			File:   p,
			Reason: "Requirement may require configuration changes",
		})
	}
	return changes
}

// testChanges emits one hint per detected test framework, sorted by name
// for reproducible output.
func (m *Mapper) testChanges(report *analyzer.AnalysisReport) []TestChange {
	names := make([]string, 0, len(report.Tests.Frameworks))
	for name := range report.Tests.Frameworks {
		names = append(names, name)
	}
	sort.Strings(names)

	changes := []TestChange{}
	for _, name := range names {
		changes = append(changes, TestChange{
			Framework: name,
			Note:      fmt.Sprintf("Add/update tests using %s", name),
		})
	}
	return changes
}

// notes derives advisory notes from the issue type and size signals
func (m *Mapper) notes(req Requirement) []string {
	notes := []string{}

	switch strings.ToLower(req.Type) {
	case "story", "feature":
		notes = append(notes, "This appears to be a feature request - consider new files and API endpoints.")
	case "bug":
		notes = append(notes, "Bug fix - focus on modifying existing files rather than creating new ones.")
	case "task", "subtask":
		notes = append(notes, "Task - review all matched files and apply targeted changes.")
	}

	if req.StoryPoints >= 8 {
		notes = append(notes, fmt.Sprintf(
			"High complexity ticket (%d story points) - changes may span multiple services.", req.StoryPoints))
	}
	return notes
}
