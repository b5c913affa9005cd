package analyzer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/errors"
	"github.com/codescout/codescout/internal/logging"
)

// Analyzer scans a repository working tree and produces an AnalysisReport.
// The report is self-contained: the mapper can score symbols from it without
// re-reading the repository.
type Analyzer struct {
	cfg config.AnalyzerConfig
	log *slog.Logger
}

// NewAnalyzer creates an analyzer with the given configuration
func NewAnalyzer(cfg config.AnalyzerConfig, log *slog.Logger) *Analyzer {
	if log == nil {
		log = logging.NewDiscard()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = 500_000
	}
	if cfg.TreeDepth <= 0 {
		cfg.TreeDepth = 3
	}
	return &Analyzer{cfg: cfg, log: log}
}

// Analyze runs the full analysis pipeline over repoPath. A missing or
// unreadable root is fatal; every per-file failure is skip-and-continue.
func (a *Analyzer) Analyze(repoPath string) (*AnalysisReport, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidInput, "failed to resolve path", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, errors.Wrap(errors.RepoNotFound, fmt.Sprintf("repository root %s", absPath), err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.NotADirectory, fmt.Sprintf("repository root %s", absPath))
	}

	a.log.Info("scanning repository", "path", absPath)
	files := NewScanner(absPath).Scan()
	a.log.Info("scan complete", "files", len(files))

	a.log.Debug("detecting tech stack")
	languages := detectLanguages(files)
	frameworks := detectFrameworks(absPath, files)
	buildTools := detectBuildTools(files)
	architecture := detectArchitecture(files)
	tests := detectTests(files)
	configs := extractConfigs(files)

	a.log.Debug("building code index")
	index := a.buildCodeIndex(files)

	tree := buildDirTree(absPath, a.cfg.TreeDepth)

	report := &AnalysisReport{
		RepoPath:      absPath,
		TotalFiles:    len(files),
		Languages:     languages,
		Frameworks:    frameworks,
		BuildTools:    buildTools,
		Architecture:  architecture,
		CodeIndex:     index,
		Configuration: configs,
		Tests:         tests,
		DirectoryTree: tree,
		Stats: Stats{
			TotalClasses:      len(index.Classes),
			TotalFunctions:    len(index.Functions),
			TotalAPIEndpoints: len(index.APIEndpoints),
			TotalDBEntities:   len(index.DBEntities),
			TotalInterfaces:   len(index.Interfaces),
			TestFiles:         tests.TestFileCount,
		},
	}

	a.log.Info("analysis complete",
		"classes", report.Stats.TotalClasses,
		"functions", report.Stats.TotalFunctions,
		"endpoints", report.Stats.TotalAPIEndpoints)
	return report, nil
}

// buildCodeIndex extracts symbols from every supported file. Extraction is
// pure per file, so files fan out across a bounded worker pool; results land
// in a position-indexed slice and merge single-threaded, which keeps the
// final index in exact discovery order.
func (a *Analyzer) buildCodeIndex(files []FileEntry) *CodeIndex {
	results := make([][]Symbol, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.cfg.Workers)

	for i, file := range files {
		strategy := StrategyFor(file.Ext)
		if strategy == nil {
			continue
		}
		wg.Add(1)
		go func(i int, f FileEntry, s Strategy) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			content := ReadFileCapped(f.Path, a.cfg.MaxFileBytes)
			if content == "" {
				a.log.Debug("skipping unreadable or empty file", "file", f.RelPath)
				return
			}
			results[i] = s.Extract(content, f.RelPath)
		}(i, file, strategy)
	}
	wg.Wait()

	index := NewCodeIndex()
	for _, syms := range results {
		for _, sym := range syms {
			index.Add(sym)
		}
	}
	return index
}

// ResolveRoot handles the common mistake of pointing at a workspace folder
// instead of the repository itself: when path has no .git but contains
// exactly one subdirectory that does, that subdirectory is used. With
// several candidates the first (lexical) one wins.
func ResolveRoot(path string, log *slog.Logger) string {
	if log == nil {
		log = logging.NewDiscard()
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		return path
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return path
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := filepath.Join(path, entry.Name())
		if _, err := os.Stat(filepath.Join(sub, ".git")); err == nil {
			candidates = append(candidates, sub)
		}
	}

	switch len(candidates) {
	case 0:
		return path
	case 1:
		log.Info("auto-selected repository subfolder", "path", candidates[0])
		return candidates[0]
	default:
		log.Warn("multiple repositories found, using first", "path", candidates[0])
		return candidates[0]
	}
}
