package analyzer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// skipDirs are pruned unconditionally, before any ignore-pattern check
var skipDirs = map[string]bool{
	"node_modules": true, ".git": true, "__pycache__": true, "build": true,
	"dist": true, "target": true, "venv": true, ".venv": true, ".idea": true,
	".vscode": true, "coverage": true, ".nyc_output": true, ".gradle": true,
	".m2": true, "out": true, "bin": true, "obj": true,
}

// Scanner enumerates files under a repository root, pruning build and
// dependency directories and anything matched by the root .gitignore.
type Scanner struct {
	root    string
	matcher *ignore.GitIgnore
}

// NewScanner creates a scanner for the given root. A missing or unreadable
// .gitignore simply disables pattern matching.
func NewScanner(root string) *Scanner {
	s := &Scanner{root: root}
	gi := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gi); err == nil {
		if m, err := ignore.CompileIgnoreFile(gi); err == nil {
			s.matcher = m
		}
	}
	return s
}

// ignored reports whether a forward-slash relative path matches the
// compiled .gitignore pattern set. Directory paths are tested with and
// without a trailing slash so "build/" style patterns apply.
func (s *Scanner) ignored(rel string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	if s.matcher.MatchesPath(rel) {
		return true
	}
	return isDir && s.matcher.MatchesPath(rel+"/")
}

// Scan walks the tree iteratively and returns all surviving files in a
// deterministic depth-first order: a directory's files come before its
// subdirectories, both in lexical order. Unreadable subdirectories are
// skipped silently.
func (s *Scanner) Scan() []FileEntry {
	var files []FileEntry
	stack := []string{s.root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			abs := filepath.Join(dir, entry.Name())
			rel := s.relPath(abs)

			if entry.IsDir() {
				if skipDirs[entry.Name()] || s.ignored(rel, true) {
					continue
				}
				subdirs = append(subdirs, abs)
				continue
			}
			if s.ignored(rel, false) {
				continue
			}
			files = append(files, FileEntry{
				Path:    abs,
				RelPath: rel,
				Ext:     strings.ToLower(filepath.Ext(entry.Name())),
			})
		}

		// Push in reverse so subdirectories pop in lexical order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return files
}

// relPath returns the forward-slash relative path from the scan root
func (s *Scanner) relPath(abs string) string {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		rel = abs
	}
	return filepath.ToSlash(rel)
}

// ReadFileCapped reads at most maxBytes from a file. Read errors yield an
// empty string: per-file failures never abort a scan.
func ReadFileCapped(path string, maxBytes int) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)))
	if err != nil {
		return ""
	}
	return string(raw)
}
