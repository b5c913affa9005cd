package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TreeNode is one entry of the depth-bounded directory tree
type TreeNode struct {
	Type     string               `json:"type"`
	Children map[string]*TreeNode `json:"children,omitempty"`
}

// buildDirTree renders the repository layout down to maxDepth levels.
// Deny-listed and dot-prefixed entries are skipped; directories sort before
// files, both case-insensitively. Unreadable directories become leaf nodes.
func buildDirTree(root string, maxDepth int) *TreeNode {
	return treeNode(root, 1, maxDepth)
}

func treeNode(dir string, depth, maxDepth int) *TreeNode {
	node := &TreeNode{Type: "dir"}
	if depth > maxDepth {
		return node
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return node
	}
	sort.Slice(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	node.Children = map[string]*TreeNode{}
	for _, entry := range entries {
		name := entry.Name()
		if skipDirs[name] || strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			node.Children[name] = treeNode(filepath.Join(dir, name), depth+1, maxDepth)
		} else {
			node.Children[name] = &TreeNode{Type: "file"}
		}
	}
	return node
}
