package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Positive(t, cfg.Analyzer.Workers)
	assert.Equal(t, 500_000, cfg.Analyzer.MaxFileBytes)
	assert.Equal(t, 3, cfg.Analyzer.TreeDepth)
	assert.Equal(t, 100_000, cfg.Mapper.MaxContentBytes)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  port: 9090\nlog:\n  level: debug\nanalyzer:\n  tree_depth: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Analyzer.TreeDepth)
	// untouched values keep their defaults
	assert.Equal(t, 500_000, cfg.Analyzer.MaxFileBytes)
}
