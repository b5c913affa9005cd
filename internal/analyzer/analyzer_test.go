package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/errors"
)

func testConfig() config.AnalyzerConfig {
	return config.AnalyzerConfig{Workers: 4, MaxFileBytes: 500_000, TreeDepth: 3}
}

// fixtureRepo builds a small polyglot repository
func fixtureRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"express": "^4.18.0"}}`)
	writeFile(t, root, "src/routes/user.js", "function createUser(req) {}\napp.post(\"/users\", createUser);\n")
	writeFile(t, root, "service/billing.py", "class BillingService:\n    pass\n\ndef charge_card(amount):\n    pass\n")
	writeFile(t, root, "tests/test_billing.py", "def test_charge():\n    pass\n")
	writeFile(t, root, ".env", "STRIPE_KEY=sk_test\n")
	return root
}

func TestAnalyze(t *testing.T) {
	root := fixtureRepo(t)

	report, err := NewAnalyzer(testConfig(), nil).Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalFiles)
	assert.Contains(t, report.Languages, "Python")
	assert.Contains(t, report.Languages, "JavaScript")
	assert.Contains(t, report.Frameworks, "Express")
	assert.Contains(t, report.BuildTools, "npm")
	assert.Contains(t, report.Tests.Frameworks, "pytest")
	assert.Equal(t, []string{"STRIPE_KEY"}, report.Configuration.EnvVariables)

	require.NotNil(t, report.CodeIndex)
	assert.Equal(t, 1, report.Stats.TotalClasses)
	assert.Equal(t, "BillingService", report.CodeIndex.Classes[0].Name)
	assert.Equal(t, "service/billing.py", report.CodeIndex.Classes[0].File)

	var endpoints []string
	for _, s := range report.CodeIndex.APIEndpoints {
		endpoints = append(endpoints, s.Name)
	}
	assert.Contains(t, endpoints, "/users")

	require.NotNil(t, report.DirectoryTree)
	assert.Contains(t, report.DirectoryTree.Children, "src")
}

func TestAnalyzeDeterministic(t *testing.T) {
	root := fixtureRepo(t)
	a := NewAnalyzer(testConfig(), nil)

	first, err := a.Analyze(root)
	require.NoError(t, err)
	second, err := a.Analyze(root)
	require.NoError(t, err)

	j1, err := json.Marshal(first)
	require.NoError(t, err)
	j2, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(j1), string(j2))
}

func TestAnalyzeEmptyRepo(t *testing.T) {
	report, err := NewAnalyzer(testConfig(), nil).Analyze(t.TempDir())
	require.NoError(t, err)

	assert.Zero(t, report.TotalFiles)
	assert.Empty(t, report.Languages)
	assert.Equal(t, []string{"Monolith"}, report.Architecture)
	assert.NotNil(t, report.CodeIndex.Classes)
	assert.Empty(t, report.CodeIndex.Classes)
}

func TestAnalyzeMissingRoot(t *testing.T) {
	_, err := NewAnalyzer(testConfig(), nil).Analyze(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, errors.RepoNotFound, errors.CodeOf(err))
}

func TestAnalyzeRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x\n")

	_, err := NewAnalyzer(testConfig(), nil).Analyze(filepath.Join(root, "file.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.NotADirectory, errors.CodeOf(err))
}

func TestResolveRoot(t *testing.T) {
	ws := t.TempDir()
	repo := filepath.Join(ws, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "notes"), 0o755))

	assert.Equal(t, repo, ResolveRoot(ws, nil))
	assert.Equal(t, repo, ResolveRoot(repo, nil))

	plain := t.TempDir()
	assert.Equal(t, plain, ResolveRoot(plain, nil))
}
