package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescout/codescout/internal/analyzer"
	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/mapper"
)

func newTestServer() *Server {
	return NewServer(config.DefaultConfig(), nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func fixtureRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "billing.py")
	content := "class InvoiceService:\n    pass\n\ndef send_invoice():\n    pass\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return root
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{RepoPath: fixtureRepo(t)})
	require.Equal(t, http.StatusOK, w.Code)

	var report analyzer.AnalysisReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.TotalFiles)
	assert.Equal(t, 1, report.Stats.TotalClasses)
}

func TestAnalyzeEndpointMissingBody(t *testing.T) {
	w := doJSON(t, newTestServer(), http.MethodPost, "/api/v1/analyze", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpointMissingRepo(t *testing.T) {
	w := doJSON(t, newTestServer(), http.MethodPost, "/api/v1/analyze",
		AnalyzeRequest{RepoPath: filepath.Join(t.TempDir(), "gone")})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "REPO_NOT_FOUND")
}

func TestMapEndpoint(t *testing.T) {
	s := newTestServer()
	body := MapRequest{
		RepoPath: fixtureRepo(t),
		Requirement: mapper.Requirement{
			TicketID: "SHOP-9",
			Summary:  "InvoiceService drops line items",
		},
	}

	w := doJSON(t, s, http.MethodPost, "/api/v1/map", body)
	require.Equal(t, http.StatusOK, w.Code)

	var proposal mapper.ChangeProposal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &proposal))
	assert.Equal(t, "SHOP-9", proposal.TicketID)
	require.NotEmpty(t, proposal.FilesToModify)
	assert.Equal(t, "billing.py", proposal.FilesToModify[0].File)
}

func TestMapEndpointRequiresRepoOrAnalysis(t *testing.T) {
	body := MapRequest{Requirement: mapper.Requirement{TicketID: "SHOP-10", Summary: "Anything"}}
	w := doJSON(t, newTestServer(), http.MethodPost, "/api/v1/map", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "repo_path or analysis required")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
