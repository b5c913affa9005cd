package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codescout/codescout/internal/analyzer"
	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/errors"
	"github.com/codescout/codescout/internal/logging"
	"github.com/codescout/codescout/internal/mapper"
)

// Server represents the HTTP API server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	log      *slog.Logger
	analyzer *analyzer.Analyzer
	mapper   *mapper.Mapper
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	if log == nil {
		log = logging.NewDiscard()
	}

	s := &Server{
		config:   cfg,
		router:   gin.New(),
		log:      log,
		analyzer: analyzer.NewAnalyzer(cfg.Analyzer, log),
		mapper:   mapper.NewMapper(cfg.Mapper, log),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		// Repository analysis
		v1.POST("/analyze", s.handleAnalyze)

		// Requirement mapping
		v1.POST("/map", s.handleMap)
	}
}

// Run starts the server
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.log.Info("starting API server", "addr", addr)
	return s.router.Run(addr)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": "0.1.0",
	})
}

// AnalyzeRequest represents a repository analysis request
type AnalyzeRequest struct {
	RepoPath string `json:"repo_path" binding:"required"`
}

// handleAnalyze runs a full repository analysis and returns the report
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.analyzer.Analyze(req.RepoPath)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// MapRequest represents a requirement mapping request. When Analysis is
// omitted the repository is analyzed first.
type MapRequest struct {
	RepoPath    string                   `json:"repo_path"`
	Requirement mapper.Requirement       `json:"requirement" binding:"required"`
	Analysis    *analyzer.AnalysisReport `json:"analysis"`
}

// handleMap maps a requirement onto repository files
func (s *Server) handleMap(c *gin.Context) {
	var req MapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := req.Analysis
	if report == nil {
		if req.RepoPath == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "repo_path or analysis required"})
			return
		}
		var err error
		report, err = s.analyzer.Analyze(req.RepoPath)
		if err != nil {
			s.writeError(c, err)
			return
		}
	}

	proposal := s.mapper.GenerateProposal(report, req.Requirement)
	c.JSON(http.StatusOK, proposal)
}

// writeError maps coded errors to HTTP status codes
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.RepoNotFound:
		status = http.StatusNotFound
	case errors.NotADirectory, errors.InvalidInput:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": string(errors.CodeOf(err))})
}
