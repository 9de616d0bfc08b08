package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/config"
	"github.com/aireview/aireview/internal/version"
	"github.com/aireview/aireview/service"
)

// Server exposes the analyzer over HTTP. Analysis outcomes, including
// failures, are always delivered with status 200; the body distinguishes
// issues from errors.
type Server struct {
	engine   *gin.Engine
	analyzer domain.FileAnalyzer
	logger   *slog.Logger
}

// New creates an HTTP server around the given configuration
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:   gin.New(),
		analyzer: service.NewAnalyzerService(cfg),
		logger:   slog.Default().With("component", "server"),
	}

	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/analyze", s.handleAnalyze)
}

// Run starts the server on addr and blocks until it stops
func (s *Server) Run(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	return s.engine.Run(addr)
}

// Handler returns the underlying HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Code Review API",
		"version": version.Version,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze analyzes an uploaded file. The upload is written to a temp
// file that keeps the original extension, since dispatch depends on it, and
// is removed before the response goes out.
func (s *Server) handleAnalyze(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": fmt.Sprintf("missing file upload: %v", err)})
		return
	}

	ext := filepath.Ext(upload.Filename)
	tmp, err := os.CreateTemp("", "aireview-*"+ext)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": fmt.Sprintf("failed to store upload: %v", err)})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(upload, tmpPath); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": fmt.Sprintf("failed to store upload: %v", err)})
		return
	}

	issues := s.analyzer.AnalyzeFile(tmpPath)
	if issues == nil {
		issues = []domain.Issue{}
	}

	s.logger.Info("analyzed upload", "filename", upload.Filename, "issues", len(issues))
	c.JSON(http.StatusOK, gin.H{"issues": issues})
}
