package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/analyzer"
	"github.com/aireview/aireview/internal/config"
	"github.com/aireview/aireview/internal/constants"
	"github.com/aireview/aireview/internal/parser"
)

// AnalyzerService implements domain.FileAnalyzer. Findings and per-file
// failures are reported in-band as issues; the caller never sees an error.
type AnalyzerService struct {
	cfg *config.Config
}

// NewAnalyzerService creates an analyzer service with the given configuration
func NewAnalyzerService(cfg *config.Config) *AnalyzerService {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &AnalyzerService{cfg: cfg}
}

// AnalyzeFile analyzes a single file and returns its issues. Python files
// get syntax-tree checks, everything else gets line checks. A nonexistent
// path yields no issues. The extension is the only dispatch key; callers
// that pass unsupported extensions still get line analysis.
func (s *AnalyzerService) AnalyzeFile(path string) []domain.Issue {
	if _, err := os.Stat(path); err != nil {
		return []domain.Issue{}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".py" {
		if !s.cfg.IsCheckEnabled(constants.CheckComplexity) {
			return []domain.Issue{}
		}
		return s.analyzeTree(path)
	}

	if !s.cfg.IsCheckEnabled(constants.CheckStyle) {
		return []domain.Issue{}
	}
	issues := analyzer.AnalyzeLines(path, analyzer.LineOptions{
		MaxLineLength: s.cfg.MaxLineLength,
		Severity:      domain.Severity(s.cfg.SeverityFor(constants.CheckStyle)),
	})
	if issues == nil {
		issues = []domain.Issue{}
	}
	return issues
}

// analyzeTree parses the file and runs the complexity checks over its AST
func (s *AnalyzerService) analyzeTree(path string) []domain.Issue {
	source, err := os.ReadFile(path)
	if err != nil {
		return []domain.Issue{{
			Line:     1,
			Type:     domain.IssueTypeError,
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Severity: domain.SeverityError,
		}}
	}

	p := parser.NewParser()
	defer p.Close()

	ast, err := p.ParseFile(path, source)
	if err != nil {
		return []domain.Issue{{
			Line:     1,
			Type:     domain.IssueTypeSyntax,
			Message:  fmt.Sprintf("Failed to parse file: %v", err),
			Severity: domain.Severity(s.cfg.SeverityFor(constants.CheckSyntax)),
		}}
	}

	issues := analyzer.AnalyzeTree(ast, analyzer.TreeOptions{
		MaxFunctionLines: s.cfg.MaxFunctionLines,
		Severity:         domain.Severity(s.cfg.SeverityFor(constants.CheckComplexity)),
	})
	if issues == nil {
		issues = []domain.Issue{}
	}
	return issues
}
