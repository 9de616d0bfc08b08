package domain

import (
	"context"
	"path/filepath"
	"strings"
)

// SupportedExtensions is the set of file extensions the batch layer accepts
// for analysis. Extensions are compared lowercased.
var SupportedExtensions = []string{".py", ".js", ".ts", ".java", ".cpp", ".c"}

// IsSupportedExtension reports whether the path carries a supported extension
func IsSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FileAnalyzer defines the core analysis contract for a single file.
//
// AnalyzeFile never returns an error: read and parse failures are converted
// to in-band Issues so downstream reporting always has a sequence to render.
// A nonexistent path yields an empty result.
type FileAnalyzer interface {
	AnalyzeFile(path string) []Issue
}

// BatchRunner defines batch analysis over a file set
type BatchRunner interface {
	// AnalyzeDirectory analyzes all matching supported files under root.
	// It fails with an invalid-input error if root is not a directory.
	AnalyzeDirectory(ctx context.Context, root, pattern string, recursive bool) (*BatchResult, error)

	// AnalyzeFiles analyzes an explicit file list. Nonexistent paths are
	// skipped with a logged warning.
	AnalyzeFiles(ctx context.Context, paths []string) (*BatchResult, error)
}

// ReportGenerator renders analysis results in one of the supported formats
type ReportGenerator interface {
	// GenerateReport renders the issues found in a single file
	GenerateReport(path string, issues []Issue, format OutputFormat) (string, error)

	// GenerateSummaryReport renders an aggregate report for a batch run.
	// Only text and JSON are supported.
	GenerateSummaryReport(results *BatchResult, format OutputFormat) (string, error)
}

// ProgressManager handles progress reporting for long operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}
