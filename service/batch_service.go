package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aireview/aireview/app"
	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/constants"
)

// BatchService implements domain.BatchRunner. Files are analyzed strictly
// one at a time; a failure on one file is logged and skipped, never fatal
// for the batch.
type BatchService struct {
	analyzer   domain.FileAnalyzer
	fileHelper *app.FileHelper
	progress   domain.ProgressManager
	logger     *slog.Logger
}

// NewBatchService creates a batch runner over the given analyzer
func NewBatchService(analyzer domain.FileAnalyzer, progress domain.ProgressManager) *BatchService {
	if progress == nil {
		progress = &NoOpProgressManager{}
	}
	return &BatchService{
		analyzer:   analyzer,
		fileHelper: app.NewFileHelper(),
		progress:   progress,
		logger:     slog.Default().With("component", "batch"),
	}
}

// AnalyzeDirectory analyzes every supported file under root that matches
// pattern and returns the results keyed by path in traversal order.
func (b *BatchService) AnalyzeDirectory(ctx context.Context, root, pattern string, recursive bool) (*domain.BatchResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot access %s", root), err)
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("%s is not a directory", root), nil)
	}

	if pattern == "" {
		pattern = constants.DefaultBatchPattern
	}

	files, err := b.fileHelper.CollectSupportedFiles(root, pattern, recursive)
	if err != nil {
		return nil, domain.NewAnalysisError("failed to collect files", err)
	}

	return b.runBatch(ctx, files)
}

// AnalyzeFiles analyzes an explicit list of paths. Paths that do not exist
// are logged and skipped.
func (b *BatchService) AnalyzeFiles(ctx context.Context, paths []string) (*domain.BatchResult, error) {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		exists, err := b.fileHelper.FileExists(path)
		if err != nil || !exists {
			b.logger.Warn("skipping missing file", "path", path)
			continue
		}
		existing = append(existing, path)
	}
	return b.runBatch(ctx, existing)
}

// runBatch analyzes files sequentially, tolerating per-file failures
func (b *BatchService) runBatch(ctx context.Context, files []string) (*domain.BatchResult, error) {
	result := domain.NewBatchResult()

	task := b.progress.StartTask("Analyzing files", len(files))
	defer task.Complete()

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		task.Describe(fmt.Sprintf("Analyzing %s", filepath.Base(file)))

		issues, ok := b.analyzeOne(file)
		task.Increment(1)
		if !ok {
			continue
		}
		result.Add(file, issues)
	}

	return result, nil
}

// analyzeOne runs the analyzer on a single file, converting a panic into a
// logged skip so one bad file cannot abort the batch.
func (b *BatchService) analyzeOne(file string) (issues []domain.Issue, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("analysis failed", "path", file, "error", fmt.Sprint(r))
			issues = nil
			ok = false
		}
	}()
	return b.analyzer.AnalyzeFile(file), true
}
