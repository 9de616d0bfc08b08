package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aireview/aireview/domain"
)

// maxScanTokenSize accommodates generated or minified sources with very
// long lines, which the default bufio.Scanner limit would reject.
const maxScanTokenSize = 4 * 1024 * 1024

// LineOptions configures the line-based checks
type LineOptions struct {
	// MaxLineLength is the configured line length limit
	MaxLineLength int

	// Severity is the configured severity for style findings
	Severity domain.Severity
}

// AnalyzeLines runs the style checks over a file, one issue per overlong
// line. An I/O failure is returned as a single in-band issue, never as an
// error.
func AnalyzeLines(path string, opts LineOptions) []domain.Issue {
	file, err := os.Open(path)
	if err != nil {
		return []domain.Issue{readFailure(err)}
	}
	defer file.Close()

	var issues []domain.Issue

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxScanTokenSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(scanner.Text())
		if utf8.RuneCountInString(trimmed) > opts.MaxLineLength {
			issues = append(issues, domain.Issue{
				Line:     lineNo,
				Type:     domain.IssueTypeStyle,
				Message:  fmt.Sprintf("Line too long (>%d characters)", opts.MaxLineLength),
				Severity: opts.Severity,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return []domain.Issue{readFailure(err)}
	}

	return issues
}

func readFailure(err error) domain.Issue {
	return domain.Issue{
		Line:     1,
		Type:     domain.IssueTypeError,
		Message:  fmt.Sprintf("Failed to read file: %v", err),
		Severity: domain.SeverityError,
	}
}
