package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aireview/aireview/domain"
)

// ReportService implements domain.ReportGenerator. Rendering is a pure
// transform; no state is retained between calls.
type ReportService struct{}

// NewReportService creates a new report generator
func NewReportService() *ReportService {
	return &ReportService{}
}

var severityIcons = map[domain.Severity]string{
	domain.SeverityError:   "❌",
	domain.SeverityWarning: "⚠️",
	domain.SeverityInfo:    "ℹ️",
}

func severityTitle(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return "Error"
	case domain.SeverityWarning:
		return "Warning"
	case domain.SeverityInfo:
		return "Info"
	}
	return string(s)
}

// GenerateReport renders the issues found in a single file
func (r *ReportService) GenerateReport(path string, issues []domain.Issue, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return r.generateTextReport(path, issues), nil
	case domain.OutputFormatJSON:
		return r.generateJSONReport(path, issues)
	case domain.OutputFormatHTML:
		return r.generateHTMLReport(path, issues)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// generateTextReport renders a plain-text report. The summary follows the
// fixed severity display order; the detail section is sorted by line.
func (r *ReportService) generateTextReport(path string, issues []domain.Issue) string {
	var lines []string
	lines = append(lines, "AI Code Review Report")
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, fmt.Sprintf("File: %s", path))
	lines = append(lines, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	lines = append(lines, fmt.Sprintf("Total Issues: %d", len(issues)))
	lines = append(lines, "")

	if len(issues) == 0 {
		lines = append(lines, "✅ No issues found!")
		return strings.Join(lines, "\n")
	}

	counts := domain.CountBySeverity(issues)

	lines = append(lines, "Issue Summary:")
	for _, severity := range domain.SeverityDisplayOrder {
		if count, ok := counts[severity]; ok {
			lines = append(lines, fmt.Sprintf("  %s %s: %d", severityIcons[severity], severityTitle(severity), count))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "Detailed Issues:")
	lines = append(lines, strings.Repeat("-", 30))

	for _, issue := range domain.SortIssuesByLine(issues) {
		lines = append(lines, fmt.Sprintf("%s Line %d: %s", severityIcons[issue.Severity], issue.Line, issue.Message))
		lines = append(lines, fmt.Sprintf("   Type: %s | Severity: %s", issue.Type, issue.Severity))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// fileReportJSON is the wire shape of a single-file JSON report
type fileReportJSON struct {
	FilePath    string          `json:"file_path"`
	GeneratedAt string          `json:"generated_at"`
	TotalIssues int             `json:"total_issues"`
	Summary     *severitySummary `json:"summary"`
	Issues      []domain.Issue  `json:"issues"`
}

// severitySummary counts issues per severity, serialized with keys in
// first-seen order to match the issue sequence.
type severitySummary struct {
	order  []domain.Severity
	counts map[domain.Severity]int
}

func newSeveritySummary(issues []domain.Issue) *severitySummary {
	s := &severitySummary{counts: make(map[domain.Severity]int)}
	for _, issue := range issues {
		if _, seen := s.counts[issue.Severity]; !seen {
			s.order = append(s.order, issue.Severity)
		}
		s.counts[issue.Severity]++
	}
	return s
}

// MarshalJSON writes the counts as an object with keys in first-seen order
func (s *severitySummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, severity := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(severity))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", s.counts[severity])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// generateJSONReport renders a JSON report, preserving original issue order
func (r *ReportService) generateJSONReport(path string, issues []domain.Issue) (string, error) {
	if issues == nil {
		issues = []domain.Issue{}
	}
	report := fileReportJSON{
		FilePath:    path,
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalIssues: len(issues),
		Summary:     newSeveritySummary(issues),
		Issues:      issues,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to encode JSON report", err)
	}
	return string(data), nil
}

// GenerateSummaryReport renders an aggregate report for a batch run
func (r *ReportService) GenerateSummaryReport(results *domain.BatchResult, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return r.generateSummaryText(results), nil
	case domain.OutputFormatJSON:
		return r.generateSummaryJSON(results)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// generateSummaryText renders the batch summary, listing files by
// descending issue count. Ties keep the traversal order.
func (r *ReportService) generateSummaryText(results *domain.BatchResult) string {
	var lines []string
	lines = append(lines, "AI Code Review - Batch Analysis Summary")
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, fmt.Sprintf("Files analyzed: %d", results.Len()))
	lines = append(lines, fmt.Sprintf("Total issues found: %d", results.TotalIssues()))
	lines = append(lines, "")

	var withIssues []domain.FileIssues
	for _, entry := range results.Entries() {
		if len(entry.Issues) > 0 {
			withIssues = append(withIssues, entry)
		}
	}

	if len(withIssues) == 0 {
		lines = append(lines, "✅ No issues found in any files!")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("Files with issues: %d", len(withIssues)))
	lines = append(lines, "")

	sort.SliceStable(withIssues, func(i, j int) bool {
		return len(withIssues[i].Issues) > len(withIssues[j].Issues)
	})

	for _, entry := range withIssues {
		lines = append(lines, fmt.Sprintf("📄 %s", entry.Path))
		lines = append(lines, fmt.Sprintf("   Issues: %d", len(entry.Issues)))

		counts := domain.CountBySeverity(entry.Issues)
		var parts []string
		for _, severity := range domain.SeverityDisplayOrder {
			if count, ok := counts[severity]; ok {
				parts = append(parts, fmt.Sprintf("%s %d", severityIcons[severity], count))
			}
		}
		if len(parts) > 0 {
			lines = append(lines, fmt.Sprintf("   %s", strings.Join(parts, " ")))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// summaryReportJSON is the wire shape of the batch JSON summary
type summaryReportJSON struct {
	AnalysisSummary analysisSummaryJSON `json:"analysis_summary"`
	Files           *orderedFiles       `json:"files"`
}

type analysisSummaryJSON struct {
	TotalFiles  int    `json:"total_files"`
	TotalIssues int    `json:"total_issues"`
	GeneratedAt string `json:"generated_at"`
}

type fileSummaryJSON struct {
	IssueCount int            `json:"issue_count"`
	Issues     []domain.Issue `json:"issues"`
}

// orderedFiles serializes the path->result mapping preserving batch
// traversal order, which a plain Go map would lose.
type orderedFiles struct {
	entries []domain.FileIssues
}

// MarshalJSON writes the mapping as an object with keys in entry order
func (f *orderedFiles) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range f.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		issues := entry.Issues
		if issues == nil {
			issues = []domain.Issue{}
		}
		value, err := json.Marshal(fileSummaryJSON{
			IssueCount: len(entry.Issues),
			Issues:     issues,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// generateSummaryJSON renders the batch summary as JSON in traversal order
func (r *ReportService) generateSummaryJSON(results *domain.BatchResult) (string, error) {
	report := summaryReportJSON{
		AnalysisSummary: analysisSummaryJSON{
			TotalFiles:  results.Len(),
			TotalIssues: results.TotalIssues(),
			GeneratedAt: time.Now().Format(time.RFC3339),
		},
		Files: &orderedFiles{entries: results.Entries()},
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to encode JSON summary", err)
	}
	return string(data), nil
}
