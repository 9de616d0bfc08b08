package service

import (
	"html/template"
	"strings"
	"time"

	"github.com/aireview/aireview/domain"
)

const htmlReportTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>AI Code Review Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #f8f9fa; padding: 20px; border-radius: 5px; }
        .summary { margin: 20px 0; }
        .issue { margin: 10px 0; padding: 10px; border-left: 4px solid #ddd; }
        .error { border-color: #dc3545; background-color: #f8d7da; }
        .warning { border-color: #ffc107; background-color: #fff3cd; }
        .info { border-color: #17a2b8; background-color: #d1ecf1; }
        .severity { font-weight: bold; }
        .line-num { color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>AI Code Review Report</h1>
        <p><strong>File:</strong> {{.FilePath}}</p>
        <p><strong>Generated:</strong> {{.Timestamp}}</p>
        <p><strong>Total Issues:</strong> {{.TotalIssues}}</p>
    </div>

    <div class="summary">
        <h2>Issue Summary</h2>
        <ul>
{{- range .Summary}}
            <li><span class="severity {{.Class}}">{{.Title}}:</span> {{.Count}}</li>
{{- end}}
        </ul>
    </div>

    <div class="issues">
        <h2>Detailed Issues</h2>
{{- if .Issues}}
{{- range .Issues}}
        <div class="issue {{.Severity}}">
            <strong>Line <span class="line-num">{{.Line}}</span>:</strong> {{.Message}}
            <br>
            <small>Type: {{.Type}} | Severity: {{.Severity}}</small>
        </div>
{{- end}}
{{- else}}
        <p>✅ No issues found!</p>
{{- end}}
    </div>
</body>
</html>
`

var htmlReport = template.Must(template.New("report").Parse(htmlReportTemplate))

type htmlSummaryEntry struct {
	Class string
	Title string
	Count int
}

type htmlReportData struct {
	FilePath    string
	Timestamp   string
	TotalIssues int
	Summary     []htmlSummaryEntry
	Issues      []domain.Issue
}

// generateHTMLReport renders an HTML report. The summary list follows the
// fixed severity display order; issues are sorted by line.
func (r *ReportService) generateHTMLReport(path string, issues []domain.Issue) (string, error) {
	counts := domain.CountBySeverity(issues)

	var summary []htmlSummaryEntry
	for _, severity := range domain.SeverityDisplayOrder {
		if count, ok := counts[severity]; ok {
			summary = append(summary, htmlSummaryEntry{
				Class: string(severity),
				Title: severityTitle(severity),
				Count: count,
			})
		}
	}

	data := htmlReportData{
		FilePath:    path,
		Timestamp:   time.Now().Format("2006-01-02 15:04:05"),
		TotalIssues: len(issues),
		Summary:     summary,
		Issues:      domain.SortIssuesByLine(issues),
	}

	var buf strings.Builder
	if err := htmlReport.Execute(&buf, data); err != nil {
		return "", domain.NewOutputError("failed to render HTML report", err)
	}
	return buf.String(), nil
}
