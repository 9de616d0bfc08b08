package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aireview/aireview/domain"
)

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		{Line: 30, Type: domain.IssueTypeComplexity, Message: "Function 'big' is too long (60 lines)", Severity: domain.SeverityWarning},
		{Line: 5, Type: domain.IssueTypeStyle, Message: "Line too long (>120 characters)", Severity: domain.SeverityInfo},
		{Line: 1, Type: domain.IssueTypeSyntax, Message: "Failed to parse file: invalid syntax at line 1", Severity: domain.SeverityError},
	}
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	svc := NewReportService()

	_, err := svc.GenerateReport("a.py", nil, domain.OutputFormat("xml"))
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Expected a DomainError, got %T", err)
	}
	if domainErr.Code != domain.ErrCodeUnsupportedFormat {
		t.Errorf("Expected unsupported format code, got %s", domainErr.Code)
	}
	if !strings.Contains(err.Error(), "unsupported format: xml") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestGenerateReport_TextEmpty(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("clean.py", nil, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if !strings.Contains(report, "AI Code Review Report") {
		t.Errorf("Missing report header:\n%s", report)
	}
	if !strings.Contains(report, "File: clean.py") {
		t.Errorf("Missing file path:\n%s", report)
	}
	if !strings.Contains(report, "Total Issues: 0") {
		t.Errorf("Missing total count:\n%s", report)
	}
	if !strings.Contains(report, "No issues found!") {
		t.Errorf("Missing success line:\n%s", report)
	}
	if strings.Contains(report, "Detailed Issues") {
		t.Errorf("Empty report should not contain detail section:\n%s", report)
	}
}

func TestGenerateReport_TextSortsByLine(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("messy.py", sampleIssues(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	line1 := strings.Index(report, "Line 1:")
	line5 := strings.Index(report, "Line 5:")
	line30 := strings.Index(report, "Line 30:")
	if line1 < 0 || line5 < 0 || line30 < 0 {
		t.Fatalf("Missing detail lines:\n%s", report)
	}
	if !(line1 < line5 && line5 < line30) {
		t.Errorf("Details not sorted by ascending line:\n%s", report)
	}
}

func TestGenerateReport_TextSummaryOrder(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("messy.py", sampleIssues(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	errIdx := strings.Index(report, "Error: 1")
	warnIdx := strings.Index(report, "Warning: 1")
	infoIdx := strings.Index(report, "Info: 1")
	if errIdx < 0 || warnIdx < 0 || infoIdx < 0 {
		t.Fatalf("Missing summary counts:\n%s", report)
	}
	if !(errIdx < warnIdx && warnIdx < infoIdx) {
		t.Errorf("Summary not in error/warning/info order:\n%s", report)
	}
}

func TestGenerateReport_TextOmitsAbsentSeverities(t *testing.T) {
	svc := NewReportService()
	issues := []domain.Issue{
		{Line: 2, Type: domain.IssueTypeStyle, Message: "m", Severity: domain.SeverityInfo},
	}

	report, err := svc.GenerateReport("a.js", issues, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if strings.Contains(report, "Error:") || strings.Contains(report, "Warning:") {
		t.Errorf("Absent severities should be omitted from summary:\n%s", report)
	}
}

func TestGenerateReport_JSONRoundTrip(t *testing.T) {
	svc := NewReportService()
	issues := sampleIssues()

	report, err := svc.GenerateReport("messy.py", issues, domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	var decoded struct {
		FilePath    string         `json:"file_path"`
		GeneratedAt string         `json:"generated_at"`
		TotalIssues int            `json:"total_issues"`
		Summary     map[string]int `json:"summary"`
		Issues      []domain.Issue `json:"issues"`
	}
	if err := json.Unmarshal([]byte(report), &decoded); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}

	if decoded.FilePath != "messy.py" {
		t.Errorf("Expected file_path messy.py, got %s", decoded.FilePath)
	}
	if decoded.GeneratedAt == "" {
		t.Error("Expected generated_at timestamp")
	}
	if decoded.TotalIssues != len(issues) {
		t.Errorf("Expected total_issues %d, got %d", len(issues), decoded.TotalIssues)
	}

	summaryTotal := 0
	for _, count := range decoded.Summary {
		summaryTotal += count
	}
	if summaryTotal != decoded.TotalIssues {
		t.Errorf("Summary counts sum to %d, expected %d", summaryTotal, decoded.TotalIssues)
	}
}

func TestGenerateReport_JSONPreservesOrder(t *testing.T) {
	svc := NewReportService()
	issues := sampleIssues()

	report, err := svc.GenerateReport("messy.py", issues, domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	var decoded struct {
		Issues []domain.Issue `json:"issues"`
	}
	if err := json.Unmarshal([]byte(report), &decoded); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}

	if len(decoded.Issues) != len(issues) {
		t.Fatalf("Expected %d issues, got %d", len(issues), len(decoded.Issues))
	}
	for i := range issues {
		if decoded.Issues[i] != issues[i] {
			t.Errorf("Issue %d reordered: got %+v, want %+v", i, decoded.Issues[i], issues[i])
		}
	}
}

func TestGenerateReport_JSONEmptyIssuesArray(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("clean.py", nil, domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if !strings.Contains(report, `"issues": []`) {
		t.Errorf("Expected empty issues array, got:\n%s", report)
	}
}

func TestGenerateReport_HTML(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("messy.py", sampleIssues(), domain.OutputFormatHTML)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if !strings.Contains(report, "<!DOCTYPE html>") {
		t.Errorf("Expected HTML document:\n%s", report)
	}
	if !strings.Contains(report, "messy.py") {
		t.Errorf("Missing file path:\n%s", report)
	}
	if !strings.Contains(report, `class="issue error"`) {
		t.Errorf("Missing severity-tagged issue block:\n%s", report)
	}

	line1 := strings.Index(report, ">1</span>")
	line30 := strings.Index(report, ">30</span>")
	if line1 < 0 || line30 < 0 || line1 > line30 {
		t.Errorf("HTML details not sorted by line:\n%s", report)
	}
}

func TestGenerateReport_HTMLEmpty(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateReport("clean.py", nil, domain.OutputFormatHTML)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if !strings.Contains(report, "No issues found!") {
		t.Errorf("Expected success paragraph:\n%s", report)
	}
	if strings.Contains(report, `class="issue `) {
		t.Errorf("Empty report should not contain issue blocks:\n%s", report)
	}
}

func TestGenerateReport_HTMLEscapesContent(t *testing.T) {
	svc := NewReportService()
	issues := []domain.Issue{
		{Line: 1, Type: domain.IssueTypeStyle, Message: "bad <script> here", Severity: domain.SeverityInfo},
	}

	report, err := svc.GenerateReport("x.js", issues, domain.OutputFormatHTML)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}
	if strings.Contains(report, "<script>") {
		t.Errorf("Message content must be escaped:\n%s", report)
	}
}

func TestGenerateSummaryReport_Empty(t *testing.T) {
	svc := NewReportService()

	report, err := svc.GenerateSummaryReport(domain.NewBatchResult(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}

	if !strings.Contains(report, "Files analyzed: 0") {
		t.Errorf("Missing file count:\n%s", report)
	}
	if !strings.Contains(report, "No issues found in any files!") {
		t.Errorf("Missing success line:\n%s", report)
	}
}

func TestGenerateSummaryReport_AllClean(t *testing.T) {
	svc := NewReportService()

	results := domain.NewBatchResult()
	results.Add("a.py", []domain.Issue{})
	results.Add("b.js", []domain.Issue{})

	report, err := svc.GenerateSummaryReport(results, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}

	if !strings.Contains(report, "Files analyzed: 2") {
		t.Errorf("Missing file count:\n%s", report)
	}
	if !strings.Contains(report, "No issues found in any files!") {
		t.Errorf("Missing success line:\n%s", report)
	}
}

func TestGenerateSummaryReport_DescendingIssueCount(t *testing.T) {
	svc := NewReportService()

	one := []domain.Issue{
		{Line: 1, Type: domain.IssueTypeStyle, Message: "m", Severity: domain.SeverityInfo},
	}
	three := []domain.Issue{
		{Line: 1, Type: domain.IssueTypeStyle, Message: "m", Severity: domain.SeverityInfo},
		{Line: 2, Type: domain.IssueTypeComplexity, Message: "m", Severity: domain.SeverityWarning},
		{Line: 3, Type: domain.IssueTypeSyntax, Message: "m", Severity: domain.SeverityError},
	}

	results := domain.NewBatchResult()
	results.Add("few.py", one)
	results.Add("clean.py", []domain.Issue{})
	results.Add("many.py", three)

	report, err := svc.GenerateSummaryReport(results, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}

	manyIdx := strings.Index(report, "many.py")
	fewIdx := strings.Index(report, "few.py")
	if manyIdx < 0 || fewIdx < 0 {
		t.Fatalf("Missing files in summary:\n%s", report)
	}
	if manyIdx > fewIdx {
		t.Errorf("Files not sorted by descending issue count:\n%s", report)
	}
	if strings.Contains(report, "clean.py") {
		t.Errorf("Zero-issue files must be omitted:\n%s", report)
	}
	if !strings.Contains(report, "Files with issues: 2") {
		t.Errorf("Missing files-with-issues count:\n%s", report)
	}
}

func TestGenerateSummaryReport_StableTies(t *testing.T) {
	svc := NewReportService()

	issue := []domain.Issue{
		{Line: 1, Type: domain.IssueTypeStyle, Message: "m", Severity: domain.SeverityInfo},
	}

	results := domain.NewBatchResult()
	results.Add("first.py", issue)
	results.Add("second.py", issue)

	report, err := svc.GenerateSummaryReport(results, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}

	firstIdx := strings.Index(report, "first.py")
	secondIdx := strings.Index(report, "second.py")
	if firstIdx < 0 || secondIdx < 0 || firstIdx > secondIdx {
		t.Errorf("Tied files must keep insertion order:\n%s", report)
	}
}

func TestGenerateSummaryReport_JSON(t *testing.T) {
	svc := NewReportService()

	results := domain.NewBatchResult()
	results.Add("z.py", []domain.Issue{
		{Line: 4, Type: domain.IssueTypeComplexity, Message: "m", Severity: domain.SeverityWarning},
	})
	results.Add("a.py", []domain.Issue{})

	report, err := svc.GenerateSummaryReport(results, domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("GenerateSummaryReport failed: %v", err)
	}

	var decoded struct {
		AnalysisSummary struct {
			TotalFiles  int    `json:"total_files"`
			TotalIssues int    `json:"total_issues"`
			GeneratedAt string `json:"generated_at"`
		} `json:"analysis_summary"`
		Files map[string]struct {
			IssueCount int            `json:"issue_count"`
			Issues     []domain.Issue `json:"issues"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(report), &decoded); err != nil {
		t.Fatalf("Summary is not valid JSON: %v", err)
	}

	if decoded.AnalysisSummary.TotalFiles != 2 {
		t.Errorf("Expected total_files 2, got %d", decoded.AnalysisSummary.TotalFiles)
	}
	if decoded.AnalysisSummary.TotalIssues != 1 {
		t.Errorf("Expected total_issues 1, got %d", decoded.AnalysisSummary.TotalIssues)
	}
	if decoded.Files["z.py"].IssueCount != 1 {
		t.Errorf("Expected z.py issue_count 1, got %d", decoded.Files["z.py"].IssueCount)
	}
	if decoded.Files["a.py"].Issues == nil {
		t.Error("Expected empty issues array for clean file, got null")
	}

	// The mapping keeps batch insertion order, not sorted order
	zIdx := strings.Index(report, `"z.py"`)
	aIdx := strings.Index(report, `"a.py"`)
	if zIdx < 0 || aIdx < 0 || zIdx > aIdx {
		t.Errorf("files mapping must preserve insertion order:\n%s", report)
	}
}

func TestGenerateSummaryReport_HTMLUnsupported(t *testing.T) {
	svc := NewReportService()

	_, err := svc.GenerateSummaryReport(domain.NewBatchResult(), domain.OutputFormatHTML)
	if err == nil {
		t.Fatal("Expected error for HTML summary format")
	}

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeUnsupportedFormat {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}
