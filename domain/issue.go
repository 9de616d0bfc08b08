package domain

import "sort"

// Severity represents the user-facing importance of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// SeverityDisplayOrder is the fixed order severities appear in reports
var SeverityDisplayOrder = []Severity{SeverityError, SeverityWarning, SeverityInfo}

// IsValid returns true if the severity is one of the known values
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// IssueType represents the category of a detected finding
type IssueType string

const (
	IssueTypeComplexity IssueType = "complexity"
	IssueTypeSyntax     IssueType = "syntax"
	IssueTypeStyle      IssueType = "style"
	IssueTypeError      IssueType = "error"
)

// CheckCategory represents an enabled analysis kind
type CheckCategory string

const (
	CheckComplexity CheckCategory = "complexity"
	CheckStyle      CheckCategory = "style"
	CheckSyntax     CheckCategory = "syntax"
)

// IsValid returns true if the category is one of the known checks
func (c CheckCategory) IsValid() bool {
	switch c {
	case CheckComplexity, CheckStyle, CheckSyntax:
		return true
	}
	return false
}

// OutputFormat represents the supported report formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatHTML OutputFormat = "html"
)

// Issue is one detected finding for a single line of a source file.
// Issues are immutable once created; equality is structural.
type Issue struct {
	Line     int       `json:"line"`
	Type     IssueType `json:"type"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// SortIssuesByLine returns a copy of issues stably sorted by ascending line
// number. Ties keep their original relative order.
func SortIssuesByLine(issues []Issue) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line < sorted[j].Line
	})
	return sorted
}

// CountBySeverity counts issues per severity, iterating in original order
func CountBySeverity(issues []Issue) map[Severity]int {
	counts := make(map[Severity]int)
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
