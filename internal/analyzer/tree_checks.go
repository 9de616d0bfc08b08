package analyzer

import (
	"fmt"

	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/constants"
	"github.com/aireview/aireview/internal/parser"
)

// TreeOptions configures the syntax-tree checks
type TreeOptions struct {
	// MaxFunctionLines is the configured function span limit
	MaxFunctionLines int

	// Severity is the configured severity for complexity findings
	Severity domain.Severity
}

// AnalyzeTree runs the complexity checks over a parsed file. Issues are
// appended in tree-traversal order; consumers sort by line where needed.
func AnalyzeTree(ast *parser.Node, opts TreeOptions) []domain.Issue {
	var issues []domain.Issue

	ast.Walk(func(n *parser.Node) bool {
		switch {
		case n.IsFunction():
			issues = append(issues, checkFunction(n, opts)...)
		case n.IsControlFlow():
			if issue, ok := checkNesting(n, opts); ok {
				issues = append(issues, issue)
			}
		}
		return true
	})

	return issues
}

// checkFunction flags overly long functions and excessive parameter counts
func checkFunction(fn *parser.Node, opts TreeOptions) []domain.Issue {
	var issues []domain.Issue

	span := fn.Location.EndLine - fn.Location.StartLine
	if span > opts.MaxFunctionLines {
		issues = append(issues, domain.Issue{
			Line:     fn.Location.StartLine,
			Type:     domain.IssueTypeComplexity,
			Message:  fmt.Sprintf("Function '%s' is too long (%d lines)", fn.Name, span),
			Severity: opts.Severity,
		})
	}

	if fn.ParamCount > constants.MaxFunctionParams {
		issues = append(issues, domain.Issue{
			Line:     fn.Location.StartLine,
			Type:     domain.IssueTypeComplexity,
			Message:  fmt.Sprintf("Function '%s' has too many parameters (%d)", fn.Name, fn.ParamCount),
			Severity: opts.Severity,
		})
	}

	return issues
}

// checkNesting flags conditional/loop constructs nested deeper than the
// fixed threshold.
func checkNesting(n *parser.Node, opts TreeOptions) (domain.Issue, bool) {
	depth := nestingDepth(n)
	if depth <= constants.MaxNestingDepth {
		return domain.Issue{}, false
	}
	return domain.Issue{
		Line:     n.Location.StartLine,
		Type:     domain.IssueTypeComplexity,
		Message:  fmt.Sprintf("Deeply nested block (depth %d)", depth),
		Severity: opts.Severity,
	}, true
}

// nestingDepth computes the maximum chain of nesting constructs rooted at n.
// A construct with no qualifying descendants has depth 1; each nested
// conditional, loop, or with-block below it adds 1.
func nestingDepth(n *parser.Node) int {
	deepest := 0
	for _, child := range n.Children {
		if d := subtreeDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// subtreeDepth returns the longest nesting chain inside the subtree rooted
// at n, counting n itself when it qualifies.
func subtreeDepth(n *parser.Node) int {
	deepest := 0
	for _, child := range n.Children {
		if d := subtreeDepth(child); d > deepest {
			deepest = d
		}
	}
	if n.AddsNesting() {
		return deepest + 1
	}
	return deepest
}
