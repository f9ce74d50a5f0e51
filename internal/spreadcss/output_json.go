package spreadcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Rules     []JSONRule  `json:"rules"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues     int   `json:"total_issues"`
	Errors          int   `json:"errors"`
	Truncated       int   `json:"truncated"`
	FilesDiscovered int   `json:"files_discovered"`
	FilesScanned    int   `json:"files_scanned"`
	FilesSkipped    int   `json:"files_skipped"`
	FilesWithIssues int   `json:"files_with_issues"`
	ParseFailures   int   `json:"parse_failures"`
	DurationMS      int64 `json:"duration_ms"`
}

// JSONRule reports how many issues one rule produced
type JSONRule struct {
	ID     string `json:"id"`
	Issues int    `json:"issues"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	rules := make([]JSONRule, len(result.Rules))
	for i, id := range result.Rules {
		rules[i] = JSONRule{ID: id, Issues: len(result.IssuesByRule[id])}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:     len(result.Issues),
			Errors:          result.ErrorCount(),
			Truncated:       result.TruncatedCount,
			FilesDiscovered: result.FilesDiscovered,
			FilesScanned:    result.FilesScanned,
			FilesSkipped:    result.FilesSkipped,
			FilesWithIssues: result.FilesWithIssues,
			ParseFailures:   result.ParseFailures,
			DurationMS:      result.Duration.Milliseconds(),
		},
		Rules:  rules,
		Issues: jsonIssues,
	}
}
