package spreadcss

import (
	"fmt"
	"io"
)

// OutputFormat selects how a lint result is written.
type OutputFormat int

const (
	// OutputIssues prints golangci-lint style issues and a short summary.
	OutputIssues OutputFormat = iota
	// OutputSummary prints statistics tables without individual issues.
	OutputSummary
	// OutputFull prints issues followed by the statistics tables.
	OutputFull
	// OutputJSON writes machine-readable JSON.
	OutputJSON
	// OutputMarkdown writes a shareable Markdown report.
	OutputMarkdown
)

// OutputFormatNames lists the accepted --output-format values.
var OutputFormatNames = []string{"issues", "summary", "full", "json", "markdown"}

func (f OutputFormat) String() string {
	if int(f) < len(OutputFormatNames) {
		return OutputFormatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	// Following golangci-lint's UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputSummary:
		summary := NewSummaryReporter(w, ShouldUseColors(config))
		summary.PrintStatistics(*result)
		summary.PrintRuleBreakdown(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		summary := NewSummaryReporter(w, reporter.UseColors())
		summary.PrintStatistics(*result)
		summary.PrintRuleBreakdown(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}

	return nil
}
