package spreadcss

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryReporter prints run statistics and per-rule counts as tables.
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{
		w:         w,
		useColors: useColors,
	}
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

// PrintStatistics outputs file scanning statistics
func (r *SummaryReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Lint Statistics", r.useColors))

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Files discovered", count(result.FilesDiscovered)})
	tbl.AppendRow(table.Row{"Files scanned", count(result.FilesScanned)})
	tbl.AppendRow(table.Row{"Files skipped", count(result.FilesSkipped)})
	tbl.AppendRow(table.Row{"Files with issues", count(result.FilesWithIssues)})
	if result.ParseFailures > 0 {
		tbl.AppendRow(table.Row{"Parse failures", count(result.ParseFailures)})
	}
	if result.SyntaxErrors > 0 {
		tbl.AppendRow(table.Row{"Recovered syntax errors", count(result.SyntaxErrors)})
	}
	tbl.AppendRow(table.Row{"Duration", result.Duration.Round(time.Millisecond).String()})

	fmt.Fprintln(r.w, tbl.Render())
}

// PrintRuleBreakdown outputs the number of issues per rule, including rules
// that ran clean.
func (r *SummaryReporter) PrintRuleBreakdown(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Issues by Rule", r.useColors))

	ids := make(map[string]bool, len(result.Rules)+len(result.IssuesByRule))
	for _, id := range result.Rules {
		ids[id] = true
	}
	for id := range result.IssuesByRule {
		ids[id] = true
	}
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Rule", "Issues"})
	for _, id := range sorted {
		tbl.AppendRow(table.Row{id, count(len(result.IssuesByRule[id]))})
	}

	footer := count(len(result.Issues))
	if result.TruncatedCount > 0 {
		footer = fmt.Sprintf("%s (+%s truncated)", footer, count(result.TruncatedCount))
	}
	tbl.AppendFooter(table.Row{"Total", footer})

	fmt.Fprintln(r.w, tbl.Render())
}
