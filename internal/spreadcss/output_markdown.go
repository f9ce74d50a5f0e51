package spreadcss

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteMarkdown writes the lint result as a Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder

	b.WriteString("# spreadcss Lint Report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", time.Now().Format(time.RFC1123))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Issues | %s |\n", humanize.Comma(int64(len(result.Issues))))
	if result.TruncatedCount > 0 {
		fmt.Fprintf(&b, "| Truncated | %s |\n", humanize.Comma(int64(result.TruncatedCount)))
	}
	fmt.Fprintf(&b, "| Files scanned | %s |\n", humanize.Comma(int64(result.FilesScanned)))
	fmt.Fprintf(&b, "| Files with issues | %s |\n", humanize.Comma(int64(result.FilesWithIssues)))
	fmt.Fprintf(&b, "| Files skipped | %s |\n", humanize.Comma(int64(result.FilesSkipped)))
	b.WriteString("\n")

	if len(result.Issues) == 0 {
		b.WriteString("No issues found.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("## Issues by Rule\n\n")
	rules := make([]string, 0, len(result.IssuesByRule))
	for id := range result.IssuesByRule {
		rules = append(rules, id)
	}
	sort.Strings(rules)
	for _, id := range rules {
		fmt.Fprintf(&b, "- `%s`: %d\n", id, len(result.IssuesByRule[id]))
	}
	b.WriteString("\n")

	b.WriteString("## Issues\n\n")
	b.WriteString("| Location | Message | Rule |\n")
	b.WriteString("|----------|---------|------|\n")
	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "| `%s:%d:%d` | %s | `%s` |\n",
			issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
			escapeTableCell(issue.Text),
			issue.FromLinter)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeTableCell keeps a message from breaking out of its table cell.
func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
