package spreadcss

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/term"
)

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors reports whether output for config should be colored: the
// --color flag, then NO_COLOR, FORCE_COLOR, GitHub Actions and finally a
// TTY check on stdout.
func ShouldUseColors(config LintConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues in golangci-lint format, sorted by position.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessIssue(sorted[i], sorted[j])
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// The column counts runes, and tabs in the prefix are kept so the caret
// lines up under the source line however wide the terminal renders a tab.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	runes := []rune(sourceLine)
	prefixLen := min(column-1, len(runes))

	var padding strings.Builder
	for _, ch := range runes[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	totalIssues := len(result.Issues)

	if totalIssues == 0 && result.TruncatedCount == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	fmt.Fprintln(r.w, "")

	header := english.Plural(totalIssues, "issue", "")
	if result.TruncatedCount > 0 {
		header += fmt.Sprintf(" (%s truncated)", english.Plural(result.TruncatedCount, "issue", ""))
	}
	fmt.Fprintln(r.w, RenderStyle(StyleRed, header+":", r.useColors))

	// Group by linter, in a stable order
	linters := make([]string, 0, len(result.IssuesByRule))
	for linter := range result.IssuesByRule {
		linters = append(linters, linter)
	}
	sort.Strings(linters)

	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, len(result.IssuesByRule[linter]))
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Raise --max-issues-per-linter or --max-same-issues to see every issue", r.useColors))
	}
}
