// Package spreadcss lints JavaScript and JSX sources for misuse of the
// CSS-in-JS spread helper `css()` exported by withStyles modules.
//
// The only-spread-css rule reports two patterns:
//
//   - `className` or `style` next to a `{...css(...)}` spread on the same
//     element, in either order:
//
//     <div {...css(styles.foo)} className="foo" />
//
//   - a css() result used anywhere except as a direct spread into an
//     element's attributes:
//
//     const props = css(styles.foo);
//     <div className={css(styles.foo)} />
//
// Local aliases are followed: `import { css as bar } from '../withStyles'`
// and `const { css: bar } = require('withStyles')` both make bar tracked.
//
// # Linting
//
// Lint files on disk:
//
//	result, err := spreadcss.Lint(ctx, spreadcss.LintConfig{
//		Paths: []string{"src/**/*.{js,jsx,ts,tsx}"},
//	})
//
// Or a single in-memory source:
//
//	issues, err := spreadcss.LintSource(ctx, "Button.jsx", src)
//
// # CLI Tool
//
// spreadcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/spreadcss/cmd/spreadcss@latest
package spreadcss

import (
	"context"
	"io"

	"github.com/yacobolo/spreadcss/internal/rule"
	"github.com/yacobolo/spreadcss/internal/spreadcss"
)

type (
	// Issue is a single finding in golangci-lint format.
	Issue = spreadcss.Issue
	// IssuePos is the location of an issue.
	IssuePos = spreadcss.IssuePos
	// LintConfig configures a lint run.
	LintConfig = spreadcss.LintConfig
	// LintResult holds the issues and statistics of a lint run.
	LintResult = spreadcss.LintResult
	// OutputFormat selects how WriteOutput renders a result.
	OutputFormat = spreadcss.OutputFormat
)

// Output formats accepted by WriteOutput.
const (
	OutputIssues   = spreadcss.OutputIssues
	OutputSummary  = spreadcss.OutputSummary
	OutputFull     = spreadcss.OutputFull
	OutputJSON     = spreadcss.OutputJSON
	OutputMarkdown = spreadcss.OutputMarkdown
)

// RuleID is the identifier reported in Issue.FromLinter.
const RuleID = rule.OnlySpreadCSSID

// Lint discovers files matching config.Paths and lints them in parallel.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	return spreadcss.Lint(ctx, config)
}

// LintSource lints one in-memory file with every built-in rule. The
// filename's extension selects the grammar.
func LintSource(ctx context.Context, filename string, src []byte) ([]Issue, error) {
	return spreadcss.LintSource(ctx, filename, src, rule.Default().All())
}

// DetermineOutputFormat maps an --output-format value to an OutputFormat.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	return spreadcss.DetermineOutputFormat(formatFlag, quiet)
}

// WriteOutput renders result to w in the given format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	return spreadcss.WriteOutput(w, result, format, config)
}
