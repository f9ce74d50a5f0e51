package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/spreadcss/internal/spreadcss"
)

// errIssuesFound makes the process exit 1 without printing an error.
var errIssuesFound = errors.New("issues found")

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint css() usage in JavaScript and JSX files",
	Long: `Report css() calls that are not spread directly into an element, and
className or style attributes placed on an element that spreads css().

Positional arguments are glob patterns and replace the configured paths.`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	addLintFlags(lintCmd.Flags(), "File patterns to scan")
}

// addLintFlags registers the flags shared by lint and watch.
func addLintFlags(f *pflag.FlagSet, pathsUsage string) {
	f.StringSlice("paths", defaultPaths, pathsUsage)
	f.StringSlice("disable", nil, "Rule IDs to disable")
	f.Int("concurrency", 0, "Files linted in parallel (0=number of CPUs)")
	f.String("output-format", "", "Output format: "+strings.Join(spreadcss.OutputFormatNames, "|"))
	f.Int("max-issues-per-linter", 0, "Max issues to show per rule (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (only-spread-css) suffix on issues")
}

// runLint lints once and writes the report to w. It returns errIssuesFound
// when any error-severity issue was reported.
func runLint(ctx context.Context, w io.Writer, args []string) error {
	lintConfig := buildLintConfig(args)

	lintResult, err := spreadcss.Lint(ctx, lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBool("quiet", false)
	format := spreadcss.DetermineOutputFormat(getString("lint.output-format", ""), quiet)

	if !quiet {
		if err := spreadcss.WriteOutput(w, lintResult, format, lintConfig); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if lintResult.ErrorCount() > 0 {
		return errIssuesFound
	}
	return nil
}
