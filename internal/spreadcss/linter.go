package spreadcss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/spreadcss/internal/rule"
)

// ErrNoPaths is returned when Lint is called without any scan patterns.
var ErrNoPaths = errors.New("no paths to lint")

// LintConfig holds linting configuration
type LintConfig struct {
	Paths         []string // Patterns to scan (e.g., "src/**/*.{js,jsx}")
	DisabledRules []string // Rule IDs to turn off
	Concurrency   int      // Files linted in parallel (0 = runtime.NumCPU())

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (only-spread-css) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)

	// Registry provides the rules; nil means rule.Default().
	Registry *rule.Registry
	// Logger receives progress and diagnostics; nil discards them.
	Logger *slog.Logger
}

func (c LintConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c LintConfig) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}

func (c LintConfig) rules() ([]rule.Rule, error) {
	registry := c.Registry
	if registry == nil {
		registry = rule.Default()
	}
	return registry.Select(c.DisabledRules)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Issues in golangci-lint format, sorted by file, line and column
	Issues       []Issue
	IssuesByRule map[string][]Issue // Grouped by rule ID for stats

	Rules []string // IDs of the rules that ran

	FilesDiscovered int // Files matched by the patterns
	FilesScanned    int // Files parsed and linted
	FilesSkipped    int // Bundles, ignored and unsupported files
	FilesWithIssues int // Files with at least one issue
	ParseFailures   int // Files the parser rejected outright
	SyntaxErrors    int // Recovered syntax errors across all files
	TruncatedCount  int // Issues removed due to limits

	Duration time.Duration
}

// ErrorCount returns the number of error-severity issues.
func (r *LintResult) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// Lint discovers the files matching config.Paths and lints them in
// parallel. Every file is checked with fresh rule state. A file that cannot
// be read aborts the run; a file that cannot be parsed is counted and
// skipped.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	start := time.Now()
	logger := config.logger()

	if len(config.Paths) == 0 {
		return nil, ErrNoPaths
	}

	rules, err := config.rules()
	if err != nil {
		return nil, err
	}

	files, stats, err := ScanFiles(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	logger.Debug("discovered files",
		"discovered", stats.FilesDiscovered,
		"scanned", stats.FilesScanned,
		"skipped", stats.FilesSkipped)

	perFile := make([]fileResult, len(files))
	var parseFailures atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.concurrency())

	for i, path := range files {
		g.Go(func() error {
			res, err := lintFile(gctx, path, rules)
			if err != nil {
				var readErr errRead
				if errors.As(err, &readErr) {
					return readErr.err
				}
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				parseFailures.Add(1)
				logger.Warn("skipping file", "file", path, "error", err)
				return nil
			}
			if res.syntaxErrors > 0 {
				logger.Debug("recovered from syntax errors", "file", path, "count", res.syntaxErrors)
			}

			perFile[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &LintResult{
		IssuesByRule:    make(map[string][]Issue),
		FilesDiscovered: stats.FilesDiscovered,
		FilesScanned:    stats.FilesScanned,
		FilesSkipped:    stats.FilesSkipped,
		ParseFailures:   int(parseFailures.Load()),
	}
	for _, r := range rules {
		result.Rules = append(result.Rules, r.ID())
	}

	for _, res := range perFile {
		result.Issues = append(result.Issues, res.issues...)
		result.SyntaxErrors += res.syntaxErrors
		if len(res.issues) > 0 {
			result.FilesWithIssues++
		}
	}
	sort.SliceStable(result.Issues, func(i, j int) bool {
		return lessIssue(result.Issues[i], result.Issues[j])
	})

	// Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	for _, issue := range result.Issues {
		result.IssuesByRule[issue.FromLinter] = append(result.IssuesByRule[issue.FromLinter], issue)
	}

	result.Duration = time.Since(start)
	logger.Debug("lint finished",
		"issues", len(result.Issues),
		"truncated", result.TruncatedCount,
		"duration", result.Duration)

	return result, nil
}

// limitIssues applies max-issues-per-linter and max-same-issues limits
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 {
		issues = limitPerLinter(issues, config.MaxIssuesPerLinter)
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// limitPerLinter keeps at most maxPerLinter issues for each rule
func limitPerLinter(issues []Issue, maxPerLinter int) []Issue {
	linterCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if linterCounts[issue.FromLinter] < maxPerLinter {
			filtered = append(filtered, issue)
			linterCounts[issue.FromLinter]++
		}
	}

	return filtered
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
