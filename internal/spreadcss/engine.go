// Package spreadcss hosts the lint rules: it finds JavaScript and JSX files,
// parses them, runs every selected rule over each file and reports the
// findings in golangci-lint style.
package spreadcss

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/tdewolff/parse/v2"

	"github.com/yacobolo/spreadcss/internal/jsx"
	"github.com/yacobolo/spreadcss/internal/rule"
)

// fileResult is what linting one file produces.
type fileResult struct {
	issues       []Issue
	syntaxErrors int // ERROR nodes tree-sitter recovered from
}

// LintSource lints one in-memory file with rules. The filename selects the
// grammar and is copied into every issue position.
func LintSource(ctx context.Context, filename string, src []byte, rules []rule.Rule) ([]Issue, error) {
	res, err := lintSource(ctx, filename, src, rules)
	if err != nil {
		return nil, err
	}
	return res.issues, nil
}

// errRead marks failures to read a file, which abort a run. Parse failures
// only skip the file.
type errRead struct{ err error }

func (e errRead) Error() string { return e.err.Error() }
func (e errRead) Unwrap() error { return e.err }

// lintFile reads path from disk and lints it with rules.
func lintFile(ctx context.Context, path string, rules []rule.Rule) (fileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, errRead{fmt.Errorf("reading %s: %w", path, err)}
	}
	return lintSource(ctx, path, src, rules)
}

func lintSource(ctx context.Context, filename string, src []byte, rules []rule.Rule) (fileResult, error) {
	program, err := jsx.Parse(ctx, filename, src)
	if err != nil {
		return fileResult{}, err
	}

	diags := rule.Check(program, rules)

	issues := make([]Issue, 0, len(diags))
	for _, d := range diags {
		issues = append(issues, newIssue(filename, src, d))
	}

	return fileResult{issues: issues, syntaxErrors: countSyntaxErrors(program)}, nil
}

// newIssue converts a rule diagnostic into an issue anchored at the start
// of the diagnostic's node.
func newIssue(filename string, src []byte, d rule.Diagnostic) Issue {
	offset := d.Node.Span().Start
	line, col, _ := parse.Position(bytes.NewReader(src), offset)

	issue := Issue{
		FromLinter: d.Rule,
		Text:       d.Message,
		Severity:   SeverityError,
		Pos: IssuePos{
			Filename: filename,
			Line:     line,
			Column:   col,
			Offset:   offset,
		},
	}
	if text := sourceLine(src, offset); text != "" {
		issue.SourceLines = []string{text}
	}

	return issue
}

// sourceLine returns the line of src that contains offset, without its
// line terminator.
func sourceLine(src []byte, offset int) string {
	if offset < 0 || offset > len(src) {
		return ""
	}
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return string(bytes.TrimRight(src[start:end], "\r"))
}

func countSyntaxErrors(root jsx.Node) int {
	count := 0
	if other, ok := root.(*jsx.Other); ok && other.Kind == "ERROR" {
		count++
	}
	for _, child := range jsx.Children(root) {
		count += countSyntaxErrors(child)
	}
	return count
}
