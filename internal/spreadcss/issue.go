package spreadcss

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "only-spread-css"
	Text        string   `json:"Text"`        // "Do not use `className` with `{...css()}`."
	Severity    string   `json:"Severity"`    // always "error"
	SourceLines []string `json:"SourceLines"` // Line of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Button.jsx"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 24 (1-based, in runes)
	Offset   int    `json:"Offset"`   // byte offset of the anchored node
}

// SeverityError is the only severity the rules emit.
const SeverityError = "error"

// lessIssue orders issues by file, then line, then column.
func lessIssue(a, b Issue) bool {
	if a.Pos.Filename != b.Pos.Filename {
		return a.Pos.Filename < b.Pos.Filename
	}
	if a.Pos.Line != b.Pos.Line {
		return a.Pos.Line < b.Pos.Line
	}
	return a.Pos.Column < b.Pos.Column
}
