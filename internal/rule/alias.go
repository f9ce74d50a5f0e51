package rule

import "strings"

const (
	// TrackedExport is the export name of the CSS-in-JS spread helper.
	TrackedExport = "css"
	// TrackedModule is the module (or last path segment) that exports it.
	TrackedModule = "withStyles"
)

// ImportBinding records what a local name was bound to.
type ImportBinding struct {
	LocalName  string
	SourcePath string
	Tracked    bool
}

// AliasTracker records, for one file, which local names are bound to the
// `css` export of a withStyles module. Aliases are supported: both
// `import { css as bar }` and `const { css: bar } = require(...)` track bar.
type AliasTracker struct {
	bindings map[string]ImportBinding
}

// NewAliasTracker returns an empty tracker. Use one per file.
func NewAliasTracker() *AliasTracker {
	return &AliasTracker{bindings: make(map[string]ImportBinding)}
}

// ObserveImport registers `import { importedName as localName } from sourcePath`.
func (t *AliasTracker) ObserveImport(sourcePath, importedName, localName string) {
	t.bind(sourcePath, importedName, localName)
}

// ObserveRequire registers `const { destructuredKey: localName } = require(sourcePath)`.
func (t *AliasTracker) ObserveRequire(sourcePath, destructuredKey, localName string) {
	t.bind(sourcePath, destructuredKey, localName)
}

// The last binding for a local name wins, so an untracked rebinding
// shadows an earlier tracked one.
func (t *AliasTracker) bind(sourcePath, exportName, localName string) {
	if localName == "" {
		return
	}
	t.bindings[localName] = ImportBinding{
		LocalName:  localName,
		SourcePath: sourcePath,
		Tracked:    exportName == TrackedExport && IsTrackedModule(sourcePath),
	}
}

// IsTracked reports whether localName refers to the tracked css helper.
func (t *AliasTracker) IsTracked(localName string) bool {
	return t.bindings[localName].Tracked
}

// IsTrackedModule reports whether path is `withStyles` itself or ends in a
// `withStyles` segment, e.g. `../../themes/withStyles`.
func IsTrackedModule(path string) bool {
	if path == TrackedModule {
		return true
	}
	segments := strings.Split(path, "/")
	return segments[len(segments)-1] == TrackedModule
}
