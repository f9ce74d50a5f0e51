package spreadcss

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/spreadcss/internal/jsx"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// bundleDirs are directory names that hold installed or generated code.
var bundleDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// patternBase returns the leading directories of pattern that hold no glob
// metacharacters, e.g. "src" for "src/**/*.jsx" and "." for "*.tsx".
func patternBase(pattern string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return filepath.FromSlash(base)
}

// isBundle reports whether path is minified output or lives in a dependency
// or build directory. Only directories below base count: base and its
// ancestors are where the project lives, e.g. a CI workspace under /build.
func isBundle(path, base string) bool {
	if strings.HasSuffix(path, ".min.js") {
		return true
	}
	rel := path
	if base != "" {
		if r, err := filepath.Rel(base, path); err == nil && r != ".." &&
			!strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			rel = r
		}
	}
	for _, segment := range strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/") {
		if bundleDirs[segment] {
			return true
		}
	}
	return false
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Three-layer filtering:
// 1. Language check: skip files no grammar can parse
// 2. Pattern check (fast): skip bundles and dependency directories below base
// 3. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path, base string, gi *ignore.GitIgnore) bool {
	if !jsx.Supported(path) {
		return true
	}

	if isBundle(path, base) {
		return true
	}

	// Absolute paths (like /tmp/...) are not affected by the project gitignore
	if gi != nil && !filepath.IsAbs(path) && gi.MatchesPath(path) {
		return true
	}

	return false
}

// ScanFiles expands glob patterns into the list of files to lint, relative
// to the current directory's .gitignore.
func ScanFiles(patterns []string) ([]string, ScanStats, error) {
	return expandGlobPatternsWithStats(patterns, loadGitIgnore())
}

// expandGlobPatternsWithStats expands globs and tracks statistics
func expandGlobPatternsWithStats(patterns []string, gi *ignore.GitIgnore) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		base := patternBase(pattern)
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, base, gi) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}
