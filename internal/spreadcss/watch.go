package spreadcss

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for file events to settle before
// linting again.
const DefaultDebounce = 200 * time.Millisecond

// WatchHandler receives the outcome of every lint run Watch performs.
type WatchHandler func(result *LintResult, err error)

// Watch lints once, then lints again whenever a JavaScript or JSX file under
// the directories named by config.Paths is written, created, renamed or
// removed. Bursts of events are coalesced with the debounce interval. Watch
// returns nil when ctx is cancelled.
func Watch(ctx context.Context, config LintConfig, debounce time.Duration, onResult WatchHandler) error {
	if len(config.Paths) == 0 {
		return ErrNoPaths
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := config.logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	roots := watchRoots(config.Paths)
	for _, dir := range roots {
		if err := watchDirRecursive(watcher, dir); err != nil {
			logger.Warn("failed to watch directory", "dir", dir, "error", err)
		}
	}

	onResult(Lint(ctx, config))

	trigger := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if skipWatchDir(filepath.Base(event.Name)) {
						continue
					}
					if err := watchDirRecursive(watcher, event.Name); err != nil {
						logger.Warn("failed to watch directory", "dir", event.Name, "error", err)
					}
					continue
				}
			}

			if !isRelevantEvent(event, roots) {
				continue
			}
			logger.Debug("file changed", "file", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			onResult(Lint(ctx, config))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// isRelevantEvent reports whether event can change the lint result. Bundle
// directories are judged relative to the watch root holding the file.
func isRelevantEvent(event fsnotify.Event, roots []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return !shouldSkipFile(event.Name, rootOf(event.Name, roots), nil)
}

// rootOf returns the longest root containing path, or "" if none does.
func rootOf(path string, roots []string) string {
	best := ""
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if len(root) > len(best) {
			best = root
		}
	}
	return best
}

func skipWatchDir(name string) bool {
	return bundleDirs[name] || name == ".git"
}

// watchRoots returns the static directory prefix of every pattern, e.g.
// "src" for "src/**/*.jsx". Nested roots are kept; the watcher ignores a
// directory it already watches.
func watchRoots(patterns []string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, pattern := range patterns {
		dir := patternBase(pattern)
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			dir = filepath.Dir(dir)
		}
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}
	return roots
}

// watchDirRecursive adds a directory and all subdirectories to the watcher,
// leaving out dependency and build directories.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && skipWatchDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
