package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/spreadcss/internal/spreadcss"
)

const defaultConfigPath = ".spreadcss.yaml"

var k = koanf.New(".")

// defaultPaths is what lint and watch scan when nothing is configured.
var defaultPaths = []string{"src/**/*.{js,jsx,mjs,cjs,ts,tsx}"}

// flagKeys maps command flags to the config keys they override. Flags not
// listed here (verbose, quiet, color, config) share their config key.
var flagKeys = map[string]string{
	"paths":                 "lint.paths",
	"disable":               "lint.disable",
	"concurrency":           "lint.concurrency",
	"output-format":         "lint.output-format",
	"max-issues-per-linter": "lint.max-issues-per-linter",
	"max-same-issues":       "lint.max-same-issues",
	"print-lines":           "lint.print-lines",
	"print-linter-name":     "lint.print-linter-name",
	"debounce":              "watch.debounce",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		if f.Value.Type() == "duration" {
			return flagKey(f.Name), f.Value.String()
		}
		return flagKey(f.Name), posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SPREADCSS_* prefix)
	if err := k.Load(env.Provider("SPREADCSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, later ones become dashes:
//
//	SPREADCSS_VERBOSE                  -> verbose
//	SPREADCSS_LINT_CONCURRENCY         -> lint.concurrency
//	SPREADCSS_LINT_MAX_SAME_ISSUES     -> lint.max-same-issues
//	SPREADCSS_WATCH_DEBOUNCE           -> watch.debounce
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "SPREADCSS_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	if section != "lint" && section != "watch" {
		return strings.ReplaceAll(key, "_", "-")
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildLintConfig constructs the engine's LintConfig from koanf state.
// Positional arguments replace the configured paths.
func buildLintConfig(args []string) spreadcss.LintConfig {
	paths := args
	if len(paths) == 0 {
		paths = getStrings("lint.paths", defaultPaths)
	}

	return spreadcss.LintConfig{
		Paths:              paths,
		DisabledRules:      getStrings("lint.disable", nil),
		Concurrency:        getInt("lint.concurrency", 0),
		MaxIssuesPerLinter: getInt("lint.max-issues-per-linter", 0),
		MaxSameIssues:      getInt("lint.max-same-issues", 0),
		PrintIssuedLines:   getBool("lint.print-lines", true),
		PrintLinterName:    getBool("lint.print-linter-name", true),
		UseColors:          getBool("color", false),
		Logger:             newLogger(),
	}
}

// newLogger returns a text logger on stderr: debug level with --verbose,
// warnings only otherwise.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if getBool("verbose", false) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// getString returns the value at key, or defaultVal when it is unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStrings returns the list at key, or defaultVal when it is unset or empty.
func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when it is unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the value at key, or defaultVal when it is unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getDuration returns the value at key, or defaultVal when it is unset.
// Values are Go durations ("250ms") or plain integers in nanoseconds.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	if k.Exists(key) {
		return k.Duration(key)
	}
	return defaultVal
}
