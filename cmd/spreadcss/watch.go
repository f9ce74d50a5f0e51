package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/spreadcss/internal/spreadcss"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-lint whenever matching files change",
	Long: `Lint once, then watch the directories of the configured patterns and lint
again after changes settle. Stops on Ctrl-C.`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lintConfig := buildLintConfig(args)
		debounce := getDuration("watch.debounce", spreadcss.DefaultDebounce)
		printer := newWatchPrinter(cmd.OutOrStdout(), lintConfig)
		return spreadcss.Watch(cmd.Context(), lintConfig, debounce, printer.handle)
	},
}

func init() {
	f := watchCmd.Flags()
	addLintFlags(f, "File patterns to watch")
	f.Duration("debounce", spreadcss.DefaultDebounce, "Quiet period before re-linting")
}

// watchPrinter writes a timestamped report for every lint run.
type watchPrinter struct {
	w         io.Writer
	config    spreadcss.LintConfig
	format    spreadcss.OutputFormat
	quiet     bool
	useColors bool
	logger    *slog.Logger
	now       func() time.Time
}

func newWatchPrinter(w io.Writer, config spreadcss.LintConfig) *watchPrinter {
	quiet := getBool("quiet", false)
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &watchPrinter{
		w:         w,
		config:    config,
		format:    spreadcss.DetermineOutputFormat(getString("lint.output-format", ""), quiet),
		quiet:     quiet,
		useColors: spreadcss.ShouldUseColors(config),
		logger:    logger,
		now:       time.Now,
	}
}

func (p *watchPrinter) handle(result *spreadcss.LintResult, err error) {
	if err != nil {
		p.logger.Error("lint failed", "error", err)
		return
	}
	if p.quiet {
		return
	}
	header := fmt.Sprintf("--- %s ---", p.now().Format(time.TimeOnly))
	fmt.Fprintln(p.w, spreadcss.RenderStyle(spreadcss.StyleGray, header, p.useColors))
	if err := spreadcss.WriteOutput(p.w, result, p.format, p.config); err != nil {
		p.logger.Error("writing output", "error", err)
	}
}
