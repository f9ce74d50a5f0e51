// Package main provides the spreadcss CLI for linting css() spreads in JSX.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx))
}

// run executes the root command and maps its outcome to an exit code:
// 0 when clean, 1 when issues were found, 2 on any other failure.
func run(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errIssuesFound):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "spreadcss: %v\n", err)
		return 2
	}
}
