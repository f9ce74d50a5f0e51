package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spreadcss",
	Short: "Lint css() spreads in JavaScript and JSX",
	Long: `Checks that the css() helper from withStyles is only ever spread directly
into an element's attributes, and never combined with className or style:

  <div {...css(styles.foo)} />`,
	// Default behavior: run lint when no subcommand is given.
	// loadConfig is called here because PreRunE of lintCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint(cmd.Context(), cmd.OutOrStdout(), nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
