package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/yacobolo/spreadcss/internal/rule"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available lint rules",
	Run: func(cmd *cobra.Command, _ []string) {
		tbl := table.NewWriter()
		tbl.SetOutputMirror(cmd.OutOrStdout())
		tbl.SetStyle(table.StyleLight)
		tbl.Style().Format.Header = text.FormatDefault
		tbl.AppendHeader(table.Row{"Rule", "Description"})
		for _, r := range rule.Default().All() {
			tbl.AppendRow(table.Row{r.ID(), r.Description()})
		}
		tbl.Render()
	},
}
