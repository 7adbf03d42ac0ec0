package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/catsplus/radiograb-sub001/services/extractor"
	"github.com/catsplus/radiograb-sub001/services/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <calendar-file> <station-id>",
	Short: "Import a schedule from a local iCalendar file.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome := importer.NewService().ImportFile(cmd.Context(), args[0], args[1])
		if !outcome.Success {
			fmt.Fprintln(os.Stderr, outcome.Error)
			os.Exit(1)
		}

		fmt.Print(outcome.Report)

		t := newTable()
		t.AppendHeader(table.Row{"Day", "Start", "End", "Show", "Genre"})
		for _, f := range extractor.Flatten(outcome.Shows) {
			t.AppendRow(table.Row{f.Day, f.StartTime, f.EndTime, f.Name, f.Genre})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
