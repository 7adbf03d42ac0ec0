package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/catsplus/radiograb-sub001/services/extractor"
)

var (
	extractTimeout time.Duration
	extractJSON    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <station-url>",
	Short: "Extract the show schedule from a station website.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), extractTimeout)
		defer cancel()

		result := extractor.NewService(extractor.Options{}).Extract(ctx, args[0])
		if extractJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Payload())
		}

		if !result.Success {
			fmt.Fprintln(os.Stderr, result.Error)
			for _, s := range result.Suggestions {
				fmt.Fprintln(os.Stderr, "  -", s)
			}
			os.Exit(1)
		}

		fmt.Printf("found %d shows via %s\n", len(result.Shows), result.StrategyUsed)
		renderShows(extractor.Flatten(result.Shows))
		return nil
	},
}

func init() {
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute,
		"overall deadline for the extraction pipeline")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false,
		"emit the extraction result as JSON instead of a table")
	rootCmd.AddCommand(extractCmd)
}

func renderShows(flat []extractor.FlatShow) {
	t := newTable()
	t.AppendHeader(table.Row{"Day", "Start", "End", "Show", "DJ", "Genre"})
	for _, f := range flat {
		t.AppendRow(table.Row{f.Day, f.StartTime, f.EndTime, f.Name, f.DJ, f.Genre})
	}
	t.Render()
}
