package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics about the model built from a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("source") {
				a.config.WordSource = source
			}
			table, err := a.buildTable(cmd.Context())
			if err != nil {
				return err
			}
			stats := table.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words:           %d\n", stats.Words)
			fmt.Fprintf(out, "states:          %d\n", stats.States)
			fmt.Fprintf(out, "chains:          %d\n", stats.TotalChains)
			fmt.Fprintf(out, "total frequency: %d\n", stats.TotalFrequency)
			fmt.Fprintf(out, "starting pieces: %d\n", stats.StartingPieces)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "word list: text file, SQLite database (.db, .sqlite) or - for stdin")
	return cmd
}
