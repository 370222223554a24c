package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CTAG07/Glossolalia/pkg/markov"
)

func newSegmentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segment WORD...",
		Short: "Show how words are split into pieces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segmenter := markov.NewDefaultSegmenter(markov.WithVowels(a.config.Vowels))
			out := cmd.OutOrStdout()
			for i, word := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", strconv.Quote(word))
				for _, piece := range segmenter.Tokenize(word) {
					fmt.Fprintf(out, "%s\t%s\n", piece.Category, strconv.Quote(piece.Value))
				}
			}
			return nil
		},
	}
}
