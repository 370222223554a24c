package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/CTAG07/Glossolalia/pkg/markov"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		source       string
		count        int
		seed         uint64
		maxSteps     int
		temperature  float64
		topK         int
		minFrequency int
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new words from a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("source") {
				a.config.WordSource = source
			}
			if flags.Changed("count") {
				a.config.Count = count
			}
			if flags.Changed("seed") {
				a.config.Seed = &seed
			}
			if flags.Changed("max-steps") {
				a.config.MaxSteps = maxSteps
			}
			if flags.Changed("temperature") {
				a.config.Temperature = temperature
			}
			if flags.Changed("top-k") {
				a.config.TopK = topK
			}
			if flags.Changed("min-frequency") {
				a.config.MinFrequency = minFrequency
			}
			if flags.Changed("output") {
				a.config.OutputPath = output
			}
			if a.config.Count < 0 {
				return fmt.Errorf("count must not be negative, got %d", a.config.Count)
			}

			ctx := cmd.Context()
			table, err := a.buildTable(ctx)
			if err != nil {
				return err
			}

			opts := []markov.Option{
				markov.WithMaxSteps(a.config.MaxSteps),
				markov.WithTemperature(a.config.Temperature),
				markov.WithTopK(a.config.TopK),
				markov.WithLogger(a.logger),
			}
			if a.config.Seed != nil {
				opts = append(opts, markov.WithSeed(*a.config.Seed))
			}
			gen, err := markov.NewGenerator(table, opts...)
			if err != nil {
				return err
			}

			words, err := gen.GenerateWords(ctx, a.config.Count)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			var buf bytes.Buffer
			for _, word := range words {
				buf.WriteString(word)
				buf.WriteByte('\n')
			}

			if a.config.OutputPath == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err = atomic.WriteFile(a.config.OutputPath, &buf); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			a.logger.Info("Words written",
				slog.String("output_path", a.config.OutputPath),
				slog.Int("words", len(words)),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&source, "source", "", "word list: text file, SQLite database (.db, .sqlite) or - for stdin")
	flags.IntVarP(&count, "count", "n", 0, "number of words to generate")
	flags.Uint64Var(&seed, "seed", 0, "seed for reproducible output (random when unset)")
	flags.IntVar(&maxSteps, "max-steps", 0, "maximum transitions per word, 0 for unlimited")
	flags.Float64Var(&temperature, "temperature", 1.0, "sampling temperature, 0 or less always takes the most frequent piece")
	flags.IntVar(&topK, "top-k", 0, "only sample among the k most frequent successors, 0 to disable")
	flags.IntVar(&minFrequency, "min-frequency", 0, "drop transitions seen this many times or fewer")
	flags.StringVarP(&output, "output", "o", "", "write words to this file instead of stdout")

	return cmd
}
