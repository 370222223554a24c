package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CTAG07/Glossolalia/pkg/markov"
)

// buildTable trains a model on the configured corpus, pruning rare
// transitions when a minimum frequency is configured.
func (a *app) buildTable(ctx context.Context) (*markov.Table, error) {
	builder := markov.NewBuilder(
		markov.WithSegmenter(markov.NewDefaultSegmenter(markov.WithVowels(a.config.Vowels))),
		markov.WithBuilderLogger(a.logger),
	)
	if err := trainFromSource(ctx, builder, a.config.WordSource, a.logger); err != nil {
		return nil, fmt.Errorf("failed to load words from %q: %w", a.config.WordSource, err)
	}
	table := builder.Table()

	if a.config.MinFrequency > 0 {
		table = table.Prune(a.config.MinFrequency)
	}

	a.logger.Debug("Model built",
		slog.String("word_source", a.config.WordSource),
		slog.Int("words", table.Words()),
		slog.Int("states", table.Len()),
		slog.Int("min_frequency", a.config.MinFrequency),
	)
	return table, nil
}
