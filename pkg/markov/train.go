package markov

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Builder accumulates transition counts from a stream of words. It is the
// only mutable piece of the model; call Table to obtain an immutable
// snapshot. A Builder is not safe for concurrent use.
type Builder struct {
	segmenter Segmenter
	table     *Table
	logger    *slog.Logger
}

// BuilderOption is a function that configures a Builder.
type BuilderOption func(*Builder)

// WithSegmenter sets the segmenter used to split words.
// Default: NewDefaultSegmenter()
func WithSegmenter(s Segmenter) BuilderOption {
	return func(b *Builder) {
		if s != nil {
			b.segmenter = s
		}
	}
}

// WithBuilderLogger sets the logger used to report training progress. By
// default, all logs are discarded.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		segmenter: defaultSegmenter,
		table:     newTable(),
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add segments word, brackets the pieces with Boundary on both sides and
// counts every consecutive pair. The empty word contributes a single
// Boundary -> Boundary transition.
func (b *Builder) Add(word string) {
	prev := Boundary
	for _, value := range b.segmenter.Split(word) {
		next := PieceState(value)
		b.table.add(prev, next, 1)
		prev = next
	}
	b.table.add(prev, Boundary, 1)
	b.table.words++
}

// AddAll adds every word in words. Duplicates count once per occurrence.
func (b *Builder) AddAll(words []string) {
	for _, w := range words {
		b.Add(w)
	}
}

// Merge adds the counts of t into the builder.
func (b *Builder) Merge(t *Table) {
	if t != nil {
		b.table.merge(t)
	}
}

// Train reads words from r, one per line with surrounding whitespace removed,
// and adds each of them. Empty lines are added as empty words. Cancelling ctx
// stops training between lines; words already read stay counted.
func (b *Builder) Train(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var wordCount int64

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.Add(strings.TrimSpace(scanner.Text()))
		wordCount++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("word source error: %w", err)
	}

	b.logger.InfoContext(ctx, "Training completed",
		slog.Int64("words_processed", wordCount),
		slog.Int("states", b.table.Len()),
	)
	return nil
}

// Words returns the number of words added so far.
func (b *Builder) Words() int {
	return b.table.words
}

// Table returns an immutable snapshot of the counts accumulated so far. The
// builder can keep accepting words afterwards without affecting the snapshot.
func (b *Builder) Table() *Table {
	return b.table.clone()
}

// Build counts the transitions of words with the default segmenter and
// returns the resulting table.
func Build(words []string) *Table {
	b := NewBuilder()
	b.AddAll(words)
	return b.table
}
