package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// DefaultMaxSteps is the default cap on the number of transitions one walk
// may take before it fails with ErrWalkTooLong.
const DefaultMaxSteps = 1024

// RandSource supplies the randomness used to pick transitions. *rand.Rand
// from math/rand/v2 satisfies it.
type RandSource interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
	// Float64 returns a uniformly distributed float in [0.0, 1.0).
	Float64() float64
}

// globalRand forwards to the top-level math/rand/v2 functions, which are safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// generateOptions holds the settings applied to every walk of a Generator.
type generateOptions struct {
	rng         RandSource
	maxSteps    int
	temperature float64
	topK        int
	logger      *slog.Logger
}

// Option is a function that configures a Generator.
type Option func(*generateOptions)

// WithRand sets the source of randomness. A Generator using a *rand.Rand is
// only as concurrency-safe as that source, which is not safe by itself.
// Default: the top-level math/rand/v2 functions.
func WithRand(r RandSource) Option {
	return func(o *generateOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed makes generation reproducible by using a PCG source seeded with
// seed. The resulting Generator must not be used from several goroutines at
// once.
func WithSeed(seed uint64) Option {
	return func(o *generateOptions) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithMaxSteps sets the maximum number of transitions a single walk may take,
// counting the final transition back to Boundary. A value of 0 or less
// removes the cap.
// Default: DefaultMaxSteps
func WithMaxSteps(n int) Option {
	return func(o *generateOptions) { o.maxSteps = n }
}

// WithTemperature adjusts the randomness of the selection.
// A value of 1.0 is standard weighted random selection.
// Values > 1.0 increase randomness (making less frequent pieces more likely).
// Values < 1.0 decrease randomness (making more frequent pieces even more likely).
// A value of 0 or less results in deterministic selection (always choosing
// the most frequent piece, the first seen on ties).
func WithTemperature(t float64) Option {
	return func(o *generateOptions) { o.temperature = t }
}

// WithTopK restricts the selection pool to the `k` most frequent successors
// at each step. A value of 0 disables Top-K sampling.
func WithTopK(k int) Option {
	return func(o *generateOptions) { o.topK = k }
}

// WithLogger sets the logger for the Generator. By default, all logs are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *generateOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Generator performs weighted random walks over a Table. It never modifies
// the table, so any number of Generators can share one.
type Generator struct {
	table   *Table
	options generateOptions
}

// NewGenerator creates a Generator over table. It does not check whether the
// table can start a walk; that is reported by the generation calls as
// ErrEmptyModel.
func NewGenerator(table *Table, opts ...Option) (*Generator, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	options := generateOptions{
		rng:         globalRand{},
		maxSteps:    DefaultMaxSteps,
		temperature: 1.0,
		topK:        0,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Generator{table: table, options: options}, nil
}

// Table returns the table the Generator walks.
func (g *Generator) Table() *Table {
	return g.table
}

// SetLogger sets the logger for the Generator. A nil logger is ignored.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.options.logger = logger
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
