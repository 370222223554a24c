package markov

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// Generate walks the table from Boundary until Boundary is chosen again and
// returns the visited piece values in order, without the Boundary markers.
// An empty, non-nil slice means the model produced the empty word.
//
// It returns ErrEmptyModel if the table has no start transitions and an error
// wrapping ErrWalkTooLong if the walk exceeds the step cap.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	pieces := make([]string, 0, 8)
	err := g.walk(ctx, func(value string) bool {
		pieces = append(pieces, value)
		return true
	})
	if err != nil {
		return nil, err
	}
	return pieces, nil
}

// GenerateWord is like Generate but joins the pieces into a single word.
func (g *Generator) GenerateWord(ctx context.Context) (string, error) {
	pieces, err := g.Generate(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(pieces, ""), nil
}

// GenerateWords generates n words. It stops at the first failed walk and
// returns the words generated before it alongside the error.
func (g *Generator) GenerateWords(ctx context.Context, n int) ([]string, error) {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		word, err := g.GenerateWord(ctx)
		if err != nil {
			return words, fmt.Errorf("word %d: %w", i+1, err)
		}
		words = append(words, word)
	}
	return words, nil
}

// walk contains the main loop of a generation run. emit is called for every
// non-Boundary state chosen; returning false stops the walk without error.
func (g *Generator) walk(ctx context.Context, emit func(string) bool) error {
	if g.table.Empty() {
		return ErrEmptyModel
	}

	current := Boundary
	for steps := 0; ; steps++ {
		if g.options.maxSteps > 0 && steps >= g.options.maxSteps {
			g.options.logger.DebugContext(ctx, "Generation aborted by step cap",
				slog.Int("max_steps", g.options.maxSteps),
				slog.String("last_state", current.String()),
			)
			return fmt.Errorf("%w (%d)", ErrWalkTooLong, g.options.maxSteps)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		d, ok := g.table.dists[current]
		if !ok || d.total == 0 { // Dead end, only possible in hand-built or pruned tables
			g.options.logger.DebugContext(ctx, "Generation terminated due to dead-end",
				slog.String("last_state", current.String()),
				slog.Int("generated_length", steps),
			)
			return nil
		}

		next := chooseNext(d.transitions, d.total, &g.options)
		if next.IsBoundary() {
			g.options.logger.DebugContext(ctx, "Generation terminated by boundary",
				slog.Int("generated_length", steps),
			)
			return nil
		}
		if !emit(next.value) {
			return nil
		}
		current = next
	}
}

// chooseNext abstracts the selection logic from the walk. choices is never
// modified.
func chooseNext(choices []Transition, totalFreq int, options *generateOptions) State {
	// topK filtering
	if options.topK > 0 && options.topK < len(choices) {
		sorted := make([]Transition, len(choices))
		copy(sorted, choices)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Freq > sorted[j].Freq
		})
		choices = sorted[:options.topK]
		totalFreq = 0
		for _, choice := range choices {
			totalFreq += choice.Freq
		}
	}

	// temperature selection
	switch {
	case options.temperature <= 0: // Deterministic
		best := choices[0]
		for _, choice := range choices[1:] {
			if choice.Freq > best.Freq {
				best = choice
			}
		}
		return best.To
	case options.temperature == 1.0: // Standard weighted random
		randChoice := options.rng.IntN(totalFreq)
		for _, choice := range choices {
			randChoice -= choice.Freq
			if randChoice < 0 {
				return choice.To
			}
		}
	default: // Temperature-based sampling
		logProbabilities := make([]float64, len(choices))
		maxLog := math.Inf(-1)
		for i, choice := range choices {
			lp := math.Log(float64(choice.Freq)) / options.temperature
			logProbabilities[i] = lp
			if lp > maxLog {
				maxLog = lp
			}
		}
		var totalWeight float64
		weights := make([]float64, len(choices))
		for i, lp := range logProbabilities {
			w := math.Exp(lp - maxLog)
			weights[i] = w
			totalWeight += w
		}
		randChoice := options.rng.Float64() * totalWeight
		for i, choice := range choices {
			randChoice -= weights[i]
			if randChoice < 0 {
				return choice.To
			}
		}
	}
	// Rounding left the draw past the last bucket.
	return choices[len(choices)-1].To
}
