/*
Package markov provides a small, dependency-free toolkit for learning how the
pieces of words follow one another and for inventing new words from that
knowledge.

Words are first split by the Segmenter into runs of vowels, consonants,
punctuation, whitespace and anything else. A Builder accumulates how often
each piece follows another across a corpus, bracketing every word with a
Boundary state so that word starts and word ends are modelled explicitly.
The resulting Table is immutable and can be shared by any number of
Generators, which perform weighted random walks from Boundary back to
Boundary to produce new piece sequences.

	table := markov.Build([]string{"banana", "bandana"})
	gen, _ := markov.NewGenerator(table, markov.WithSeed(42))
	word, _ := gen.GenerateWord(ctx)
*/
package markov
