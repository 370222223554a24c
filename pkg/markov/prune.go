package markov

// Prune returns a copy of the table without the transitions whose frequency
// is less than or equal to minFreq. This is useful for dropping rare, and
// often noisy, transitions from a large corpus. States left without any
// outgoing transition are removed; a walk that reaches one ends there.
//
// Pruning can remove every start transition, in which case the result is
// Empty.
func (t *Table) Prune(minFreq int) *Table {
	out := newTable()
	out.words = t.words
	for _, from := range t.order {
		for _, tr := range t.dists[from].transitions {
			if tr.Freq > minFreq {
				out.add(from, tr.To, tr.Freq)
			}
		}
	}
	return out
}
