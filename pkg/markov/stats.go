package markov

// ModelStats holds aggregated statistics for a Table.
type ModelStats struct {
	States         int // The number of states with at least one outgoing transition.
	TotalChains    int // The number of unique from->to links.
	TotalFrequency int // The sum of frequencies of all links; the total number of counted transitions.
	StartingPieces int // The number of unique states that can follow Boundary.
	Words          int // The number of words the table was trained on.
}

// Stats returns a snapshot of statistics for the table.
func (t *Table) Stats() ModelStats {
	stats := ModelStats{
		States: len(t.order),
		Words:  t.words,
	}
	for _, d := range t.dists {
		stats.TotalChains += len(d.transitions)
		stats.TotalFrequency += d.total
	}
	if d, ok := t.dists[Boundary]; ok {
		stats.StartingPieces = len(d.transitions)
	}
	return stats
}
