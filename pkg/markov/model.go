package markov

import "strconv"

// State is a node of the transition model: either the Boundary marker that
// stands for the start and end of a word, or a piece value. The two are
// distinct even when a piece's text happens to look like a marker.
type State struct {
	value    string
	boundary bool
}

// Boundary is the reserved state that brackets every word.
var Boundary = State{boundary: true}

// BoundaryText is how Boundary is rendered by String.
const BoundaryText = "<BOUNDARY>"

// PieceState returns the state for a piece value.
func PieceState(value string) State {
	return State{value: value}
}

// IsBoundary reports whether s is the Boundary state.
func (s State) IsBoundary() bool {
	return s.boundary
}

// Value returns the piece text of s, or "" for Boundary.
func (s State) Value() string {
	return s.value
}

// String renders a piece state as its quoted text and Boundary as BoundaryText.
func (s State) String() string {
	if s.boundary {
		return BoundaryText
	}
	return strconv.Quote(s.value)
}

// Transition is a potential next state in a walk together with the number of
// times it followed a given state in the training corpus.
type Transition struct {
	To   State
	Freq int
}

// distribution keeps the outgoing counts of one state in first-seen order so
// that sampling is reproducible under a fixed random source.
type distribution struct {
	transitions []Transition
	index       map[State]int
	total       int
}

func newDistribution() *distribution {
	return &distribution{index: make(map[State]int)}
}

func (d *distribution) add(to State, n int) {
	if i, ok := d.index[to]; ok {
		d.transitions[i].Freq += n
	} else {
		d.index[to] = len(d.transitions)
		d.transitions = append(d.transitions, Transition{To: to, Freq: n})
	}
	d.total += n
}

func (d *distribution) clone() *distribution {
	c := &distribution{
		transitions: make([]Transition, len(d.transitions)),
		index:       make(map[State]int, len(d.index)),
		total:       d.total,
	}
	copy(c.transitions, d.transitions)
	for k, v := range d.index {
		c.index[k] = v
	}
	return c
}

// Table is an immutable first-order transition model: for every state it
// records how often each other state followed it. A Table is safe for
// concurrent use by multiple goroutines.
type Table struct {
	order []State
	dists map[State]*distribution
	words int
}

func newTable() *Table {
	return &Table{dists: make(map[State]*distribution)}
}

func (t *Table) add(from, to State, n int) {
	d, ok := t.dists[from]
	if !ok {
		d = newDistribution()
		t.dists[from] = d
		t.order = append(t.order, from)
	}
	d.add(to, n)
}

func (t *Table) clone() *Table {
	c := &Table{
		order: make([]State, len(t.order)),
		dists: make(map[State]*distribution, len(t.dists)),
		words: t.words,
	}
	copy(c.order, t.order)
	for k, d := range t.dists {
		c.dists[k] = d.clone()
	}
	return c
}

// Next returns the possible successors of from, in the order they were first
// seen, and the sum of their frequencies. If from never started a transition
// it returns a nil slice and a total frequency of 0. The returned slice is a
// copy and may be modified by the caller.
func (t *Table) Next(from State) ([]Transition, int) {
	d, ok := t.dists[from]
	if !ok {
		return nil, 0
	}
	out := make([]Transition, len(d.transitions))
	copy(out, d.transitions)
	return out, d.total
}

// Count returns how many times to followed from.
func (t *Table) Count(from, to State) int {
	d, ok := t.dists[from]
	if !ok {
		return 0
	}
	if i, ok := d.index[to]; ok {
		return d.transitions[i].Freq
	}
	return 0
}

// States returns every state that has at least one outgoing transition, in
// the order they were first seen.
func (t *Table) States() []State {
	out := make([]State, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of states with outgoing transitions.
func (t *Table) Len() int {
	return len(t.order)
}

// Words returns the number of words the table was trained on.
func (t *Table) Words() int {
	return t.words
}

// Empty reports whether the table has no transitions out of Boundary, in
// which case nothing can be generated from it.
func (t *Table) Empty() bool {
	d, ok := t.dists[Boundary]
	return !ok || d.total == 0
}

// Merge returns a new table whose counts are the sums of the counts of the
// given tables. Merging is commutative and associative in its counts, so
// tables built from disjoint parts of a corpus can be combined in any order.
func Merge(tables ...*Table) *Table {
	out := newTable()
	for _, t := range tables {
		if t == nil {
			continue
		}
		out.merge(t)
	}
	return out
}

func (t *Table) merge(other *Table) {
	for _, from := range other.order {
		for _, tr := range other.dists[from].transitions {
			t.add(from, tr.To, tr.Freq)
		}
	}
	t.words += other.words
}
