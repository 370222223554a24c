package markov

import "errors"

var (
	// ErrEmptyModel is returned when a Table has no transitions out of the
	// Boundary state, so a walk cannot begin. A Table built from zero words
	// is always empty.
	ErrEmptyModel = errors.New("markov: model has no start transitions")

	// ErrWalkTooLong is returned when a walk exceeds the configured maximum
	// number of steps without returning to the Boundary state.
	ErrWalkTooLong = errors.New("markov: walk exceeded maximum steps")

	// ErrNilTable is returned by NewGenerator when no table is supplied.
	ErrNilTable = errors.New("markov: nil table")
)
