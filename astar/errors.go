package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNoPath indicates the open set emptied without ever reaching the
	// goal: the start and goal are disconnected under the supplied
	// configuration (e.g. template switches disabled and the sequences
	// cannot align without one).
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrMemoryExhausted indicates the search's approximate memory usage
	// crossed the hard budget, whether or not bounded mode is active.
	ErrMemoryExhausted = errors.New("astar: memory budget exhausted")

	// ErrCancelled indicates the caller's cancellation flag was observed
	// set before the goal was reached.
	ErrCancelled = errors.New("astar: search cancelled")

	// ErrInconsistentHeuristic indicates a popped node's cached priority
	// no longer matches its current best g-score, which can only happen
	// if the supplied heuristic is not admissible/consistent. Search
	// performs no such check and never returns this error.
	ErrInconsistentHeuristic = errors.New("astar: heuristic produced a non-monotonic priority")
)
