package tsgraph

import "errors"

// Sentinel errors for package tsgraph.
var (
	// ErrFocusRangeOutOfBounds indicates a configured focus range that
	// does not fit within the backing sequence's positions.
	ErrFocusRangeOutOfBounds = errors.New("tsgraph: focus range out of bounds")

	// ErrInfeasibleCostModel indicates every template-switch entry
	// configuration the preprocessor tried was infeasible although
	// switches were required (e.g. --no-ts was not set but every
	// base cost/offset combination evaluates to Inf).
	ErrInfeasibleCostModel = errors.New("tsgraph: no feasible template-switch configuration")
)
