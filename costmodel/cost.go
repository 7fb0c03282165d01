package costmodel

import "math"

// Cost is an alignment edge cost. Infinite denotes infeasibility, never
// NaN: every arithmetic path in this package and in package tsgraph
// treats +Inf as an absorbing "impossible" value.
type Cost float64

// Inf is the infeasibility sentinel (§3: "∞ denotes unreachable").
var Inf = Cost(math.Inf(1))

// IsInf reports whether c is the infeasibility sentinel.
func (c Cost) IsInf() bool { return math.IsInf(float64(c), 1) }

// Add returns c + other, saturating at Inf (Inf + anything = Inf, and
// Inf's only finite-preserving combination is with another Inf, which is
// still Inf — there is no -Inf in this cost model).
func (c Cost) Add(other Cost) Cost {
	if c.IsInf() || other.IsInf() {
		return Inf
	}
	return c + other
}

// Less reports whether c is strictly less than other, with Inf treated
// as the unique maximum.
func (c Cost) Less(other Cost) bool { return c < other }
