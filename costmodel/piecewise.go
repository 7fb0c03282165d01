package costmodel

import "sort"

// PieceFunction is a piecewise-constant step function over the integers,
// presented (per §4.1) as breakpoints (excluding the implicit ±∞ domain
// ends) and one value per interval.
//
// With k interior breakpoints b[0] < b[1] < ... < b[k-1], the function
// has k+1 values: value[0] on (-∞, b[0]), value[i] on [b[i-1], b[i]) for
// 0 < i < k, and value[k] on [b[k-1], +∞).
type PieceFunction struct {
	breakpoints []int64
	values      []Cost
}

// NewPieceFunction validates and constructs a PieceFunction. breakpoints
// must be strictly increasing; len(values) must equal len(breakpoints)+1.
//
// Complexity: O(n) to validate monotonicity, O(1) extra space beyond the
// copied slices.
func NewPieceFunction(breakpoints []int64, values []Cost) (PieceFunction, error) {
	if len(values) != len(breakpoints)+1 {
		return PieceFunction{}, parseErrf(0, DimensionMismatch, "",
			"%d breakpoints requires %d values, got %d", len(breakpoints), len(breakpoints)+1, len(values))
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return PieceFunction{}, parseErrf(0, BreakpointOrderViolation, "",
				"breakpoint %d (%d) does not exceed breakpoint %d (%d)",
				i, breakpoints[i], i-1, breakpoints[i-1])
		}
	}
	bp := make([]int64, len(breakpoints))
	copy(bp, breakpoints)
	vs := make([]Cost, len(values))
	copy(vs, values)
	return PieceFunction{breakpoints: bp, values: vs}, nil
}

// MinFinite returns the smallest finite value among f's intervals, and
// false if every interval is Inf. Used by package tsminlen to bound how
// cheap a single template switch could possibly be, without needing to
// enumerate every integer in a function's domain.
func (f PieceFunction) MinFinite() (Cost, bool) {
	var min Cost
	found := false
	for _, v := range f.values {
		if v.IsInf() {
			continue
		}
		if !found || v.Less(min) {
			min = v
			found = true
		}
	}
	return min, found
}

// Eval returns the value of the interval containing x, via binary
// search over the breakpoints.
//
// Complexity: O(log n).
func (f PieceFunction) Eval(x int64) Cost {
	// i is the number of breakpoints strictly less than or equal to x's
	// lower bound; sort.Search finds the first breakpoint that is > x,
	// which is exactly the interval index x belongs to.
	i := sort.Search(len(f.breakpoints), func(i int) bool { return f.breakpoints[i] > x })
	return f.values[i]
}
