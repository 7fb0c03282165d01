package seedchain

import (
	"math"
	"sort"

	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
	"github.com/sebschmi/tsaligner/tsminlen"
)

// NewSeededHeuristic builds h_seed from §4.5: a seed chain of
// exact-match k-mers between R and Q tightens the plain diagonal bound
// (NewHeuristic) by decomposing the remaining distance through the
// chain's anchors instead of taking one global bound across the whole
// remaining span.
//
// This can only raise the estimate, never lower it below the plain
// bound: each per-segment diagonal bound is itself admissible (the
// same argument diagonalBound relies on, applied to a shorter span),
// and summing per-segment bounds across any partition of the R-axis
// into consecutive segments is, by the triangle inequality on the net
// R/Q length difference, at least the bound computed over the whole
// span at once. k <= 0 or a chain with no usable anchors falls back to
// the plain bound.
func NewSeededHeuristic(cfg *tsgraph.Config, policy tsminlen.Policy, k int) astar.Heuristic {
	size := cfg.Model.Alphabet.Size()
	minGap := minIndelCost(&cfg.Model.Primary, size)

	type point struct{ r, q int }
	var anchors []point
	if k > 0 {
		chain := Chain(Collect(Build(cfg.R, k), cfg.Q))
		anchors = make([]point, 0, len(chain)+1)
		for _, s := range chain {
			anchors = append(anchors, point{s.RPos, s.QPos})
		}
	}
	anchors = append(anchors, point{cfg.Focus.R1, cfg.Focus.Q1})

	suffix := make([]costmodel.Cost, len(anchors))
	for i := len(anchors) - 2; i >= 0; i-- {
		a, b := anchors[i], anchors[i+1]
		suffix[i] = diagonalSeg(a.r, a.q, b.r, b.q, minGap).Add(suffix[i+1])
	}

	return func(n tsgraph.Node) costmodel.Cost {
		// The primary cursor (I, J) is frozen while a switch is open, so
		// it is always the right pair to chain from, whether or not a
		// switch is currently open.
		i, j := n.I, n.J

		plain := diagonalBound(i, j, cfg, minGap)

		idx := sort.Search(len(anchors), func(k int) bool { return anchors[k].r >= i })
		chained := plain
		if idx < len(anchors) {
			a := anchors[idx]
			chained = diagonalSeg(i, j, a.r, a.q, minGap).Add(suffix[idx])
		}
		base := plain
		if plain.Less(chained) {
			base = chained
		}

		floor := policy.Floor(n, cfg)
		if floor.Less(base) {
			return base
		}
		return floor
	}
}

func diagonalSeg(i1, j1, i2, j2 int, minGap costmodel.Cost) costmodel.Cost {
	delta := math.Abs(float64((i2 - i1) - (j2 - j1)))
	return costmodel.Cost(delta) * minGap
}
