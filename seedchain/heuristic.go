package seedchain

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
	"github.com/sebschmi/tsaligner/tsminlen"
)

// minIndelCost returns the cheapest per-symbol gap cost in m's primary
// edit table, the floor every unavoidable length difference between
// the remaining R and Q spans must pay at least once.
func minIndelCost(t *costmodel.EditTable, size int) costmodel.Cost {
	extends := make([]float64, 0, size)
	for s := 0; s < size; s++ {
		extends = append(extends, float64(t.Extend(alphabet.Symbol(s))))
	}
	return costmodel.Cost(floats.Min(extends))
}

// NewHeuristic builds an admissible astar.Heuristic from the current
// search configuration and a template-switch min-length Policy (§4.5,
// §4.4 working together).
//
// The estimate has two independent lower bounds on remaining cost,
// combined by taking their maximum rather than their sum: summing would
// double-count, since both describe alternative ways the same remaining
// work could play out (diagonal gap-forced cost vs. the cheapest
// possible template switch), not cumulative obligations.
func NewHeuristic(cfg *tsgraph.Config, policy tsminlen.Policy) astar.Heuristic {
	size := cfg.Model.Alphabet.Size()
	minGap := minIndelCost(&cfg.Model.Primary, size)

	return func(n tsgraph.Node) costmodel.Cost {
		// Inside an open switch the remaining primary distance is
		// unaffected by the switch itself (the primary cursor is frozen
		// at (I, J) until the close reconciles it), so the same diagonal
		// bound applies whether or not a switch is open.
		base := diagonalBound(n.I, n.J, cfg, minGap)
		floor := policy.Floor(n, cfg)
		if floor.Less(base) {
			return base
		}
		return floor
	}
}

func diagonalBound(i, j int, cfg *tsgraph.Config, minGap costmodel.Cost) costmodel.Cost {
	remR := cfg.Focus.R1 - i
	remQ := cfg.Focus.Q1 - j
	delta := math.Abs(float64(remR - remQ))
	return costmodel.Cost(delta) * minGap
}
