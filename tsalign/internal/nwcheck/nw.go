// Package nwcheck is a from-scratch classic affine-gap
// Needleman-Wunsch, kept separate from the production search and used
// only as a test cross-check for §8's testable property "disabling
// switches yields a result whose cost equals classic affine-gap
// Needleman-Wunsch with the primary cost table". It intentionally
// duplicates none of package tsgraph's graph-construction code; it
// computes the same global-alignment cost by ordinary DP, following the
// three-matrix (match/gap-in-R/gap-in-Q) affine-gap shape used by
// aria-lang's bioflow NW and MICA's compress/nw.go.
package nwcheck

import (
	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/costmodel"
)

var inf = costmodel.Inf

// Cost computes the minimum affine-gap edit cost of globally aligning
// r against q under table, using ordinary quadratic DP (no heuristic,
// no template switches). It mirrors tsgraph's flank-phase classification
// by R-coordinate through flankFor, which must be non-nil, so it stays
// comparable to a search run over the same flank-aware cost model.
func Cost(r, q *alphabet.Sequence, flankFor func(i int) *costmodel.EditTable) costmodel.Cost {
	n, m := r.Len(), q.Len()

	match := make([][]costmodel.Cost, n+1)
	gapR := make([][]costmodel.Cost, n+1) // gap in R: consumes Q only
	gapQ := make([][]costmodel.Cost, n+1) // gap in Q: consumes R only
	for i := range match {
		match[i] = make([]costmodel.Cost, m+1)
		gapR[i] = make([]costmodel.Cost, m+1)
		gapQ[i] = make([]costmodel.Cost, m+1)
	}

	match[0][0] = 0
	gapR[0][0] = inf
	gapQ[0][0] = inf

	for j := 1; j <= m; j++ {
		table := flankFor(0)
		match[0][j] = inf
		gapQ[0][j] = inf
		b := q.At(j - 1)
		if j == 1 {
			gapR[0][j] = table.Open(b)
		} else {
			gapR[0][j] = gapR[0][j-1].Add(table.Extend(b))
		}
	}
	for i := 1; i <= n; i++ {
		table := flankFor(i - 1)
		match[i][0] = inf
		gapR[i][0] = inf
		a := r.At(i - 1)
		if i == 1 {
			gapQ[i][0] = table.Open(a)
		} else {
			gapQ[i][0] = gapQ[i-1][0].Add(table.Extend(a))
		}
	}

	for i := 1; i <= n; i++ {
		// subTable is the phase at the source R-position (i-1), used for
		// match/substitution and for R-consuming transitions, exactly how
		// tsgraph picks a table from the source node's n.I. rowTable is
		// the phase at the current, not-yet-advanced R-position i, used
		// for Q-only insertions that leave the R cursor in place.
		subTable := flankFor(i - 1)
		rowTable := flankFor(i)
		a := r.At(i - 1)
		for j := 1; j <= m; j++ {
			b := q.At(j - 1)

			best := min3(match[i-1][j-1], gapR[i-1][j-1], gapQ[i-1][j-1])
			match[i][j] = best.Add(subTable.Sub(a, b))

			gapR[i][j] = min2(
				min3(match[i][j-1], gapR[i][j-1], gapQ[i][j-1]).Add(rowTable.Open(b)),
				gapR[i][j-1].Add(rowTable.Extend(b)),
			)

			gapQ[i][j] = min2(
				min3(match[i-1][j], gapR[i-1][j], gapQ[i-1][j]).Add(subTable.Open(a)),
				gapQ[i-1][j].Add(subTable.Extend(a)),
			)
		}
	}

	return min3(match[n][m], gapR[n][m], gapQ[n][m])
}

func min2(a, b costmodel.Cost) costmodel.Cost {
	if a.Less(b) {
		return a
	}
	return b
}

func min3(a, b, c costmodel.Cost) costmodel.Cost {
	return min2(a, min2(b, c))
}
