package astar_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

const testConfig = `
left_flank_length = 0
right_flank_length = 0

[base_costs]
rrf = 4
rqf = 4
qrf = 4
qqf = 4
rrr = 5
rqr = 5
qrr = 5
qqr = 5

[function Offset]
breakpoints = -inf, -10, 10, inf
values = inf, 0, inf

[function Length]
breakpoints = -inf, 1, 5, inf
values = inf, 1, inf

[function LengthDifference]
breakpoints = -inf, -2, 2, inf
values = inf, 0, inf

[function ForwardAntiPrimaryGap]
breakpoints = -inf, 0, 10, inf
values = 0, 1, inf

[function ReverseAntiPrimaryGap]
breakpoints = -inf, 0, 10, inf
values = 0, 1, inf

[edit primary]
A C G T
A 0 4 4 4
C 4 0 4 4
G 4 4 0 4
T 4 4 4 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit secondary_forward]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit secondary_reverse]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit left_flank]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit right_flank]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1
`

func zeroHeuristic(tsgraph.Node) costmodel.Cost { return 0 }

func mustConfig(t *testing.T, r, q string, allowTS bool) *tsgraph.Config {
	t.Helper()
	a := alphabet.New(alphabet.DNA)
	model, err := costmodel.Parse(strings.NewReader(testConfig), a)
	require.NoError(t, err)

	rSeq, err := alphabet.Load("R", []byte(r), a, alphabet.SkipSet{})
	require.NoError(t, err)
	qSeq, err := alphabet.Load("Q", []byte(q), a, alphabet.SkipSet{})
	require.NoError(t, err)

	return &tsgraph.Config{
		Model:               model,
		R:                   rSeq,
		Q:                   qSeq,
		Focus:               tsgraph.FocusRange{R0: 0, R1: rSeq.Len(), Q0: 0, Q1: qSeq.Len()},
		AllowTemplateSwitch: allowTS,
	}
}

func TestSearch_ExactMatchIsFree(t *testing.T) {
	cfg := mustConfig(t, "ACGTACGT", "ACGTACGT", false)
	res, err := astar.Search(cfg, zeroHeuristic)
	require.NoError(t, err)
	require.Equal(t, costmodel.Cost(0), res.Cost)
	require.Equal(t, 8, res.Stats.Expanded-1) // 8 match edges plus the goal pop
}

func TestSearch_SingleMismatchCostsSubstitution(t *testing.T) {
	cfg := mustConfig(t, "ACGT", "ACCT", false)
	res, err := astar.Search(cfg, zeroHeuristic)
	require.NoError(t, err)
	require.Equal(t, costmodel.Cost(4), res.Cost)
}

func TestSearch_NoTemplateSwitchStillFindsPath(t *testing.T) {
	// With template switches disabled and left/right flank lengths both
	// zero, the only way from start to goal is primary match/gap moves,
	// so this must still find a (possibly costly) path, never ErrNoPath:
	// primary moves alone always connect (r0,q0) to (r1,q1).
	cfg := mustConfig(t, "ACGT", "AC", false)
	res, err := astar.Search(cfg, zeroHeuristic)
	require.NoError(t, err)
	require.True(t, res.Cost > 0)
}

func TestSearch_CancelledFlagStopsSearch(t *testing.T) {
	cfg := mustConfig(t, "ACGTACGTACGTACGT", "ACGTACGTACGTACGT", true)
	var cancel atomic.Bool
	cancel.Store(true)
	_, err := astar.Search(cfg, zeroHeuristic, astar.WithCancel(&cancel, 1))
	require.ErrorIs(t, err, astar.ErrCancelled)
}

func TestSearch_MemoryBudgetExhausted(t *testing.T) {
	cfg := mustConfig(t, "ACGTACGTACGT", "ACGTACGTACGT", true)
	_, err := astar.Search(cfg, zeroHeuristic, astar.WithMemoryBudget(1, 1))
	require.ErrorIs(t, err, astar.ErrMemoryExhausted)
}

func TestSearch_AntiDiagonalOrderingStillFindsOptimum(t *testing.T) {
	cfg := mustConfig(t, "ACGT", "ACCT", false)
	res, err := astar.Search(cfg, zeroHeuristic, astar.WithNodeOrder(astar.NodeOrderAntiDiagonal))
	require.NoError(t, err)
	require.Equal(t, costmodel.Cost(4), res.Cost)
}
