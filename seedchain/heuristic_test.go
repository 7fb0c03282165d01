package seedchain_test

import (
	"strings"
	"testing"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/seedchain"
	"github.com/sebschmi/tsaligner/tsgraph"
	"github.com/sebschmi/tsaligner/tsminlen"
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
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:2, C:2, G:2, T:2

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

func mustConfig(t *testing.T, r, q string) *tsgraph.Config {
	t.Helper()
	a := alphabet.New(alphabet.DNA)
	model, err := costmodel.Parse(strings.NewReader(testConfig), a)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rSeq, err := alphabet.Load("R", []byte(r), a, alphabet.SkipSet{})
	if err != nil {
		t.Fatalf("Load R: %v", err)
	}
	qSeq, err := alphabet.Load("Q", []byte(q), a, alphabet.SkipSet{})
	if err != nil {
		t.Fatalf("Load Q: %v", err)
	}
	return &tsgraph.Config{
		Model:               model,
		R:                   rSeq,
		Q:                   qSeq,
		Focus:               tsgraph.FocusRange{R0: 0, R1: rSeq.Len(), Q0: 0, Q1: qSeq.Len()},
		AllowTemplateSwitch: true,
	}
}

func TestNewHeuristic_ZeroAtGoal(t *testing.T) {
	cfg := mustConfig(t, "ACGT", "ACGT")
	policy := tsminlen.NewPolicy(tsminlen.StrategyNone, cfg.Model)
	h := seedchain.NewHeuristic(cfg, policy)

	goal := tsgraph.Node{Kind: tsgraph.Primary, I: cfg.Focus.R1, J: cfg.Focus.Q1}
	if got := h(goal); got != 0 {
		t.Fatalf("heuristic at goal = %v, want 0", got)
	}
}

func TestNewHeuristic_BoundsLengthDifference(t *testing.T) {
	// R has 2 more residues than Q remaining from the start: at least 2
	// gap_extend-priced indels are unavoidable without a template switch.
	cfg := mustConfig(t, "ACGTAC", "ACGT")
	policy := tsminlen.NewPolicy(tsminlen.StrategyNone, cfg.Model)
	h := seedchain.NewHeuristic(cfg, policy)

	start := cfg.Start()
	got := h(start)
	if got != costmodel.Cost(2)*costmodel.Cost(2) {
		t.Fatalf("heuristic at start = %v, want 4 (2 extra residues * gap_extend 2)", got)
	}
}

func TestNewHeuristic_PreprocessPriceZeroAtPrimaryStart(t *testing.T) {
	// A Primary node's optimal completion need not contain a switch at
	// all, so the preprocess-price floor must not fire here: with R and Q
	// already equal, the plain diagonal bound is 0 too.
	cfg := mustConfig(t, "ACGT", "ACGT")
	policy := tsminlen.NewPolicy(tsminlen.StrategyPreprocessPrice, cfg.Model)
	h := seedchain.NewHeuristic(cfg, policy)

	start := cfg.Start()
	if got := h(start); got != 0 {
		t.Fatalf("heuristic at start = %v, want 0", got)
	}
}

func TestNewHeuristic_PreprocessPriceAddsCloseFloorWhenOpen(t *testing.T) {
	// An open-secondary node must pay a close before reaching the goal,
	// so CloseFloor is admissible there and should raise the estimate.
	cfg := mustConfig(t, "ACGT", "ACGT")
	policy := tsminlen.NewPolicy(tsminlen.StrategyPreprocessPrice, cfg.Model)
	h := seedchain.NewHeuristic(cfg, policy)

	open := tsgraph.Node{Kind: tsgraph.SecondaryForward, I: 2, J: 2}
	if got := h(open); got != policy.CloseFloor() {
		t.Fatalf("heuristic at open switch = %v, want CloseFloor %v", got, policy.CloseFloor())
	}
}
