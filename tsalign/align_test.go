package tsalign_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/result"
	"github.com/sebschmi/tsaligner/tsalign"
	"github.com/sebschmi/tsaligner/tsalign/internal/nwcheck"
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
breakpoints = -inf, 1, 8, inf
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

func mustOptions(t *testing.T, r, q string, allowTS bool) tsalign.Options {
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
	return tsalign.Options{
		Model:               model,
		R:                   rSeq,
		Q:                   qSeq,
		Focus:               tsgraph.FocusRange{R0: 0, R1: rSeq.Len(), Q0: 0, Q1: qSeq.Len()},
		AllowTemplateSwitch: allowTS,
		MinLengthStrategy:   tsminlen.StrategyNone,
		SeedLength:          3,
	}
}

func TestAlign_ExactMatch(t *testing.T) {
	opts := mustOptions(t, "ACGT", "ACGT", false)
	a, err := tsalign.Align(opts)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if a.Script.Cost != 0 {
		t.Fatalf("cost = %v, want 0", a.Script.Cost)
	}
	if got, want := result.Cigar(a.Script.Ops), "4M"; got != want {
		t.Fatalf("Cigar = %q, want %q", got, want)
	}
}

func TestAlign_SingleDeletion(t *testing.T) {
	// R="ACGT", Q="AGT": one R residue (C) deleted relative to Q.
	opts := mustOptions(t, "ACGT", "AGT", false)
	a, err := tsalign.Align(opts)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if a.Script.Cost != 3 {
		t.Fatalf("cost = %v, want 3 (gap_open[C])", a.Script.Cost)
	}
	if got, want := result.Cigar(a.Script.Ops), "1M1D2M"; got != want {
		t.Fatalf("Cigar = %q, want %q", got, want)
	}
}

func TestAlign_NoTSMatchesClassicNeedlemanWunsch(t *testing.T) {
	opts := mustOptions(t, "ACGTACGT", "AGTACGTC", false)
	a, err := tsalign.Align(opts)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	flankFor := func(i int) *costmodel.EditTable { return &opts.Model.Primary }
	want := nwcheck.Cost(opts.R, opts.Q, flankFor)

	if a.Script.Cost != want {
		t.Fatalf("A* (--no-ts) cost = %v, classic NW cost = %v, want equal", a.Script.Cost, want)
	}
}

func TestAlign_SwitchesNeverCostMoreThanNoTS(t *testing.T) {
	// property: cost(with --no-ts) >= cost(with switches)
	r, q := "ACACACCCAACGCGGG", "ACAAACGTGTCGCGCG"

	withSwitch, err := tsalign.Align(mustOptions(t, r, q, true))
	if err != nil {
		t.Fatalf("Align(switches): %v", err)
	}
	withoutSwitch, err := tsalign.Align(mustOptions(t, r, q, false))
	if err != nil {
		t.Fatalf("Align(no-ts): %v", err)
	}

	if withoutSwitch.Script.Cost < withSwitch.Script.Cost {
		t.Fatalf("no-ts cost %v < switch cost %v, expected no-ts >= switch", withoutSwitch.Script.Cost, withSwitch.Script.Cost)
	}
}

func TestAlign_MemoryBudgetExhausted(t *testing.T) {
	opts := mustOptions(t, "ACGTACGT", "ACGTACGT", false)
	opts.HardMemoryBudgetBytes = 1
	opts.SoftMemoryBudgetBytes = 1

	_, err := tsalign.Align(opts)
	if err != astar.ErrMemoryExhausted {
		t.Fatalf("err = %v, want ErrMemoryExhausted", err)
	}
}

func TestAlign_CancellationStopsSearch(t *testing.T) {
	opts := mustOptions(t, "ACGTACGT", "ACGTACGT", false)
	var cancel atomic.Bool
	cancel.Store(true)
	opts.Cancel = &cancel
	opts.CancelCheckInterval = 1

	_, err := tsalign.Align(opts)
	if err != astar.ErrCancelled {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}
