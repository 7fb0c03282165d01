package astar_test

import (
	"fmt"
	"strings"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

const exampleConfig = `
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
A 0 4 4 4
C 4 0 4 4
G 4 4 0 4
T 4 4 4 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit secondary_reverse]
A C G T
A 0 4 4 4
C 4 0 4 4
G 4 4 0 4
T 4 4 4 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit left_flank]
A C G T
A 0 4 4 4
C 4 0 4 4
G 4 4 0 4
T 4 4 4 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit right_flank]
A C G T
A 0 4 4 4
C 4 0 4 4
G 4 4 0 4
T 4 4 4 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1
`

// ExampleSearch runs the default unbounded, uncancellable search on a
// single-mismatch alignment with template switches disabled.
func ExampleSearch() {
	a := alphabet.New(alphabet.DNA)
	model, err := costmodel.Parse(strings.NewReader(exampleConfig), a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, _ := alphabet.Load("R", []byte("ACGT"), a, alphabet.SkipSet{})
	q, _ := alphabet.Load("Q", []byte("ACCT"), a, alphabet.SkipSet{})

	cfg := &tsgraph.Config{
		Model:               model,
		R:                   r,
		Q:                   q,
		Focus:               tsgraph.FocusRange{R0: 0, R1: r.Len(), Q0: 0, Q1: q.Len()},
		AllowTemplateSwitch: false,
	}

	res, err := astar.Search(cfg, zeroHeuristic)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Cost)
	// Output: 4
}
