package tsgraph

import (
	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/costmodel"
)

// FocusRange restricts the alignment to R[R0:R1] x Q[Q0:Q1] (§4.2's
// "forbidden-region policy"). A Primary node's (i, j) is always inside
// the closure [R0, R1] x [Q0, Q1]; secondary cursors may leave it to
// read context on either side, since a template switch's whole purpose
// is to jump to a position outside the region under direct comparison.
type FocusRange struct {
	R0, R1 int
	Q0, Q1 int
}

// Contains reports whether (i, j) lies inside the focus range's closure.
func (f FocusRange) Contains(i, j int) bool {
	return i >= f.R0 && i <= f.R1 && j >= f.Q0 && j <= f.Q1
}

// Config bundles everything Successors needs to turn a Node into its
// outgoing edges: the cost model, the two full sequences (context
// included, so secondary cursors can read outside the focus range), the
// focus range itself, and whether template switches are permitted at
// all (§6 --no-ts collapses the graph to classic affine Needleman-Wunsch).
type Config struct {
	Model *costmodel.CostModel
	R, Q  *alphabet.Sequence
	Focus FocusRange

	AllowTemplateSwitch bool
}

// phase classifies a primary R-coordinate into the left flank, core, or
// right flank region. Flank membership is measured along R alone: the
// spec describes the flanks as mandatory matched runs bracketing the
// focus range, and anchoring the window to one axis keeps the
// classification a pure, deterministic function of the node even when
// gaps make i and j diverge inside the flank.
type phase uint8

const (
	phaseLeftFlank phase = iota
	phaseCore
	phaseRightFlank
)

func (cfg *Config) phaseAt(i int) phase {
	lf := cfg.Model.LeftFlankLength
	rf := cfg.Model.RightFlankLength
	if i < cfg.Focus.R0+lf {
		return phaseLeftFlank
	}
	if i >= cfg.Focus.R1-rf {
		return phaseRightFlank
	}
	return phaseCore
}

func (cfg *Config) editTableFor(p phase) *costmodel.EditTable {
	switch p {
	case phaseLeftFlank:
		return &cfg.Model.LeftFlank
	case phaseRightFlank:
		return &cfg.Model.RightFlank
	default:
		return &cfg.Model.Primary
	}
}

func (cfg *Config) seqFor(side costmodel.Side) *alphabet.Sequence {
	if side == costmodel.R {
		return cfg.R
	}
	return cfg.Q
}

// Start returns the unique start node: (R0, Q0), no switch open.
func (cfg *Config) Start() Node {
	return Node{Kind: Primary, I: cfg.Focus.R0, J: cfg.Focus.Q0}
}

// IsGoal reports whether n is the unique terminal state: both cursors
// at the focus range's far corner, with no switch left open.
func (cfg *Config) IsGoal(n Node) bool {
	return n.Kind == Primary && n.I == cfg.Focus.R1 && n.J == cfg.Focus.Q1
}
