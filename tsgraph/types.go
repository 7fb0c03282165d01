package tsgraph

import "github.com/sebschmi/tsaligner/costmodel"

// Kind discriminates the alignment graph's node states (§3). Entering
// and LeavingTemplateSwitch are transient: the successor function that
// would create one immediately resolves it into a SecondaryForward,
// SecondaryReverse or Primary node, so neither ever appears as an
// argument to Successors or as a value stored in the A* arena. They are
// named here only so Kind's declaration matches the specification's
// discriminated state one-for-one.
type Kind uint8

const (
	// Primary is an ordinary two-cursor alignment-grid node.
	Primary Kind = iota
	// SecondaryForward is inside an open forward-oriented template switch.
	SecondaryForward
	// SecondaryReverse is inside an open reverse-oriented template switch.
	SecondaryReverse
	// EnteringTemplateSwitch never appears as a materialised node; see above.
	EnteringTemplateSwitch
	// LeavingTemplateSwitch never appears as a materialised node; see above.
	LeavingTemplateSwitch
	// Terminal never appears as a materialised node either: the goal state
	// is the ordinary Primary node at (r1, q1), recognised by
	// Config.IsGoal. Terminal is named here only so Kind's declaration
	// matches the specification's discriminated state one-for-one.
	Terminal
)

// LastPrimaryOp records the most recent primary-grid move, needed to
// decide whether the next insertion opens or extends a gap (§3: "last
// primary history required for affine gaps").
type LastPrimaryOp uint8

const (
	OpNone LastPrimaryOp = iota
	OpMatch
	OpInsR
	OpInsQ
)

// Node is the A* graph's vertex identity: everything the closed map in
// §4.3 hashes and compares on, excluding cumulative cost and predecessor
// linkage (those live in package astar's arena entries).
//
// A Primary node's secondary fields are zero. A Secondary node's (I, J)
// is frozen at the primary cursor's position at entry and never moves
// again while the switch is open (§3: "a Secondary node's primary-side
// cursor is frozen at the anchor"); reconciliation at closing reads I
// and J directly, not AnchorI/AnchorJ. AnchorI and AnchorJ instead hold
// the secondary segment's own anchor (i0, j0): whichever of the two
// matches SecondarySide is the jumped position the secondary cursor
// actually starts reading from (axisPos+offset at entry, per
// SecondaryAnchorPos); the other is unused. Primary side and secondary
// side may name the same sequence (e.g. "rrf": R stays frozen while a
// second, independent cursor on R itself is also read), which is why
// the jumped anchor cannot simply be derived from I/J and needs its own
// storage. The moving secondary cursor itself is tracked by Len (the
// number of secondary residues consumed so far) rather than by a second
// (i, j) pair, since its position is always AnchorPos ± Len depending
// on Dir.
type Node struct {
	Kind   Kind
	I, J   int
	LastOp LastPrimaryOp

	// Secondary-segment context; zero value when Kind == Primary or Terminal.
	AnchorI, AnchorJ int
	Len              int
	Dir              costmodel.Direction
	PrimarySide      costmodel.Side
	SecondarySide    costmodel.Side
	Forbidden        bool // secondary cursor currently inside the focus range on its side

	// EntryOffsetAbs is the absolute value of the jump offset used to
	// enter this switch, fixed at entry and carried for the closing
	// edge's LengthDifference term (see secondarySuccessors' doc comment).
	EntryOffsetAbs int
}

// SwitchOpen reports whether n is inside an open template switch.
func (n Node) SwitchOpen() bool {
	return n.Kind == SecondaryForward || n.Kind == SecondaryReverse
}

// SecondaryAnchorPos returns the jumped position the secondary cursor
// started reading from at entry (axisPos+offset), before the first
// secondary step moved it by Len.
func (n Node) SecondaryAnchorPos() int {
	if n.SecondarySide == costmodel.R {
		return n.AnchorI
	}
	return n.AnchorJ
}

// SecondaryPos returns the secondary cursor's current position, derived
// from the anchor, the consumed length, and the direction.
func (n Node) SecondaryPos() int {
	anchor := n.SecondaryAnchorPos()
	if n.Dir == costmodel.Forward {
		return anchor + n.Len
	}
	return anchor - n.Len
}
