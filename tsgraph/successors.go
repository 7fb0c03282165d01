package tsgraph

import "github.com/sebschmi/tsaligner/costmodel"

// EditLabel names the kind of move an Edge represents, so package result
// can replay a predecessor chain into an edit script without recomputing
// costs.
type EditLabel uint8

const (
	LabelMatch EditLabel = iota
	LabelMismatch
	LabelInsR
	LabelInsQ
	LabelEnterSwitch
	LabelSecondaryStep
	LabelLeaveSwitch
)

// Edge is one outgoing transition of the alignment graph: a destination
// node and its cost, labelled for reconstruction.
type Edge struct {
	To    Node
	Cost  costmodel.Cost
	Label EditLabel
}

// Successors returns every outgoing edge of n. It is a pure function of
// (n, cfg): no mutable state is read or written, which is what lets the
// A* engine call it freely from any goroutine sharing one *Config (§5).
func Successors(n Node, cfg *Config) []Edge {
	if n.SwitchOpen() {
		return secondarySuccessors(n, cfg)
	}
	return primarySuccessors(n, cfg)
}

func primarySuccessors(n Node, cfg *Config) []Edge {
	if cfg.IsGoal(n) {
		return nil
	}

	var edges []Edge
	p := cfg.phaseAt(n.I)
	table := cfg.editTableFor(p)

	atR1 := n.I >= cfg.Focus.R1
	atQ1 := n.J >= cfg.Focus.Q1

	if !atR1 && !atQ1 {
		a := cfg.R.At(n.I)
		b := cfg.Q.At(n.J)
		label := LabelMatch
		if a != b {
			label = LabelMismatch
		}
		edges = append(edges, Edge{
			To:    Node{Kind: Primary, I: n.I + 1, J: n.J + 1, LastOp: OpMatch},
			Cost:  table.Sub(a, b),
			Label: label,
		})
	}

	if !atR1 {
		a := cfg.R.At(n.I)
		cost := table.Open(a)
		if n.LastOp == OpInsR {
			cost = table.Extend(a)
		}
		edges = append(edges, Edge{
			To:    Node{Kind: Primary, I: n.I + 1, J: n.J, LastOp: OpInsR},
			Cost:  cost,
			Label: LabelInsR,
		})
	}

	if !atQ1 {
		b := cfg.Q.At(n.J)
		cost := table.Open(b)
		if n.LastOp == OpInsQ {
			cost = table.Extend(b)
		}
		edges = append(edges, Edge{
			To:    Node{Kind: Primary, I: n.I, J: n.J + 1, LastOp: OpInsQ},
			Cost:  cost,
			Label: LabelInsQ,
		})
	}

	if cfg.AllowTemplateSwitch && p == phaseCore {
		edges = append(edges, switchEntryEdges(n, cfg)...)
	}

	return edges
}

// switchEntryEdges enumerates every feasible (primary side, secondary
// side, direction, offset) combination at n, resolving the transient
// EnteringTemplateSwitch state directly into the SecondaryForward or
// SecondaryReverse node it lands on (§4.2).
//
// The offset's search range is bounded by the sequence the secondary
// cursor would land in, not by the Offset function's own domain: a
// well-formed config.tsa gives Offset the value Inf outside the range
// its author intends to be reachable (§4.1, "domain ends are +/-inf"),
// but nothing requires it, so bounding by sequence length as well keeps
// this enumeration finite regardless.
func switchEntryEdges(n Node, cfg *Config) []Edge {
	var edges []Edge
	sides := [2]costmodel.Side{costmodel.R, costmodel.Q}
	dirs := [2]costmodel.Direction{costmodel.Forward, costmodel.Reverse}

	for _, p := range sides {
		for _, s := range sides {
			base := cfg.Model.Base
			for _, d := range dirs {
				baseCost := base.Entry(p, s, d)
				if baseCost.IsInf() {
					continue
				}
				edges = append(edges, switchEntryEdgesForSide(n, cfg, p, s, d, baseCost)...)
			}
		}
	}
	return edges
}

func switchEntryEdgesForSide(n Node, cfg *Config, p, s costmodel.Side, d costmodel.Direction, baseCost costmodel.Cost) []Edge {
	axisPos := n.I
	if s == costmodel.Q {
		axisPos = n.J
	}
	secSeq := cfg.seqFor(s)
	seqLen := secSeq.Len()

	loOffset := -axisPos
	hiOffset := seqLen - axisPos
	// A forward cursor first reads the residue at its anchor and a
	// reverse cursor the one just before it, so the boundary anchor that
	// leaves nothing to read in direction d is not entered.
	if d == costmodel.Forward {
		hiOffset--
	} else {
		loOffset++
	}

	var edges []Edge
	for offset := loOffset; offset <= hiOffset; offset++ {
		offCost := cfg.Model.Offset.Eval(int64(offset))
		if offCost.IsInf() {
			continue
		}
		anchorPos := axisPos + offset

		next := Node{
			Kind:           secondaryKindOf(d),
			I:              n.I,
			J:              n.J,
			LastOp:         OpNone,
			AnchorI:        n.I,
			AnchorJ:        n.J,
			Len:            0,
			Dir:            d,
			PrimarySide:    p,
			SecondarySide:  s,
			Forbidden:      cfg.Focus.containsOnSide(s, anchorPos),
			EntryOffsetAbs: absInt(offset),
		}
		// The secondary cursor reads from the jumped position, not the
		// frozen primary coordinate; only the axis matching SecondarySide
		// is overridden (§3, §4.2: "resolves to a Secondary node at the
		// anchor").
		if s == costmodel.R {
			next.AnchorI = anchorPos
		} else {
			next.AnchorJ = anchorPos
		}
		edges = append(edges, Edge{
			To:    next,
			Cost:  baseCost.Add(offCost),
			Label: LabelEnterSwitch,
		})
	}
	return edges
}

func secondaryKindOf(d costmodel.Direction) Kind {
	if d == costmodel.Forward {
		return SecondaryForward
	}
	return SecondaryReverse
}

func (f FocusRange) containsOnSide(s costmodel.Side, pos int) bool {
	if s == costmodel.R {
		return pos >= f.R0 && pos < f.R1
	}
	return pos >= f.Q0 && pos < f.Q1
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// secondarySuccessors returns the one or two outgoing edges of an open
// secondary node: advance the secondary cursor by one more residue, or
// close the switch.
//
// Per the frozen-cursor invariant (§3), the primary side p never moves
// while a switch is open. On closing, the anti-primary side p' (the
// axis that is not p) is advanced by exactly Len: every secondary
// residue consumed is charged to p' as if it had been an insertion
// there, which is what reconciles the two cursors back into a single
// ordinary Primary node. LengthDifference then scores how far the
// segment's length diverges from the jump distance that opened it
// (EntryOffsetAbs), which is the one independent piece of information
// available about the switch besides its raw length.
func secondarySuccessors(n Node, cfg *Config) []Edge {
	var edges []Edge

	if e, ok := secondaryStepEdge(n, cfg); ok {
		edges = append(edges, e)
	}
	if e, ok := closeSwitchEdge(n, cfg); ok {
		edges = append(edges, e)
	}
	return edges
}

func secondaryStepEdge(n Node, cfg *Config) (Edge, bool) {
	secSeq := cfg.seqFor(n.SecondarySide)
	var consumePos int
	if n.Dir == costmodel.Forward {
		consumePos = n.SecondaryAnchorPos() + n.Len
	} else {
		consumePos = n.SecondaryAnchorPos() - n.Len - 1
	}
	if consumePos < 0 || consumePos >= secSeq.Len() {
		return Edge{}, false
	}

	primSeq := cfg.seqFor(n.PrimarySide)
	anchorCoord := n.I
	if n.PrimarySide == costmodel.Q {
		anchorCoord = n.J
	}
	anchorSym := primSeq.At(anchorCoord)
	secSym := secSeq.At(consumePos)

	table := cfg.Model.SecondaryTable(n.Dir)
	stepCost := table.Sub(anchorSym, secSym)
	gapCost := cfg.Model.AntiPrimaryGap(n.Dir, int64(n.Len+1))

	next := n
	next.Len++
	next.Forbidden = cfg.Focus.containsOnSide(n.SecondarySide, nextSecondaryPos(n))

	return Edge{To: next, Cost: stepCost.Add(gapCost), Label: LabelSecondaryStep}, true
}

func nextSecondaryPos(n Node) int {
	if n.Dir == costmodel.Forward {
		return n.SecondaryPos() + 1
	}
	return n.SecondaryPos() - 1
}

func closeSwitchEdge(n Node, cfg *Config) (Edge, bool) {
	lengthCost := cfg.Model.Length.Eval(int64(n.Len))
	if lengthCost.IsInf() {
		return Edge{}, false
	}
	diff := int64(n.Len - n.EntryOffsetAbs)
	diffCost := cfg.Model.LengthDifference.Eval(diff)
	if diffCost.IsInf() {
		return Edge{}, false
	}

	newI, newJ := n.I, n.J
	if n.PrimarySide == costmodel.R {
		newJ = n.J + n.Len
	} else {
		newI = n.I + n.Len
	}
	if newI > cfg.Focus.R1 || newJ > cfg.Focus.Q1 {
		return Edge{}, false
	}

	next := Node{Kind: Primary, I: newI, J: newJ, LastOp: OpNone}
	return Edge{To: next, Cost: lengthCost.Add(diffCost), Label: LabelLeaveSwitch}, true
}
