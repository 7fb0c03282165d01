package result

import (
	"fmt"

	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

// Script is a fully reconstructed alignment: its edit operations and
// the total cost those operations sum to (verified against the
// search's own reported cost before being returned).
type Script struct {
	Ops  []Op
	Cost costmodel.Cost
}

// Assemble walks an astar path and groups it into a Script, collapsing
// every EnterSwitch/SecondaryStep*/LeaveSwitch run into a single
// OpTemplateSwitch operation. It fails with
// ErrInconsistentReconstruction if the operations' own costs do not sum
// to search's reported total, which would mean either this function or
// the traceback it replays has a bug.
func Assemble(search *astar.Result) (*Script, error) {
	path := search.Path
	ops := make([]Op, 0, len(path))

	for i := 1; i < len(path); i++ {
		step := path[i]
		switch step.Label {
		case tsgraph.LabelMatch:
			ops = append(ops, Op{Kind: OpMatch, RLen: 1, QLen: 1, Cost: step.StepCost})
		case tsgraph.LabelMismatch:
			ops = append(ops, Op{Kind: OpSubstitution, RLen: 1, QLen: 1, Cost: step.StepCost})
		case tsgraph.LabelInsR:
			ops = append(ops, Op{Kind: OpInsertionR, RLen: 1, QLen: 0, Cost: step.StepCost})
		case tsgraph.LabelInsQ:
			ops = append(ops, Op{Kind: OpInsertionQ, RLen: 0, QLen: 1, Cost: step.StepCost})
		case tsgraph.LabelEnterSwitch:
			op, consumed, err := assembleSwitch(path, i)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			i += consumed - 1
		default:
			return nil, fmt.Errorf("%w: unexpected label %d outside a template switch", ErrInconsistentReconstruction, step.Label)
		}
	}

	var total costmodel.Cost
	for _, op := range ops {
		total = total.Add(op.Cost)
	}
	if total != search.Cost {
		return nil, fmt.Errorf("%w: reconstructed %v, search reported %v", ErrInconsistentReconstruction, total, search.Cost)
	}

	return &Script{Ops: ops, Cost: total}, nil
}

// assembleSwitch reads the EnterSwitch step at path[start] and every
// following SecondaryStep step up to and including the closing
// LeaveSwitch step, and returns the single collapsed Op plus how many
// path entries (starting at start) it consumed.
func assembleSwitch(path []astar.PathStep, start int) (Op, int, error) {
	entryNode := path[start].Node
	cost := path[start].StepCost

	i := start + 1
	lastSecondary := entryNode
	for ; i < len(path); i++ {
		step := path[i]
		cost = cost.Add(step.StepCost)
		if step.Label == tsgraph.LabelSecondaryStep {
			lastSecondary = step.Node
			continue
		}
		if step.Label == tsgraph.LabelLeaveSwitch {
			sw := &Switch{
				PrimarySide:   entryNode.PrimarySide,
				SecondarySide: entryNode.SecondarySide,
				Dir:           entryNode.Dir,
				Offset:        entryNode.EntryOffsetAbs,
				Len:           lastSecondary.Len,
			}
			rLen, qLen := 0, lastSecondary.Len
			if entryNode.PrimarySide == costmodel.Q {
				rLen, qLen = lastSecondary.Len, 0
			}
			return Op{Kind: OpTemplateSwitch, RLen: rLen, QLen: qLen, Cost: cost, Switch: sw}, i - start + 1, nil
		}
		return Op{}, 0, fmt.Errorf("%w: unexpected label %d inside an open template switch", ErrInconsistentReconstruction, step.Label)
	}
	return Op{}, 0, fmt.Errorf("%w: template switch never closes", ErrInconsistentReconstruction)
}
