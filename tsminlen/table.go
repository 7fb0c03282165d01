package tsminlen

import "github.com/sebschmi/tsaligner/costmodel"

// Table is a precomputed, per-run set of best-case lower bounds over a
// CostModel's template-switch machinery. Every field is admissible: no
// real template switch can ever cost less than the value it names.
type Table struct {
	MinEntry    costmodel.Cost // cheapest of the eight base entry costs
	MinOffset   costmodel.Cost // cheapest finite Offset value
	MinClose    costmodel.Cost // cheapest finite Length plus cheapest finite LengthDifference
	MinStep     costmodel.Cost // cheapest secondary substitution, either direction
	MinGapStall costmodel.Cost // cheapest single-step anti-primary gap charge
}

// Build computes Table once from a validated CostModel. O(1) beyond the
// constant-size scans already available on CostModel's fields.
func Build(m *costmodel.CostModel) Table {
	t := Table{}

	t.MinEntry = minOfEntries(m.Base)

	if v, ok := m.Offset.MinFinite(); ok {
		t.MinOffset = v
	} else {
		t.MinOffset = costmodel.Inf
	}

	t.MinClose = minClose(m)

	primSub := m.SecondaryForward.MinSub()
	if v := m.SecondaryReverse.MinSub(); v.Less(primSub) {
		primSub = v
	}
	t.MinStep = primSub

	fwd, fok := m.ForwardAntiPrimaryGap.MinFinite()
	rev, rok := m.ReverseAntiPrimaryGap.MinFinite()
	switch {
	case fok && rok:
		t.MinGapStall = fwd
		if rev.Less(fwd) {
			t.MinGapStall = rev
		}
	case fok:
		t.MinGapStall = fwd
	case rok:
		t.MinGapStall = rev
	default:
		t.MinGapStall = costmodel.Inf
	}

	return t
}

func minOfEntries(b costmodel.BaseCosts) costmodel.Cost {
	min := b.Rrf
	for _, v := range []costmodel.Cost{b.Rqf, b.Qrf, b.Qqf, b.Rrr, b.Rqr, b.Qrr, b.Qqr} {
		if v.Less(min) {
			min = v
		}
	}
	return min
}

// minClose adds the cheapest finite value of Length to the cheapest
// finite value of LengthDifference, each taken over its whole domain.
// The two minima need not occur at the same switch, so the sum is a
// lower bound on any real close cost rather than the cost of one
// particular close. It is Inf if either function is never finite.
func minClose(m *costmodel.CostModel) costmodel.Cost {
	zero, ok := m.LengthDifference.MinFinite()
	if !ok {
		return costmodel.Inf
	}
	lenMin, ok := m.Length.MinFinite()
	if !ok {
		return costmodel.Inf
	}
	return lenMin.Add(zero)
}

// MinSwitchPrice is the admissible lower bound on the total cost of any
// single complete template switch: entry, the cheapest feasible offset,
// at least one secondary step, and closing. It is what
// Policy.AdditiveFloor returns under StrategyPreprocessPrice and what
// StrategyPreprocessFilter compares against a caller-supplied budget.
func (t Table) MinSwitchPrice() costmodel.Cost {
	return t.MinEntry.
		Add(t.MinOffset).
		Add(t.MinStep).
		Add(t.MinGapStall).
		Add(t.MinClose)
}
