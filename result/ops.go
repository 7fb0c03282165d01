package result

import "github.com/sebschmi/tsaligner/costmodel"

// OpKind names one kind of edit-script operation, after primary moves
// and collapsed secondary runs have been grouped (§4.2, §4.6: a
// template switch is reported as one operation, not as its constituent
// secondary steps).
type OpKind uint8

const (
	OpMatch OpKind = iota
	OpSubstitution
	OpInsertionR
	OpInsertionQ
	OpTemplateSwitch
)

// Switch carries the parameters of one collapsed template-switch
// operation: which side stayed primary, which side was read
// secondarily, in which orientation, how far the jump was, and how
// many secondary residues were consumed before closing.
type Switch struct {
	PrimarySide   costmodel.Side
	SecondarySide costmodel.Side
	Dir           costmodel.Direction
	Offset        int
	Len           int
}

// Op is one operation of the reconstructed edit script. RLen and QLen
// are the number of residues the operation consumes on R and Q
// respectively (both 1 for Match/Substitution, exactly one of them 1
// and the other 0 for the two insertion kinds, and the reconciliation
// amount computed in tsgraph.closeSwitchEdge for OpTemplateSwitch).
type Op struct {
	Kind   OpKind
	RLen   int
	QLen   int
	Cost   costmodel.Cost
	Switch *Switch // non-nil iff Kind == OpTemplateSwitch
}
