package costmodel

import "github.com/sebschmi/tsaligner/alphabet"

// Direction distinguishes the two antiparallel template-switch
// orientations named in §3: forward ("f") keeps the secondary cursor
// advancing the same way the primary cursor would, reverse ("r") reads
// the secondary side backwards.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// Side identifies which of the two sequences (Reference or Query) a
// cursor is currently reading.
type Side uint8

const (
	R Side = iota
	Q
)

// String renders d as the single-letter code used in config.tsa keys
// ("f"/"r") and in CIGAR-like rendering.
func (d Direction) String() string {
	if d == Reverse {
		return "r"
	}
	return "f"
}

// String renders s as its sequence letter.
func (s Side) String() string {
	if s == Q {
		return "Q"
	}
	return "R"
}

// BaseCosts holds the four forward-entry and four reverse-entry template
// switch base costs, indexed by the (primary side, secondary side) pair
// per §3: rrf, rqf, qrf, qqf (forward) and rrr, rqr, qrr, qqr (reverse).
type BaseCosts struct {
	Rrf, Rqf, Qrf, Qqf Cost
	Rrr, Rqr, Qrr, Qqr Cost
}

// Entry returns the base cost of entering a template switch whose
// primary side is p, secondary side is s, and orientation is d.
func (b BaseCosts) Entry(p, s Side, d Direction) Cost {
	switch {
	case d == Forward && p == R && s == R:
		return b.Rrf
	case d == Forward && p == R && s == Q:
		return b.Rqf
	case d == Forward && p == Q && s == R:
		return b.Qrf
	case d == Forward && p == Q && s == Q:
		return b.Qqf
	case d == Reverse && p == R && s == R:
		return b.Rrr
	case d == Reverse && p == R && s == Q:
		return b.Rqr
	case d == Reverse && p == Q && s == R:
		return b.Qrr
	default:
		return b.Qqr
	}
}

// EditTable is one of the five edit-cost contexts named in §3: primary,
// secondary-forward, secondary-reverse, left-flank, right-flank. Each
// carries a substitution matrix and per-symbol gap-open/gap-extend
// vectors, all indexed by the configured Alphabet.
type EditTable struct {
	Substitution [][]Cost
	GapOpen      []Cost
	GapExtend    []Cost
}

// Sub returns the substitution cost of aligning symbol a against b.
func (t *EditTable) Sub(a, b alphabet.Symbol) Cost { return t.Substitution[a][b] }

// Open returns the gap-open cost charged for the first gap character
// opposite symbol a.
func (t *EditTable) Open(a alphabet.Symbol) Cost { return t.GapOpen[a] }

// Extend returns the gap-extend cost charged for each subsequent gap
// character opposite symbol a.
func (t *EditTable) Extend(a alphabet.Symbol) Cost { return t.GapExtend[a] }

// MinSub returns the smallest substitution cost anywhere in t, used by
// package tsminlen to bound the best case a secondary step could cost.
func (t *EditTable) MinSub() Cost {
	min := Inf
	for _, row := range t.Substitution {
		for _, v := range row {
			if v.Less(min) {
				min = v
			}
		}
	}
	return min
}

// MaxSub returns the largest finite substitution cost anywhere in t,
// used by package tsalign to bound the worst case a mismatch-only
// alignment could cost without any template switch.
func (t *EditTable) MaxSub() Cost {
	var max Cost
	for _, row := range t.Substitution {
		for _, v := range row {
			if !v.IsInf() && max.Less(v) {
				max = v
			}
		}
	}
	return max
}

// CostModel is the fully validated, immutable result of parsing a
// config.tsa file (§3, §4.1). It is shared read-only across however many
// concurrent alignment instances use it (§5).
type CostModel struct {
	Alphabet *alphabet.Alphabet

	LeftFlankLength  int
	RightFlankLength int

	Base BaseCosts

	Offset                PieceFunction
	Length                PieceFunction
	LengthDifference      PieceFunction
	ForwardAntiPrimaryGap PieceFunction
	ReverseAntiPrimaryGap PieceFunction

	Primary          EditTable
	SecondaryForward EditTable
	SecondaryReverse EditTable
	LeftFlank        EditTable
	RightFlank       EditTable
}

// AntiPrimaryGap dispatches to ForwardAntiPrimaryGap or
// ReverseAntiPrimaryGap depending on the secondary segment's direction.
func (m *CostModel) AntiPrimaryGap(d Direction, stall int64) Cost {
	if d == Forward {
		return m.ForwardAntiPrimaryGap.Eval(stall)
	}
	return m.ReverseAntiPrimaryGap.Eval(stall)
}

// SecondaryTable returns the secondary-forward or secondary-reverse
// edit table, selected by direction.
func (m *CostModel) SecondaryTable(d Direction) *EditTable {
	if d == Forward {
		return &m.SecondaryForward
	}
	return &m.SecondaryReverse
}
