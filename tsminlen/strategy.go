package tsminlen

import (
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

// Strategy names one of the preprocessor's four modes (§4.4).
type Strategy uint8

const (
	// StrategyNone applies no preprocessing: the heuristic ignores
	// template switches entirely (still admissible, just weaker).
	StrategyNone Strategy = iota

	// StrategyLookahead evaluates the cheapest feasible switch directly
	// reachable from a given node, online, rather than precomputing a
	// single whole-run table. Tighter per node, costs one extra call to
	// tsgraph.Successors per heuristic evaluation.
	StrategyLookahead

	// StrategyPreprocessPrice precomputes Table once per run and adds
	// its MinClose as a floor at nodes inside an already open switch
	// (see Floor and CloseFloor).
	StrategyPreprocessPrice

	// StrategyPreprocessFilter precomputes Table once per run and, if
	// no possible switch could ever be cheaper than going without one,
	// disables the template-switch branch of the graph outright.
	StrategyPreprocessFilter
)

// ParseStrategy resolves a --ts-total-length-strategy flag value.
// Only "none" is currently supported (§9 Open Question); every other
// name is syntactically valid per the strategy list but rejected until
// its contract is pinned down.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "lookahead", "preprocess-price", "preprocess-filter":
		return 0, ErrUnsupportedStrategy
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// ParseMinLengthStrategy resolves a --ts-min-length-strategy flag value
// (§4.4), which unlike --ts-total-length-strategy has all four modes
// fully implemented: "none", "lookahead", "preprocess-price" and
// "preprocess-filter" all map to a usable Policy.
func ParseMinLengthStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "lookahead":
		return StrategyLookahead, nil
	case "preprocess-price":
		return StrategyPreprocessPrice, nil
	case "preprocess-filter":
		return StrategyPreprocessFilter, nil
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// Policy bundles a chosen Strategy with whatever precomputed state it
// needs, and exposes the two hooks package tsalign's orchestration
// wires into the search: an additive heuristic floor, and a decision on
// whether to disable template switches for this run altogether.
type Policy struct {
	strategy Strategy
	table    Table
}

// NewPolicy builds a Policy for strategy against m. Strategies that
// don't need a precomputed table still build one cheaply (Build is
// O(1)); only StrategyPreprocessPrice and StrategyPreprocessFilter
// actually consult it.
func NewPolicy(strategy Strategy, m *costmodel.CostModel) Policy {
	return Policy{strategy: strategy, table: Build(m)}
}

// AdditiveFloor returns MinSwitchPrice under StrategyPreprocessPrice,
// zero otherwise. It is the full entry-to-close lower bound on a switch
// that has not been entered yet, and is never an admissible term to add
// at a Primary node (whose optimal completion need not contain a switch
// at all) — see CloseFloor for the term Floor actually uses.
func (p Policy) AdditiveFloor() costmodel.Cost {
	if p.strategy == StrategyPreprocessPrice {
		return p.table.MinSwitchPrice()
	}
	return 0
}

// CloseFloor returns the cheapest mandatory cost still owed by a switch
// that is already open: MinClose, per StrategyPreprocessPrice. Unlike
// AdditiveFloor, this is admissible when added at an open-secondary
// node, since such a node must pay a close before it can reach the
// goal, whereas it need not pay an entry, offset, or step again.
func (p Policy) CloseFloor() costmodel.Cost {
	if p.strategy == StrategyPreprocessPrice {
		return p.table.MinClose
	}
	return 0
}

// DisableSwitches reports whether, under StrategyPreprocessFilter, no
// template switch could ever be cheaper than budget — the maximum
// plausible saving a switch could offer over ordinary substitution
// (e.g. the full mismatch cost of the region it would let the aligner
// skip). Strategies other than StrategyPreprocessFilter never disable
// switches on their own.
func (p Policy) DisableSwitches(budget costmodel.Cost) bool {
	if p.strategy != StrategyPreprocessFilter {
		return false
	}
	return !p.table.MinSwitchPrice().Less(budget)
}

// Floor unifies the two "additive term" strategies behind one call a
// heuristic can make without caring which strategy built the Policy:
// StrategyLookahead evaluates the cheapest switch-entry edge actually
// reachable from n (tighter, at the cost of one Successors call per
// heuristic evaluation); StrategyPreprocessPrice adds CloseFloor, but
// only at a node that is already inside an open switch, where a close
// is mandatory and the term stays admissible. A Primary node's optimal
// completion need not contain any switch at all, so Floor is zero
// there under every strategy except lookahead, which evaluates the
// actual reachable edges instead of assuming one is taken.
func (p Policy) Floor(n tsgraph.Node, cfg *tsgraph.Config) costmodel.Cost {
	if p.strategy == StrategyLookahead {
		if cost, ok := Lookahead(n, cfg); ok {
			return cost
		}
		return 0
	}
	if n.SwitchOpen() {
		return p.CloseFloor()
	}
	return 0
}

// Lookahead evaluates, for StrategyLookahead only, the cheapest
// switch-entry edge directly reachable from n; ok is false if n is not
// in core phase, switches are already open, or no feasible offset
// exists. Policy.Floor calls it only when the Policy was built with
// StrategyLookahead.
func Lookahead(n tsgraph.Node, cfg *tsgraph.Config) (costmodel.Cost, bool) {
	best := costmodel.Inf
	found := false
	for _, e := range tsgraph.Successors(n, cfg) {
		if e.Label != tsgraph.LabelEnterSwitch {
			continue
		}
		if e.Cost.Less(best) {
			best = e.Cost
			found = true
		}
	}
	return best, found
}
