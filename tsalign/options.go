package tsalign

import (
	"sync/atomic"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
	"github.com/sebschmi/tsaligner/tsminlen"
)

// Options bundles everything one Align call needs: the already-loaded
// sequences and cost model, the region of interest, and every search
// knob named in §6's CLI surface. Loading sequences and the cost model
// is package bioio's and package costmodel's job respectively; Options
// only consumes their results.
type Options struct {
	Model *costmodel.CostModel
	R, Q  *alphabet.Sequence
	Focus tsgraph.FocusRange

	// AllowTemplateSwitch disables every switch-entry edge when false,
	// collapsing the graph to classic affine-gap Needleman-Wunsch
	// (--no-ts / --alignment-method a-star-no-template-switch, §6).
	AllowTemplateSwitch bool

	// MinLengthStrategy selects the §4.4 preprocessor policy.
	MinLengthStrategy tsminlen.Strategy

	// SeedLength is k for the §4.5 seed-chain heuristic. Zero disables
	// seed chaining and falls back to the plain diagonal bound.
	SeedLength int

	// NodeOrder selects the §4.3 tie-breaking strategy.
	NodeOrder astar.NodeOrder

	SoftMemoryBudgetBytes int64
	HardMemoryBudgetBytes int64
	BoundedSlack          costmodel.Cost

	Cancel              *atomic.Bool
	CancelCheckInterval int
}

// graphConfig builds the tsgraph.Config this Options describes.
func (o Options) graphConfig() *tsgraph.Config {
	return &tsgraph.Config{
		Model:               o.Model,
		R:                   o.R,
		Q:                   o.Q,
		Focus:               o.Focus,
		AllowTemplateSwitch: o.AllowTemplateSwitch,
	}
}

func (o Options) searchOptions() []astar.Option {
	opts := []astar.Option{astar.WithNodeOrder(o.NodeOrder)}
	if o.SoftMemoryBudgetBytes > 0 || o.HardMemoryBudgetBytes > 0 {
		opts = append(opts, astar.WithMemoryBudget(o.SoftMemoryBudgetBytes, o.HardMemoryBudgetBytes))
	}
	if o.BoundedSlack != 0 {
		opts = append(opts, astar.WithBoundedSlack(o.BoundedSlack))
	}
	if o.Cancel != nil {
		interval := o.CancelCheckInterval
		if interval <= 0 {
			interval = 1024
		}
		opts = append(opts, astar.WithCancel(o.Cancel, interval))
	}
	return opts
}
