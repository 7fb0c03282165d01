package astar

import (
	"sync/atomic"

	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

// NodeOrder controls how ties in f-score (g+h) are broken in the open
// set, per §4.3's note that search order affects wall-clock time even
// though it never affects the cost of the optimum found.
type NodeOrder uint8

const (
	// NodeOrderDefault breaks ties by insertion sequence (FIFO among
	// equal f-scores), the simplest deterministic tie-break.
	NodeOrderDefault NodeOrder = iota

	// NodeOrderAntiDiagonal breaks ties by preferring the node further
	// along the R+Q anti-diagonal, which tends to keep the frontier
	// closer to a single advancing wavefront for alignments that are
	// mostly diagonal matches.
	NodeOrderAntiDiagonal
)

// Heuristic estimates the remaining cost from n to the goal. It must be
// admissible (never overestimate) and consistent for A* to return the
// true optimum.
type Heuristic func(n tsgraph.Node) costmodel.Cost

// Options configures a Search call. Construct via DefaultOptions and
// override with the With* functions.
type Options struct {
	NodeOrder NodeOrder

	// SoftMemoryBudgetBytes, once the arena's estimated footprint
	// exceeds it, switches the search into bounded mode (§4.3): nodes
	// are only admitted to the open set if their f-score does not
	// exceed the best f-score seen so far by more than BoundedSlack.
	// Zero disables the budget (unbounded search).
	SoftMemoryBudgetBytes int64

	// HardMemoryBudgetBytes, once crossed (even in bounded mode), fails
	// the search with ErrMemoryExhausted. Zero disables the hard cap.
	HardMemoryBudgetBytes int64

	// BoundedSlack is the additive f-score tolerance applied once
	// bounded mode is active. Smaller values prune more aggressively.
	BoundedSlack costmodel.Cost

	// Cancel, if non-nil, is polled every CancelCheckInterval pops; a
	// true value aborts the search with ErrCancelled.
	Cancel              *atomic.Bool
	CancelCheckInterval int
}

// DefaultOptions returns an unbounded, uncancellable search configured
// with deterministic FIFO tie-breaking.
func DefaultOptions() Options {
	return Options{
		NodeOrder:           NodeOrderDefault,
		BoundedSlack:        costmodel.Cost(0),
		CancelCheckInterval: 256,
	}
}

// Option is a functional option, mirroring the teacher's own pattern
// (package dijkstra's Option/WithXxx family).
type Option func(*Options)

// WithNodeOrder sets the open set's tie-breaking strategy.
func WithNodeOrder(o NodeOrder) Option {
	return func(opts *Options) { opts.NodeOrder = o }
}

// WithMemoryBudget sets the soft and hard approximate memory budgets,
// in bytes of estimated arena footprint.
func WithMemoryBudget(softBytes, hardBytes int64) Option {
	return func(opts *Options) {
		opts.SoftMemoryBudgetBytes = softBytes
		opts.HardMemoryBudgetBytes = hardBytes
	}
}

// WithBoundedSlack overrides the f-score tolerance applied once bounded
// mode activates.
func WithBoundedSlack(slack costmodel.Cost) Option {
	return func(opts *Options) { opts.BoundedSlack = slack }
}

// WithCancel installs a cooperative cancellation flag, polled roughly
// every interval pops (a value <= 0 leaves the default of 256).
func WithCancel(flag *atomic.Bool, interval int) Option {
	return func(opts *Options) {
		opts.Cancel = flag
		if interval > 0 {
			opts.CancelCheckInterval = interval
		}
	}
}
