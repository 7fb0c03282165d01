package astar

import (
	"container/heap"
	"time"

	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/tsgraph"
)

const noPredecessor handle = -1

// entryByteEstimate approximates one arena entry's footprint (the node,
// its cost, and bookkeeping), used only to decide when to switch into
// bounded mode or fail with ErrMemoryExhausted; it is deliberately a
// rough constant rather than an exact reflection of Go's in-memory
// layout, since the budget itself is approximate (§4.3).
const entryByteEstimate = 96

// entry is one arena slot: a discovered node, its best known cost so
// far, and the predecessor edge that achieved it. Unlike tsgraph.Node,
// entry carries exactly the mutable search state the closed map must
// NOT hash on.
type entry struct {
	node        tsgraph.Node
	g           costmodel.Cost
	predecessor handle
	label       tsgraph.EditLabel
	closed      bool
}

// PathStep is one step of a reconstructed optimal path.
type PathStep struct {
	Node     tsgraph.Node
	Label    tsgraph.EditLabel
	StepCost costmodel.Cost
}

// Stats reports search-effort counters for diagnostics and --stats output
// (§6 "stats" output section: expansions, queue peak, arena peak,
// preprocessor time).
type Stats struct {
	Expanded    int
	Generated   int
	MaxOpenSize int
	ArenaPeak   int
	Bounded     bool

	// PreprocessDuration is wall-clock time spent building the
	// heuristic and template-switch preprocessor tables before Search
	// was even called. Search itself never measures it; it is zero
	// unless a caller (package tsalign) fills it in on the returned
	// Stats.
	PreprocessDuration time.Duration
}

// Result is a completed search's optimum path and its total cost.
// Result is returned even when Search fails (ErrNoPath,
// ErrMemoryExhausted, ErrCancelled): §7 asks for NoPath/MemoryExhausted/
// Cancelled to be "reported after search with whatever statistics were
// collected", so callers get partial Stats alongside the error instead
// of a bare nil.
type Result struct {
	Cost  costmodel.Cost
	Path  []PathStep
	Stats Stats
}

// Search runs A* from cfg.Start() to the unique goal cfg.IsGoal
// recognises, using h as the admissible heuristic and tsgraph.Successors
// as the edge-enumeration function.
func Search(cfg *tsgraph.Config, h Heuristic, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := newRunner(cfg, h, o)
	r.init()
	runErr := r.run()

	res := &Result{
		Stats: Stats{
			Expanded:    r.expanded,
			Generated:   r.generated,
			MaxOpenSize: r.maxOpenSize,
			ArenaPeak:   len(r.arena),
			Bounded:     r.bounded,
		},
	}
	if runErr != nil {
		return res, runErr
	}

	res.Cost = r.arena[r.goal].g
	res.Path = r.path()
	return res, nil
}

type runner struct {
	cfg  *tsgraph.Config
	h    Heuristic
	opts Options

	arena []entry
	index map[tsgraph.Node]handle
	pq    openPQ
	seq   int64

	bounded bool
	bestF   costmodel.Cost

	goal      handle
	goalFound bool

	expanded, generated, maxOpenSize int
}

func newRunner(cfg *tsgraph.Config, h Heuristic, o Options) *runner {
	return &runner{
		cfg:   cfg,
		h:     h,
		opts:  o,
		index: make(map[tsgraph.Node]handle),
	}
}

func (r *runner) init() {
	start := r.cfg.Start()
	r.pushNew(start, 0, noPredecessor, tsgraph.LabelMatch)
}

func (r *runner) byteEstimate() int64 {
	return int64(len(r.arena)) * entryByteEstimate
}

func (r *runner) run() error {
	for r.pq.Len() > 0 {
		if r.opts.Cancel != nil && r.opts.CancelCheckInterval > 0 &&
			r.expanded%r.opts.CancelCheckInterval == 0 && r.opts.Cancel.Load() {
			return ErrCancelled
		}

		item := heap.Pop(&r.pq).(*openItem)
		e := &r.arena[item.h]
		if e.closed {
			continue
		}
		e.closed = true
		r.expanded++

		if r.cfg.IsGoal(e.node) {
			r.goal = item.h
			r.goalFound = true
			break
		}

		if r.opts.HardMemoryBudgetBytes > 0 && r.byteEstimate() > r.opts.HardMemoryBudgetBytes {
			return ErrMemoryExhausted
		}
		if !r.bounded && r.opts.SoftMemoryBudgetBytes > 0 && r.byteEstimate() > r.opts.SoftMemoryBudgetBytes {
			r.bounded = true
			r.bestF = item.f
		}

		for _, edge := range tsgraph.Successors(e.node, r.cfg) {
			if edge.Cost.IsInf() {
				continue
			}
			newG := e.g.Add(edge.Cost)
			if newG.IsInf() {
				continue
			}
			r.pushNew(edge.To, newG, item.h, edge.Label)
		}
	}

	if !r.goalFound {
		return ErrNoPath
	}
	return nil
}

// pushNew discovers node at cost g, or relaxes an already-discovered
// node's cost if g is a strict improvement. A previously closed node
// must be reopened on a strict improvement (§4.3: re-expansion is
// skipped iff the queued g is not less than the closed g), so closed is
// cleared here rather than left for run's closed-check to skip.
func (r *runner) pushNew(node tsgraph.Node, g costmodel.Cost, pred handle, label tsgraph.EditLabel) {
	if existing, ok := r.index[node]; ok {
		if !g.Less(r.arena[existing].g) {
			return
		}
		r.arena[existing].g = g
		r.arena[existing].predecessor = pred
		r.arena[existing].label = label
		r.arena[existing].closed = false
		r.pushOpen(existing, g, node)
		r.generated++
		return
	}

	h := handle(len(r.arena))
	r.arena = append(r.arena, entry{node: node, g: g, predecessor: pred, label: label})
	r.index[node] = h
	r.pushOpen(h, g, node)
	r.generated++
}

func (r *runner) pushOpen(h handle, g costmodel.Cost, node tsgraph.Node) {
	f := g.Add(r.h(node))
	if r.bounded && r.bestF.Add(r.opts.BoundedSlack).Less(f) {
		return
	}

	var tiebreak int64
	if r.opts.NodeOrder == NodeOrderAntiDiagonal {
		tiebreak = int64(node.I + node.J)
	}

	r.seq++
	heap.Push(&r.pq, &openItem{h: h, f: f, tiebreak: tiebreak, seq: r.seq})
	if r.pq.Len() > r.maxOpenSize {
		r.maxOpenSize = r.pq.Len()
	}
}

func (r *runner) path() []PathStep {
	var steps []PathStep
	for h := r.goal; h != noPredecessor; h = r.arena[h].predecessor {
		e := r.arena[h]
		var stepCost costmodel.Cost
		if e.predecessor != noPredecessor {
			stepCost = e.g - r.arena[e.predecessor].g
		}
		steps = append(steps, PathStep{Node: e.node, Label: e.label, StepCost: stepCost})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
