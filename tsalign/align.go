package tsalign

import (
	"time"

	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/result"
	"github.com/sebschmi/tsaligner/seedchain"
	"github.com/sebschmi/tsaligner/tsminlen"
)

// Alignment is the outcome of one Align call: the reconstructed edit
// script plus the search statistics that drove it.
type Alignment struct {
	Script *result.Script
	Stats  astar.Stats
}

// Align runs the full pipeline described in §2: build the graph
// configuration and heuristic from opts, search it with A*, and
// assemble the winning path into an edit script. It returns whichever
// error astar.Search or result.Assemble produced unchanged, so callers
// can match §7's error kinds (ErrNoPath, ErrMemoryExhausted,
// ErrCancelled, ErrInconsistentReconstruction) with errors.Is.
//
// The returned *Alignment is never nil, even on error: §7 asks for
// NoPath/MemoryExhausted/Cancelled to carry "whatever statistics were
// collected", so a failed Align still reports Stats (with a nil Script).
func Align(opts Options) (*Alignment, error) {
	preprocessStart := time.Now()
	policy := tsminlen.NewPolicy(opts.MinLengthStrategy, opts.Model)
	if opts.AllowTemplateSwitch && policy.DisableSwitches(noSwitchBudget(opts)) {
		opts.AllowTemplateSwitch = false
	}

	cfg := opts.graphConfig()
	h := seedchain.NewSeededHeuristic(cfg, policy, opts.SeedLength)
	preprocessDuration := time.Since(preprocessStart)

	search, err := astar.Search(cfg, h, opts.searchOptions()...)
	search.Stats.PreprocessDuration = preprocessDuration
	if err != nil {
		return &Alignment{Stats: search.Stats}, err
	}

	script, err := result.Assemble(search)
	if err != nil {
		return &Alignment{Stats: search.Stats}, err
	}

	return &Alignment{Script: script, Stats: search.Stats}, nil
}

// noSwitchBudget estimates the largest plausible saving any single
// template switch could offer: the cost of mismatching every residue of
// the shorter remaining sequence at the model's worst substitution
// price. StrategyPreprocessFilter disables switches outright only when
// even this generous estimate can't beat the cheapest possible switch.
func noSwitchBudget(opts Options) costmodel.Cost {
	n := opts.Focus.R1 - opts.Focus.R0
	if m := opts.Focus.Q1 - opts.Focus.Q0; m < n {
		n = m
	}
	return opts.Model.Primary.MaxSub() * costmodel.Cost(n)
}
