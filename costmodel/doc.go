// Package costmodel loads and evaluates the cost-model configuration
// described in §4.1 of the specification: a plain-text config.tsa file
// naming flank lengths, the eight template-switch base costs, five
// piecewise-constant step functions, and five alphabet-indexed edit-cost
// blocks (substitution matrix, gap-open vector, gap-extend vector).
//
// The parser is deterministic and reports position (line number) and one
// of a fixed set of error kinds on malformed input. On success it
// produces a fully validated CostModel whose PieceFunction evaluators
// run in O(log n) via binary search over pre-sorted breakpoints.
package costmodel
