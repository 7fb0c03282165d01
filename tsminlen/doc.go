// Package tsminlen implements the template-switch min-length
// preprocessor (§4.4): a small set of strategies for bounding how
// cheap any single template switch could possibly be, so the search
// can either fold that bound into its heuristic or skip the
// template-switch branch of the graph entirely when it provably cannot
// pay for itself.
//
// Grounded on the teacher's tsp/bound_onetree.go: a precomputed,
// deterministic lower-bound table built once per run (there, a
// Held-Karp 1-tree bound over a distance matrix; here, a per-switch
// minimum price over a CostModel), consumed by the search as an
// admissible additive term rather than recomputed per node.
package tsminlen
