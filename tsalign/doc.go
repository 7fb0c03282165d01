// Package tsalign wires the core packages together into one alignment
// run: it builds a tsgraph.Config and an admissible astar.Heuristic
// from an Options value, drives astar.Search, and hands the winning
// path to package result for edit-script assembly. It is the
// "top-level orchestration" layer the core packages are deliberately
// kept free of (§1, §5): nothing under this package touches I/O.
package tsalign
