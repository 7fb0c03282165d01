// Package astar implements a generic A* best-first search over the
// implicit graph package tsgraph defines (§4.3).
//
// The engine is a generalisation of the teacher's Dijkstra runner: a
// lazy decrease-key priority queue built on container/heap, a
// functional-options Options struct, and a runner holding all mutable
// search state so Search itself stays a thin driver. A* adds a
// pluggable heuristic (g + h ordering instead of plain g), an
// arena-backed closed set keyed on node identity rather than a string
// vertex ID, an approximate memory budget that degrades the search into
// a tighter "bounded mode" before giving up outright, and cooperative
// cancellation via an atomic flag checked periodically rather than on
// every pop.
//
// Complexity:
//   - Time: O(b^d log N) in the worst case, where b is the branching
//     factor of tsgraph.Successors (dominated by template-switch entry
//     enumeration), d is solution depth, and N is the number of distinct
//     nodes pushed onto the open set. A tight, admissible heuristic is
//     what keeps this tractable in practice (package seedchain supplies
//     one).
//   - Space: O(N) for the arena and closed map.
package astar
