// Package tsgraph defines the compound alignment graph of §3–§4.2 of the
// specification: node identity, the successor relation, and edge cost as
// pure functions of (current node, cost model, sequences).
//
// The graph is implicit — Node is a small, comparable identity struct
// (everything the A* engine's closed map hashes on); no edge or
// neighbour is materialised until Successors is called. Cumulative cost
// and predecessor linkage live in package astar's arena, not here, so
// that Node's equality is exactly the "node-identity projection" the
// closed map in §4.3 needs.
package tsgraph
