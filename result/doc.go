// Package result turns an astar.Result's predecessor chain into the
// output an end user actually wants: an edit script grouped into
// primary operations and collapsed template-switch segments, a
// CIGAR-like string rendering of that script, and a recomputed total
// cost checked against astar's own bookkeeping.
//
// The traceback itself already happened inside package astar (its
// arena stores one predecessor handle per discovered node, walked back
// from the goal exactly the way a Needleman-Wunsch direction matrix is
// walked back from the bottom-right corner); this package only
// interprets the resulting PathStep sequence, it does not search.
package result
