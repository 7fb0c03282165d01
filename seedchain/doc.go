// Package seedchain supplies the admissible heuristic package astar
// needs (§4.5): a k-mer seed index over the reference sequence, greedy
// colinear chaining of the matches a query k-mer finds there, and a
// lower-bound cost estimate derived from the resulting chain plus the
// cost model's cheapest gap and substitution prices.
//
// The k-mer hashing is grounded on ndaniels-MICA's seeds.go/kmer_hash.go
// (a positional-value hash over a small closed alphabet, generalised
// here from MICA's 20/23-letter amino acid alphabets to this module's
// four-to-fifteen-letter nucleotide alphabets); chaining follows the
// teacher's greedy incremental-selection idiom from tsp/mst.go, adapted
// from building a spanning tree to building a colinear run.
package seedchain
