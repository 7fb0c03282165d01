package seedchain

import "sort"

// Chain greedily selects a colinear run of seeds: sorted by RPos, it
// keeps any seed whose QPos strictly exceeds the last kept seed's QPos,
// mirroring the teacher's greedy incremental-edge-selection style in
// tsp/mst.go rather than a full dynamic-programming longest increasing
// subsequence. The result need not be the longest possible chain; it
// only has to be colinear, since it merely seeds a heuristic lower
// bound rather than determining correctness.
//
// Complexity: O(n log n) for the sort, O(n) for the scan.
func Chain(seeds []Seed) []Seed {
	if len(seeds) == 0 {
		return nil
	}
	sorted := make([]Seed, len(seeds))
	copy(sorted, seeds)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].RPos != sorted[j].RPos {
			return sorted[i].RPos < sorted[j].RPos
		}
		return sorted[i].QPos < sorted[j].QPos
	})

	chain := make([]Seed, 0, len(sorted))
	lastQ := -1
	for _, s := range sorted {
		if s.QPos > lastQ {
			chain = append(chain, s)
			lastQ = s.QPos
		}
	}
	return chain
}
