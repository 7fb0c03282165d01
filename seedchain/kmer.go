package seedchain

import "github.com/sebschmi/tsaligner/alphabet"

// hashKmer computes a unique base-size positional hash of the k symbols
// starting at pos, generalising MICA's hashKmer (kmer_hash.go,
// seeds.go) from a fixed 20/23-letter amino acid alphabet to whatever
// alphabet size s carries.
//
// hashKmer(a) == hashKmer(b) for same-length a, b iff every symbol
// matches, exactly as MICA's law states, since each position contributes
// a unique digit in a base-len(s) positional number system.
func hashKmer(seq *alphabet.Sequence, pos, k int) int {
	key := 0
	base := seq.Alphabet().Size()
	mul := 1
	for i := 0; i < k; i++ {
		key += int(seq.At(pos+i)) * mul
		mul *= base
	}
	return key
}

// Table indexes every k-mer of a reference sequence by its hash, for
// O(1) average-case lookup of candidate anchor positions from a query
// k-mer.
type Table struct {
	k    int
	locs map[int][]int // hash -> sorted R positions
	ref  *alphabet.Sequence
}

// Build indexes every k-mer of ref. If k <= 0 or k > ref.Len() it
// returns an empty table, which yields no seeds.
//
// Complexity: O(n) k-mer hashes, each recomputed from scratch in O(k),
// so O(n·k) time; O(n) space.
func Build(ref *alphabet.Sequence, k int) *Table {
	t := &Table{k: k, locs: make(map[int][]int), ref: ref}
	if k <= 0 || k > ref.Len() {
		return t
	}
	for i := 0; i+k <= ref.Len(); i++ {
		h := hashKmer(ref, i, k)
		t.locs[h] = append(t.locs[h], i)
	}
	return t
}

// Lookup returns every reference position whose k-mer equals the one
// starting at pos in query.
func (t *Table) Lookup(query *alphabet.Sequence, pos int) []int {
	if t.k <= 0 || pos+t.k > query.Len() {
		return nil
	}
	h := hashKmer(query, pos, t.k)
	return t.locs[h]
}

// Seed is one matched anchor: a k-mer shared between R at RPos and Q at QPos.
type Seed struct {
	RPos, QPos int
}

// Collect finds every seed between the indexed reference and query,
// scanning every query position once.
//
// Complexity: O(m) lookups of average O(1) each, where m = query.Len().
func Collect(t *Table, query *alphabet.Sequence) []Seed {
	if t.k <= 0 {
		return nil
	}
	var seeds []Seed
	for j := 0; j+t.k <= query.Len(); j++ {
		for _, i := range t.Lookup(query, j) {
			seeds = append(seeds, Seed{RPos: i, QPos: j})
		}
	}
	return seeds
}
