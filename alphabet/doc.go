// Package alphabet defines the small closed set of nucleotide alphabets
// accepted by the aligner, and an indexed Sequence type built by loading
// raw residue bytes against one of them.
//
// Six alphabets are supported: dna, dna-n, rna, rna-n, dna-iupac and
// rna-iupac. Each alphabet fixes the indexing dimension used by every
// cost table in package costmodel — a substitution matrix, a gap-open
// vector and a gap-extend vector are all sized to len(Alphabet.Symbols()).
//
// Loading a Sequence removes any configured skip symbols before a single
// position is assigned, so that downstream positions (used throughout
// package tsgraph) are dense and zero-based.
package alphabet
