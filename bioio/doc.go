// Package bioio is the sequence-input adaptor the core packages are
// kept free of (§1): FASTA reading via biogo, §6's R<a>..<b>Q<c>..<d>
// and embedded-|-delimiter focus-range syntaxes, and a thin bridge from
// biogo's *linear.Seq into this module's own alphabet.Sequence.
//
// FASTA reading follows kortschak-loopy/loopy.go's
// fasta.NewReader/seqio.NewScanner/linear.NewSeq pattern exactly;
// alphabet validation itself is package alphabet's job, not biogo's —
// biogo only supplies the "opaque sequence container with positional
// random access" I/O that §1 deliberately keeps out of the core.
package bioio
