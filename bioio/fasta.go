package bioio

import (
	"io"
	"os"

	bioalphabet "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/sebschmi/tsaligner/alphabet"
)

// rawRecord is one FASTA record's name and raw (unfiltered, unvalidated)
// residue bytes, read off a biogo *linear.Seq the same way
// kortschak-loopy/loopy.go reads sc.Seq().(*linear.Seq) before touching
// its .Seq field.
type rawRecord struct {
	name string
	raw  []byte
}

// readFasta scans every record of r into rawRecords, using biogo's
// generic DNA template sequence purely as a byte container: residue
// validation against one of this module's six Kinds happens afterwards,
// in package alphabet, not here.
func readFasta(r io.Reader) ([]rawRecord, error) {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, bioalphabet.DNA))
	sc := seqio.NewScanner(reader)

	var records []rawRecord
	for sc.Next() {
		seq, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, wrapf(ErrSequenceParse, "unexpected sequence type from biogo scanner")
		}
		raw := make([]byte, len(seq.Seq))
		for i, l := range seq.Seq {
			raw[i] = byte(l)
		}
		records = append(records, rawRecord{name: seq.Name(), raw: raw})
	}
	if err := sc.Error(); err != nil {
		return nil, wrapf(ErrSequenceParse, "%v", err)
	}
	return records, nil
}

func readFastaFile(path string) ([]rawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapf(ErrSequenceParse, "opening %q: %v", path, err)
	}
	defer f.Close()
	return readFasta(f)
}

// LoadPair reads R and Q as validated alphabet.Sequences, from either
// one combined FASTA file carrying exactly two records (paths has one
// element) or two separate single-record files (paths has two
// elements), per §6 ("two sequences presented either as a single
// FASTA-like file with two records or as two separate files").
func LoadPair(paths []string, a *alphabet.Alphabet, skip alphabet.SkipSet) (r, q *alphabet.Sequence, err error) {
	switch len(paths) {
	case 1:
		records, err := readFastaFile(paths[0])
		if err != nil {
			return nil, nil, err
		}
		if len(records) != 2 {
			return nil, nil, wrapf(ErrSequenceParse, "combined file %q must carry exactly 2 records, found %d", paths[0], len(records))
		}
		r, err := loadOne(records[0], a, skip)
		if err != nil {
			return nil, nil, err
		}
		q, err := loadOne(records[1], a, skip)
		if err != nil {
			return nil, nil, err
		}
		return r, q, nil

	case 2:
		rRecords, err := readFastaFile(paths[0])
		if err != nil {
			return nil, nil, err
		}
		qRecords, err := readFastaFile(paths[1])
		if err != nil {
			return nil, nil, err
		}
		if len(rRecords) != 1 {
			return nil, nil, wrapf(ErrSequenceParse, "%q must carry exactly 1 record, found %d", paths[0], len(rRecords))
		}
		if len(qRecords) != 1 {
			return nil, nil, wrapf(ErrSequenceParse, "%q must carry exactly 1 record, found %d", paths[1], len(qRecords))
		}
		r, err := loadOne(rRecords[0], a, skip)
		if err != nil {
			return nil, nil, err
		}
		q, err := loadOne(qRecords[0], a, skip)
		if err != nil {
			return nil, nil, err
		}
		return r, q, nil

	default:
		return nil, nil, wrapf(ErrSequenceParse, "expected 1 or 2 input files, got %d", len(paths))
	}
}

func loadOne(rec rawRecord, a *alphabet.Alphabet, skip alphabet.SkipSet) (*alphabet.Sequence, error) {
	seq, err := alphabet.Load(rec.name, rec.raw, a, skip)
	if err != nil {
		return nil, wrapf(ErrAlphabetMismatch, "record %q: %v", rec.name, err)
	}
	return seq, nil
}
