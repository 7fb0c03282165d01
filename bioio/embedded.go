package bioio

import (
	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/tsgraph"
)

// stripEmbedded removes '|' focus-range delimiters from raw alongside
// the configured skip set, in one pass, so the two returned marks are
// positions in the exact dense byte slice alphabet.Load will index
// (§6: "optionally parses embedded '|' delimiters that mark the focus
// range"). Exactly two delimiters are required; raw must not itself
// contain more or fewer.
func stripEmbedded(raw []byte, skip alphabet.SkipSet) (dense []byte, lo, hi int, err error) {
	dense = make([]byte, 0, len(raw))
	var marks []int
	for _, b := range raw {
		if b == '|' {
			marks = append(marks, len(dense))
			continue
		}
		if skip.Contains(b) {
			continue
		}
		dense = append(dense, b)
	}
	if len(marks) != 2 {
		return nil, 0, 0, wrapf(ErrEmbeddedDelimiters, "found %d delimiters, want 2", len(marks))
	}
	return dense, marks[0], marks[1], nil
}

// LoadPairEmbedded is LoadPair's --use-embedded-rq-ranges counterpart:
// each record's raw bytes carry two '|' delimiters bracketing its
// portion of the focus range, instead of the range being given
// separately as an R<a>..<b>Q<c>..<d> literal.
func LoadPairEmbedded(paths []string, a *alphabet.Alphabet, skip alphabet.SkipSet) (r, q *alphabet.Sequence, focus tsgraph.FocusRange, err error) {
	var records []rawRecord
	switch len(paths) {
	case 1:
		records, err = readFastaFile(paths[0])
		if err != nil {
			return nil, nil, tsgraph.FocusRange{}, err
		}
		if len(records) != 2 {
			return nil, nil, tsgraph.FocusRange{}, wrapf(ErrSequenceParse, "combined file %q must carry exactly 2 records, found %d", paths[0], len(records))
		}
	case 2:
		for _, p := range paths {
			recs, err := readFastaFile(p)
			if err != nil {
				return nil, nil, tsgraph.FocusRange{}, err
			}
			if len(recs) != 1 {
				return nil, nil, tsgraph.FocusRange{}, wrapf(ErrSequenceParse, "%q must carry exactly 1 record, found %d", p, len(recs))
			}
			records = append(records, recs[0])
		}
	default:
		return nil, nil, tsgraph.FocusRange{}, wrapf(ErrSequenceParse, "expected 1 or 2 input files, got %d", len(paths))
	}

	rDense, r0, r1, err := stripEmbedded(records[0].raw, skip)
	if err != nil {
		return nil, nil, tsgraph.FocusRange{}, err
	}
	qDense, q0, q1, err := stripEmbedded(records[1].raw, skip)
	if err != nil {
		return nil, nil, tsgraph.FocusRange{}, err
	}

	r, err = loadOne(rawRecord{name: records[0].name, raw: rDense}, a, alphabet.SkipSet{})
	if err != nil {
		return nil, nil, tsgraph.FocusRange{}, err
	}
	q, err = loadOne(rawRecord{name: records[1].name, raw: qDense}, a, alphabet.SkipSet{})
	if err != nil {
		return nil, nil, tsgraph.FocusRange{}, err
	}

	return r, q, tsgraph.FocusRange{R0: r0, R1: r1, Q0: q0, Q1: q1}, nil
}
