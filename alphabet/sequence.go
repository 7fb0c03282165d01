package alphabet

import "fmt"

// SkipSet is a set of raw residue bytes removed at load time before any
// position is assigned (§3: "An optional set of skip symbols is removed
// at load time before any position is assigned").
type SkipSet struct {
	members [256]bool
}

// NewSkipSet builds a SkipSet from the characters of chars. Characters
// are matched literally (case-sensitive): callers that want to skip both
// cases must include both in chars, mirroring how --skip-characters is
// passed through verbatim from the CLI.
//
// Complexity: O(len(chars)).
func NewSkipSet(chars string) SkipSet {
	var s SkipSet
	for i := 0; i < len(chars); i++ {
		s.members[chars[i]] = true
	}
	return s
}

// Contains reports whether b is a configured skip symbol.
func (s SkipSet) Contains(b byte) bool { return s.members[b] }

// UnknownSymbolError reports a residue byte, at a given zero-based
// position in the raw input, that is neither a skip symbol nor a member
// of the target Alphabet.
type UnknownSymbolError struct {
	Byte     byte
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("alphabet: unknown symbol %q at raw position %d", e.Byte, e.Position)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// Sequence is an indexed, random-access view of a raw residue slice after
// skip-symbol filtering and alphabet validation. Positions are zero-based
// and dense: position i of a Sequence need not correspond to position i
// of the raw input it was loaded from.
//
// Sequence is read-only after Load and is the "opaque sequence container
// with positional random access" referred to in §1 of the specification;
// FASTA parsing itself lives in package bioio, outside the core.
type Sequence struct {
	name     string
	alphabet *Alphabet
	symbols  []Symbol
}

// Load filters raw against skip, validates every remaining byte against
// alphabet, and returns a dense Sequence. name is carried through for
// diagnostics and output only.
//
// Returns *UnknownSymbolError (wrapping ErrUnknownSymbol) at the first
// invalid byte, with its position in the original (pre-filter) raw
// slice, and ErrEmptySequence if nothing remains after filtering.
//
// Complexity: O(len(raw)).
func Load(name string, raw []byte, a *Alphabet, skip SkipSet) (*Sequence, error) {
	symbols := make([]Symbol, 0, len(raw))
	for i, b := range raw {
		if skip.Contains(b) {
			continue
		}
		sym, ok := a.IndexOf(b)
		if !ok {
			return nil, &UnknownSymbolError{Byte: b, Position: i}
		}
		symbols = append(symbols, sym)
	}
	if len(symbols) == 0 {
		return nil, ErrEmptySequence
	}
	return &Sequence{name: name, alphabet: a, symbols: symbols}, nil
}

// Name returns the sequence's record name, as carried from input.
func (s *Sequence) Name() string { return s.name }

// Len returns the number of (post-filter) positions in the sequence.
func (s *Sequence) Len() int { return len(s.symbols) }

// At returns the Symbol at zero-based position i. At panics if i is out
// of range, mirroring slice indexing semantics — callers in package
// tsgraph only ever call At with positions already checked against the
// node's cursor invariants (§3).
func (s *Sequence) At(i int) Symbol { return s.symbols[i] }

// Alphabet returns the Alphabet this sequence was loaded against.
func (s *Sequence) Alphabet() *Alphabet { return s.alphabet }

// Slice returns the raw Symbol slice for positions [i, j). The returned
// slice aliases the Sequence's backing array and must not be mutated.
func (s *Sequence) Slice(i, j int) []Symbol { return s.symbols[i:j] }
