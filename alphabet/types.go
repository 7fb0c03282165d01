package alphabet

import "errors"

// Sentinel errors for package alphabet.
var (
	// ErrUnknownAlphabet indicates a name that does not match any of the
	// six supported alphabets.
	ErrUnknownAlphabet = errors.New("alphabet: unknown alphabet name")

	// ErrEmptySequence indicates a Load call with zero residues remaining
	// after skip-symbol filtering.
	ErrEmptySequence = errors.New("alphabet: sequence is empty after filtering")

	// ErrUnknownSymbol indicates a residue byte that is not a member of
	// the target alphabet and is not in the skip set either.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")
)

// Kind identifies one of the six supported alphabets.
type Kind uint8

const (
	// DNA is the four-letter deoxyribonucleic acid alphabet: A, C, G, T.
	DNA Kind = iota
	// DNAN is DNA extended with the N ("any") wildcard.
	DNAN
	// RNA is the four-letter ribonucleic acid alphabet: A, C, G, U.
	RNA
	// RNAN is RNA extended with the N ("any") wildcard.
	RNAN
	// DNAIUPAC is DNA extended with the full IUPAC ambiguity code set.
	DNAIUPAC
	// RNAIUPAC is RNA extended with the full IUPAC ambiguity code set.
	RNAIUPAC
)

// names maps each Kind to its canonical CLI spelling (--alphabet flag
// value, §6 of the specification).
var names = [...]string{
	DNA:      "dna",
	DNAN:     "dna-n",
	RNA:      "rna",
	RNAN:     "rna-n",
	DNAIUPAC: "dna-iupac",
	RNAIUPAC: "rna-iupac",
}

// symbolSets lists the canonical, index-ordered residue letters for each
// Kind. Index order is significant: it is the dimension order used by
// every cost table in package costmodel.
var symbolSets = [...]string{
	DNA:      "ACGT",
	DNAN:     "ACGTN",
	RNA:      "ACGU",
	RNAN:     "ACGUN",
	DNAIUPAC: "ACGTRYSWKMBDHVN",
	RNAIUPAC: "ACGURYSWKMBDHVN",
}

// ParseKind resolves a --alphabet flag value to a Kind.
//
// Complexity: O(1).
func ParseKind(name string) (Kind, error) {
	for k, n := range names {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, ErrUnknownAlphabet
}

// String returns the canonical CLI spelling of k.
func (k Kind) String() string {
	if int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Alphabet is a validated, index-stable view of one of the six supported
// Kinds: an ordered symbol table plus a byte→Symbol lookup.
//
// Alphabet is immutable after New and safe for concurrent read access
// from multiple alignment instances, per §5 of the specification.
type Alphabet struct {
	kind    Kind
	symbols []byte
	index   [256]int8 // -1 for bytes not in this alphabet
}

// New constructs the Alphabet for kind. New never fails: every Kind has a
// fixed, valid symbol table baked in at compile time.
//
// Complexity: O(1) (256-entry table fill).
func New(kind Kind) *Alphabet {
	a := &Alphabet{kind: kind, symbols: []byte(symbolSets[kind])}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, b := range a.symbols {
		a.index[b] = int8(i)
	}
	return a
}

// Kind returns the alphabet's Kind.
func (a *Alphabet) Kind() Kind { return a.kind }

// Size returns the number of symbols in the alphabet — the dimension of
// every substitution matrix and gap vector indexed by this alphabet.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the canonical, index-ordered residue letters. The
// returned slice must not be mutated by the caller.
func (a *Alphabet) Symbols() []byte { return a.symbols }

// Symbol is a zero-based index into an Alphabet's symbol table.
type Symbol uint8

// Letter returns the canonical residue byte for s.
func (a *Alphabet) Letter(s Symbol) byte { return a.symbols[s] }

// IndexOf maps a raw residue byte (case-insensitive) to its Symbol index.
// The second return value is false if b is not a member of a.
//
// Complexity: O(1).
func (a *Alphabet) IndexOf(b byte) (Symbol, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	i := a.index[b]
	if i < 0 {
		return 0, false
	}
	return Symbol(i), true
}
