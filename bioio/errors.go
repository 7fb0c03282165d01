package bioio

import (
	"errors"
	"fmt"
)

// Sentinel errors for package bioio, matching §7's SequenceParseError,
// AlphabetMismatch and FocusRangeOutOfBounds error kinds.
var (
	// ErrSequenceParse indicates a malformed FASTA record set: not
	// exactly the two records a single combined file must carry, or an
	// I/O failure while scanning.
	ErrSequenceParse = errors.New("bioio: sequence parse error")

	// ErrAlphabetMismatch indicates a residue byte valid for some
	// alphabet but not the one the run was configured with (e.g. a "U"
	// in a file aligned with --alphabet dna).
	ErrAlphabetMismatch = errors.New("bioio: sequence does not match the configured alphabet")

	// ErrRQRangeSyntax indicates a malformed R<a>..<b>Q<c>..<d> literal.
	ErrRQRangeSyntax = errors.New("bioio: malformed rq-range syntax")

	// ErrEmbeddedDelimiters indicates --use-embedded-rq-ranges was given
	// but a record did not carry exactly two '|' delimiters.
	ErrEmbeddedDelimiters = errors.New("bioio: expected exactly two '|' delimiters")
)

// wrapf builds an error that unwraps to sentinel with additional detail,
// mirroring costmodel.ParseError's Unwrap-to-sentinel shape without a
// dedicated struct type, since these errors carry no structured fields
// worth a type of their own.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
