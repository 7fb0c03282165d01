package result

import (
	"fmt"
	"strconv"
	"strings"
)

// code returns op's single-letter CIGAR-style code, or "" for
// OpTemplateSwitch, which is rendered as its own bracketed token
// instead of being run-length encoded with neighbouring primary ops.
//
// I and D follow conventional CIGAR semantics relative to R as the
// reference: D (deleted from the reference) consumes R only,
// I (inserted relative to the reference) consumes Q only.
func (k OpKind) code() string {
	switch k {
	case OpMatch:
		return "M"
	case OpSubstitution:
		return "X"
	case OpInsertionR:
		return "D"
	case OpInsertionQ:
		return "I"
	default:
		return ""
	}
}

// Cigar renders ops as a CIGAR-like string: runs of consecutive
// primary operations are collapsed into "<count><code>" the way
// conventional CIGAR strings are, and each template switch is rendered
// as a bracketed token naming its side, orientation, jump offset and
// length, since there is no standard single-letter CIGAR code for it.
func Cigar(ops []Op) string {
	var b strings.Builder
	runCode := ""
	runLen := 0

	flush := func() {
		if runLen == 0 {
			return
		}
		fmt.Fprintf(&b, "%d%s", runLen, runCode)
		runLen = 0
	}

	for _, op := range ops {
		if op.Kind == OpTemplateSwitch {
			flush()
			b.WriteString(switchToken(op.Switch))
			continue
		}
		c := op.Kind.code()
		if c == runCode {
			runLen++
			continue
		}
		flush()
		runCode = c
		runLen = 1
	}
	flush()

	return b.String()
}

func switchToken(sw *Switch) string {
	return "[TS " + sw.PrimarySide.String() + ">" + sw.SecondarySide.String() +
		sw.Dir.String() + ":" + strconv.Itoa(sw.Offset) + "," + strconv.Itoa(sw.Len) + "]"
}
