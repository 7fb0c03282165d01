package bioio

import (
	"regexp"
	"strconv"

	"github.com/sebschmi/tsaligner/tsgraph"
)

var rqRangePattern = regexp.MustCompile(`^R(\d+)\.\.(\d+)Q(\d+)\.\.(\d+)$`)

// ParseRQRanges parses the --rq-ranges literal syntax named in §6:
// "R<a>..<b>Q<c>..<d>", producing the tsgraph.FocusRange [a,b) x [c,d).
func ParseRQRanges(s string) (tsgraph.FocusRange, error) {
	m := rqRangePattern.FindStringSubmatch(s)
	if m == nil {
		return tsgraph.FocusRange{}, wrapf(ErrRQRangeSyntax, "%q does not match R<a>..<b>Q<c>..<d>", s)
	}
	r0, _ := strconv.Atoi(m[1])
	r1, _ := strconv.Atoi(m[2])
	q0, _ := strconv.Atoi(m[3])
	q1, _ := strconv.Atoi(m[4])
	if r0 > r1 || q0 > q1 {
		return tsgraph.FocusRange{}, wrapf(ErrRQRangeSyntax, "%q has a reversed range bound", s)
	}
	return tsgraph.FocusRange{R0: r0, R1: r1, Q0: q0, Q1: q1}, nil
}
