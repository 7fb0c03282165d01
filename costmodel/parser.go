package costmodel

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sebschmi/tsaligner/alphabet"
)

// functionNames lists the five named piecewise functions in the order
// §4.1 enumerates them; parseBuilder uses this to detect MissingSection.
var functionNames = []string{"Offset", "Length", "LengthDifference", "ForwardAntiPrimaryGap", "ReverseAntiPrimaryGap"}

// editNames lists the five named edit-cost contexts in the order §3
// enumerates them.
var editNames = []string{"primary", "secondary_forward", "secondary_reverse", "left_flank", "right_flank"}

// Parse reads a config.tsa document from r, validating every field
// against a (the alphabet named by --alphabet), and returns a fully
// validated CostModel.
//
// Parse is deterministic: identical input always produces either the
// same CostModel or the same *ParseError.
//
// Complexity: O(n) in the size of the document, plus O(k^2) per edit
// block for a k-symbol alphabet's substitution matrix.
func Parse(r io.Reader, a *alphabet.Alphabet) (*CostModel, error) {
	b := newParseBuilder(a)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := stripComment(sc.Text())
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if err := b.feed(line, text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b.finish()
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// section identifies which block of the grammar is currently being fed
// lines.
type section int

const (
	secTop section = iota
	secBaseCosts
	secFunction
	secEdit
)

// parseBuilder accumulates config.tsa lines into a CostModel, tracking
// which section is currently open and which rows of a matrix block have
// been seen so far.
type parseBuilder struct {
	a *alphabet.Alphabet

	model CostModel

	sec        section
	funcName   string
	editName   string
	haveTop    map[string]bool
	haveBase   map[string]bool
	haveFunc   map[string]bool // functionName -> seen
	haveEdit   map[string]bool // editName -> seen
	matrixHead []alphabet.Symbol
	matrixRows int

	pendingBreakpoints map[string][]int64
}

func newParseBuilder(a *alphabet.Alphabet) *parseBuilder {
	return &parseBuilder{
		a:                  a,
		haveTop:            map[string]bool{},
		haveBase:           map[string]bool{},
		haveFunc:           map[string]bool{},
		haveEdit:           map[string]bool{},
		pendingBreakpoints: map[string][]int64{},
	}
}

func (b *parseBuilder) feed(line int, text string) error {
	if strings.HasPrefix(text, "[") {
		return b.enterSection(line, text)
	}
	switch b.sec {
	case secTop:
		return b.feedTop(line, text)
	case secBaseCosts:
		return b.feedBaseCost(line, text)
	case secFunction:
		return b.feedFunction(line, text)
	case secEdit:
		return b.feedEdit(line, text)
	}
	return nil
}

func (b *parseBuilder) enterSection(line int, text string) error {
	if !strings.HasSuffix(text, "]") {
		return parseErrf(line, MissingSection, text, "unterminated section header")
	}
	header := strings.TrimSpace(text[1 : len(text)-1])
	fields := strings.Fields(header)
	switch {
	case header == "base_costs":
		b.sec = secBaseCosts
		return nil
	case len(fields) == 2 && fields[0] == "function":
		b.sec = secFunction
		b.funcName = fields[1]
		b.matrixRows = 0
		return nil
	case len(fields) == 2 && fields[0] == "edit":
		b.sec = secEdit
		b.editName = fields[1]
		b.matrixHead = nil
		b.matrixRows = 0
		return nil
	default:
		return parseErrf(line, MissingSection, header, "unrecognised section header")
	}
}

func (b *parseBuilder) feedTop(line int, text string) error {
	key, val, err := splitKV(line, "top", text)
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(val))
	if convErr != nil {
		return parseErrf(line, DimensionMismatch, "top", "%s must be an integer: %v", key, convErr)
	}
	switch key {
	case "left_flank_length":
		b.model.LeftFlankLength = n
	case "right_flank_length":
		b.model.RightFlankLength = n
	default:
		return parseErrf(line, MissingSection, "top", "unrecognised top-level key %q", key)
	}
	b.haveTop[key] = true
	return nil
}

func (b *parseBuilder) feedBaseCost(line int, text string) error {
	key, val, err := splitKV(line, "base_costs", text)
	if err != nil {
		return err
	}
	c, convErr := parseCost(val)
	if convErr != nil {
		return parseErrf(line, DimensionMismatch, "base_costs", "%s: %v", key, convErr)
	}
	if math.IsInf(float64(c), 0) {
		return parseErrf(line, InfiniteBase, "base_costs", "%s must be finite", key)
	}
	switch key {
	case "rrf":
		b.model.Base.Rrf = c
	case "rqf":
		b.model.Base.Rqf = c
	case "qrf":
		b.model.Base.Qrf = c
	case "qqf":
		b.model.Base.Qqf = c
	case "rrr":
		b.model.Base.Rrr = c
	case "rqr":
		b.model.Base.Rqr = c
	case "qrr":
		b.model.Base.Qrr = c
	case "qqr":
		b.model.Base.Qqr = c
	default:
		return parseErrf(line, MissingSection, "base_costs", "unrecognised base cost %q", key)
	}
	b.haveBase[key] = true
	return nil
}

func (b *parseBuilder) feedFunction(line int, text string) error {
	key, val, err := splitKV(line, b.funcName, text)
	if err != nil {
		return err
	}
	parts := splitList(val)
	switch key {
	case "breakpoints":
		bps := make([]int64, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "-inf" || p == "inf" {
				continue // implicit domain ends, not stored
			}
			n, convErr := strconv.ParseInt(p, 10, 64)
			if convErr != nil {
				return parseErrf(line, DimensionMismatch, b.funcName, "bad breakpoint %q: %v", p, convErr)
			}
			bps = append(bps, n)
		}
		b.pendingBreakpoints[b.funcName] = bps
	case "values":
		vs := make([]Cost, 0, len(parts))
		for _, p := range parts {
			c, convErr := parseCost(strings.TrimSpace(p))
			if convErr != nil {
				return parseErrf(line, DimensionMismatch, b.funcName, "bad value %q: %v", p, convErr)
			}
			vs = append(vs, c)
		}
		bps, ok := b.pendingBreakpoints[b.funcName]
		if !ok {
			return parseErrf(line, MissingSection, b.funcName, "values given before breakpoints")
		}
		fn, buildErr := NewPieceFunction(bps, vs)
		if buildErr != nil {
			pe := buildErr.(*ParseError)
			pe.Line = line
			pe.Section = b.funcName
			return pe
		}
		switch b.funcName {
		case "Offset":
			b.model.Offset = fn
		case "Length":
			b.model.Length = fn
		case "LengthDifference":
			b.model.LengthDifference = fn
		case "ForwardAntiPrimaryGap":
			b.model.ForwardAntiPrimaryGap = fn
		case "ReverseAntiPrimaryGap":
			b.model.ReverseAntiPrimaryGap = fn
		default:
			return parseErrf(line, MissingSection, b.funcName, "unrecognised function name")
		}
		b.haveFunc[b.funcName] = true
	default:
		return parseErrf(line, MissingSection, b.funcName, "unrecognised function key %q", key)
	}
	return nil
}

func (b *parseBuilder) feedEdit(line int, text string) error {
	size := b.a.Size()
	table := b.editTable()

	if strings.HasPrefix(text, "gap_open") || strings.HasPrefix(text, "gap_extend") {
		key, val, err := splitKV(line, b.editName, text)
		if err != nil {
			return err
		}
		vec, vecErr := b.parseSymbolVector(line, val)
		if vecErr != nil {
			return vecErr
		}
		if key == "gap_open" {
			table.GapOpen = vec
		} else {
			table.GapExtend = vec
		}
		return nil
	}

	fields := strings.Fields(text)
	if b.matrixHead == nil {
		// This is the substitution matrix header row: alphabet symbols
		// in the column order the subsequent rows must follow.
		head := make([]alphabet.Symbol, 0, len(fields))
		for _, f := range fields {
			sym, ok := b.a.IndexOf(f[0])
			if !ok {
				return parseErrf(line, UnknownSymbol, b.editName, "unknown symbol %q in substitution header", f)
			}
			head = append(head, sym)
		}
		if len(head) != size {
			return parseErrf(line, DimensionMismatch, b.editName,
				"substitution header has %d columns, alphabet has %d symbols", len(head), size)
		}
		b.matrixHead = head
		table.Substitution = make([][]Cost, size)
		return nil
	}

	// A substitution matrix data row: leading symbol, then size values.
	rowSym, ok := b.a.IndexOf(fields[0][0])
	if !ok {
		return parseErrf(line, UnknownSymbol, b.editName, "unknown row symbol %q", fields[0])
	}
	if len(fields)-1 != size {
		return parseErrf(line, DimensionMismatch, b.editName,
			"row %q has %d values, alphabet has %d symbols", fields[0], len(fields)-1, size)
	}
	row := make([]Cost, size)
	for i, f := range fields[1:] {
		c, convErr := parseCost(f)
		if convErr != nil {
			return parseErrf(line, DimensionMismatch, b.editName, "bad substitution value %q: %v", f, convErr)
		}
		row[b.matrixHead[i]] = c
	}
	table.Substitution[rowSym] = row
	b.matrixRows++
	if b.matrixRows == size {
		b.haveEdit[b.editName] = true
	}
	return nil
}

func (b *parseBuilder) parseSymbolVector(line int, val string) ([]Cost, error) {
	size := b.a.Size()
	vec := make([]Cost, size)
	seen := make([]bool, size)
	for _, entry := range splitList(val) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		kv := strings.SplitN(entry, ":", 2)
		if len(kv) != 2 {
			return nil, parseErrf(line, DimensionMismatch, b.editName, "bad vector entry %q", entry)
		}
		sym, ok := b.a.IndexOf(kv[0][0])
		if !ok {
			return nil, parseErrf(line, UnknownSymbol, b.editName, "unknown symbol %q", kv[0])
		}
		c, convErr := parseCost(strings.TrimSpace(kv[1]))
		if convErr != nil {
			return nil, parseErrf(line, DimensionMismatch, b.editName, "bad vector value %q: %v", kv[1], convErr)
		}
		vec[sym] = c
		seen[sym] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, parseErrf(line, DimensionMismatch, b.editName,
				"missing vector entry for symbol %q", string(b.a.Letter(alphabet.Symbol(i))))
		}
	}
	return vec, nil
}

func (b *parseBuilder) editTable() *EditTable {
	switch b.editName {
	case "primary":
		return &b.model.Primary
	case "secondary_forward":
		return &b.model.SecondaryForward
	case "secondary_reverse":
		return &b.model.SecondaryReverse
	case "left_flank":
		return &b.model.LeftFlank
	case "right_flank":
		return &b.model.RightFlank
	default:
		return &EditTable{}
	}
}

func (b *parseBuilder) finish() (*CostModel, error) {
	for _, k := range []string{"left_flank_length", "right_flank_length"} {
		if !b.haveTop[k] {
			return nil, parseErrf(0, MissingSection, "top", "missing top-level key %q", k)
		}
	}
	for _, k := range []string{"rrf", "rqf", "qrf", "qqf", "rrr", "rqr", "qrr", "qqr"} {
		if !b.haveBase[k] {
			return nil, parseErrf(0, MissingSection, "base_costs", "missing base cost %q", k)
		}
	}
	for _, n := range functionNames {
		if !b.haveFunc[n] {
			return nil, parseErrf(0, MissingSection, n, "missing function section")
		}
	}
	for _, n := range editNames {
		if !b.haveEdit[n] {
			return nil, parseErrf(0, MissingSection, n, "missing or incomplete edit section")
		}
	}
	b.model.Alphabet = b.a
	m := b.model
	return &m, nil
}

func splitKV(line int, section, text string) (key, val string, err error) {
	i := strings.IndexByte(text, '=')
	if i < 0 {
		return "", "", parseErrf(line, MissingSection, section, "expected key = value, got %q", text)
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}

func parseCost(s string) (Cost, error) {
	s = strings.TrimSpace(s)
	if s == "inf" || s == "+inf" {
		return Inf, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return Cost(f), nil
}
