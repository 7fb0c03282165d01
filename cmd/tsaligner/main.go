// Command tsaligner is the CLI entry point described in §6 of the
// specification: it parses flags and sequence/configuration files, runs
// one package tsalign.Align call, and renders the result (or whatever
// statistics survive a failed run) as a TOML document.
//
// Flag parsing, FASTA/config-directory resolution and TOML rendering
// live here, deliberately outside the core packages (§1: "command-line
// parsing... straightforward I/O... specified only by the data they
// deliver to / receive from the core"). The flat var-per-flag style
// follows kortschak-loopy/loopy.go.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"

	"github.com/sebschmi/tsaligner/alphabet"
	"github.com/sebschmi/tsaligner/astar"
	"github.com/sebschmi/tsaligner/bioio"
	"github.com/sebschmi/tsaligner/costmodel"
	"github.com/sebschmi/tsaligner/result"
	"github.com/sebschmi/tsaligner/tsalign"
	"github.com/sebschmi/tsaligner/tsgraph"
	"github.com/sebschmi/tsaligner/tsminlen"
)

// Exit codes, per §6.
const (
	exitSuccess               = 0
	exitInputError            = 1
	exitConfigurationError    = 2
	exitMemoryExhausted       = 3
	exitNoPathOrCancelled     = 4
	exitInternalInconsistency = 5
)

// defaultSeedLength is the k-mer length package seedchain's heuristic
// uses to chain seeds (§4.5). The specification's CLI surface (§6)
// names no flag for it, so this is a fixed, reasonable default for
// nucleotide alphabets rather than a tunable surface.
const defaultSeedLength = 12

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func inputErrf(format string, args ...interface{}) *cliError {
	return &cliError{code: exitInputError, err: fmt.Errorf(format, args...)}
}

func configErrf(format string, args ...interface{}) *cliError {
	return &cliError{code: exitConfigurationError, err: fmt.Errorf(format, args...)}
}

// run parses args, drives one alignment, and writes its TOML report to
// stdout (or the -o file). It returns the process exit code instead of
// calling os.Exit itself, so tests can drive it without exiting.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("tsaligner", flag.ContinueOnError)

	alphabetName := fs.String("alphabet", "", "alphabet: dna, dna-n, rna, rna-n, dna-iupac, rna-iupac")
	skipCharacters := fs.String("skip-characters", "", "characters to strip from input sequences before alignment")
	configDir := fs.String("configuration-directory", "", "directory containing config.tsa")
	rqRanges := fs.String("rq-ranges", "", "R<a>..<b>Q<c>..<d> focus range literal")
	useEmbeddedRQRanges := fs.Bool("use-embedded-rq-ranges", false, "parse '|' delimited focus ranges embedded in the input FASTA")
	alignmentMethod := fs.String("alignment-method", "a-star-template-switch", "a-star-template-switch or a-star-no-template-switch")
	noTS := fs.Bool("no-ts", false, "synonym for --alignment-method a-star-no-template-switch")
	minLengthStrategy := fs.String("ts-min-length-strategy", "none", "none, lookahead, preprocess-price, preprocess-filter")
	totalLengthStrategy := fs.String("ts-total-length-strategy", "none", "none (only value currently supported)")
	nodeOrdStrategy := fs.String("ts-node-ord-strategy", "default", "default or anti-diagonal")
	memoryLimit := fs.Int64("memory-limit", 0, "approximate memory budget in bytes (0 disables the budget)")
	outPath := fs.String("o", "", "output TOML path (default stdout)")
	errPath := fs.String("err", "", "redirect diagnostic logging to this file (default stderr)")

	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}

	if *errPath != "" {
		f, err := os.Create(*errPath)
		if err != nil {
			log.Printf("failed to create log file: %v", err)
			return exitInputError
		}
		defer f.Close()
		log.SetOutput(f)
	}

	doc, cerr := align(fs.Args(), alignOptions{
		alphabetName:        *alphabetName,
		skipCharacters:      *skipCharacters,
		configDir:           *configDir,
		rqRanges:            *rqRanges,
		useEmbeddedRQRanges: *useEmbeddedRQRanges,
		alignmentMethod:     *alignmentMethod,
		noTS:                *noTS,
		minLengthStrategy:   *minLengthStrategy,
		totalLengthStrategy: *totalLengthStrategy,
		nodeOrdStrategy:     *nodeOrdStrategy,
		memoryLimitBytes:    *memoryLimit,
	})
	if cerr != nil {
		log.Printf("tsaligner: %v", cerr.err)
		if doc != nil {
			_ = writeOutput(*outPath, stdout, doc)
		}
		return cerr.code
	}

	if err := writeOutput(*outPath, stdout, doc); err != nil {
		log.Printf("tsaligner: writing output: %v", err)
		return exitInputError
	}
	return exitSuccess
}

// alignOptions bundles the flag values align needs, so the parsing
// above and the orchestration below stay independently testable.
type alignOptions struct {
	alphabetName        string
	skipCharacters      string
	configDir           string
	rqRanges            string
	useEmbeddedRQRanges bool
	alignmentMethod     string
	noTS                bool
	minLengthStrategy   string
	totalLengthStrategy string
	nodeOrdStrategy     string
	memoryLimitBytes    int64
}

// align loads every input named by opts and paths, runs tsalign.Align,
// and assembles the output document. On failure it still returns
// whatever partial document (inputs, cost model digest, stats) was
// built before the failure, per §7's "report with whatever statistics
// were collected".
func align(paths []string, opts alignOptions) (*outputDoc, *cliError) {
	kind, err := alphabet.ParseKind(opts.alphabetName)
	if err != nil {
		return nil, configErrf("--alphabet: %w", err)
	}
	a := alphabet.New(kind)
	skip := alphabet.NewSkipSet(opts.skipCharacters)

	if opts.configDir == "" {
		return nil, configErrf("--configuration-directory is required")
	}
	configPath := filepath.Join(opts.configDir, "config.tsa")
	configFile, err := os.Open(configPath)
	if err != nil {
		return nil, configErrf("opening %q: %w", configPath, err)
	}
	defer configFile.Close()

	rawConfig, err := io.ReadAll(configFile)
	if err != nil {
		return nil, configErrf("reading %q: %w", configPath, err)
	}
	model, err := costmodel.Parse(strings.NewReader(string(rawConfig)), a)
	if err != nil {
		return nil, configErrf("%w", err)
	}
	digest, err := costmodel.Digest(strings.NewReader(string(rawConfig)))
	if err != nil {
		return nil, configErrf("digesting %q: %w", configPath, err)
	}

	if len(paths) == 0 {
		return nil, inputErrf("at least one input FASTA file is required")
	}

	var r, q *alphabet.Sequence
	var focus tsgraph.FocusRange
	switch {
	case opts.useEmbeddedRQRanges:
		r, q, focus, err = bioio.LoadPairEmbedded(paths, a, skip)
	case opts.rqRanges != "":
		focus, err = bioio.ParseRQRanges(opts.rqRanges)
		if err == nil {
			r, q, err = bioio.LoadPair(paths, a, skip)
		}
	default:
		return nil, inputErrf("one of --rq-ranges or --use-embedded-rq-ranges is required")
	}
	if err != nil {
		return nil, inputErrf("%w", err)
	}
	if focus.R1 > r.Len() || focus.Q1 > q.Len() {
		return nil, inputErrf("focus range exceeds sequence bounds")
	}

	allowTS := opts.alignmentMethod != "a-star-no-template-switch" && !opts.noTS
	if opts.alignmentMethod != "a-star-template-switch" && opts.alignmentMethod != "a-star-no-template-switch" {
		return nil, configErrf("--alignment-method: unknown method %q", opts.alignmentMethod)
	}

	minStrategy, err := tsminlen.ParseMinLengthStrategy(opts.minLengthStrategy)
	if err != nil {
		return nil, configErrf("--ts-min-length-strategy: %w", err)
	}
	if _, err := tsminlen.ParseStrategy(opts.totalLengthStrategy); err != nil {
		return nil, configErrf("--ts-total-length-strategy: %w", err)
	}
	nodeOrder, err := parseNodeOrder(opts.nodeOrdStrategy)
	if err != nil {
		return nil, configErrf("--ts-node-ord-strategy: %w", err)
	}

	var cancel atomic.Bool
	alignOpts := tsalign.Options{
		Model:                 model,
		R:                     r,
		Q:                     q,
		Focus:                 focus,
		AllowTemplateSwitch:   allowTS,
		MinLengthStrategy:     minStrategy,
		SeedLength:            defaultSeedLength,
		NodeOrder:             nodeOrder,
		SoftMemoryBudgetBytes: softBudget(opts.memoryLimitBytes),
		HardMemoryBudgetBytes: opts.memoryLimitBytes,
		BoundedSlack:          0,
		Cancel:                &cancel,
		CancelCheckInterval:   1024,
	}

	doc := &outputDoc{
		Inputs: inputsDoc{
			Reference: r.Name(),
			Query:     q.Name(),
			Alphabet:  a.Kind().String(),
		},
		CostModelDigest: digest,
	}

	alignment, err := tsalign.Align(alignOpts)
	doc.Stats = statsFrom(alignment.Stats)

	if err != nil {
		return doc, classifySearchError(err)
	}

	doc.Alignment = &alignmentDoc{
		Cost:             float64(alignment.Script.Cost),
		Cigar:            result.Cigar(alignment.Script.Ops),
		TemplateSwitches: templateSwitchDocs(alignment.Script.Ops, focus),
	}
	return doc, nil
}

// softBudget derives a soft bounded-mode threshold from the hard
// --memory-limit, at a fixed fraction below it, mirroring the teacher's
// two-knob InfEdgeThreshold/MaxDistance style (see DESIGN.md's Open
// Question decision on bounded-mode memory accounting) rather than
// exposing a second CLI flag the specification never names.
func softBudget(hard int64) int64 {
	if hard <= 0 {
		return 0
	}
	soft := hard * 4 / 5
	if soft <= 0 {
		soft = hard
	}
	return soft
}

func parseNodeOrder(name string) (astar.NodeOrder, error) {
	switch name {
	case "default":
		return astar.NodeOrderDefault, nil
	case "anti-diagonal":
		return astar.NodeOrderAntiDiagonal, nil
	default:
		return 0, fmt.Errorf("unknown node order strategy %q", name)
	}
}

// classifySearchError maps one of tsalign.Align's sentinel errors to
// the exit code §6 assigns it.
func classifySearchError(err error) *cliError {
	switch {
	case errors.Is(err, astar.ErrMemoryExhausted):
		return &cliError{code: exitMemoryExhausted, err: err}
	case errors.Is(err, astar.ErrNoPath), errors.Is(err, astar.ErrCancelled):
		return &cliError{code: exitNoPathOrCancelled, err: err}
	case errors.Is(err, result.ErrInconsistentReconstruction), errors.Is(err, astar.ErrInconsistentHeuristic):
		return &cliError{code: exitInternalInconsistency, err: err}
	default:
		return &cliError{code: exitInputError, err: err}
	}
}

// writeOutput encodes doc as TOML to path, or to stdout if path is
// empty.
func writeOutput(path string, stdout io.Writer, doc *outputDoc) error {
	if path == "" {
		return toml.NewEncoder(stdout).Encode(doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(doc)
}

// statsFrom renders astar.Stats into the output document's stats
// section (§6: "expansions, queue peak, arena peak, preprocessor time").
func statsFrom(s astar.Stats) statsDoc {
	return statsDoc{
		Expansions:         s.Expanded,
		QueuePeak:          s.MaxOpenSize,
		ArenaPeak:          s.ArenaPeak,
		Bounded:            s.Bounded,
		PreprocessorTimeMS: s.PreprocessDuration.Milliseconds(),
	}
}

// templateSwitchDocs walks ops, tracking the running (r, q) cursor
// starting at focus's origin, so each OpTemplateSwitch can be reported
// with its anchor expressed as an absolute sequence position (§6: each
// template_switches entry carries "anchor, direction, primary_side,
// secondary_side, segment string").
func templateSwitchDocs(ops []result.Op, focus tsgraph.FocusRange) []templateSwitchDoc {
	var out []templateSwitchDoc
	r, q := focus.R0, focus.Q0
	for _, op := range ops {
		if op.Kind == result.OpTemplateSwitch {
			anchor := r
			if op.Switch.PrimarySide == costmodel.Q {
				anchor = q
			}
			out = append(out, templateSwitchDoc{
				Anchor:        anchor,
				Direction:     op.Switch.Dir.String(),
				PrimarySide:   op.Switch.PrimarySide.String(),
				SecondarySide: op.Switch.SecondarySide.String(),
				Segment:       fmt.Sprintf("%s%d,%d", op.Switch.Dir.String(), op.Switch.Offset, op.Switch.Len),
			})
		}
		r += op.RLen
		q += op.QLen
	}
	return out
}
