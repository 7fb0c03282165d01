package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

const testConfig = `
left_flank_length = 0
right_flank_length = 0

[base_costs]
rrf = 4
rqf = 4
qrf = 4
qqf = 4
rrr = 5
rqr = 5
qrr = 5
qqr = 5

[function Offset]
breakpoints = -inf, -10, 10, inf
values = inf, 0, inf

[function Length]
breakpoints = -inf, 1, 8, inf
values = inf, 1, inf

[function LengthDifference]
breakpoints = -inf, -2, 2, inf
values = inf, 0, inf

[function ForwardAntiPrimaryGap]
breakpoints = -inf, 0, 10, inf
values = 0, 1, inf

[function ReverseAntiPrimaryGap]
breakpoints = -inf, 0, 10, inf
values = 0, 1, inf

[edit primary]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:2, C:2, G:2, T:2

[edit secondary_forward]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit secondary_reverse]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit left_flank]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1

[edit right_flank]
A C G T
A 0 1 1 1
C 1 0 1 1
G 1 1 0 1
T 1 1 1 0
gap_open = A:3, C:3, G:3, T:3
gap_extend = A:1, C:1, G:1, T:1
`

// writeFixture lays out a configuration-directory and a combined FASTA
// file (two records, r and q) under t.TempDir, returning their paths.
func writeFixture(t *testing.T, r, q string) (configDir, fastaPath string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.tsa"), []byte(testConfig), 0o644); err != nil {
		t.Fatalf("writing config.tsa: %v", err)
	}
	fasta := ">R\n" + r + "\n>Q\n" + q + "\n"
	fastaPath = filepath.Join(dir, "seqs.fasta")
	if err := os.WriteFile(fastaPath, []byte(fasta), 0o644); err != nil {
		t.Fatalf("writing fasta: %v", err)
	}
	return dir, fastaPath
}

// TestRun_ExactMatch covers §8 scenario 1: R=Q="ACGT" must align with
// zero cost, no template switches.
func TestRun_ExactMatch(t *testing.T) {
	configDir, fastaPath := writeFixture(t, "ACGT", "ACGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "dna",
		"--configuration-directory", configDir,
		"--rq-ranges", "R0..4Q0..4",
		"--no-ts",
		fastaPath,
	}, &out)
	if code != exitSuccess {
		t.Fatalf("run() = %d, want %d; output: %s", code, exitSuccess, out.String())
	}

	var doc outputDoc
	if _, err := toml.Decode(out.String(), &doc); err != nil {
		t.Fatalf("decoding output TOML: %v\n%s", err, out.String())
	}
	if doc.Alignment == nil {
		t.Fatalf("expected an alignment section, got none: %s", out.String())
	}
	if doc.Alignment.Cost != 0 {
		t.Fatalf("cost = %v, want 0", doc.Alignment.Cost)
	}
	if doc.Alignment.Cigar != "4M" {
		t.Fatalf("cigar = %q, want 4M", doc.Alignment.Cigar)
	}
	if len(doc.Alignment.TemplateSwitches) != 0 {
		t.Fatalf("expected no template switches, got %v", doc.Alignment.TemplateSwitches)
	}
}

// TestRun_SingleDeletion covers §8 scenario 2: R="ACGT", Q="AGT" costs
// exactly GapOpen[C] = 3, with CIGAR 1M1D2M.
func TestRun_SingleDeletion(t *testing.T) {
	configDir, fastaPath := writeFixture(t, "ACGT", "AGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "dna",
		"--configuration-directory", configDir,
		"--rq-ranges", "R0..4Q0..3",
		"--no-ts",
		fastaPath,
	}, &out)
	if code != exitSuccess {
		t.Fatalf("run() = %d, want %d; output: %s", code, exitSuccess, out.String())
	}

	var doc outputDoc
	if _, err := toml.Decode(out.String(), &doc); err != nil {
		t.Fatalf("decoding output TOML: %v\n%s", err, out.String())
	}
	if doc.Alignment.Cost != 3 {
		t.Fatalf("cost = %v, want 3", doc.Alignment.Cost)
	}
	if doc.Alignment.Cigar != "1M1D2M" {
		t.Fatalf("cigar = %q, want 1M1D2M", doc.Alignment.Cigar)
	}
	_ = fastaPath
}

// TestRun_MissingConfigurationDirectory exercises the configuration
// error exit code (2): no --configuration-directory given.
func TestRun_MissingConfigurationDirectory(t *testing.T) {
	_, fastaPath := writeFixture(t, "ACGT", "ACGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "dna",
		"--rq-ranges", "R0..4Q0..4",
		"--no-ts",
		fastaPath,
	}, &out)
	if code != exitConfigurationError {
		t.Fatalf("run() = %d, want %d", code, exitConfigurationError)
	}
}

// TestRun_UnknownAlphabet exercises the configuration error path for a
// malformed --alphabet value.
func TestRun_UnknownAlphabet(t *testing.T) {
	configDir, fastaPath := writeFixture(t, "ACGT", "ACGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "klingon",
		"--configuration-directory", configDir,
		"--rq-ranges", "R0..4Q0..4",
		fastaPath,
	}, &out)
	if code != exitConfigurationError {
		t.Fatalf("run() = %d, want %d", code, exitConfigurationError)
	}
}

// TestRun_MissingFocusRange exercises the input-error exit code (1):
// neither --rq-ranges nor --use-embedded-rq-ranges was given.
func TestRun_MissingFocusRange(t *testing.T) {
	configDir, fastaPath := writeFixture(t, "ACGT", "ACGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "dna",
		"--configuration-directory", configDir,
		fastaPath,
	}, &out)
	if code != exitInputError {
		t.Fatalf("run() = %d, want %d", code, exitInputError)
	}
}

// TestRun_MemoryExhausted exercises the memory-exhausted exit code (3):
// a one-byte --memory-limit stops the search at its first expansion, so
// the output has no alignment section but still reports a non-zero
// arena peak.
func TestRun_MemoryExhausted(t *testing.T) {
	configDir, fastaPath := writeFixture(t, "ACGTACGTACGT", "ACGTACGTACGT")
	var out bytes.Buffer
	code := run([]string{
		"--alphabet", "dna",
		"--configuration-directory", configDir,
		"--rq-ranges", "R0..12Q0..12",
		"--no-ts",
		"--memory-limit", "1",
		fastaPath,
	}, &out)
	if code != exitMemoryExhausted {
		t.Fatalf("run() = %d, want %d; output: %s", code, exitMemoryExhausted, out.String())
	}

	var doc outputDoc
	if _, err := toml.Decode(out.String(), &doc); err != nil {
		t.Fatalf("decoding output TOML: %v\n%s", err, out.String())
	}
	if doc.Alignment != nil {
		t.Fatalf("expected no alignment section on failure, got %v", doc.Alignment)
	}
	if doc.Stats.ArenaPeak == 0 {
		t.Fatalf("expected non-zero arena peak stat even on failure")
	}
}
