package main

// outputDoc is the root of the -o <output.toml> document (§6 "Output
// format"): inputs, the cost model's content digest, the alignment
// itself (nil when the run failed before producing one), and search
// statistics.
type outputDoc struct {
	Inputs          inputsDoc     `toml:"inputs"`
	CostModelDigest string        `toml:"cost_model_digest"`
	Alignment       *alignmentDoc `toml:"alignment,omitempty"`
	Stats           statsDoc      `toml:"stats"`
}

type inputsDoc struct {
	Reference string `toml:"reference"`
	Query     string `toml:"query"`
	Alphabet  string `toml:"alphabet"`
}

type alignmentDoc struct {
	Cost             float64             `toml:"cost"`
	Cigar            string              `toml:"cigar"`
	TemplateSwitches []templateSwitchDoc `toml:"template_switches"`
}

type templateSwitchDoc struct {
	Anchor        int    `toml:"anchor"`
	Direction     string `toml:"direction"`
	PrimarySide   string `toml:"primary_side"`
	SecondarySide string `toml:"secondary_side"`
	Segment       string `toml:"segment"`
}

type statsDoc struct {
	Expansions         int   `toml:"expansions"`
	QueuePeak          int   `toml:"queue_peak"`
	ArenaPeak          int   `toml:"arena_peak"`
	Bounded            bool  `toml:"bounded"`
	PreprocessorTimeMS int64 `toml:"preprocessor_time_ms"`
}
