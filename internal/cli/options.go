// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"cpgscan-core/scanner"
	"cpgscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string // FASTA paths ("-" = stdin), also accepted positionally
	Genomes  []string // NCBI nuccore accession ids

	// Algorithm thresholds
	WindowSize      int
	GCThreshold     float64
	ObsExpThreshold float64
	MergeGap        int
	NoMerge         bool

	// Output
	Output string
	Header bool // true unless --no-header

	// Logging
	Quiet   bool
	Verbose bool

	Version bool
}

type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: CpG island finder

Locates regions of elevated GC content and observed/expected CpG ratio in
nucleotide sequences (FASTA files or NCBI accessions).

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable, '-' = stdin; also positional) [*]")
	var genomes stringSlice
	fs.Var(&genomes, "genome", "NCBI nuccore accession id to fetch (repeatable) [*]")

	fs.IntVar(&opt.WindowSize, "window-size", scanner.DefaultMinWindowSize, "seed window size and minimum island length [200]")
	fs.Float64Var(&opt.GCThreshold, "gc", scanner.DefaultGCThreshold, "minimum GC fraction (exclusive) [0.5]")
	fs.Float64Var(&opt.ObsExpThreshold, "obs-exp", scanner.DefaultObsExpThreshold, "minimum observed/expected CpG ratio (exclusive) [0.6]")
	fs.IntVar(&opt.MergeGap, "merge-gap", scanner.DefaultMergeGap, "coalesce islands separated by fewer symbols than this [100]")
	fs.BoolVar(&opt.NoMerge, "no-merge", false, "report raw islands without the coalescing pass [false]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | bed [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log scanner stage transitions [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = append(seq, fs.Args()...)
	opt.Genomes = genomes
	opt.Header = !noHeader

	// Validation
	if len(opt.SeqFiles) == 0 && len(opt.Genomes) == 0 {
		return opt, errors.New("no input: provide FASTA file(s) or --genome")
	}
	switch opt.Output {
	case "text", "json", "jsonl", "bed":
	default:
		return opt, fmt.Errorf("invalid --output %q (expected text, json, jsonl, or bed)", opt.Output)
	}
	if err := opt.Params().Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

// Params maps the threshold flags onto the scanner configuration.
func (o Options) Params() scanner.Params {
	return scanner.Params{
		MinWindowSize:   o.WindowSize,
		GCThreshold:     o.GCThreshold,
		ObsExpThreshold: o.ObsExpThreshold,
		MergeGap:        o.MergeGap,
	}
}
