// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"cpgscan-core/fasta"
	"cpgscan-core/scanner"
	"cpgscan-core/sequence"
	"cpgscan/internal/applog"
	"cpgscan/internal/cli"
	"cpgscan/internal/ncbi"
	"cpgscan/internal/seqsource"
	"cpgscan/internal/version"
	"cpgscan/internal/writers"
	"cpgscan/pkg/api"
)

// Exit codes: 0 islands found, 1 none found, 2 usage/input error,
// 3 output error.
const (
	exitOK      = 0
	exitNoMatch = 1
	exitUsage   = 2
	exitIO      = 3
)

// RunContext parses argv, scans every input sequence, and writes the final
// island list to stdout.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cpgscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cpgscan version %s\n", version.Version)
		return exitOK
	}

	log := applog.New(stderr, opts.Verbose, opts.Quiet)
	params := opts.Params()

	src := &seqsource.Source{
		Files:   opts.SeqFiles,
		Genomes: opts.Genomes,
		NCBI:    ncbi.NewClient(),
		Log:     log,
	}

	var all []api.IslandV1
	err = src.ForEach(parent, func(origin string, rec fasta.Record) error {
		seq := sequence.Bytes(rec.Seq)
		hook := scanner.Progress(nil)
		if opts.Verbose {
			hook = func(s scanner.State, begin, end int) {
				log.WithFields(logrus.Fields{
					"record": rec.ID,
					"state":  s.String(),
					"begin":  begin,
					"end":    end,
				}).Debug("scan")
			}
		}

		start := time.Now()
		raw := scanner.ScanWithProgress(seq, params, hook)
		islands := raw
		if !opts.NoMerge {
			islands = scanner.Merge(seq, raw, params.MergeGap)
		}
		log.WithFields(logrus.Fields{
			"record":  rec.ID,
			"length":  seq.Len(),
			"raw":     len(raw),
			"islands": len(islands),
			"took":    time.Since(start).Round(time.Millisecond),
		}).Info("record scanned")

		for _, isl := range islands {
			all = append(all, writers.ToIslandV1(rec.ID, origin, isl))
		}
		return nil
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if werr := writers.Write(opts.Output, outw, all, opts.Header); werr != nil {
		if writers.IsBrokenPipe(werr) {
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, werr)
		return exitIO
	}
	if ferr := outw.Flush(); ferr != nil {
		if writers.IsBrokenPipe(ferr) {
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, ferr)
		return exitIO
	}

	if len(all) == 0 {
		return exitNoMatch
	}
	return exitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
