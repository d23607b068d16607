// internal/seqsource/source.go
package seqsource

import (
	"context"

	"github.com/sirupsen/logrus"

	"cpgscan-core/fasta"
	"cpgscan/internal/ncbi"
)

// Source resolves the CLI inputs into fully materialized sequence records:
// local FASTA paths first, then remote NCBI accessions, each in the order
// given. The whole resolution is sequential; the scan core is too.
type Source struct {
	Files   []string
	Genomes []string
	NCBI    *ncbi.Client
	Log     *logrus.Logger
}

// ForEach passes every input record to visit along with its origin (file
// path or accession id). An error from visit aborts immediately. An input
// that fails to open or fetch is reported once scanning of the remaining
// inputs has been attempted; the first such error wins.
func (s *Source) ForEach(ctx context.Context, visit func(origin string, rec fasta.Record) error) error {
	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, path := range s.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		recs, err := fasta.ReadPathCtx(ctx, path)
		if err != nil {
			keep(err)
			continue
		}
		s.Log.WithFields(logrus.Fields{"file": path, "records": len(recs)}).Debug("read FASTA")
		for _, rec := range recs {
			if err := visit(path, rec); err != nil {
				return err
			}
		}
	}

	for _, id := range s.Genomes {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := s.NCBI.Fetch(ctx, id)
		if err != nil {
			keep(err)
			continue
		}
		s.Log.WithFields(logrus.Fields{"accession": id, "length": len(rec.Seq)}).Debug("fetched genome")
		if err := visit(id, rec); err != nil {
			return err
		}
	}
	return firstErr
}
