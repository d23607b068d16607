package seqsource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"cpgscan-core/fasta"
	"cpgscan/internal/ncbi"
)

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeFasta(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestForEachFilesInOrder(t *testing.T) {
	a := writeFasta(t, "a.fa", ">r1\nACGT\n>r2\nCGCG\n")
	src := &Source{Files: []string{a}, Log: quietLog()}

	var ids []string
	err := src.ForEach(context.Background(), func(origin string, rec fasta.Record) error {
		require.Equal(t, a, origin)
		ids = append(ids, rec.ID)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"r1", "r2"}, ids)
}

func TestForEachMissingFileStillVisitsRest(t *testing.T) {
	b := writeFasta(t, "b.fa", ">ok\nACGT\n")
	src := &Source{Files: []string{"missing.fa", b}, Log: quietLog()}

	var visited int
	err := src.ForEach(context.Background(), func(string, fasta.Record) error {
		visited++
		return nil
	})
	require.Error(t, err) // missing.fa reported
	require.Equal(t, 1, visited)
}

func TestForEachGenomes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(">" + r.URL.Query().Get("id") + "\nCGCGCG\n"))
	}))
	t.Cleanup(srv.Close)

	src := &Source{
		Genomes: []string{"ACC.1"},
		NCBI:    &ncbi.Client{HTTP: srv.Client(), BaseURL: srv.URL},
		Log:     quietLog(),
	}
	var got []fasta.Record
	err := src.ForEach(context.Background(), func(origin string, rec fasta.Record) error {
		require.Equal(t, "ACC.1", origin)
		got = append(got, rec)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "CGCGCG", string(got[0].Seq))
}

func TestForEachVisitErrorAborts(t *testing.T) {
	a := writeFasta(t, "a.fa", ">r1\nACGT\n>r2\nCGCG\n")
	src := &Source{Files: []string{a}, Log: quietLog()}

	calls := 0
	err := src.ForEach(context.Background(), func(string, fasta.Record) error {
		calls++
		return io.ErrUnexpectedEOF
	})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 1, calls)
}

func TestForEachCancelledContext(t *testing.T) {
	a := writeFasta(t, "a.fa", ">r1\nACGT\n")
	src := &Source{Files: []string{a}, Log: quietLog()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := src.ForEach(ctx, func(string, fasta.Record) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
