package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadAllMultiRecord(t *testing.T) {
	in := `>chr1 some description
acgtACGT
CGCG

>chr2
tttt
`
	recs, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "chr1" || recs[1].ID != "chr2" {
		t.Errorf("unexpected IDs: %q %q", recs[0].ID, recs[1].ID)
	}
	if string(recs[0].Seq) != "ACGTACGTCGCG" {
		t.Errorf("sequence not normalized: %q", recs[0].Seq)
	}
	if string(recs[1].Seq) != "TTTT" {
		t.Errorf("unexpected second sequence: %q", recs[1].Seq)
	}
}

func TestReadAllDataBeforeHeader(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("ACGT\n>late\nACGT\n")); err == nil {
		t.Fatal("expected error for sequence data before first header")
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0", len(recs))
	}
}

func TestReadPathGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">gz\nacgcg\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadPath(path)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "gz" || string(recs[0].Seq) != "ACGCG" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadPathMissingFile(t *testing.T) {
	if _, err := ReadPath(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
