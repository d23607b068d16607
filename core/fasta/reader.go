// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is a single parsed FASTA sequence, fully materialized.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll parses every FASTA record from r. Sequence lines are
// concatenated, whitespace-trimmed and uppercased (island counting compares
// symbols exactly); the record ID is the first whitespace-delimited token
// of the header line.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		id   string
		seq  = make([]byte, 0, 1<<20)
		open bool
	)
	flush := func() {
		if !open {
			return
		}
		recs = append(recs, Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = headerID(line[1:])
			open = true
			seq = seq[:0]
			continue
		}
		if !open {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

func headerID(b []byte) string {
	fields := bytes.Fields(b)
	if len(fields) == 0 {
		return ""
	}
	return string(fields[0])
}

// ReadPath opens path and parses all records. "-" reads stdin; gzip input
// is detected transparently.
func ReadPath(path string) ([]Record, error) {
	return ReadPathCtx(context.Background(), path)
}

// ReadPathCtx is ReadPath honoring an already-cancelled context before any
// file is touched. Records are materialized whole, so there is no
// mid-record cancellation point.
func ReadPathCtx(ctx context.Context, path string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
