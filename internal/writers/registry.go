// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"cpgscan/pkg/api"
)

// WriteFunc renders a full island list in one format. header only applies
// to formats that have one.
type WriteFunc func(w io.Writer, list []api.IslandV1, header bool) error

var islandWriters = map[string]WriteFunc{}

// Register installs a writer for a format name (last registration wins).
// Called from init() in the per-format files.
func Register(format string, fn WriteFunc) { islandWriters[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(islandWriters))
	for f := range islandWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, list []api.IslandV1, header bool) error {
	fn, ok := islandWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}
