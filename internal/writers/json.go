// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"cpgscan/pkg/api"
)

func init() {
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
}

// writeJSON writes a single pretty-indented JSON array of v1 islands.
func writeJSON(w io.Writer, list []api.IslandV1, _ bool) error {
	if list == nil {
		list = []api.IslandV1{} // emit [] rather than null
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// writeJSONL streams each island as one JSON line.
func writeJSONL(w io.Writer, list []api.IslandV1, _ bool) error {
	enc := json.NewEncoder(w)
	for _, isl := range list {
		if err := enc.Encode(isl); err != nil {
			return err
		}
	}
	return nil
}
