// internal/writers/bed.go
package writers

import (
	"fmt"
	"io"

	"cpgscan/pkg/api"
)

func init() { Register("bed", writeBED) }

// writeBED emits BED4: islands are already 0-based half-open, which is what
// BED expects. Names number the islands in output order.
func writeBED(w io.Writer, list []api.IslandV1, _ bool) error {
	for i, isl := range list {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\tCpG_island_%d\n",
			isl.SequenceID, isl.Begin, isl.End, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}
