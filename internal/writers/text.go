// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"cpgscan/pkg/api"
)

const textHeader = "sequence_id\tbegin\tend\tlength\tgc_fraction\tobs_exp"

func init() { Register("text", writeText) }

// writeText prints one TSV line per island.
func writeText(w io.Writer, list []api.IslandV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, textHeader); err != nil {
			return err
		}
	}
	for _, isl := range list {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.4f\t%.4f\n",
			isl.SequenceID, isl.Begin, isl.End, isl.Length,
			isl.GCFraction, isl.ObsExp,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
