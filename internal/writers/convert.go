// internal/writers/convert.go
package writers

import (
	"cpgscan-core/scanner"
	"cpgscan/pkg/api"
)

// ToIslandV1 converts a called island to the stable wire schema. seqID is
// the FASTA record ID, source the file path or accession it came from.
func ToIslandV1(seqID, source string, isl scanner.Island) api.IslandV1 {
	return api.IslandV1{
		SequenceID: seqID,
		Begin:      isl.Begin,
		End:        isl.End,
		Length:     isl.Size,
		GCFraction: isl.GCFraction,
		ObsExp:     isl.ObsExp,
		Source:     source,
	}
}
