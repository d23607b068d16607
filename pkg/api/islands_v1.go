package api

// IslandV1 is the stable JSON/JSONL schema for called CpG islands.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type IslandV1 struct {
	SequenceID string  `json:"sequence_id"`
	Begin      int     `json:"begin"`
	End        int     `json:"end"`
	Length     int     `json:"length"`
	GCFraction float64 `json:"gc_fraction"`
	ObsExp     float64 `json:"obs_exp"`
	Source     string  `json:"source,omitempty"` // file path or accession id
}
