// core/scanner/params.go
package scanner

import "fmt"

// Defaults follow the classic threshold criteria: 200 bp windows, >50% GC,
// observed/expected CpG above 0.6, and a 100 bp coalescing gap.
const (
	DefaultMinWindowSize   = 200
	DefaultGCThreshold     = 0.5
	DefaultObsExpThreshold = 0.6
	DefaultMergeGap        = 100
)

// Params carries the tunable thresholds of the island caller. There is no
// usable zero value; start from Default and override.
type Params struct {
	MinWindowSize   int     // seed window size and minimum island length
	GCThreshold     float64 // GC fraction must exceed this
	ObsExpThreshold float64 // observed/expected CpG ratio must exceed this
	MergeGap        int     // islands closer than this are coalesced
}

// Default returns the standard parameter set.
func Default() Params {
	return Params{
		MinWindowSize:   DefaultMinWindowSize,
		GCThreshold:     DefaultGCThreshold,
		ObsExpThreshold: DefaultObsExpThreshold,
		MergeGap:        DefaultMergeGap,
	}
}

// Validate rejects parameter sets the scan cannot run with.
func (p Params) Validate() error {
	if p.MinWindowSize < 2 {
		return fmt.Errorf("window size must be at least 2, got %d", p.MinWindowSize)
	}
	if p.GCThreshold <= 0 || p.GCThreshold >= 1 {
		return fmt.Errorf("gc threshold must be in (0,1), got %g", p.GCThreshold)
	}
	if p.ObsExpThreshold <= 0 {
		return fmt.Errorf("obs/exp threshold must be positive, got %g", p.ObsExpThreshold)
	}
	if p.MergeGap < 0 {
		return fmt.Errorf("merge gap must be non-negative, got %d", p.MergeGap)
	}
	return nil
}
