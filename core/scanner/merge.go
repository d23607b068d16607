// core/scanner/merge.go
package scanner

import (
	"cpgscan-core/sequence"
	"cpgscan-core/window"
)

// Merge coalesces islands whose separating gap is smaller than mergeGap
// symbols. Input must be sorted by Begin and non-overlapping, as produced
// by Scan. Absorbing a neighbor recomputes the statistics over the whole
// bridged span, gap region included, so merged records stay exact. The pass
// is idempotent: every surviving gap is at least mergeGap wide.
func Merge(seq sequence.Sequence, islands []Island, mergeGap int) []Island {
	if len(islands) == 0 {
		return nil
	}
	merged := []Island{islands[0]}
	for _, next := range islands[1:] {
		last := &merged[len(merged)-1]
		if next.Begin-last.End < mergeGap {
			w := window.New(seq, last.Begin, last.End-last.Begin)
			w.Join(window.New(seq, next.Begin, next.End-next.Begin))
			*last = islandFromWindow(w)
		} else {
			merged = append(merged, next)
		}
	}
	return merged
}
