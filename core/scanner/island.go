// core/scanner/island.go
package scanner

import "cpgscan-core/window"

// Island is a window that survived all refinement stages. The interval is
// half-open and 0-indexed; the statistics are exact for [Begin,End).
type Island struct {
	Begin      int
	End        int
	Size       int
	GCFraction float64
	ObsExp     float64
}

func islandFromWindow(w *window.Window) Island {
	return Island{
		Begin:      w.Begin(),
		End:        w.End(),
		Size:       w.Size(),
		GCFraction: w.GCFraction(),
		ObsExp:     w.ObsExp(),
	}
}
