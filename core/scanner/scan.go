// core/scanner/scan.go
package scanner

import (
	"cpgscan-core/sequence"
	"cpgscan-core/window"
)

// Progress observes state transitions during a scan. begin and end describe
// the candidate window at the moment of the transition.
type Progress func(s State, begin, end int)

// Scan walks seq left to right and returns the raw, unmerged islands sorted
// by Begin. Returned islands never overlap, have Size >= p.MinWindowSize,
// and all satisfy the threshold predicate.
func Scan(seq sequence.Sequence, p Params) []Island {
	return ScanWithProgress(seq, p, nil)
}

// ScanWithProgress is Scan with a stage-transition hook, used by callers
// that trace the refinement of each candidate. A nil hook is allowed.
func ScanWithProgress(seq sequence.Sequence, p Params, hook Progress) []Island {
	note := func(s State, begin, end int) {
		if hook != nil {
			hook(s, begin, end)
		}
	}

	var islands []Island
	if seq.Len() < p.MinWindowSize {
		note(Done, 0, 0)
		return islands
	}

	pos := 0
	for {
		if pos+p.MinWindowSize > seq.Len() {
			note(Done, pos, pos)
			return islands
		}

		// Stage 1: slide a fixed-size window right until it qualifies.
		w := window.New(seq, pos, p.MinWindowSize)
		note(Seeking, w.Begin(), w.End())
		for !w.IsIsland(p.GCThreshold, p.ObsExpThreshold) {
			if !w.ExpandRight() {
				note(Done, w.Begin(), w.End())
				return islands
			}
			w.ShrinkLeft()
		}

		// Stage 2: absorb whole window-size blocks, stopping after the
		// first block that does not qualify on its own. The failing block
		// is included; stage 3 trims the over-extension back. Near the
		// sequence end the block is anchored so it ends exactly at Len().
		note(Extending, w.Begin(), w.End())
		edge := w
		for edge.End() < seq.Len() {
			start := edge.End()
			if start+p.MinWindowSize > seq.Len() {
				start = seq.Len() - p.MinWindowSize
			}
			edge = window.New(seq, start, p.MinWindowSize)
			if !edge.IsIsland(p.GCThreshold, p.ObsExpThreshold) {
				break
			}
		}
		if edge != w {
			w.Join(edge)
		}

		// Stage 3: slide a window-size probe over the right edge leftwards
		// until it qualifies again. The slide is bounded by the seed
		// position, where the predicate held during stage 1.
		note(RollingBack, w.Begin(), w.End())
		tail := window.New(seq, w.End()-p.MinWindowSize, p.MinWindowSize)
		for !tail.IsIsland(p.GCThreshold, p.ObsExpThreshold) && tail.Begin() > w.Begin() {
			tail.ExpandLeft()
			tail.ShrinkRight()
		}
		w.Join(tail)

		// Stage 4: shrink one symbol from each end until the whole span
		// qualifies. Dropping below the minimum size rejects the candidate
		// and resumes the search one position past its start.
		note(Shrinking, w.Begin(), w.End())
		rejected := false
		for !w.IsIsland(p.GCThreshold, p.ObsExpThreshold) {
			if w.Size()-2 < p.MinWindowSize {
				rejected = true
				break
			}
			w.ShrinkRight()
			w.ShrinkLeft()
		}
		if rejected {
			note(Rejected, w.Begin(), w.End())
			pos = w.Begin() + 1
			continue
		}

		note(Accepted, w.Begin(), w.End())
		islands = append(islands, islandFromWindow(w))
		pos = w.End()
	}
}
