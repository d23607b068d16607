// core/window/window.go
package window

import (
	"cpgscan-core/sequence"
)

// Window is a half-open interval [begin,end) over a Sequence with
// incrementally maintained composition counts:
//
//	gcCount  – number of C/G symbols in [begin,end)
//	cpgCount – number of positions i in [begin,end-1) with
//	           seq[i]=='C' and seq[i+1]=='G'
//
// Every boundary move keeps both counts exact, which makes a full sliding
// scan amortized O(1) per position instead of O(size).
type Window struct {
	seq      sequence.Sequence
	begin    int
	end      int
	gcCount  int
	cpgCount int
}

// New builds a window over [begin, begin+size) with a full counting pass.
// Requires begin >= 0 and begin+size <= seq.Len().
func New(seq sequence.Sequence, begin, size int) *Window {
	w := &Window{seq: seq, begin: begin, end: begin + size}
	w.recount()
	return w
}

func (w *Window) recount() {
	w.gcCount, w.cpgCount = 0, 0
	for i := w.begin; i < w.end; i++ {
		if sequence.IsGC(w.seq.At(i)) {
			w.gcCount++
		}
		if i+1 < w.end && w.seq.At(i) == 'C' && w.seq.At(i+1) == 'G' {
			w.cpgCount++
		}
	}
}

func (w *Window) Begin() int    { return w.begin }
func (w *Window) End() int      { return w.end }
func (w *Window) Size() int     { return w.end - w.begin }
func (w *Window) GCCount() int  { return w.gcCount }
func (w *Window) CpGCount() int { return w.cpgCount }

// GCFraction is the proportion of C/G symbols in the window.
func (w *Window) GCFraction() float64 {
	return float64(w.gcCount) / float64(w.Size())
}

// ObsExp is the observed/expected CpG ratio, with the expectation taken
// under independence: (gc/2)^2 / size. A zero expectation yields 0.0, which
// naturally fails the island predicate; it is never an error.
func (w *Window) ObsExp() float64 {
	half := float64(w.gcCount) / 2
	expected := half * half / float64(w.Size())
	if expected == 0 {
		return 0.0
	}
	return float64(w.cpgCount) / expected
}

// IsIsland applies the threshold predicate to the current counts.
func (w *Window) IsIsland(gcThreshold, obsExpThreshold float64) bool {
	return w.GCFraction() > gcThreshold && w.ObsExp() > obsExpThreshold
}

// ExpandRight grows the window by one symbol on the right. It reports false
// and leaves the window unchanged when end is already at the sequence
// boundary.
func (w *Window) ExpandRight() bool {
	if w.end >= w.seq.Len() {
		return false
	}
	if sequence.IsGC(w.seq.At(w.end)) {
		w.gcCount++
	}
	if w.seq.At(w.end-1) == 'C' && w.seq.At(w.end) == 'G' {
		w.cpgCount++
	}
	w.end++
	return true
}

// ShrinkLeft drops the leftmost symbol and the dinucleotide starting there.
func (w *Window) ShrinkLeft() {
	if sequence.IsGC(w.seq.At(w.begin)) {
		w.gcCount--
	}
	if w.begin+1 < w.end && w.seq.At(w.begin) == 'C' && w.seq.At(w.begin+1) == 'G' {
		w.cpgCount--
	}
	w.begin++
}

// ExpandLeft grows the window by one symbol on the left.
func (w *Window) ExpandLeft() {
	w.begin--
	if sequence.IsGC(w.seq.At(w.begin)) {
		w.gcCount++
	}
	if w.begin+1 < w.end && w.seq.At(w.begin) == 'C' && w.seq.At(w.begin+1) == 'G' {
		w.cpgCount++
	}
}

// ShrinkRight drops the rightmost symbol and the dinucleotide ending there.
func (w *Window) ShrinkRight() {
	w.end--
	if sequence.IsGC(w.seq.At(w.end)) {
		w.gcCount--
	}
	if w.end > w.begin && w.seq.At(w.end-1) == 'C' && w.seq.At(w.end) == 'G' {
		w.cpgCount--
	}
}

// Join adopts other's right boundary and recomputes both counts over the
// resulting [begin,end) span. The two spans must overlap or abut; the jump
// bridges independently computed windows whose boundary statistics are not
// composable, so no incremental shortcut is taken.
func (w *Window) Join(other *Window) {
	w.end = other.end
	w.recount()
}
