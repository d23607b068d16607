// core/sequence/sequence.go
package sequence

// Sequence is a fixed-length, randomly accessible run of nucleotide
// symbols. Implementations must not change for the duration of a scan.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Bytes adapts a raw byte slice to the Sequence interface.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) byte { return b[i] }

// IsGC reports whether b is cytosine or guanine. Comparison is exact;
// readers normalize case before the sequence reaches the scan.
func IsGC(b byte) bool { return b == 'C' || b == 'G' }
