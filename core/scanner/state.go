// core/scanner/state.go
package scanner

// State identifies the refinement stage the scanner is in for the current
// candidate. Accepted/Rejected are per-candidate outcomes; Done terminates
// the whole scan.
type State int

const (
	Seeking State = iota
	Extending
	RollingBack
	Shrinking
	Accepted
	Rejected
	Done
)

func (s State) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case Extending:
		return "extending"
	case RollingBack:
		return "rolling-back"
	case Shrinking:
		return "shrinking"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
