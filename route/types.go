package route

import "errors"

// Sentinel errors returned by the reconstructor.
var (
	// ErrNilStore indicates a nil *core.EdgeStore.
	ErrNilStore = errors.New("route: edge store is nil")

	// ErrDimensionMismatch indicates a distance or predecessor vector whose
	// length differs from the store's vertex count.
	ErrDimensionMismatch = errors.New("route: vector length does not match vertex count")

	// ErrReconstructionFailed indicates the backward walk could not reach the
	// source: a dead end, or more than 2·V steps.
	ErrReconstructionFailed = errors.New("route: path reconstruction failed")
)

// Kind classifies a reconstruction outcome.
type Kind int

const (
	// Found means Vertices is a real source → destination path.
	Found Kind = iota

	// Unreachable means the destination has no finite distance.
	Unreachable

	// Failed means the destination is reachable but the backward walk did
	// not arrive at the source. Err holds the cause.
	Failed
)

// String returns "found", "unreachable" or "failed".
func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Path is one reconstructed route.
type Path struct {
	Kind        Kind
	Source      int
	Destination int
	Vertices    []int   // source … destination; placeholder when Unreachable
	Weights     []int64 // per hop, len(Vertices)-1 when Found
	Total       int64   // sum of Weights
	Distance    int64   // dist[destination] as reported
	Mismatch    bool    // Total != Distance
	Err         error   // set when Kind == Failed
}

// Hops returns the number of edges on the path (0 unless Found).
func (p Path) Hops() int { return len(p.Weights) }
