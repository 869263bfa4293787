package wire

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// ErrMalformed indicates input that does not follow the wire grammar.
var ErrMalformed = errors.New("wire: malformed input")

// Fixed strings of the response format.
const (
	SourceHeader         = "Source City:"
	Rule                 = "------------------------------------"
	Infinity             = "INF"
	NegativeCycleWarning = "Warning: Graph contains negative weight cycle!"
)

// Request is a decoded backend request.
type Request struct {
	Cities *core.Cities
	Store  *core.EdgeStore
	Source int
}

// malformed wraps ErrMalformed with a 1-based line number.
func malformed(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}
