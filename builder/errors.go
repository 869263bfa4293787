// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site (builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a city count below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidWeightRange indicates a weight range whose minimum exceeds its maximum.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrInvalidProbability indicates a road density outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// builderErrorf wraps a sentinel with the constructor name and details,
// producing "<method>: <sentinel>: <details>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
