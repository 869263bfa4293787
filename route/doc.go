// Package route rebuilds concrete shortest paths from a distance vector and
// verifies that the rebuilt path weighs what the distance vector claims.
//
// Two modes are supported:
//
//   - Predecessor mode (FromPredecessors): follow predecessor links from the
//     destination back to the source. Used right after a fresh
//     bellmanford.Engine.Compute, which returns predecessors.
//   - Distance mode (FromDistances): no predecessors are available (a cached
//     result, or distances that crossed a process boundary). At each step the
//     edge store is scanned in order for the first edge (p, current, w) with
//     dist[p] + w == dist[current]. When several optimal paths exist the first
//     match wins; no canonical path is promised.
//
// Reconstruct picks the mode from whether a predecessor vector was passed.
//
// Outcomes:
//
//   - Kind == Found: Vertices runs source → destination, Weights holds one
//     entry per hop and Total their sum. Mismatch is set when Total differs
//     from Distance; it is a diagnostic, never an error.
//   - Kind == Unreachable: dist[destination] is core.Unreachable. Vertices is
//     the placeholder [source, destination]; it is not a real path.
//   - ErrReconstructionFailed: a dead end, or the 2·V step bound was hit.
//     Predecessor mode does not fail on consistent engine output. Distance
//     mode can: around a zero-weight cycle the first matching edge may lead
//     back into the cycle instead of toward the source.
//
// All stops at the first failing destination. Collect keeps going and
// reports the failure as a Path of Kind Failed, so one bad destination does
// not hide the others.
//
// The package never logs; rendering and warnings are left to callers.
package route
