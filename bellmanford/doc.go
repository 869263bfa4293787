// Package bellmanford computes single-source shortest paths with the
// Bellman-Ford algorithm over an immutable core.EdgeStore, detects
// negative-weight cycles and memoises successful runs per source.
//
// Overview:
//
//   - Engine.Compute(source) relaxes every edge exactly V-1 times, then makes
//     one more pass. If any edge still relaxes, a negative-weight cycle is
//     reachable from source and a *NegativeCycleError is returned.
//   - Successful distance vectors are stored in the Engine's Cache. A repeated
//     query for the same source is answered from the cache in O(V), flagged
//     with Result.FromCache, and carries no predecessor vector.
//   - Negative weights are supported; only negative cycles make distances
//     undefined.
//
// When to use:
//
//   - Small to medium road networks where some "roads" have negative cost
//     (rebates, tolls refunded, energy recovered) and Dijkstra does not apply.
//   - Interactive sessions: build the graph once, query many sources.
//
// Performance and complexity:
//
//   - Time:  O(V·E) per uncached Compute, O(V) per cached Compute.
//   - Space: O(V) per result; the cache holds at most V vectors.
//   - All V-1 passes always run. There is no early exit on convergence, which
//     keeps the work per query fixed and the pass count observable.
//
// Numeric semantics:
//
//   - Distances are int64. core.Unreachable (math.MaxInt64) marks +∞.
//   - A relaxation whose sum would leave the int64 range is skipped, so the
//     sentinel always stays larger than any real distance.
//
// Error handling (sentinel errors):
//
//   - ErrNilStore:       NewEngine was given a nil *core.EdgeStore.
//   - core.ErrInvalidVertex: Compute was given a source outside [0, V).
//   - ErrNegativeCycle:  matched by *NegativeCycleError via errors.Is; use
//     errors.As to read the unreliable in-progress distances for diagnostics.
//     Those distances are never cached.
//
// Cache obligations:
//
//   - The cache has no notion of graph versions. It stays valid because the
//     EdgeStore is immutable. If a caller swaps in a different edge set, it
//     must build a new Engine or call Engine.Reset.
//
// Thread safety:
//
//   - Engine and Cache do no locking. Serialise all access to one Engine
//     (including Compute, which writes the cache) when sharing it between
//     goroutines.
//
// Example:
//
//	eng, _ := bellmanford.NewEngine(store)
//	res, err := eng.Compute(0)
//	var nc *bellmanford.NegativeCycleError
//	switch {
//	case errors.As(err, &nc):
//	    // report, nc.Distances are diagnostic only
//	case err != nil:
//	    return err
//	}
//	fmt.Println(res.Distances, res.FromCache)
package bellmanford
