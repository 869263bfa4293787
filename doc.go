// Package routeplan computes shortest routes from one city to every other
// city over a directed road network whose distances may be negative.
//
// 🚀 What is routeplan?
//
//	A small engine plus the plumbing around it:
//		• core/        – immutable edge store, city name table, fingerprint
//		• bellmanford/ – single-source shortest paths, negative-cycle detection,
//		                 per-source result cache
//		• route/       – path reconstruction with weight verification
//		• builder/     – deterministic random networks and letter city names
//		• wire/        – text request/response protocol, distance matrix, CSV
//		• config/      – TOML configuration and zap logger setup
//		• server/      – HTTP API (gorilla/mux) with Prometheus metrics
//		• cmd/routeplan – pipe, serve and random subcommands
//
// ✨ Guarantees
//
//   - Exactly V-1 relaxation passes and one detection pass per computation.
//   - Integer distances with overflow-guarded relaxation; core.Unreachable
//     marks cities with no route.
//   - A reachable negative cycle is reported as an error and never cached.
//   - Cached vectors are copies; callers may mutate what they receive.
//
// Quick example (A→B 4, B→C 3, A→C 10, source A):
//
//	    A ──4──▶ B ──3──▶ C
//	    └───────10───────▶┘
//
//	distances: A 0, B 4, C 7   path to C: A -> B -> C (7)
//
//	go install github.com/katalvlaran/routeplan/cmd/routeplan@latest
//	routeplan random -cities 5 | routeplan pipe -paths
package routeplan
