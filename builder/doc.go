// Package builder generates city road networks for demos, fixtures and load
// tests: a name table plus a directed edge list ready for core.NewEdgeStore.
//
// What it builds:
//
//   - RandomNetwork(n, opts...) – n cities; every ordered pair (i, j), i ≠ j,
//     gets a road with probability Density (default 1, a complete network)
//     and a weight drawn uniformly from [Min, Max] (default 1..50).
//   - Names come from an IDFn; the default LetterIDFn yields A, B, …, Z, AA, AB, …
//
// Determinism:
//
//   - All randomness flows through one *rand.Rand taken from WithSeed or
//     WithRand. Seed 0 maps to a fixed default seed, so an unseeded call is
//     still reproducible.
//   - Pairs are visited in row-major order (i, then j), one draw for density
//     (only when Density < 1) and one for the weight.
//
// Errors:
//
//	ErrTooFewVertices    – n < 1.
//	ErrInvalidWeightRange – Min > Max.
//	ErrInvalidProbability – Density outside [0, 1].
//
// Option constructors panic on meaningless arguments (nil functions, nil RNG);
// builders themselves only return errors.
package builder
