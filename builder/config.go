// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = LetterIDFn        ("A","B",...,"Z","AA",...)
//   • rng     = seeded with defaultSeed
//   • weights = uniform in [1, 50]
//   • density = 1                 (complete network)

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed      int64   = 1
	defaultMinWeight int64   = 1
	defaultMaxWeight int64   = 50
	defaultDensity   float64 = 1
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	minWeight int64
	maxWeight int64
	density   float64
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      LetterIDFn,
		minWeight: defaultMinWeight,
		maxWeight: defaultMaxWeight,
		density:   defaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
