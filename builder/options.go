// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil arguments. Range checks on numbers
//     happen in the builder so they surface as errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed seeds the RNG. Seed 0 selects the package default seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightRange sets the inclusive range road weights are drawn from.
// Negative bounds are allowed; min > max is reported by the builder.
func WithWeightRange(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		c.minWeight = min
		c.maxWeight = max
	}
}

// WithDensity sets the probability that an ordered pair gets a road.
func WithDensity(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithIDScheme sets the city naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}
