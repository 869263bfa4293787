// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// impl_random.go — RandomNetwork(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Every ordered pair (i, j), i ≠ j, is considered once in row-major order.
//   • A pair gets a road with probability density; density 1 skips the draw.
//   • Weight = min + rng.Int63n(max-min+1).
//
// Complexity:
//   • Time:  O(n²).
//   • Space: O(n²) for the edge list.

package builder

import (
	"math"

	"github.com/katalvlaran/routeplan/core"
)

const (
	methodRandomNetwork = "RandomNetwork"
	minNetworkCities    = 1
)

// Network is a generated set of cities and roads.
type Network struct {
	Names []string    // Names[i] is the name of vertex i
	Edges []core.Edge // directed roads
}

// Roads returns the edges expressed with city names.
func (n Network) Roads() []core.Road {
	out := make([]core.Road, len(n.Edges))
	for i, e := range n.Edges {
		out[i] = core.Road{From: n.Names[e.From], To: n.Names[e.To], Weight: e.Weight}
	}

	return out
}

// Store freezes the network into an edge store.
func (n Network) Store() (*core.EdgeStore, error) {
	return core.NewEdgeStore(len(n.Names), n.Edges)
}

// RandomNetwork builds n cities and random directed roads between them.
func RandomNetwork(n int, opts ...BuilderOption) (Network, error) {
	cfg := newBuilderConfig(opts...)

	if n < minNetworkCities {
		return Network{}, builderErrorf(methodRandomNetwork, ErrTooFewVertices, "n=%d < %d", n, minNetworkCities)
	}
	if cfg.minWeight > cfg.maxWeight {
		return Network{}, builderErrorf(methodRandomNetwork, ErrInvalidWeightRange, "min=%d > max=%d", cfg.minWeight, cfg.maxWeight)
	}
	if math.IsNaN(cfg.density) || cfg.density < 0 || cfg.density > 1 {
		return Network{}, builderErrorf(methodRandomNetwork, ErrInvalidProbability, "density=%g", cfg.density)
	}

	// span is computed in uint64 so [MinInt64, MaxInt64] does not overflow.
	span := uint64(cfg.maxWeight-cfg.minWeight) + 1

	net := Network{
		Names: Names(n, cfg.idFn),
		Edges: make([]core.Edge, 0, n*(n-1)),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.density < 1 && cfg.rng.Float64() >= cfg.density {
				continue
			}
			net.Edges = append(net.Edges, core.Edge{
				From:   i,
				To:     j,
				Weight: cfg.minWeight + drawOffset(cfg, span),
			})
		}
	}

	return net, nil
}

// drawOffset returns a value in [0, span). span == 0 means the full 64-bit
// range; spans wider than Int63n accepts fall back to a modulo draw.
func drawOffset(cfg builderConfig, span uint64) int64 {
	switch {
	case span == 0:
		return int64(cfg.rng.Uint64())
	case span > math.MaxInt64:
		return int64(cfg.rng.Uint64() % span)
	default:
		return cfg.rng.Int63n(int64(span))
	}
}
