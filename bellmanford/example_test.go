// Package bellmanford_test provides runnable examples for the engine.
package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/core"
)

// ExampleEngine_Compute runs a query twice; the second answer comes from the cache.
func ExampleEngine_Compute() {
	// A→B(4), B→C(3), A→C(10)
	store, _ := core.NewEdgeStore(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 10},
	})
	eng, _ := bellmanford.NewEngine(store)

	res, err := eng.Compute(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances, res.Predecessors, res.FromCache)

	res, _ = eng.Compute(0)
	fmt.Println(res.Distances, res.Predecessors == nil, res.FromCache)
	// Output:
	// [0 4 7] [-1 0 1] false
	// [0 4 7] true true
}

// ExampleNegativeCycleError shows how to detect a negative cycle.
func ExampleNegativeCycleError() {
	store, _ := core.NewEdgeStore(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -5},
		{From: 2, To: 1, Weight: 3},
	})
	eng, _ := bellmanford.NewEngine(store)

	_, err := eng.Compute(0)
	var nc *bellmanford.NegativeCycleError
	if errors.As(err, &nc) {
		fmt.Println("negative cycle from source", nc.Source, "cached:", eng.Cache().Len())
	}
	// Output: negative cycle from source 0 cached: 0
}
