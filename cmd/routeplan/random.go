package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/routeplan/builder"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/wire"
)

func runRandom(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("random", stderr)
	n := fs.Int("cities", 6, "number of cities")
	seed := fs.Int64("seed", 0, "RNG seed; 0 selects the fixed default, negative seeds from the clock")
	minW := fs.Int64("min", 1, "minimum road weight")
	maxW := fs.Int64("max", 50, "maximum road weight")
	density := fs.Float64("density", 1, "probability that an ordered city pair gets a road")
	names := fs.String("names", "letters", "city names: letters (A, B, …), numeric (0, 1, …) or prefix=<P> (P0, P1, …)")
	source := fs.String("source", "", "source city (default: first city)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idFn, err := idScheme(*names)
	if err != nil {
		return err
	}
	rng := builder.WithSeed(*seed)
	if *seed < 0 {
		rng = builder.WithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	net, err := builder.RandomNetwork(*n,
		rng,
		builder.WithIDScheme(idFn),
		builder.WithWeightRange(*minW, *maxW),
		builder.WithDensity(*density),
	)
	if err != nil {
		return err
	}
	cities, err := core.NewCities(net.Names)
	if err != nil {
		return err
	}
	store, err := net.Store()
	if err != nil {
		return err
	}

	src := 0
	if *source != "" {
		if src, err = cities.Index(*source); err != nil {
			return err
		}
	}

	return wire.WriteRequest(stdout, cities, store, src)
}

// idScheme maps a -names value to a naming function.
func idScheme(name string) (builder.IDFn, error) {
	switch {
	case name == "letters":
		return builder.LetterIDFn, nil
	case name == "numeric":
		return builder.DefaultIDFn, nil
	case strings.HasPrefix(name, "prefix="):
		prefix := strings.TrimPrefix(name, "prefix=")
		if prefix == "" || strings.ContainsAny(prefix, " \t") {
			return nil, fmt.Errorf("-names: prefix %q must be non-empty and contain no whitespace", prefix)
		}
		return builder.PrefixIDFn(prefix), nil
	}

	return nil, fmt.Errorf("-names: unknown scheme %q (want letters, numeric or prefix=<P>)", name)
}
