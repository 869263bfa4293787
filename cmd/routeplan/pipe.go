package main

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/config"
	"github.com/katalvlaran/routeplan/route"
	"github.com/katalvlaran/routeplan/wire"
)

func runPipe(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("pipe", stderr)
	withPaths := fs.Bool("paths", false, "append one reconstructed path per destination")
	csvPath := fs.String("csv", "", "also write Source,Destination,Distance rows to this file")
	level := fs.String("log-level", "warn", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := config.LogConfig{Level: *level}.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req, err := wire.ReadRequest(stdin)
	if err != nil {
		return err
	}
	engine, err := bellmanford.NewEngine(req.Store, bellmanford.WithoutCache())
	if err != nil {
		return err
	}
	log.Debug("request decoded",
		zap.Int("cities", req.Cities.Len()),
		zap.Int("roads", req.Store.EdgeCount()),
		zap.String("source", req.Cities.Name(req.Source)),
	)

	res, err := engine.Compute(req.Source)
	var cycle *bellmanford.NegativeCycleError
	if errors.As(err, &cycle) {
		log.Warn("negative cycle", zap.Int("edge", cycle.Edge))
		return wire.WriteNegativeCycle(stdout)
	}
	if err != nil {
		return err
	}

	if err := wire.WriteTable(stdout, req.Cities, req.Source, res.Distances); err != nil {
		return err
	}
	if *withPaths {
		paths, err := route.All(req.Store, req.Source, res.Distances, res.Predecessors)
		if err != nil {
			return err
		}
		if err := wire.WritePaths(stdout, req.Cities, paths); err != nil {
			return err
		}
	}
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			return err
		}
		if err := wire.WriteResultsCSV(f, req.Cities, req.Source, res.Distances); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("results saved", zap.String("path", *csvPath))
	}

	return nil
}
