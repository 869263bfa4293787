// Command routeplan computes single-source shortest routes between cities.
//
// Usage:
//
//	routeplan pipe [-paths] [-csv results.csv] < request.txt
//	routeplan serve [-config routeplan.toml]
//	routeplan random [-cities 6] [-seed 1] [-min 1] [-max 50] [-density 1] [-names letters] [-source A]
//
// pipe reads one text request on stdin and writes the distance table on
// stdout. random writes such a request for a generated network, so the two
// chain: routeplan random | routeplan pipe -paths.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const usage = `usage: routeplan <command> [flags]

commands:
  pipe     read a request on stdin, write the distance table on stdout
  serve    run the HTTP API
  random   write a random request on stdout
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "pipe":
		err = runPipe(args[1:], stdin, stdout, stderr)
	case "serve":
		err = runServe(args[1:], stderr)
	case "random":
		err = runRandom(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "routeplan: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "routeplan %s: %v\n", args[0], err)
		return 1
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}
