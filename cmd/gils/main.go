// Command gils solves a TSP or minimum-latency instance with GILS-RVND and
// prints the best tour found.
//
// Configuration is read from GILS_* environment variables (optionally seeded
// from a .env file) and overridden by flags:
//
//	gils -variant mlp -restarts 5 -seed 7 data/att48.tsp
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/instance"
	"github.com/katalvlaran/gils/internal/config"
	"github.com/katalvlaran/gils/internal/obs"
	"github.com/katalvlaran/gils/mlp"
	"github.com/katalvlaran/gils/tsp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, solves the instance and writes the result to stdout.
// Log lines go to stderr.
func run(args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := config.Load(config.Get("GILS_ENV_FILE", ".env"))
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gils", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Variant, "variant", cfg.Variant, "objective: tsp or mlp")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fixed default stream)")
	fs.IntVar(&cfg.Restarts, "restarts", cfg.Restarts, "number of restarts")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "non-improving ILS iterations per restart (0 = size rule)")
	fs.DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "wall-clock limit (0 = none)")
	fs.StringVar(&cfg.Construction, "construction", cfg.Construction, "greedy or insertion")
	fs.BoolVar(&cfg.RandomStart, "random-start", cfg.RandomStart, "random anchor per restart (tsp only)")
	fs.IntVar(&cfg.StartVertex, "start", cfg.StartVertex, "0-based anchor vertex (tsp only)")
	fs.StringVar(&cfg.Neighborhoods, "neighborhoods", cfg.Neighborhoods, "comma-separated operator list")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cfg.Instance = fs.Arg(0)
	}
	if cfg.Instance == "" {
		fs.Usage()
		return fmt.Errorf("%w: no instance file", config.ErrInvalid)
	}
	cfg.Variant = strings.ToLower(cfg.Variant)
	if err = cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}

	rec := obs.NewRecorder(log.New(stderr, "", log.LstdFlags))
	opts.Observer = rec
	defer rec.Time("run")(&err)

	inst, err := instance.Load(cfg.Instance)
	if err != nil {
		return err
	}
	rec.Logf("instance=%q name=%q n=%d variant=%s restarts=%d seed=%d",
		cfg.Instance, inst.Name, inst.Dimension, cfg.Variant, opts.MaxRestarts, opts.Seed)

	var (
		route []int
		cost  float64
		st    ils.Stats
	)
	switch cfg.Variant {
	case config.VariantMLP:
		var res mlp.Result
		if res, err = mlp.Solve(inst.Weights, opts); err != nil {
			return err
		}
		route, cost, st = res.Tour, res.Cost, res.Stats
	default:
		var res tsp.Result
		if res, err = tsp.Solve(inst.Weights, opts); err != nil {
			return err
		}
		route, cost, st = res.Tour, res.Cost, res.Stats
	}

	rec.LogSummary()
	rec.Logf("restarts=%d iterations=%d improvements=%d timed_out=%t elapsed=%s",
		st.Restarts, st.Iterations, st.Improvements, st.TimedOut, st.Elapsed)

	_, err = fmt.Fprintf(stdout, "cost: %s\ntour: %s\n", strconv.FormatFloat(cost, 'f', -1, 64), oneBased(route))

	return err
}

// oneBased renders route with TSPLIB-style 1-based node ids.
func oneBased(route []int) string {
	parts := make([]string, len(route))
	for i, v := range route {
		parts[i] = strconv.Itoa(v + 1)
	}

	return strings.Join(parts, " ")
}
