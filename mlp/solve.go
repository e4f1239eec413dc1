package mlp

import (
	"math/rand"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/matrix"
	"github.com/katalvlaran/gils/tour"
)

// Solve runs GILS-RVND on the latency instance dist with Depot as the depot.
// The returned Cost is recomputed from the matrix.
//
// Errors: ErrInvalidInput.
func Solve(dist matrix.Matrix, opts ils.Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	costs, err := tour.NewCosts(dist)
	if err != nil {
		return Result{}, err
	}

	return SolveCosts(costs, opts)
}

// SolveCosts is Solve on an already validated weight table.
func SolveCosts(costs *tour.Costs, opts ils.Options) (Result, error) {
	if costs == nil {
		return Result{}, ErrInvalidInput
	}

	build := func(rng *rand.Rand) (*State, error) {
		return Construct(costs, opts, rng)
	}
	best, st, err := ils.Run(costs.N(), build, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:  best.Route(),
		Cost:  best.RealizedCost(),
		Stats: st,
	}, nil
}
