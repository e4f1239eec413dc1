package tsp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/matrix"
	"github.com/katalvlaran/gils/tour"
)

// Solve runs GILS-RVND on the TSP instance dist.
//
// Contracts:
//   - dist is square with N ≥ 2 finite non-negative entries; asymmetric is fine.
//   - opts.StartVertex ∈ [0..N-1] unless opts.RandomStart is set.
//
// The returned Cost is recomputed from the matrix, not the running sum.
//
// Errors: ErrInvalidInput, ErrStartOutOfRange.
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
	if !opts.RandomStart && opts.StartVertex >= costs.N() {
		return Result{}, fmt.Errorf("%w: %d ≥ %d", ErrStartOutOfRange, opts.StartVertex, costs.N())
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
