package tsp

import (
	"math/rand"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/tour"
)

// State is a TSP search state: a closed route plus its running cost.
// It is not safe for concurrent use; Clone it per goroutine.
type State struct {
	costs *tour.Costs
	route []int
	last  int
	cost  float64
	eps   float64

	// prefix sums over the route, rebuilt by Revert on asymmetric instances
	fwd, bwd []float64
}

// NewState wraps a closed route. The anchor is route[0].
//
// Errors: ErrInvalidInput for nil costs or a negative eps; ErrDimensionMismatch
// for a route that is not a closed permutation of the costs' nodes.
//
// Complexity: O(N).
func NewState(costs *tour.Costs, route []int, eps float64) (*State, error) {
	if costs == nil || eps < 0 {
		return nil, ErrInvalidInput
	}
	if len(route) == 0 {
		return nil, ErrDimensionMismatch
	}
	if err := tour.Validate(route, costs.N(), route[0]); err != nil {
		return nil, err
	}
	c, err := tour.Cost(costs, route)
	if err != nil {
		return nil, err
	}

	return &State{
		costs: costs,
		route: tour.Copy(route),
		last:  len(route) - 1,
		cost:  c,
		eps:   eps,
	}, nil
}

// Construct builds the initial state of a restart: the anchor is
// opts.StartVertex, or a uniform draw when opts.RandomStart is set, and the
// route comes from opts.Construction.
//
// Complexity: that of the construction.
func Construct(costs *tour.Costs, opts ils.Options, rng *rand.Rand) (*State, error) {
	if costs == nil {
		return nil, ErrInvalidInput
	}
	start := opts.StartVertex
	if opts.RandomStart {
		start = rng.Intn(costs.N())
	}
	route, err := tour.Build(costs, opts.Construction, start, opts.SubtourSize, rng)
	if err != nil {
		return nil, err
	}

	return NewState(costs, route, opts.Eps)
}

// Cost returns the running cost maintained by the applied deltas.
func (s *State) Cost() float64 { return s.cost }

// RealizedCost recomputes the cost of the current route from the matrix.
func (s *State) RealizedCost() float64 {
	c, _ := tour.Cost(s.costs, s.route)
	return c
}

// Route returns a copy of the current route.
func (s *State) Route() []int { return tour.Copy(s.route) }

// Clone returns an independent copy sharing only the immutable costs.
func (s *State) Clone() *State {
	return &State{
		costs: s.costs,
		route: tour.Copy(s.route),
		last:  s.last,
		cost:  s.cost,
		eps:   s.eps,
	}
}

// interiorCount is the number of movable positions.
func (s *State) interiorCount() int { return s.last - 1 }

// arc is shorthand for the weight of route[p] → route[q].
func (s *State) arc(p, q int) float64 {
	return s.costs.At(s.route[p], s.route[q])
}
