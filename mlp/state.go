package mlp

import (
	"math/rand"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/tour"
)

// State is a latency search state: the route, its running latency and the
// subsequence table of the current route.
// It is not safe for concurrent use; Clone it per goroutine.
type State struct {
	costs *tour.Costs
	route []int
	last  int
	cost  float64
	eps   float64

	table *Table
	stale bool
}

// NewState wraps a closed route that starts and ends at Depot.
//
// Errors: ErrInvalidInput for nil costs or negative eps; ErrDimensionMismatch
// for a malformed route.
//
// Complexity: O(N²) for the table.
func NewState(costs *tour.Costs, route []int, eps float64) (*State, error) {
	if costs == nil || eps < 0 {
		return nil, ErrInvalidInput
	}
	if err := tour.Validate(route, costs.N(), Depot); err != nil {
		return nil, err
	}

	s := &State{
		costs: costs,
		route: tour.Copy(route),
		last:  len(route) - 1,
		eps:   eps,
		stale: true,
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	s.cost = s.table.Cost()

	return s, nil
}

// Construct builds the initial state of a restart from Depot with
// opts.Construction. StartVertex and RandomStart are not used.
func Construct(costs *tour.Costs, opts ils.Options, rng *rand.Rand) (*State, error) {
	if costs == nil {
		return nil, ErrInvalidInput
	}
	route, err := tour.Build(costs, opts.Construction, Depot, opts.SubtourSize, rng)
	if err != nil {
		return nil, err
	}

	return NewState(costs, route, opts.Eps)
}

// refresh rebuilds the table when the route changed since the last fill.
func (s *State) refresh() error {
	if !s.stale {
		return nil
	}
	if s.table == nil {
		s.table = &Table{}
	}
	if err := s.table.Fill(s.costs, s.route); err != nil {
		return err
	}
	s.stale = false

	return nil
}

// Cost returns the running latency maintained by the applied deltas.
func (s *State) Cost() float64 { return s.cost }

// RealizedCost recomputes the latency of the current route from the matrix.
func (s *State) RealizedCost() float64 {
	c, _ := tour.Latency(s.costs, s.route)
	return c
}

// Route returns a copy of the current route.
func (s *State) Route() []int { return tour.Copy(s.route) }

// Table returns the subsequence table of the current route, rebuilding it if
// stale. The table is owned by the state and changes with it.
func (s *State) Table() (*Table, error) {
	if err := s.refresh(); err != nil {
		return nil, err
	}

	return s.table, nil
}

// Clone returns an independent copy. Its table is rebuilt on first use.
func (s *State) Clone() *State {
	return &State{
		costs: s.costs,
		route: tour.Copy(s.route),
		last:  s.last,
		cost:  s.cost,
		eps:   s.eps,
		stale: true,
	}
}

// interiorCount is the number of customers.
func (s *State) interiorCount() int { return s.last - 1 }

// seq is shorthand for the table entry of positions i..j.
func (s *State) seq(i, j int) Subsequence { return s.table.At(i, j) }

// arc is the weight of route[p] → route[q].
func (s *State) arc(p, q int) float64 { return s.costs.At(s.route[p], s.route[q]) }

// commit records an applied move of latency change d.
func (s *State) commit(d float64) {
	s.cost += d
	s.stale = true
}
