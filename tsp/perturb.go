package tsp

import (
	"math/rand"

	"github.com/katalvlaran/gils/tour"
)

// BridgeDelta returns the cost change of applying b to the current route.
//
// Errors: ErrDimensionMismatch if b does not fit the route.
//
// Complexity: O(1).
func (s *State) BridgeDelta(b tour.Bridge) (float64, error) {
	if !b.Valid(s.last) {
		return 0, ErrDimensionMismatch
	}

	var (
		r   = s.route
		w   = s.costs
		a   = r[b.I-1]
		s1f = r[b.I]
		s1l = r[b.I+b.LenI-1]
		m1  = r[b.I+b.LenI]
		m2  = r[b.J-1]
		s2f = r[b.J]
		s2l = r[b.J+b.LenJ-1]
		z   = r[b.J+b.LenJ]
	)

	return w.At(a, s2f) + w.At(s2l, m1) + w.At(m2, s1f) + w.At(s1l, z) -
		w.At(a, s1f) - w.At(s1l, m1) - w.At(m2, s2f) - w.At(s2l, z), nil
}

// Perturb applies one random double-bridge and updates the cost.
//
// Errors: ErrInfeasible with fewer than three interior nodes.
func (s *State) Perturb(rng *rand.Rand) error {
	b, err := tour.PickBridge(rng, s.last)
	if err != nil {
		return err
	}
	d, err := s.BridgeDelta(b)
	if err != nil {
		return err
	}
	if err = tour.ApplyBridge(s.route, b); err != nil {
		return err
	}
	s.cost += d

	return nil
}
