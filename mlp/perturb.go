package mlp

import (
	"math/rand"

	"github.com/katalvlaran/gils/tour"
)

// BridgeDelta returns the latency change of applying b.
//
// Errors: ErrDimensionMismatch if b does not fit the route.
func (s *State) BridgeDelta(b tour.Bridge) (float64, error) {
	if !b.Valid(s.last) {
		return 0, ErrDimensionMismatch
	}
	if err := s.refresh(); err != nil {
		return 0, err
	}

	var (
		e1 = b.I + b.LenI - 1
		e2 = b.J + b.LenJ - 1
		q  Subsequence
	)
	q = Concat(s.seq(0, b.I-1), s.arc(b.I-1, b.J), s.seq(b.J, e2))
	q = Concat(q, s.arc(e2, e1+1), s.seq(e1+1, b.J-1))
	q = Concat(q, s.arc(b.J-1, b.I), s.seq(b.I, e1))
	q = Concat(q, s.arc(e1, e2+1), s.seq(e2+1, s.last))

	return q.C - s.cost, nil
}

// Perturb applies one random double-bridge and updates the latency.
//
// Errors: ErrInfeasible with fewer than three customers.
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
	s.commit(d)

	return nil
}
