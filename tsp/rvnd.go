package tsp

import (
	"math/rand"

	"github.com/katalvlaran/gils/rvnd"
)

// Feasible reports whether the route is long enough for nb.
func (s *State) Feasible(nb rvnd.Neighborhood) bool {
	m := s.interiorCount()
	switch nb {
	case rvnd.Swap, rvnd.Revert:
		return m >= 2
	case rvnd.Reinsert1, rvnd.Reinsert2, rvnd.Reinsert3:
		return m >= nb.SegmentLen()+1
	default:
		return false
	}
}

// apply runs one neighborhood scan.
func (s *State) apply(nb rvnd.Neighborhood) (bool, error) {
	switch nb {
	case rvnd.Swap:
		return s.Swap()
	case rvnd.Revert:
		return s.Revert()
	default:
		return s.Reinsert(nb.SegmentLen())
	}
}

// RVND descends to a local optimum of the feasible neighborhoods in set.
// Neighborhoods the route is too short for are dropped up front.
func (s *State) RVND(rng *rand.Rand, set []rvnd.Neighborhood, obs rvnd.Observer) (rvnd.Stats, error) {
	var (
		usable = make([]rvnd.Neighborhood, 0, len(set))
		nb     rvnd.Neighborhood
	)
	for _, nb = range set {
		if s.Feasible(nb) {
			usable = append(usable, nb)
		}
	}

	return rvnd.Run(rng, usable, s.apply, obs)
}
