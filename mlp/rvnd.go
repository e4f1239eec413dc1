package mlp

import (
	"math/rand"

	"github.com/katalvlaran/gils/rvnd"
)

// Feasible reports whether the route has enough customers for nb.
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
func (s *State) RVND(rng *rand.Rand, set []rvnd.Neighborhood, obs rvnd.Observer) (rvnd.Stats, error) {
	usable := make([]rvnd.Neighborhood, 0, len(set))
	for _, nb := range set {
		if s.Feasible(nb) {
			usable = append(usable, nb)
		}
	}

	return rvnd.Run(rng, usable, s.apply, obs)
}
