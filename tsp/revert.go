package tsp

import "github.com/katalvlaran/gils/tour"

// boundaryRevertDelta charges the two boundary arcs of reversing route[i..j].
// It is the full delta on symmetric instances.
func (s *State) boundaryRevertDelta(i, j int) float64 {
	return s.arc(i-1, j) + s.arc(i, j+1) - s.arc(i-1, i) - s.arc(j, j+1)
}

// buildPrefix fills fwd[p] = Σ w(r[q], r[q+1]) and bwd[p] = Σ w(r[q+1], r[q])
// over q < p.
func (s *State) buildPrefix() {
	if cap(s.fwd) < s.last+1 {
		s.fwd = make([]float64, s.last+1)
		s.bwd = make([]float64, s.last+1)
	}
	s.fwd, s.bwd = s.fwd[:s.last+1], s.bwd[:s.last+1]

	var p int
	s.fwd[0], s.bwd[0] = 0, 0
	for p = 0; p < s.last; p++ {
		s.fwd[p+1] = s.fwd[p] + s.arc(p, p+1)
		s.bwd[p+1] = s.bwd[p] + s.arc(p+1, p)
	}
}

// RevertDelta returns the cost change of reversing route[i..j] (in any order)
// without applying it.
//
// Errors: ErrDimensionMismatch if i or j is not an interior position or i == j.
//
// Complexity: O(1) on symmetric instances, O(j-i) otherwise.
func (s *State) RevertDelta(i, j int) (float64, error) {
	if i > j {
		i, j = j, i
	}
	if i < 1 || j > s.last-1 || i == j {
		return 0, ErrDimensionMismatch
	}

	d := s.boundaryRevertDelta(i, j)
	if !s.costs.Symmetric() {
		var p int
		for p = i; p < j; p++ {
			d += s.arc(p+1, p) - s.arc(p, p+1)
		}
	}

	return d, nil
}

// ApplyRevert reverses route[i..j] and updates the cost.
func (s *State) ApplyRevert(i, j int) error {
	d, err := s.RevertDelta(i, j)
	if err != nil {
		return err
	}
	if i > j {
		i, j = j, i
	}
	if err = tour.Reverse(s.route, i, j); err != nil {
		return err
	}
	s.cost += d

	return nil
}

// Revert scans every segment 1 ≤ i < j ≤ N-1 and applies the best reversal if
// it improves the cost by more than eps.
//
// Errors: ErrInfeasible with fewer than two interior nodes.
//
// Complexity: O(N²).
func (s *State) Revert() (bool, error) {
	if s.interiorCount() < 2 {
		return false, ErrInfeasible
	}

	asym := !s.costs.Symmetric()
	if asym {
		s.buildPrefix()
	}

	var (
		best = noMove()
		i, j int
		d    float64
	)
	for i = 1; i < s.last-1; i++ {
		for j = i + 1; j < s.last; j++ {
			d = s.boundaryRevertDelta(i, j)
			if asym {
				d += (s.bwd[j] - s.bwd[i]) - (s.fwd[j] - s.fwd[i])
			}
			if d < best.Delta {
				best = Move{I: i, J: j, Delta: d}
			}
		}
	}
	if best.Delta >= -s.eps {
		return false, nil
	}
	if err := tour.Reverse(s.route, best.I, best.J); err != nil {
		return false, err
	}
	s.cost += best.Delta

	return true, nil
}
