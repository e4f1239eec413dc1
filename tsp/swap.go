package tsp

// swapDelta is the cost change of exchanging route[i] and route[j], i < j.
func (s *State) swapDelta(i, j int) float64 {
	var (
		r = s.route
		w = s.costs
		a = r[i-1]
		b = r[i]
		q = r[j]
		z = r[j+1]
	)
	if j == i+1 {
		return w.At(a, q) + w.At(q, b) + w.At(b, z) -
			w.At(a, b) - w.At(b, q) - w.At(q, z)
	}

	c := r[i+1]
	p := r[j-1]

	return w.At(a, q) + w.At(q, c) + w.At(p, b) + w.At(b, z) -
		w.At(a, b) - w.At(b, c) - w.At(p, q) - w.At(q, z)
}

// SwapDelta returns the cost change of exchanging the nodes at positions i and
// j (in any order) without applying it.
//
// Errors: ErrDimensionMismatch if i or j is not an interior position or i == j.
func (s *State) SwapDelta(i, j int) (float64, error) {
	if i > j {
		i, j = j, i
	}
	if i < 1 || j > s.last-1 || i == j {
		return 0, ErrDimensionMismatch
	}

	return s.swapDelta(i, j), nil
}

// ApplySwap exchanges the nodes at positions i and j and updates the cost.
func (s *State) ApplySwap(i, j int) error {
	d, err := s.SwapDelta(i, j)
	if err != nil {
		return err
	}
	s.route[i], s.route[j] = s.route[j], s.route[i]
	s.cost += d

	return nil
}

// Swap scans every pair 1 ≤ i < j ≤ N-1 and applies the best exchange if it
// improves the cost by more than eps.
//
// Errors: ErrInfeasible with fewer than two interior nodes.
//
// Complexity: O(N²).
func (s *State) Swap() (bool, error) {
	if s.interiorCount() < 2 {
		return false, ErrInfeasible
	}

	var (
		best = noMove()
		i, j int
		d    float64
	)
	for i = 1; i < s.last-1; i++ {
		for j = i + 1; j < s.last; j++ {
			if d = s.swapDelta(i, j); d < best.Delta {
				best = Move{I: i, J: j, Delta: d}
			}
		}
	}
	if best.Delta >= -s.eps {
		return false, nil
	}
	s.route[best.I], s.route[best.J] = s.route[best.J], s.route[best.I]
	s.cost += best.Delta

	return true, nil
}
