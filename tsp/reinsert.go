package tsp

import "github.com/katalvlaran/gils/tour"

// reinsertDelta is the cost change of moving route[i..i+k-1] so that it starts
// at position j, j ≠ i. The block keeps its direction.
func (s *State) reinsertDelta(i, j, k int) float64 {
	var (
		r = s.route
		w = s.costs
		a = r[i-1]
		f = r[i]
		l = r[i+k-1]
		b = r[i+k]
		u int
		v int
	)
	if j < i {
		u, v = r[j-1], r[j]
	} else {
		u, v = r[j+k-1], r[j+k]
	}

	return w.At(a, b) - w.At(a, f) - w.At(l, b) +
		w.At(u, f) + w.At(l, v) - w.At(u, v)
}

// validReinsert checks 1 ≤ k ≤ 3 and that both block placements are interior.
func (s *State) validReinsert(i, j, k int) bool {
	return k >= 1 && k <= 3 &&
		i >= 1 && i+k-1 <= s.last-1 &&
		j >= 1 && j+k-1 <= s.last-1
}

// ReinsertDelta returns the cost change of moving the k-block starting at i so
// that it starts at j. j == i is the identity move and yields 0.
//
// Errors: ErrDimensionMismatch for an out-of-range block or k ∉ {1,2,3}.
//
// Complexity: O(1).
func (s *State) ReinsertDelta(i, j, k int) (float64, error) {
	if !s.validReinsert(i, j, k) {
		return 0, ErrDimensionMismatch
	}
	if i == j {
		return 0, nil
	}

	return s.reinsertDelta(i, j, k), nil
}

// ApplyReinsert moves the k-block starting at i to start at j and updates the cost.
func (s *State) ApplyReinsert(i, j, k int) error {
	d, err := s.ReinsertDelta(i, j, k)
	if err != nil {
		return err
	}
	if err = tour.Reinsert(s.route, i, j, k); err != nil {
		return err
	}
	s.cost += d

	return nil
}

// Reinsert scans every (i, j) placement of a k-block, k ∈ {1,2,3}, and applies
// the best one if it improves the cost by more than eps.
//
// Errors: ErrInvalidInput for k ∉ {1,2,3}; ErrInfeasible with fewer than k+1
// interior nodes.
//
// Complexity: O(N²).
func (s *State) Reinsert(k int) (bool, error) {
	if k < 1 || k > 3 {
		return false, ErrInvalidInput
	}
	if s.interiorCount() < k+1 {
		return false, ErrInfeasible
	}

	var (
		best = noMove()
		top  = s.last - k
		i, j int
		d    float64
	)
	for i = 1; i <= top; i++ {
		for j = 1; j <= top; j++ {
			if j == i {
				continue
			}
			if d = s.reinsertDelta(i, j, k); d < best.Delta {
				best = Move{I: i, J: j, Delta: d}
			}
		}
	}
	if best.Delta >= -s.eps {
		return false, nil
	}
	if err := tour.Reinsert(s.route, best.I, best.J, k); err != nil {
		return false, err
	}
	s.cost += best.Delta

	return true, nil
}
