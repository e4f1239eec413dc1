package mlp

import "github.com/katalvlaran/gils/tour"

// swapDelta is the latency change of exchanging route[i] and route[j], i < j.
func (s *State) swapDelta(i, j int) float64 {
	var q Subsequence
	if j == i+1 {
		q = Concat(s.seq(0, i-1), s.arc(i-1, j), s.seq(j, j))
		q = Concat(q, s.arc(j, i), s.seq(i, i))
		q = Concat(q, s.arc(i, j+1), s.seq(j+1, s.last))
	} else {
		q = Concat(s.seq(0, i-1), s.arc(i-1, j), s.seq(j, j))
		q = Concat(q, s.arc(j, i+1), s.seq(i+1, j-1))
		q = Concat(q, s.arc(j-1, i), s.seq(i, i))
		q = Concat(q, s.arc(i, j+1), s.seq(j+1, s.last))
	}

	return q.C - s.cost
}

// revertDelta is the latency change of reversing route[i..j], i < j.
func (s *State) revertDelta(i, j int) float64 {
	q := Concat(s.seq(0, i-1), s.arc(i-1, j), s.seq(j, i))
	q = Concat(q, s.arc(i, j+1), s.seq(j+1, s.last))

	return q.C - s.cost
}

// reinsertDelta is the latency change of moving route[i..i+k-1] to start at j, j ≠ i.
func (s *State) reinsertDelta(i, j, k int) float64 {
	var (
		e = i + k - 1
		q Subsequence
	)
	if j < i {
		q = Concat(s.seq(0, j-1), s.arc(j-1, i), s.seq(i, e))
		q = Concat(q, s.arc(e, j), s.seq(j, i-1))
		q = Concat(q, s.arc(i-1, e+1), s.seq(e+1, s.last))
	} else {
		q = Concat(s.seq(0, i-1), s.arc(i-1, e+1), s.seq(e+1, j+k-1))
		q = Concat(q, s.arc(j+k-1, i), s.seq(i, e))
		q = Concat(q, s.arc(e, j+k), s.seq(j+k, s.last))
	}

	return q.C - s.cost
}

// order returns (i, j) sorted and whether both are distinct interior positions.
func (s *State) order(i, j int) (int, int, bool) {
	if i > j {
		i, j = j, i
	}

	return i, j, i >= 1 && j <= s.last-1 && i != j
}

// SwapDelta returns the latency change of exchanging positions i and j.
//
// Errors: ErrDimensionMismatch for non-interior or equal positions.
func (s *State) SwapDelta(i, j int) (float64, error) {
	i, j, ok := s.order(i, j)
	if !ok {
		return 0, ErrDimensionMismatch
	}
	if err := s.refresh(); err != nil {
		return 0, err
	}

	return s.swapDelta(i, j), nil
}

// ApplySwap exchanges positions i and j and updates the latency.
func (s *State) ApplySwap(i, j int) error {
	d, err := s.SwapDelta(i, j)
	if err != nil {
		return err
	}
	s.route[i], s.route[j] = s.route[j], s.route[i]
	s.commit(d)

	return nil
}

// RevertDelta returns the latency change of reversing route[i..j].
//
// Errors: ErrDimensionMismatch for non-interior or equal positions.
func (s *State) RevertDelta(i, j int) (float64, error) {
	i, j, ok := s.order(i, j)
	if !ok {
		return 0, ErrDimensionMismatch
	}
	if err := s.refresh(); err != nil {
		return 0, err
	}

	return s.revertDelta(i, j), nil
}

// ApplyRevert reverses route[i..j] and updates the latency.
func (s *State) ApplyRevert(i, j int) error {
	d, err := s.RevertDelta(i, j)
	if err != nil {
		return err
	}
	i, j, _ = s.order(i, j)
	if err = tour.Reverse(s.route, i, j); err != nil {
		return err
	}
	s.commit(d)

	return nil
}

// ReinsertDelta returns the latency change of moving the k-block at i to
// start at j. j == i yields 0.
//
// Errors: ErrDimensionMismatch for out-of-range blocks or k ∉ {1,2,3}.
func (s *State) ReinsertDelta(i, j, k int) (float64, error) {
	if k < 1 || k > 3 || i < 1 || j < 1 || i+k-1 > s.last-1 || j+k-1 > s.last-1 {
		return 0, ErrDimensionMismatch
	}
	if i == j {
		return 0, nil
	}
	if err := s.refresh(); err != nil {
		return 0, err
	}

	return s.reinsertDelta(i, j, k), nil
}

// ApplyReinsert moves the k-block at i to start at j and updates the latency.
func (s *State) ApplyReinsert(i, j, k int) error {
	d, err := s.ReinsertDelta(i, j, k)
	if err != nil {
		return err
	}
	if i == j {
		return nil
	}
	if err = tour.Reinsert(s.route, i, j, k); err != nil {
		return err
	}
	s.commit(d)

	return nil
}

// Swap applies the best improving exchange, if any.
//
// Errors: ErrInfeasible with fewer than two customers.
//
// Complexity: O(N²) scan plus an O(N²) table rebuild after a move.
func (s *State) Swap() (bool, error) {
	if s.interiorCount() < 2 {
		return false, ErrInfeasible
	}
	if err := s.refresh(); err != nil {
		return false, err
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
	s.commit(best.Delta)

	return true, nil
}

// Revert applies the best improving reversal, if any.
//
// Errors: ErrInfeasible with fewer than two customers.
//
// Complexity: O(N²).
func (s *State) Revert() (bool, error) {
	if s.interiorCount() < 2 {
		return false, ErrInfeasible
	}
	if err := s.refresh(); err != nil {
		return false, err
	}

	var (
		best = noMove()
		i, j int
		d    float64
	)
	for i = 1; i < s.last-1; i++ {
		for j = i + 1; j < s.last; j++ {
			if d = s.revertDelta(i, j); d < best.Delta {
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
	s.commit(best.Delta)

	return true, nil
}

// Reinsert applies the best improving relocation of a k-block, k ∈ {1,2,3}.
//
// Errors: ErrInvalidInput for k ∉ {1,2,3}; ErrInfeasible with fewer than k+1 customers.
//
// Complexity: O(N²).
func (s *State) Reinsert(k int) (bool, error) {
	if k < 1 || k > 3 {
		return false, ErrInvalidInput
	}
	if s.interiorCount() < k+1 {
		return false, ErrInfeasible
	}
	if err := s.refresh(); err != nil {
		return false, err
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
	s.commit(best.Delta)

	return true, nil
}
