// Package tour: cost utilities shared by both objectives.
//
// Costs prefetches a matrix.Matrix into a dense 1D buffer w[u*n+v] so that
// the neighborhood scans read weights without interface indirection or error
// plumbing. Validation happens exactly once, here.
//
// Complexity:
//   - NewCosts: O(n²) time and space.
//   - At: O(1). Cost, Latency: O(n).
package tour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gils/matrix"
)

// symTol is the structural tolerance used to detect symmetric instances.
const symTol = 1e-12

// Costs is an immutable, validated n×n weight table.
// It is safe to share one *Costs between concurrent, independent runs.
type Costs struct {
	n         int
	w         []float64
	symmetric bool
}

// NewCosts validates dist and copies it into a flat buffer.
//
// Contract:
//   - dist is non-nil and square with n ≥ 2.
//   - every entry is finite and non-negative (the diagonal is never read by a move).
//
// Errors: ErrInvalidInput, joined with the matrix sentinel where one applies.
//
// Complexity: O(n²).
func NewCosts(dist matrix.Matrix) (*Costs, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	n := dist.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidInput, n)
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		if err = readRow(dist, i, w[i*n:(i+1)*n]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		for j = 0; j < n; j++ {
			x = w[i*n+j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: non-finite weight at (%d,%d)", ErrInvalidInput, i, j)
			}
			if x < 0 {
				return nil, fmt.Errorf("%w: negative weight at (%d,%d)", ErrInvalidInput, i, j)
			}
		}
	}

	return &Costs{n: n, w: w, symmetric: matrix.IsSymmetric(dist, symTol)}, nil
}

// rowReader is implemented by matrices that can hand out a whole row at once,
// such as *matrix.Dense.
type rowReader interface {
	RowValues(i int) ([]float64, error)
}

// readRow copies row i of m into dst, len(dst) == m.Cols().
func readRow(m matrix.Matrix, i int, dst []float64) error {
	if rr, ok := m.(rowReader); ok {
		row, err := rr.RowValues(i)
		if err != nil {
			return err
		}
		copy(dst, row)

		return nil
	}

	var (
		j   int
		err error
	)
	for j = range dst {
		if dst[j], err = m.At(i, j); err != nil {
			return err
		}
	}

	return nil
}

// N returns the number of nodes.
func (c *Costs) N() int { return c.n }

// At returns the weight of arc u→v. Indices are not checked; callers work on
// validated routes only.
func (c *Costs) At(u, v int) float64 { return c.w[u*c.n+v] }

// Symmetric reports whether w(u,v) == w(v,u) for all pairs (within 1e-12).
func (c *Costs) Symmetric() bool { return c.symmetric }

// checkRoute verifies len ≥ 2 and every entry inside [0..n-1].
func (c *Costs) checkRoute(route []int) error {
	if len(route) < 2 {
		return ErrDimensionMismatch
	}
	var v int
	for _, v = range route {
		if v < 0 || v >= c.n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Cost returns the realized TSP cost of route: the sum of w(route[p], route[p+1]).
// It is recomputed from scratch and serves as ground truth for the running
// cost tracked by a search.
//
// Complexity: O(len(route)).
func Cost(c *Costs, route []int) (float64, error) {
	if err := c.checkRoute(route); err != nil {
		return 0, err
	}

	var (
		sum float64
		p   int
	)
	for p = 0; p+1 < len(route); p++ {
		sum += c.At(route[p], route[p+1])
	}

	return sum, nil
}

// Latency returns the realized minimum-latency cost of route: the sum of the
// arrival times at every interior position, leaving the depot route[0] at time 0.
// The closing arc back to the depot is not charged.
//
// Complexity: O(len(route)).
func Latency(c *Costs, route []int) (float64, error) {
	if err := c.checkRoute(route); err != nil {
		return 0, err
	}

	var (
		clock, sum float64
		p          int
		last       = len(route) - 1
	)
	for p = 1; p < last; p++ {
		clock += c.At(route[p-1], route[p])
		sum += clock
	}

	return sum, nil
}
