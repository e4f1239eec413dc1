// Package mlp_test holds helpers shared across the mlp tests.
package mlp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/matrix"
	"github.com/katalvlaran/gils/mlp"
	"github.com/katalvlaran/gils/tour"
	"github.com/stretchr/testify/require"
)

const (
	seedDet = int64(77)
	epsCost = 1e-6
)

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// euclid builds a symmetric Euclidean matrix from n random points.
func euclid(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	var i, j int
	for i = range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	rows := make([][]float64, n)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}

	return dense(t, rows)
}

// asymmetric draws integer weights in [1,30].
func asymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(30))
			}
		}
	}

	return dense(t, rows)
}

// line places node i at x = i; the depot is at the left end.
func line(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = math.Abs(float64(i - j))
		}
	}

	return dense(t, rows)
}

func identity(n int) []int {
	r := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		r[i] = i
	}

	return r
}

// shuffled returns a random closed route anchored at the depot.
func shuffled(n int, seed int64) []int {
	r := identity(n)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n-1, func(a, b int) { r[a+1], r[b+1] = r[b+1], r[a+1] })

	return r
}

func mustCosts(t testing.TB, m matrix.Matrix) *tour.Costs {
	t.Helper()
	c, err := tour.NewCosts(m)
	require.NoError(t, err)

	return c
}

func newState(t testing.TB, m matrix.Matrix, route []int) *mlp.State {
	t.Helper()
	s, err := mlp.NewState(mustCosts(t, m), route, ils.DefaultEps)
	require.NoError(t, err)

	return s
}

// requireConsistent checks feasibility and running-vs-realized latency.
func requireConsistent(t testing.TB, s *mlp.State, n int) {
	t.Helper()
	require.NoError(t, tour.Validate(s.Route(), n, mlp.Depot))
	require.InDelta(t, s.RealizedCost(), s.Cost(), epsCost)
}
