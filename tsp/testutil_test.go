// Package tsp_test holds helpers shared across the tsp tests.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/matrix"
	"github.com/katalvlaran/gils/tour"
	"github.com/katalvlaran/gils/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the canonical deterministic seed.
	seedDet = int64(2024)

	// epsCost is the tolerance between running and realized costs.
	epsCost = 1e-7
)

// dense wraps rows into a *matrix.Dense.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// euclid builds a symmetric Euclidean matrix with a zero diagonal.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}

	return dense(t, rows)
}

// randomPoints draws n points uniformly in [0,100)².
func randomPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	var i int
	for i = range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}

	return pts
}

// circle places n points evenly on a unit circle; the boundary order is optimal.
func circle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return pts
}

// asymmetric draws integer weights in [1,50] with no symmetry.
func asymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	return dense(t, asymmetricRows(n, seed))
}

// identity returns the closed route 0,1,…,n-1,0.
func identity(n int) []int {
	r := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		r[i] = i
	}

	return r
}

// newState builds a state over m starting from route.
func newState(t testing.TB, m matrix.Matrix, route []int) *tsp.State {
	t.Helper()
	c, err := tour.NewCosts(m)
	require.NoError(t, err)
	s, err := tsp.NewState(c, route, ils.DefaultEps)
	require.NoError(t, err)

	return s
}

// requireConsistent checks feasibility and running-vs-realized cost agreement.
func requireConsistent(t testing.TB, s *tsp.State, n int) {
	t.Helper()
	r := s.Route()
	require.NoError(t, tour.Validate(r, n, r[0]))
	require.InDelta(t, s.RealizedCost(), s.Cost(), epsCost)
}
