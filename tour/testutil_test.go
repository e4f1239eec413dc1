// Package tour_test holds helpers shared by the tour tests.
package tour_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gils/matrix"
	"github.com/katalvlaran/gils/tour"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the canonical deterministic seed for RNG-driven tests.
	seedDet = int64(42)

	// epsTiny is the tolerance for comparing recomputed objective values.
	epsTiny = 1e-9
)

// euclid builds a symmetric Euclidean matrix with a zero diagonal.
func euclid(t *testing.T, pts [][2]float64) *matrix.Dense {
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
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
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

// mustCosts wraps tour.NewCosts for matrices known to be valid.
func mustCosts(t *testing.T, m matrix.Matrix) *tour.Costs {
	t.Helper()
	c, err := tour.NewCosts(m)
	require.NoError(t, err)

	return c
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
