package tsp

import (
	"math"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/tour"
)

// Sentinels shared with the tour package.
var (
	ErrInvalidInput      = tour.ErrInvalidInput
	ErrInfeasible        = tour.ErrInfeasible
	ErrDimensionMismatch = tour.ErrDimensionMismatch
	ErrStartOutOfRange   = tour.ErrStartOutOfRange
)

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the best closed route, len(Tour) == N+1, Tour[0] == Tour[N].
	Tour []int

	// Cost is the realized cost of Tour, recomputed from the matrix.
	Cost float64

	// Stats reports restarts, iterations and elapsed time.
	Stats ils.Stats
}

// Move is the best candidate found by a neighborhood scan.
type Move struct {
	I, J  int
	Delta float64
}

// noMove returns a Move that every real candidate beats.
func noMove() Move { return Move{Delta: math.Inf(1)} }
