package mlp

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
)

// Depot is the node every latency route starts and ends at.
const Depot = 0

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the best route, Tour[0] == Tour[N] == Depot.
	Tour []int

	// Cost is the realized latency of Tour.
	Cost float64

	// Stats reports restarts, iterations and elapsed time.
	Stats ils.Stats
}

// Move is the best candidate found by a neighborhood scan.
type Move struct {
	I, J  int
	Delta float64
}

func noMove() Move { return Move{Delta: math.Inf(1)} }
