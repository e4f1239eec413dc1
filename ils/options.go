package ils

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gils/rvnd"
	"github.com/katalvlaran/gils/tour"
)

// Defaults mirrored by DefaultOptions.
const (
	DefaultMaxRestarts = 10
	DefaultEps         = 1e-9

	// smallInstance is the size below which the per-restart ILS budget equals N.
	smallInstance = 150
)

// Options configures one search run. The zero value is not valid; start from
// DefaultOptions and override fields.
type Options struct {
	// Seed feeds tour.NewRand; 0 selects the fixed default stream.
	Seed int64

	// MaxRestarts is the number of GILS restarts (≥1).
	MaxRestarts int

	// MaxIterations bounds consecutive non-improving ILS iterations per restart.
	// 0 selects the size rule: N for N < 150, otherwise N/2.
	MaxIterations int

	// TimeLimit stops the run between ILS iterations once exceeded; 0 disables it.
	// The best route found so far is returned without error.
	TimeLimit time.Duration

	// Eps is the strict improvement threshold: a move is applied only when its
	// delta is below -Eps. 0 degenerates to the bare "delta < 0" test.
	Eps float64

	// Construction selects the construction heuristic.
	Construction tour.Construction

	// SubtourSize seeds ConstructInsertion; 0 selects tour.DefaultSubtourSize.
	SubtourSize int

	// StartVertex anchors TSP routes. Latency routes always start at the depot 0.
	StartVertex int

	// RandomStart draws a uniform anchor per restart (TSP only); StartVertex is ignored.
	RandomStart bool

	// Neighborhoods is the RVND operator set; empty selects rvnd.Default().
	Neighborhoods []rvnd.Neighborhood

	// Observer, when non-nil, is notified after every operator call.
	Observer rvnd.Observer
}

// DefaultOptions returns the reference configuration: 10 restarts, the size-based
// iteration rule, greedy construction, anchor 0, all five neighborhoods.
func DefaultOptions() Options {
	return Options{
		MaxRestarts:  DefaultMaxRestarts,
		Eps:          DefaultEps,
		Construction: tour.ConstructGreedy,
		SubtourSize:  tour.DefaultSubtourSize,
	}
}

// Validate checks option ranges that do not depend on the instance.
// StartVertex range is checked by the variant once N is known.
//
// Errors: tour.ErrInvalidInput wrapped with the offending field.
func (o Options) Validate() error {
	switch {
	case o.MaxRestarts < 1:
		return fmt.Errorf("%w: MaxRestarts=%d", tour.ErrInvalidInput, o.MaxRestarts)
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations=%d", tour.ErrInvalidInput, o.MaxIterations)
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit=%s", tour.ErrInvalidInput, o.TimeLimit)
	case o.Eps < 0 || math.IsNaN(o.Eps) || math.IsInf(o.Eps, 0):
		return fmt.Errorf("%w: Eps=%g", tour.ErrInvalidInput, o.Eps)
	case o.SubtourSize < 0:
		return fmt.Errorf("%w: SubtourSize=%d", tour.ErrInvalidInput, o.SubtourSize)
	case o.StartVertex < 0:
		return fmt.Errorf("%w: StartVertex=%d", tour.ErrInvalidInput, o.StartVertex)
	case o.Construction != tour.ConstructGreedy && o.Construction != tour.ConstructInsertion:
		return fmt.Errorf("%w: Construction=%d", tour.ErrInvalidInput, o.Construction)
	}
	for _, nb := range o.Neighborhoods {
		if nb > rvnd.Reinsert3 {
			return fmt.Errorf("%w: neighborhood %d", tour.ErrInvalidInput, nb)
		}
	}

	return nil
}

// IterationsFor returns the per-restart ILS budget for an instance of n nodes.
func (o Options) IterationsFor(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	if n < smallInstance {
		return max(n, 1)
	}

	return n / 2
}

// NeighborhoodSet returns Neighborhoods, or rvnd.Default() when empty.
func (o Options) NeighborhoodSet() []rvnd.Neighborhood {
	if len(o.Neighborhoods) == 0 {
		return rvnd.Default()
	}

	return o.Neighborhoods
}
