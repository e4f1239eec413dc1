package ils

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/gils/rvnd"
	"github.com/katalvlaran/gils/tour"
)

// Solution is a search state the driver can descend, perturb and snapshot.
//
// Contracts:
//   - Cost is the running objective of the current route.
//   - RVND runs the neighborhood descent to a local optimum. Neighborhoods the
//     route is too short for are skipped, never reported as errors.
//   - Perturb applies one random double-bridge; tour.ErrInfeasible signals a
//     route too short to perturb.
//   - Clone returns a deep copy sharing only immutable data.
type Solution[S any] interface {
	Cost() float64
	RVND(rng *rand.Rand, set []rvnd.Neighborhood, obs rvnd.Observer) (rvnd.Stats, error)
	Perturb(rng *rand.Rand) error
	Clone() S
}

// BuildFunc constructs the initial state of one restart.
type BuildFunc[S any] func(rng *rand.Rand) (S, error)

// Stats summarizes a run.
type Stats struct {
	Restarts     int
	Iterations   int
	Improvements int
	Descent      rvnd.Stats
	RestartBest  []float64
	Elapsed      time.Duration
	TimedOut     bool
}

// Run executes GILS-RVND over n nodes and returns the best state found.
//
// Errors: tour.ErrInvalidInput for bad options; any error from build, RVND or
// Perturb other than tour.ErrInfeasible.
//
// Complexity: restarts × iterations × (descent + O(n) perturbation).
func Run[S Solution[S]](n int, build BuildFunc[S], opts Options) (S, Stats, error) {
	var (
		zero  S
		st    Stats
		began = time.Now()
	)
	if err := opts.Validate(); err != nil {
		return zero, st, err
	}

	var (
		base     = tour.NewRand(opts.Seed)
		iters    = opts.IterationsFor(n)
		set      = opts.NeighborhoodSet()
		final    S
		have     bool
		deadline time.Time
	)
	if opts.TimeLimit > 0 {
		deadline = began.Add(opts.TimeLimit)
	}
	expired := func() bool {
		return !deadline.IsZero() && time.Now().After(deadline)
	}

	var r int
	for r = 0; r < opts.MaxRestarts; r++ {
		if have && expired() {
			st.TimedOut = true
			break
		}
		rng := tour.DeriveRand(base, uint64(r))

		s, err := build(rng)
		if err != nil {
			return zero, st, err
		}
		st.Restarts++

		best, err := descendLoop(s, rng, set, iters, opts, expired, &st)
		if err != nil {
			return zero, st, err
		}
		st.RestartBest = append(st.RestartBest, best.Cost())

		if !have || best.Cost() < final.Cost() {
			final, have = best, true
		}
	}
	st.Elapsed = time.Since(began)

	return final, st, nil
}

// descendLoop runs the ILS iterations of one restart and returns its best state.
func descendLoop[S Solution[S]](
	s S,
	rng *rand.Rand,
	set []rvnd.Neighborhood,
	iters int,
	opts Options,
	expired func() bool,
	st *Stats,
) (S, error) {
	var (
		zero S
		best = s.Clone()
		it   int
	)
	for it = 0; it < iters; it++ {
		ds, err := s.RVND(rng, set, opts.Observer)
		st.Descent.Add(ds)
		if err != nil {
			return zero, err
		}
		st.Iterations++

		if s.Cost() < best.Cost()-opts.Eps {
			best = s.Clone()
			st.Improvements++
			it = -1
		} else {
			s = best.Clone()
		}

		if expired() {
			st.TimedOut = true
			break
		}
		if err = s.Perturb(rng); err != nil {
			if errors.Is(err, tour.ErrInfeasible) {
				break
			}
			return zero, err
		}
	}

	return best, nil
}
