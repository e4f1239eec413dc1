package ils_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/katalvlaran/gils/ils"
	"github.com/katalvlaran/gils/rvnd"
	"github.com/katalvlaran/gils/tour"
	"github.com/stretchr/testify/require"
)

// walk is a toy state: RVND rounds the cost down to an integer, Perturb moves
// it by a random amount in [-2, 2) clamped at zero.
type walk struct {
	cost       float64
	infeasible bool
	sleep      time.Duration
}

func (w *walk) Cost() float64 { return w.cost }

func (w *walk) RVND(_ *rand.Rand, set []rvnd.Neighborhood, obs rvnd.Observer) (rvnd.Stats, error) {
	if w.sleep > 0 {
		time.Sleep(w.sleep)
	}
	improved := math.Floor(w.cost) < w.cost
	w.cost = math.Floor(w.cost)
	if obs != nil {
		obs.Observe(set[0], improved, 0)
	}
	if improved {
		return rvnd.Stats{Calls: 2, Improvements: 1}, nil
	}

	return rvnd.Stats{Calls: 1}, nil
}

func (w *walk) Perturb(rng *rand.Rand) error {
	if w.infeasible {
		return tour.ErrInfeasible
	}
	w.cost = math.Max(0, w.cost+rng.Float64()*4-2)

	return nil
}

func (w *walk) Clone() *walk {
	cp := *w
	return &cp
}

func startAt(c float64) ils.BuildFunc[*walk] {
	return func(rng *rand.Rand) (*walk, error) {
		return &walk{cost: c + rng.Float64()*10}, nil
	}
}

func TestRun_ReturnsBestRestart(t *testing.T) {
	t.Parallel()

	opts := ils.DefaultOptions()
	opts.Seed = 11
	opts.MaxRestarts = 4
	best, st, err := ils.Run(20, startAt(50), opts)
	require.NoError(t, err)
	require.Equal(t, 4, st.Restarts)
	require.Len(t, st.RestartBest, 4)
	require.Equal(t, slices.Min(st.RestartBest), best.Cost())
	require.GreaterOrEqual(t, st.Iterations, 4*20)
	require.LessOrEqual(t, best.Cost(), 60.0)
	require.False(t, st.TimedOut)
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	opts := ils.DefaultOptions()
	opts.Seed = 5
	opts.MaxRestarts = 3
	a, sa, err := ils.Run(30, startAt(20), opts)
	require.NoError(t, err)
	b, sb, err := ils.Run(30, startAt(20), opts)
	require.NoError(t, err)
	require.Equal(t, a.Cost(), b.Cost())
	require.Equal(t, sa.RestartBest, sb.RestartBest)
	require.Equal(t, sa.Iterations, sb.Iterations)
}

func TestRun_InfeasiblePerturbationStopsRestart(t *testing.T) {
	t.Parallel()

	opts := ils.DefaultOptions()
	opts.MaxRestarts = 3
	build := func(*rand.Rand) (*walk, error) { return &walk{cost: 7.5, infeasible: true}, nil }
	best, st, err := ils.Run(100, build, opts)
	require.NoError(t, err)
	require.Equal(t, 3, st.Iterations)
	require.Equal(t, 3, st.Improvements)
	require.Equal(t, 7.0, best.Cost())
}

func TestRun_TimeLimit(t *testing.T) {
	t.Parallel()

	opts := ils.DefaultOptions()
	opts.MaxRestarts = 1000
	opts.MaxIterations = 1000
	opts.TimeLimit = 20 * time.Millisecond
	build := func(*rand.Rand) (*walk, error) { return &walk{cost: 3, sleep: time.Millisecond}, nil }

	began := time.Now()
	best, st, err := ils.Run(10, build, opts)
	require.NoError(t, err)
	require.True(t, st.TimedOut)
	require.NotNil(t, best)
	require.Less(t, time.Since(began), 2*time.Second)
	require.Less(t, st.Restarts, 1000)
}

func TestRun_Observer(t *testing.T) {
	t.Parallel()

	var calls int
	opts := ils.DefaultOptions()
	opts.MaxRestarts = 2
	opts.MaxIterations = 3
	opts.Neighborhoods = []rvnd.Neighborhood{rvnd.Reinsert2}
	opts.Observer = rvnd.ObserverFunc(func(nb rvnd.Neighborhood, _ bool, _ time.Duration) {
		require.Equal(t, rvnd.Reinsert2, nb)
		calls++
	})
	_, st, err := ils.Run(10, startAt(1), opts)
	require.NoError(t, err)
	require.Equal(t, st.Iterations, calls)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	opts := ils.DefaultOptions()
	opts.MaxRestarts = 0
	_, _, err := ils.Run(10, startAt(1), opts)
	require.ErrorIs(t, err, tour.ErrInvalidInput)

	boom := errors.New("boom")
	_, _, err = ils.Run(10, func(*rand.Rand) (*walk, error) { return nil, boom }, ils.DefaultOptions())
	require.ErrorIs(t, err, boom)
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(o *ils.Options)
	}{
		{"negative iterations", func(o *ils.Options) { o.MaxIterations = -1 }},
		{"negative time limit", func(o *ils.Options) { o.TimeLimit = -time.Second }},
		{"negative eps", func(o *ils.Options) { o.Eps = -1e-9 }},
		{"nan eps", func(o *ils.Options) { o.Eps = math.NaN() }},
		{"negative subtour", func(o *ils.Options) { o.SubtourSize = -2 }},
		{"negative start", func(o *ils.Options) { o.StartVertex = -1 }},
		{"unknown construction", func(o *ils.Options) { o.Construction = 7 }},
		{"unknown neighborhood", func(o *ils.Options) { o.Neighborhoods = []rvnd.Neighborhood{rvnd.Neighborhood(42)} }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			o := ils.DefaultOptions()
			tc.modify(&o)
			require.ErrorIs(t, o.Validate(), tour.ErrInvalidInput)
		})
	}
	require.NoError(t, ils.DefaultOptions().Validate())
}

func TestOptions_IterationsFor(t *testing.T) {
	t.Parallel()

	o := ils.DefaultOptions()
	require.Equal(t, 149, o.IterationsFor(149))
	require.Equal(t, 75, o.IterationsFor(150))
	require.Equal(t, 500, o.IterationsFor(1000))

	o.MaxIterations = 12
	require.Equal(t, 12, o.IterationsFor(1000))
	require.Equal(t, rvnd.Default(), o.NeighborhoodSet())
}
