package rvnd

import (
	"math/rand"
	"slices"
	"time"
)

// Observer is notified after every operator call. Implementations must not
// retain the controller's working list; they only see the neighborhood that ran.
type Observer interface {
	Observe(nb Neighborhood, improved bool, elapsed time.Duration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(nb Neighborhood, improved bool, elapsed time.Duration)

// Observe calls f.
func (f ObserverFunc) Observe(nb Neighborhood, improved bool, elapsed time.Duration) {
	f(nb, improved, elapsed)
}

// Stats counts operator calls made by one Run.
type Stats struct {
	Calls        int
	Improvements int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Calls += o.Calls
	s.Improvements += o.Improvements
}

// ApplyFunc runs one neighborhood on the caller's state. It returns true when
// an improving move was applied and false when none exists.
type ApplyFunc func(nb Neighborhood) (bool, error)

// Run executes the RVND loop over set:
//
//	list := copy(set)
//	while list non-empty:
//	    k := rng.Intn(len(list))
//	    if apply(list[k]) improved: list = copy(set) (only if it had shrunk)
//	    else: remove list[k], keeping the order of the rest
//
// An error from apply aborts the loop and is returned as-is together with the
// stats gathered so far. obs may be nil.
//
// Termination: every iteration either strictly improves the objective or
// shrinks the list, and the number of strictly improving moves is finite.
//
// Complexity: O(#calls) controller overhead on top of the operator scans.
func Run(rng *rand.Rand, set []Neighborhood, apply ApplyFunc, obs Observer) (Stats, error) {
	var (
		st       Stats
		list     = slices.Clone(set)
		k        int
		nb       Neighborhood
		improved bool
		began    time.Time
		err      error
	)
	for len(list) > 0 {
		k = rng.Intn(len(list))
		nb = list[k]

		if obs != nil {
			began = time.Now()
		}
		improved, err = apply(nb)
		st.Calls++
		if obs != nil {
			obs.Observe(nb, improved, time.Since(began))
		}
		if err != nil {
			return st, err
		}

		if improved {
			st.Improvements++
			if len(list) < len(set) {
				list = append(list[:0], set...)
			}
			continue
		}
		list = slices.Delete(list, k, k+1)
	}

	return st, nil
}
