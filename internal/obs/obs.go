// Package obs records per-neighborhood search statistics and emits
// key=value log lines tagged with a run id.
package obs

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gils/rvnd"
)

// NeighborhoodStats accumulates the calls of one operator.
type NeighborhoodStats struct {
	Calls        int
	Improvements int
	Elapsed      time.Duration
}

// Recorder implements rvnd.Observer. It is safe for concurrent use.
type Recorder struct {
	RunID string

	logger *log.Logger
	mu     sync.Mutex
	stats  map[rvnd.Neighborhood]*NeighborhoodStats
}

// NewRecorder returns a Recorder with a fresh run id. A nil logger selects
// log.Default().
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}

	return &Recorder{
		RunID:  uuid.NewString(),
		logger: logger,
		stats:  make(map[rvnd.Neighborhood]*NeighborhoodStats),
	}
}

// Observe records one operator call.
func (r *Recorder) Observe(nb rvnd.Neighborhood, improved bool, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[nb]
	if !ok {
		s = &NeighborhoodStats{}
		r.stats[nb] = s
	}
	s.Calls++
	if improved {
		s.Improvements++
	}
	s.Elapsed += elapsed
}

// Stats returns a snapshot for nb; the zero value if it was never called.
func (r *Recorder) Stats(nb rvnd.Neighborhood) NeighborhoodStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stats[nb]; ok {
		return *s
	}

	return NeighborhoodStats{}
}

// Logf writes one line prefixed with the run id.
func (r *Recorder) Logf(format string, args ...any) {
	r.logger.Printf("run_id=%s "+format, append([]any{r.RunID}, args...)...)
}

// Time starts a timer for op. Call the returned func with a pointer to the
// operation's error, typically via defer.
func (r *Recorder) Time(op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			r.Logf("op=%s dur=%dms err=%v", op, dur.Milliseconds(), *errp)
			return
		}
		r.Logf("op=%s dur=%dms", op, dur.Milliseconds())
	}
}

// LogSummary writes one line per neighborhood that was called, in operator order.
func (r *Recorder) LogSummary() {
	var nb rvnd.Neighborhood
	for nb = rvnd.Swap; nb <= rvnd.Reinsert3; nb++ {
		s := r.Stats(nb)
		if s.Calls == 0 {
			continue
		}
		r.Logf("nb=%s calls=%d improvements=%d dur=%dms", nb, s.Calls, s.Improvements, s.Elapsed.Milliseconds())
	}
}
