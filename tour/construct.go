// Package tour: greedy-randomized constructions.
//
// Both constructions are biased greedy rules: candidates are ranked by cost and
// the pick is uniform inside a randomized prefix of the ranking (biasedIndex).
// They are never purely greedy and never purely random, which keeps restarts
// diverse while starting each local search from a reasonable route.
//
//   - Greedy: nearest-neighbor-like. Rank the remaining nodes by their arc cost
//     from the last inserted node and append the pick. N-1 steps, O(n² log n).
//   - Insertion: random initial subtour, then rank every (candidate, position)
//     pair by its insertion delta and insert the pick. O(n³ log n).
package tour

import (
	"cmp"
	"math/rand"
	"slices"
)

// Construction selects the construction heuristic.
type Construction uint8

const (
	// ConstructGreedy appends, at each step, a node drawn from the closest
	// remaining candidates of the last inserted node.
	ConstructGreedy Construction = iota

	// ConstructInsertion grows a random subtour by cheapest-insertion with a
	// randomized pick among the cheapest insertions.
	ConstructInsertion
)

// DefaultSubtourSize is the number of random nodes seeding Insertion.
const DefaultSubtourSize = 3

// String returns the lowercase name of the construction.
func (c Construction) String() string {
	switch c {
	case ConstructGreedy:
		return "greedy"
	case ConstructInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// ParseConstruction maps "greedy" / "insertion" to a Construction.
func ParseConstruction(s string) (Construction, error) {
	switch s {
	case "greedy", "":
		return ConstructGreedy, nil
	case "insertion":
		return ConstructInsertion, nil
	default:
		return 0, ErrInvalidInput
	}
}

// Insertion is a candidate insertion evaluated during construction:
// candidate index Candidate placed between route[Position] and route[Position+1].
type Insertion struct {
	Candidate int
	Position  int
	Delta     float64
}

// Build dispatches to the selected construction.
// subtour is only read by ConstructInsertion (≤0 ⇒ DefaultSubtourSize).
func Build(c *Costs, kind Construction, start, subtour int, rng *rand.Rand) ([]int, error) {
	switch kind {
	case ConstructGreedy:
		return Greedy(c, start, rng)
	case ConstructInsertion:
		return InsertionRoute(c, start, subtour, rng)
	default:
		return nil, ErrInvalidInput
	}
}

// candidates returns every node except start, in index order.
func candidates(n, start int) []int {
	out := make([]int, 0, n-1)
	var v int
	for v = 0; v < n; v++ {
		if v != start {
			out = append(out, v)
		}
	}

	return out
}

// Greedy builds a closed route from start with the nearest-neighbor-like rule.
// rng==nil uses the default deterministic stream.
//
// Contract: start ∈ [0..n-1]; the result satisfies Validate(route, n, start).
//
// Complexity: O(n² log n) time, O(n) space.
func Greedy(c *Costs, start int, rng *rand.Rand) ([]int, error) {
	if c == nil {
		return nil, ErrInvalidInput
	}
	n := c.N()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	if rng == nil {
		rng = NewRand(0)
	}

	var (
		cand  = candidates(n, start)
		route = make([]int, 0, n+1)
		last  = start
		idx   int
	)
	route = append(route, start)

	for len(cand) > 0 {
		from := last
		slices.SortStableFunc(cand, func(a, b int) int {
			return cmp.Compare(c.At(from, a), c.At(from, b))
		})

		idx = biasedIndex(rng, len(cand))
		last = cand[idx]
		route = append(route, last)
		cand = slices.Delete(cand, idx, idx+1)
	}

	return append(route, start), nil
}

// InsertionRoute builds a closed route from start: subtour random nodes are
// chained after start, then the remaining nodes are inserted one at a time.
// At each step every (candidate, gap) pair is scored by
//
//	Δ = w(r[p], v) + w(v, r[p+1]) − w(r[p], r[p+1])
//
// and the pick is drawn from a randomized prefix of the pairs sorted by Δ.
//
// Complexity: O(n³ log n) time, O(n²) space for the scoring buffer.
func InsertionRoute(c *Costs, start, subtour int, rng *rand.Rand) ([]int, error) {
	if c == nil {
		return nil, ErrInvalidInput
	}
	n := c.N()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if subtour <= 0 {
		subtour = DefaultSubtourSize
	}

	var (
		cand  = candidates(n, start)
		route = make([]int, 0, n+1)
		j, p  int
	)
	route = append(route, start)
	for ; subtour > 0 && len(cand) > 0; subtour-- {
		j = rng.Intn(len(cand))
		route = append(route, cand[j])
		cand = slices.Delete(cand, j, j+1)
	}
	route = append(route, start)

	scores := make([]Insertion, 0, n*n/4+1)
	for len(cand) > 0 {
		scores = scores[:0]
		for p = 0; p+1 < len(route); p++ {
			for j = 0; j < len(cand); j++ {
				scores = append(scores, Insertion{
					Candidate: j,
					Position:  p,
					Delta:     c.At(route[p], cand[j]) + c.At(cand[j], route[p+1]) - c.At(route[p], route[p+1]),
				})
			}
		}
		slices.SortStableFunc(scores, func(a, b Insertion) int {
			return cmp.Compare(a.Delta, b.Delta)
		})

		pick := scores[biasedIndex(rng, len(scores))]
		route = slices.Insert(route, pick.Position+1, cand[pick.Candidate])
		cand = slices.Delete(cand, pick.Candidate, pick.Candidate+1)
	}

	return route, nil
}
