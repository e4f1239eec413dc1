package tour

import "math/rand"

// Bridge describes a double-bridge perturbation: two non-adjacent interior
// segments route[I..I+LenI-1] and route[J..J+LenJ-1], I+LenI < J, swap places.
//
//	before: … a | s1 | mid | s2 | z …
//	after:  … a | s2 | mid | s1 | z …
//
// mid is never empty.
type Bridge struct {
	I, LenI int
	J, LenJ int
}

// PickBridge draws a random Bridge for a route whose closing position is last
// (len(route) == last+1). Segment lengths are uniform in [1..max(1, ⌈m/10⌉)]
// with m = last-1 interior nodes.
//
// Errors: ErrInfeasible if m < 3.
//
// Complexity: O(1).
func PickBridge(rng *rand.Rand, last int) (Bridge, error) {
	m := last - 1
	if m < 3 {
		return Bridge{}, ErrInfeasible
	}
	maxLen := (m + 9) / 10
	if maxLen < 1 {
		maxLen = 1
	}

	var b Bridge
	b.LenI = 1 + rng.Intn(maxLen)
	b.LenJ = 1 + rng.Intn(maxLen)
	b.I = 1 + rng.Intn(m-b.LenI-b.LenJ)
	b.J = b.I + b.LenI + 1 + rng.Intn(m-b.LenJ-b.I-b.LenI+1)

	return b, nil
}

// Valid reports whether b fits inside the interior of a route with closing
// position last and keeps a non-empty middle block.
func (b Bridge) Valid(last int) bool {
	return b.LenI >= 1 && b.LenJ >= 1 &&
		b.I >= 1 && b.I+b.LenI < b.J &&
		b.J+b.LenJ-1 <= last-1
}

// ApplyBridge rearranges route in place according to b.
//
// Errors: ErrDimensionMismatch if b does not fit the route.
//
// Complexity: O(J+LenJ-I) time and space.
func ApplyBridge(route []int, b Bridge) error {
	if !b.Valid(len(route) - 1) {
		return ErrDimensionMismatch
	}

	end := b.J + b.LenJ
	buf := make([]int, 0, end-b.I)
	buf = append(buf, route[b.J:end]...)
	buf = append(buf, route[b.I+b.LenI:b.J]...)
	buf = append(buf, route[b.I:b.I+b.LenI]...)
	copy(route[b.I:end], buf)

	return nil
}
