// Package tour: structural route helpers.
//
// These helpers operate purely on index sequences and never read weights.
// The in-place mutations (Swap, Reverse, Reinsert) are the apply step of the
// neighborhood operators; they accept interior positions only, i.e. every
// index p they touch satisfies 1 ≤ p ≤ len(route)-2.
package tour

import (
	"strconv"
	"strings"
)

// Validate enforces the closed-route invariants:
//
//	len(route) == n+1, route[0]==route[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func Validate(route []int, n int, start int) error {
	if n <= 0 || len(route) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if route[0] != start || route[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// Copy returns an independent copy of route.
func Copy(route []int) []int {
	if route == nil {
		return nil
	}
	out := make([]int, len(route))
	copy(out, route)

	return out
}

// DebugString renders a route as "[0 3 1 2 | 0]"; the bar marks the closure.
func DebugString(route []int) string {
	if len(route) == 0 {
		return "[]"
	}
	var (
		b strings.Builder
		n = len(route) - 1
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(route[i]))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(route[n]))
	b.WriteByte(']')

	return b.String()
}

// interior reports whether 1 ≤ p ≤ len(route)-2.
func interior(route []int, p int) bool {
	return p >= 1 && p <= len(route)-2
}

// Swap exchanges route[i] and route[j].
//
// Complexity: O(1).
func Swap(route []int, i, j int) error {
	if !interior(route, i) || !interior(route, j) {
		return ErrDimensionMismatch
	}
	route[i], route[j] = route[j], route[i]

	return nil
}

// Reverse reverses the inclusive segment route[i..j], i ≤ j.
//
// Complexity: O(j-i).
func Reverse(route []int, i, j int) error {
	if !interior(route, i) || !interior(route, j) || i > j {
		return ErrDimensionMismatch
	}
	for i < j {
		route[i], route[j] = route[j], route[i]
		i++
		j--
	}

	return nil
}

// Reinsert moves the segment route[i..i+k-1] so that it starts at position j
// of the resulting route. j == i leaves the route unchanged.
//
//	j < i: … r[j-1] | r[i..i+k-1] | r[j..i-1] | r[i+k] …
//	j > i: … r[i-1] | r[i+k..j+k-1] | r[i..i+k-1] | r[j+k] …
//
// Complexity: O(|i-j| + k).
func Reinsert(route []int, i, j, k int) error {
	if k < 1 || !interior(route, i) || !interior(route, i+k-1) ||
		!interior(route, j) || !interior(route, j+k-1) {
		return ErrDimensionMismatch
	}
	if i == j {
		return nil
	}

	var seg [3]int
	buf := seg[:0]
	if k > len(seg) {
		buf = make([]int, 0, k)
	}
	buf = append(buf, route[i:i+k]...)

	if j < i {
		copy(route[j+k:i+k], route[j:i])
	} else {
		copy(route[i:j], route[i+k:j+k])
	}
	copy(route[j:j+k], buf)

	return nil
}
