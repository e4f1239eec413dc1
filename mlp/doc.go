// Package mlp implements the minimum latency side (traveling repairman) of the
// GILS-RVND engine. The objective of a route 0, r1, …, r(N-1), 0 is the sum of
// the arrival times at every customer; the return to the depot is free.
//
// Moves are evaluated in O(1) by concatenating precomputed subsequences. For
// every pair of route positions the Table stores a Subsequence {T, C, W}:
//
//	T  duration of the range
//	C  latency accumulated inside the range when it starts at time 0
//	W  number of customers in the range (depot ends count 0)
//
// Entry (i, j) with i ≤ j is the range traversed forward; (j, i) is the same
// range traversed backwards, which Revert needs. Concatenation:
//
//	(a ⊕ b).T = a.T + d + b.T
//	(a ⊕ b).C = a.C + b.W·(a.T + d) + b.C
//	(a ⊕ b).W = a.W + b.W
//
// where d is the arc from the last node of a to the first node of b.
//
// The table describes one route only: after every applied move or perturbation
// it is marked stale and rebuilt in O(N²) before the next evaluation.
package mlp
