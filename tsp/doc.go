// Package tsp implements the TSP side of the GILS-RVND engine: a search state
// that keeps a closed route and its running cost, four neighborhood operators
// with closed-form O(1) deltas, a double-bridge perturbation, and Solve, which
// hands the state to the generic ils driver.
//
// Operators (positions 0 and N hold the anchor and never move):
//
//   - Swap:       exchange route[i] and route[j], 1 ≤ i < j ≤ N-1.
//   - Revert:     reverse route[i..j] (2-opt).
//   - Reinsert k: move the block route[i..i+k-1] so that it starts at j, k∈{1,2,3}.
//
// Every operator scans its whole neighborhood, keeps the strictly smallest
// delta (earliest found wins ties) and applies it only when delta < -Eps.
//
// Directed arcs are used throughout, so asymmetric matrices are supported. For
// Revert on an asymmetric instance the delta additionally charges the reversed
// interior arcs, read from forward and backward prefix sums.
//
// Complexity per operator scan: O(N²). Perturb: O(N).
package tsp
