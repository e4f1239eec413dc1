// Package tour holds the route-level building blocks shared by the TSP and
// MLP (minimum latency) searches of this module.
//
// A route is a closed sequence of node indices of length n+1 whose first and
// last elements are the same anchor (the depot for the latency variant). The
// interior positions 1..n-1 are the only ones any move may touch.
//
// Provided helpers:
//   - Costs: a validated, flattened copy of the distance matrix for hot loops.
//   - Cost / Latency: realized objective values recomputed from scratch.
//   - Validate, Copy, DebugString: structural helpers.
//   - Swap, Reverse, Reinsert: in-place route mutations used by the operators.
//   - Greedy, InsertionRoute, Build: greedy-randomized constructions.
//   - PickBridge, ApplyBridge: double-bridge perturbation.
//   - NewRand, DeriveRand: deterministic random streams (no global state).
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - O(n) time for structural helpers; in-place mutations avoid extra allocations.
package tour
