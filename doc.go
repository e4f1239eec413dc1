// Package gils is a GILS-RVND local-search toolkit for two closed-route
// problems over a dense cost matrix: the Traveling Salesman Problem (minimize
// the tour length) and the Minimum Latency Problem (minimize the sum of
// arrival times).
//
// Both solvers share one driver: greedy-randomized construction, then
// Iterated Local Search whose descent is a Randomized Variable Neighborhood
// Descent over swap, 2-opt reversal and or-opt reinsertion, perturbed by a
// double-bridge. Every move is scored in O(1) from precomputed data: arc
// weights and reversal prefix sums for the TSP, a subsequence
// (duration, cost, weight) table for the MLP.
//
// Layout:
//
//	matrix/            Matrix interface, Dense storage and validators
//	tour/              weight table, route helpers, constructions, double-bridge, RNG
//	rvnd/              neighborhood catalog and the RVND loop
//	ils/               options and the generic restart/ILS driver
//	tsp/               TSP state, O(1) deltas, Solve
//	mlp/               subsequence table, MLP state, O(1) deltas, Solve
//	instance/          TSPLIB and plain-matrix readers
//	internal/config/   GILS_* environment and .env handling
//	internal/obs/      run-id tagged logging and per-operator counters
//	cmd/gils/          command-line front end
//
// Quick start:
//
//	d, _ := matrix.NewDenseFromRows(rows)
//	res, err := tsp.Solve(d, ils.DefaultOptions())
//	// res.Tour is closed: res.Tour[0] == res.Tour[len(res.Tour)-1]
//
// Runs are deterministic for a fixed Options.Seed.
package gils
