// Package ils drives the GILS-RVND metaheuristic: a multi-start loop whose every
// restart builds a greedy-randomized route and then alternates RVND descent
// with double-bridge perturbation (Iterated Local Search).
//
// The driver is generic over the search state. The TSP and latency packages
// plug in their own State types through the Solution interface; the driver
// never looks at routes or costs beyond Solution.Cost.
//
// Acceptance rule per ILS iteration:
//
//	descend(s)
//	if cost(s) < cost(best) - eps: best = clone(s), reset the iteration counter
//	else:                          s = clone(best)
//	perturb(s)
//
// Determinism: restart r draws from tour.DeriveRand(base, r) with base seeded
// from Options.Seed, so equal options on equal instances give equal results
// unless TimeLimit cuts a run short.
package ils
