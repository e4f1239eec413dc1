// Package rvnd implements Randomized Variable Neighborhood Descent: a local
// search that keeps applying neighborhood operators, picked uniformly at random
// from a shrinking working list, until none of them improves the solution.
//
// The controller is objective-agnostic. Callers supply an apply function that
// runs one operator on their own search state and reports whether it applied
// an improving move. Both the TSP and the latency states drive it.
//
// Determinism: given the same *rand.Rand state and the same apply outcomes, the
// sequence of operator calls is identical.
package rvnd

import (
	"errors"
	"strings"
)

// Neighborhood identifies one local-search operator.
type Neighborhood uint8

const (
	// Swap exchanges the nodes at two interior positions.
	Swap Neighborhood = iota
	// Revert reverses an interior segment (2-opt).
	Revert
	// Reinsert1 relocates a single node (or-opt-1).
	Reinsert1
	// Reinsert2 relocates a block of two consecutive nodes (or-opt-2).
	Reinsert2
	// Reinsert3 relocates a block of three consecutive nodes (or-opt-3).
	Reinsert3
)

// ErrUnknownNeighborhood is returned by Parse for an unrecognized name.
var ErrUnknownNeighborhood = errors.New("rvnd: unknown neighborhood")

var names = [...]string{
	Swap:      "swap",
	Revert:    "revert",
	Reinsert1: "reinsert-1",
	Reinsert2: "reinsert-2",
	Reinsert3: "reinsert-3",
}

// String returns the canonical lowercase name, e.g. "reinsert-2".
func (nb Neighborhood) String() string {
	if int(nb) < len(names) {
		return names[nb]
	}

	return "unknown"
}

// SegmentLen returns the block length moved by a reinsertion neighborhood,
// or 0 for Swap and Revert.
func (nb Neighborhood) SegmentLen() int {
	switch nb {
	case Reinsert1:
		return 1
	case Reinsert2:
		return 2
	case Reinsert3:
		return 3
	default:
		return 0
	}
}

// Default returns a fresh copy of the full neighborhood set in canonical order.
func Default() []Neighborhood {
	return []Neighborhood{Swap, Revert, Reinsert1, Reinsert2, Reinsert3}
}

// Parse maps a name ("swap", "revert", "reinsert-1", "or-opt-2", ...) to a Neighborhood.
func Parse(s string) (Neighborhood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "swap":
		return Swap, nil
	case "revert", "2opt", "2-opt", "two-opt":
		return Revert, nil
	case "reinsert-1", "reinsertion", "or-opt-1", "oropt1":
		return Reinsert1, nil
	case "reinsert-2", "or-opt-2", "oropt2":
		return Reinsert2, nil
	case "reinsert-3", "or-opt-3", "oropt3":
		return Reinsert3, nil
	default:
		return 0, ErrUnknownNeighborhood
	}
}

// ParseList parses a comma-separated list of neighborhood names. Duplicates are
// dropped, first occurrence wins. An empty string yields Default().
func ParseList(s string) ([]Neighborhood, error) {
	if strings.TrimSpace(s) == "" {
		return Default(), nil
	}

	var (
		out  []Neighborhood
		seen [len(names)]bool
		nb   Neighborhood
		err  error
	)
	for _, part := range strings.Split(s, ",") {
		if nb, err = Parse(part); err != nil {
			return nil, err
		}
		if !seen[nb] {
			seen[nb] = true
			out = append(out, nb)
		}
	}

	return out, nil
}
