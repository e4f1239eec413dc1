package tour

import "errors"

// Sentinel errors shared by every search package of the module.
// Callers match them with errors.Is; call sites may wrap with %w for context.
var (
	// ErrInvalidInput is returned for malformed inputs: a nil or non-square
	// matrix, fewer than two nodes, NaN/±Inf/negative weights, or an invalid option.
	ErrInvalidInput = errors.New("tour: invalid input")

	// ErrInfeasible is returned when a route is too short for the requested
	// operator or perturbation (e.g. reinsert-3 with fewer than four interior nodes).
	ErrInfeasible = errors.New("tour: route too short for move")

	// ErrDimensionMismatch signals a route whose shape does not match the
	// instance, or move positions outside the interior of the route.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrStartOutOfRange is returned when the anchor vertex is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tour: start vertex out of range")
)
