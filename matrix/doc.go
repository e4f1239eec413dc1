// Package matrix provides the dense cost-matrix abstraction consumed by the
// routing heuristics of this module.
//
// The package offers:
//
//   - Matrix, a minimal bounds-checked interface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major implementation with a finite-only numeric policy.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric) that return
//     package sentinels wrapped with a call-site tag.
//
// Matrices are read-only inputs for the solvers: they are prefetched once into a
// flat weight table and never mutated by a search run, so a single Matrix may be
// shared by independent runs.
package matrix
