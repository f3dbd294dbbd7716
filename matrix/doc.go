// Package matrix provides Dense, a small row-major integer matrix used as the
// all-pairs hop-distance table of escort.
//
// What
//
//   - Dense stores r×c ints in one flat slice (offset = i*c + j).
//   - At/Set are bounds-checked and return sentinel errors instead of panicking.
//   - Row exposes a read-only window into the buffer for hot loops that have
//     already validated their indices.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal) are
//     the single source of truth for shape checks done by other packages.
//
// Determinism
//
//	All loops run in fixed row-major order; no maps are iterated.
//
// Complexity
//
//   - NewDense, Clone, Equal: O(r*c)
//   - At, Set, Row: O(1)
package matrix
