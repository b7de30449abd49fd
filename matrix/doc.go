// Package matrix provides the dense linear-algebra substrate for matcache.
//
// The matrix package provides:
//
//   - A small Matrix interface (Rows/Cols/At/Set/Clone) with bounds-checked,
//     error-returning indexers — no panics on user input.
//   - Dense, a row-major float64 implementation backed by a flat slice for
//     cache friendliness.
//   - Constructors (NewDense, NewIdentity, FromRows, ZerosLike) and a
//     standard multiplication kernel (Mul) with a flat-slice fast path.
//   - Central validators (ValidateNotNil, ValidateSquare) so callers never
//     duplicate guard logic.
//
// All failure modes are package-level sentinel errors matched via errors.Is.
// Matrices are best for dense or small problems where O(n²) memory is
// acceptable; inversion itself lives in the ops subpackage.
package matrix
