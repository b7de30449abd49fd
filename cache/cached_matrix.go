// SPDX-License-Identifier: MIT
// Package cache: the CachedMatrix holder.

package cache

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// CachedMatrix holds one logical matrix value over time together with its
// last-computed inverse and a dirty flag. The flag is the single source of
// truth for validity: dirty means the stored inverse (if any) does not
// correspond to the current matrix and must never be served.
//
// Invariants (enforced by the methods, relied on by the Resolver):
//   - matrix is always square and non-nil.
//   - after a successful SetMatrix: dirty == true and inverse == nil.
//   - after SetInverse: dirty == false and inverse holds exactly that value.
type CachedMatrix struct {
	matrix  matrix.Matrix // current value, always square
	inverse matrix.Matrix // last computed inverse, nil when absent
	dirty   bool          // true: inverse does not match matrix
}

// New constructs a CachedMatrix holding a 1×1 zero matrix in the EMPTY state.
// The zero matrix is singular, so resolving before the first SetMatrix fails
// with ErrSingular.
func New() *CachedMatrix {
	m, _ := matrix.NewDense(1, 1) // 1×1 shape is always valid

	return &CachedMatrix{matrix: m, dirty: true}
}

// NewWith constructs a CachedMatrix holding the caller-supplied matrix in the
// EMPTY state.
// Errors: matrix.ErrNilMatrix on nil input, ErrNonSquare on rows != cols.
func NewWith(m matrix.Matrix) (*CachedMatrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewWith: %w", err)
	}

	return &CachedMatrix{matrix: m, dirty: true}, nil
}

// SetMatrix replaces the stored matrix with m.
// Stage 1 (Validate): m must be non-nil and square.
// Stage 2 (Execute): replace matrix, clear inverse, mark dirty — one call, so
// no reader can ever observe the old inverse as fresh for the new matrix.
// On validation failure ALL stored state is left untouched (no partial write).
// Errors: matrix.ErrNilMatrix, ErrNonSquare.
// Complexity: O(1) — the value is adopted, not copied.
func (c *CachedMatrix) SetMatrix(m matrix.Matrix) error {
	// Validate before touching any field.
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("SetMatrix: %w", err)
	}

	// Replace and invalidate atomically with respect to sequential readers.
	c.matrix = m
	c.inverse = nil
	c.dirty = true

	return nil
}

// Matrix returns the current matrix value. No side effects.
func (c *CachedMatrix) Matrix() matrix.Matrix {
	return c.matrix
}

// SetInverse stores inv as the cached inverse and clears the dirty flag.
// Trusted write-back: the caller (normally the Resolver) guarantees inv
// actually corresponds to the current matrix; no correctness check is done.
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) {
	c.inverse = inv
	c.dirty = false
}

// Inverse returns the stored inverse, which may be nil (absent) or stale.
// Staleness must be checked separately via Stale. No side effects.
func (c *CachedMatrix) Inverse() matrix.Matrix {
	return c.inverse
}

// Stale reports whether the stored inverse is unusable: true when no inverse
// has ever been computed, or the matrix was replaced since the last one.
func (c *CachedMatrix) Stale() bool {
	return c.dirty
}
