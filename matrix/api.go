// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical constructor.
//   - Keep function names explicit and intention-revealing to improve discoverability.

package matrix

import "fmt"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // Set is bounds-safe after shape validation
	}

	return I, nil
}

// FromRows builds a Dense matrix from row slices.
// Stage 1 (Validate): non-empty input, uniform row lengths.
// Stage 2 (Prepare): allocate Dense of matching shape.
// Stage 3 (Execute): copy values row by row.
// Errors: ErrBadShape on empty or ragged input.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Stage 1: Validate outer and inner shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	cols := len(rows[0]) // expected width of every row
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: ragged row %d: %w", i, ErrBadShape)
		}
	}

	// Stage 2: Allocate the destination
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	// Stage 3: Copy values into flat storage
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}
