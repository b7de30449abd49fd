// Package cache_test contains unit tests for the CachedMatrix holder:
// construction, the shape invariant, and the EMPTY/FRESH/STALE transitions.
package cache_test

import (
	"testing"

	"github.com/katalvlaran/matcache/cache"
	"github.com/katalvlaran/matcache/matrix"
	"github.com/stretchr/testify/require"
)

// diag builds an n×n matrix with v on the diagonal.
func diag(t *testing.T, n int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, v))
	}

	return m
}

// TestNew_DefaultState verifies the default holder: 1×1 zero matrix, EMPTY.
func TestNew_DefaultState(t *testing.T) {
	c := cache.New()

	require.Equal(t, 1, c.Matrix().Rows()) // default value is 1×1
	require.Equal(t, 1, c.Matrix().Cols())
	v, err := c.Matrix().At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v) // zero-valued

	require.True(t, c.Stale())   // EMPTY: dirty until first inverse
	require.Nil(t, c.Inverse())  // EMPTY: no inverse stored
}

// TestNewWith verifies construction from a caller-supplied square matrix.
func TestNewWith(t *testing.T) {
	m := diag(t, 3, 2.0)
	c, err := cache.NewWith(m)
	require.NoError(t, err)

	require.Same(t, m, c.Matrix()) // value adopted, not copied
	require.True(t, c.Stale())                    // starts EMPTY
	require.Nil(t, c.Inverse())
}

// TestNewWith_Invalid rejects nil and non-square initial values.
func TestNewWith_Invalid(t *testing.T) {
	_, err := cache.NewWith(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // nil input

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = cache.NewWith(rect)
	require.ErrorIs(t, err, cache.ErrNonSquare) // 2x3 rejected
}

// TestSetMatrix_Invalidates verifies matrix replacement clears the inverse
// and marks the holder stale in the same call.
func TestSetMatrix_Invalidates(t *testing.T) {
	c, err := cache.NewWith(diag(t, 2, 2.0))
	require.NoError(t, err)

	inv := diag(t, 2, 0.5)
	c.SetInverse(inv)           // reach FRESH
	require.False(t, c.Stale()) // inverse is valid now

	next := diag(t, 2, 4.0)
	require.NoError(t, c.SetMatrix(next))

	require.Same(t, next, c.Matrix()) // matrix replaced
	require.Nil(t, c.Inverse())                      // inverse cleared, never readable stale
	require.True(t, c.Stale())                       // back to EMPTY
}

// TestSetMatrix_NonSquare_NoPartialMutation verifies the shape invariant:
// a failed SetMatrix leaves matrix, inverse and staleness all untouched.
func TestSetMatrix_NonSquare_NoPartialMutation(t *testing.T) {
	orig := diag(t, 2, 2.0)
	c, err := cache.NewWith(orig)
	require.NoError(t, err)
	inv := diag(t, 2, 0.5)
	c.SetInverse(inv) // FRESH before the failing call

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	err = c.SetMatrix(rect)
	require.ErrorIs(t, err, cache.ErrNonSquare)   // typed, recoverable failure
	require.ErrorIs(t, err, matrix.ErrNonSquare)  // alias matches at either level

	require.Same(t, orig, c.Matrix()) // matrix untouched
	require.Same(t, inv, c.Inverse()) // inverse untouched
	require.False(t, c.Stale())                      // still FRESH

	// Nil input takes the same no-mutation path.
	err = c.SetMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Same(t, orig, c.Matrix())
	require.False(t, c.Stale())
}

// TestStateTransitions walks the full EMPTY/FRESH/STALE transition table.
func TestStateTransitions(t *testing.T) {
	c, err := cache.NewWith(diag(t, 2, 2.0)) // EMPTY
	require.NoError(t, err)
	require.True(t, c.Stale())
	require.Nil(t, c.Inverse())

	// EMPTY --SetMatrix--> EMPTY
	require.NoError(t, c.SetMatrix(diag(t, 2, 3.0)))
	require.True(t, c.Stale())
	require.Nil(t, c.Inverse())

	// EMPTY --SetInverse--> FRESH
	c.SetInverse(diag(t, 2, 1.0/3.0))
	require.False(t, c.Stale())
	require.NotNil(t, c.Inverse())

	// FRESH --SetInverse--> FRESH
	c.SetInverse(diag(t, 2, 1.0/3.0))
	require.False(t, c.Stale())

	// FRESH --SetMatrix--> EMPTY (inverse cleared, not just flagged)
	require.NoError(t, c.SetMatrix(diag(t, 2, 4.0)))
	require.True(t, c.Stale())
	require.Nil(t, c.Inverse())

	// EMPTY --SetInverse--> FRESH, then the cycle is reusable indefinitely.
	c.SetInverse(diag(t, 2, 0.25))
	require.False(t, c.Stale())
}

// TestSetInverse_TrustedWriteBack confirms no correctness check is performed.
func TestSetInverse_TrustedWriteBack(t *testing.T) {
	c, err := cache.NewWith(diag(t, 2, 2.0))
	require.NoError(t, err)

	bogus := diag(t, 2, 99.0) // not the real inverse — accepted anyway
	c.SetInverse(bogus)
	require.Same(t, bogus, c.Inverse())
	require.False(t, c.Stale())
}
