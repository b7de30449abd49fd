// Package matrix_test contains unit tests for the constructor facades.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewIdentity verifies diagonal ones and zeros elsewhere.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3) // build I_3
	require.NoError(t, err)         // expect valid construction

	var want float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want = 0.0
			if i == j {
				want = 1.0 // diagonal entry
			}
			got, errAt := I.At(i, j)
			require.NoError(t, errAt)
			require.Equal(t, want, got) // assert each cell
		}
	}
}

// TestNewIdentityInvalid ensures non-positive dimension is rejected.
func TestNewIdentityInvalid(t *testing.T) {
	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRows verifies row-by-row ingestion into Dense storage.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)      // expect valid construction
	require.Equal(t, 2, m.Rows()) // two rows ingested
	require.Equal(t, 3, m.Cols()) // three columns ingested

	v, err := m.At(1, 2) // spot-check last cell
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestFromRowsBadShape ensures empty and ragged inputs fail with ErrBadShape.
func TestFromRowsBadShape(t *testing.T) {
	_, err := matrix.FromRows(nil) // empty outer slice
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{}}) // empty inner slice
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{
		{1, 2},
		{3}, // ragged row
	})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestZerosLike verifies shape copy with zeroed content.
func TestZerosLike(t *testing.T) {
	src, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	z, err := matrix.ZerosLike(src) // same 3x2 shape
	require.NoError(t, err)
	require.Equal(t, src.Rows(), z.Rows())
	require.Equal(t, src.Cols(), z.Cols())

	v, err := z.At(2, 1) // content must be zeroed
	require.NoError(t, err)
	require.Zero(t, v)
}
