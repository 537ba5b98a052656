// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathmodels/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFrom(t, src)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The literal is copied, not aliased.
	src[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(1, 0, 7))
	assert.Equal(t, 7.0, MustAt(t, m, 1, 0))
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, -1.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4.5}})
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
