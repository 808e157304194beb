// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/matrix"
)

// TestDense_Accessors verifies shape validation and safe indexing.
func TestDense_Accessors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	assert.Contains(t, m.String(), "4.5")
}

// fromRows builds a Dense from a rectangular row slice.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// mulVec returns m·x for checking residuals.
func mulVec(t *testing.T, m *matrix.Dense, x []float64) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		for j := range x {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i] += v * x[j]
		}
	}

	return out
}

// TestLU_Errors covers nil, non-square and singular inputs.
func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	ns, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	_, err = matrix.Solve(ns, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	sing := fromRows(t, [][]float64{{1, 2, 3}, {1, 2, 3}, {0, 1, 4}})
	_, err = matrix.Solve(sing, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestLU_Pivoting reconstructs P·A = L·U and solves systems whose leading
// entry is zero or tiny.
func TestLU_Pivoting(t *testing.T) {
	t.Parallel()

	A := fromRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {4, 0, 3}})
	L, U, perm, err := matrix.LU(A)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, perm)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var lu float64
			for k := 0; k < 3; k++ {
				l, _ := L.At(i, k)
				u, _ := U.At(k, j)
				lu += l * u
			}
			a, _ := A.At(perm[i], j)
			assert.InDelta(t, a, lu, 1e-14, "(%d,%d)", i, j)
		}
	}

	swap := fromRows(t, [][]float64{{0, 1}, {1, 0}})
	x, err := matrix.Solve(swap, []float64{3, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3}, x)

	// without a row exchange the 1e-20 pivot wipes out the second equation
	tiny := fromRows(t, [][]float64{{1e-20, 1}, {1, 1}})
	x, err = matrix.Solve(tiny, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, x[0], 1e-12)
	assert.InDelta(t, 1, x[1], 1e-12)
}

// TestSolve_FisherLike solves a diagonal-plus-rank-one system, the Dirichlet
// Fisher shape, and checks the residual.
func TestSolve_FisherLike(t *testing.T) {
	t.Parallel()

	A := fromRows(t, [][]float64{{3, -1, -1}, {-1, 2, -1}, {-1, -1, 4}})
	b := []float64{1, 2, 3}

	x, err := matrix.Solve(A, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, b, mulVec(t, A, x), 1e-12)

	_, err = matrix.Solve(A, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse2x2 checks the closed form and its singular guard.
func TestInverse2x2(t *testing.T) {
	t.Parallel()

	ia, ib, ic, id, err := matrix.Inverse2x2(4, 7, 2, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, ia, 1e-15)
	assert.InDelta(t, -0.7, ib, 1e-15)
	assert.InDelta(t, -0.2, ic, 1e-15)
	assert.InDelta(t, 0.4, id, 1e-15)

	_, _, _, _, err = matrix.Inverse2x2(1, 2, 2, 4)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, _, _, _, err = matrix.Inverse2x2(math.NaN(), 0, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
