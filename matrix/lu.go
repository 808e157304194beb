// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU factors a square matrix m with partial pivoting: P·m = L·U, where row i
// of P·m is row perm[i] of m, L is unit lower triangular and U is upper
// triangular.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Prepare): copy m into a flat work buffer, perm = identity.
//	Stage 3 (Execute): for each column k pick the largest |pivot| at or below
//	row k, swap it up, then eliminate below it.
//	Stage 4 (Finalize): split the work buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a whole pivot column is zero or non-finite.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix) (*Dense, *Dense, []int, error) {
	// Stage 1: Validate input
	if m == nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, nil, fmt.Errorf("LU: non-square %dx%d: %w", rows, cols, ErrNonSquare)
	}
	n := rows

	// Stage 2: Prepare the work buffer
	a := make([]float64, n*n)
	perm := make([]int, n)
	var (
		i, j, k int
		v       float64
		err     error
	)
	for i = 0; i < n; i++ {
		perm[i] = i
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, nil, fmt.Errorf("LU: %w", err)
			}
			a[i*n+j] = v
		}
	}

	// Stage 3: Eliminate column by column
	for k = 0; k < n; k++ {
		p := k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		pivot := a[p*n+k]
		if pivot == 0 || math.IsNaN(pivot) || math.IsInf(pivot, 0) {
			return nil, nil, nil, fmt.Errorf("LU: pivot %d = %g: %w", k, pivot, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f := a[i*n+k] / pivot
			a[i*n+k] = f
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	// Stage 4: Split into L and U
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// luSolveInto solves L·U·x = P·b for x using forward then backward
// substitution. y and x are caller-provided scratch slices of length n.
func luSolveInto(L, U *Dense, perm []int, b, y, x []float64) {
	n := L.r
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = P·b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = b[perm[i]]
		for k = 0; k < i; k++ {
			sum -= L.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= U.data[i*n+k] * x[k]
		}
		x[i] = sum / U.data[i*n+i]
	}
}
