// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Solve returns x with m·x = b.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != m.Rows().
//   - Everything LU returns.
//   - ErrSingular for a non-finite solution component.
func Solve(m Matrix, b []float64) ([]float64, error) {
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if len(b) != L.r {
		return nil, fmt.Errorf("Solve: rhs len %d, want %d: %w", len(b), L.r, ErrDimensionMismatch)
	}
	y := make([]float64, L.r)
	x := make([]float64, L.r)
	luSolveInto(L, U, perm, b, y, x)
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, fmt.Errorf("Solve: component %d: %w", i, ErrSingular)
		}
	}

	return x, nil
}

// Inverse2x2 inverts [[a, b], [c, d]] in closed form.
// Returns ErrSingular when the determinant is zero or any result is non-finite.
//
// Complexity: O(1).
func Inverse2x2(a, b, c, d float64) (ia, ib, ic, id float64, err error) {
	det := a*d - b*c
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, 0, 0, 0, fmt.Errorf("Inverse2x2: det=%g: %w", det, ErrSingular)
	}
	ia, ib, ic, id = d/det, -b/det, -c/det, a/det
	for _, v := range [...]float64{ia, ib, ic, id} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, fmt.Errorf("Inverse2x2: %w", ErrSingular)
		}
	}

	return ia, ib, ic, id, nil
}
