// SPDX-License-Identifier: MIT

package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Digamma returns ψ(x) = d/dx ln Γ(x).
func Digamma(x float64) float64 {
	return mathext.Digamma(x)
}

// Trigamma returns ψ'(x) for x > 0, computed as the Hurwitz zeta ζ(2, x).
// Non-positive or NaN arguments return NaN.
func Trigamma(x float64) float64 {
	if !(x > 0) {
		return math.NaN()
	}
	if math.IsInf(x, 1) {
		return 0
	}

	return mathext.Zeta(2, x)
}

// LnGamma returns ln|Γ(x)|.
func LnGamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}

// LnBeta returns ln B(a, b) for a, b > 0.
func LnBeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}
