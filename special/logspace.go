// SPDX-License-Identifier: MIT

package special

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ln2 bounds the switch between the two Log1mExp branches (Mächler 2012).
const ln2 = 0.6931471805599453

// LogSumExp returns ln Σ exp(xs[i]). An empty input or an all -Inf input
// yields -Inf.
func LogSumExp(xs ...float64) float64 {
	if len(xs) == 0 {
		return math.Inf(-1)
	}

	return floats.LogSumExp(xs)
}

// Log1pExp returns ln(1 + eˣ) without overflow for large x.
func Log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}

// Log1mExp returns ln(1 - eˣ) for x ≤ 0. Positive x yields NaN.
func Log1mExp(x float64) float64 {
	switch {
	case x > 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case x > -ln2:
		return math.Log(-math.Expm1(x))
	default:
		return math.Log1p(-math.Exp(x))
	}
}

// Logistic returns 1/(1+e⁻ˣ).
func Logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// LogisticLn returns ln Logistic(x) = -ln(1+e⁻ˣ).
func LogisticLn(x float64) float64 {
	return -Log1pExp(-x)
}

// Logit returns ln(p/(1-p)); 0 and 1 map to -Inf and +Inf.
func Logit(p float64) float64 {
	return math.Log(p) - math.Log1p(-p)
}
