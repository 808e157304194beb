// SPDX-License-Identifier: MIT

package special

import "math"

const (
	lnSqrt2Pi = 0.9189385332046727 // ln √(2π)
	sqrt1_2   = 0.7071067811865476 // 1/√2

	// tailCutoff is where math.Erfc stops resolving Φ(x) and the
	// asymptotic Mills-ratio series takes over.
	tailCutoff = -37.0
)

// NormalPdfLn returns ln φ(x) for the standard normal density.
func NormalPdfLn(x float64) float64 {
	return -0.5*x*x - lnSqrt2Pi
}

// NormalCdf returns Φ(x).
func NormalCdf(x float64) float64 {
	return 0.5 * math.Erfc(-x*sqrt1_2)
}

// NormalCdfLn returns ln Φ(x), accurate deep in both tails.
func NormalCdfLn(x float64) float64 {
	switch {
	case x > 5:
		return math.Log1p(-0.5 * math.Erfc(x*sqrt1_2))
	case x > tailCutoff:
		return math.Log(0.5 * math.Erfc(-x*sqrt1_2))
	default:
		return NormalPdfLn(x) + math.Log(millsSeries(x))
	}
}

// NormalCdfRatio returns Φ(x)/φ(x). For x → -∞ it tends to -1/x.
func NormalCdfRatio(x float64) float64 {
	if x <= tailCutoff {
		return millsSeries(x)
	}

	return math.Exp(NormalCdfLn(x) - NormalPdfLn(x))
}

// millsSeries is the asymptotic expansion of Φ(x)/φ(x) for x ≪ 0.
func millsSeries(x float64) float64 {
	ix2 := 1 / (x * x)
	s := 1 - ix2*(1-3*ix2*(1-5*ix2*(1-7*ix2)))

	return -s / x
}
