// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvinfer/special"
)

// Gamma is the distribution p(x) ∝ x^(shape-1)·exp(-rate·x) on x > 0.
// Shape=+Inf encodes a point mass at Rate; (1, 0) is uniform.
type Gamma struct {
	shape float64
	rate  float64
}

// NewGamma returns Gamma(shape, rate) without validation, so improper
// messages can be represented.
func NewGamma(shape, rate float64) Gamma {
	return Gamma{shape: shape, rate: rate}
}

// GammaFromMeanAndVariance moment-matches a Gamma.
func GammaFromMeanAndVariance(mean, variance float64) Gamma {
	if variance == 0 {
		return GammaPointMass(mean)
	}

	return Gamma{shape: mean * mean / variance, rate: mean / variance}
}

// GammaPointMass returns the point mass at x.
func GammaPointMass(x float64) Gamma {
	return Gamma{shape: math.Inf(1), rate: x}
}

// GammaUniform returns the improper flat Gamma.
func GammaUniform() Gamma { return Gamma{shape: 1} }

// Shape returns the shape parameter.
func (g Gamma) Shape() float64 { return g.shape }

// Rate returns the rate parameter (or the point location).
func (g Gamma) Rate() float64 { return g.rate }

// IsPointMass reports shape == +Inf.
func (g Gamma) IsPointMass() bool { return math.IsInf(g.shape, 1) }

// IsUniform reports (1, 0).
func (g Gamma) IsUniform() bool { return g.shape == 1 && g.rate == 0 }

// IsProper reports shape > 0 and rate > 0.
func (g Gamma) IsProper() bool {
	return g.IsPointMass() || (g.shape > 0 && g.rate > 0)
}

// Point returns the location of a point mass.
func (g Gamma) Point() float64 { return g.rate }

// Mean returns shape/rate.
func (g Gamma) Mean() float64 {
	if g.IsPointMass() {
		return g.rate
	}

	return g.shape / g.rate
}

// Variance returns shape/rate².
func (g Gamma) Variance() float64 {
	if g.IsPointMass() {
		return 0
	}

	return g.shape / (g.rate * g.rate)
}

// MeanLog returns E[ln x] = ψ(shape) - ln(rate).
func (g Gamma) MeanLog() float64 {
	if g.IsPointMass() {
		return math.Log(g.rate)
	}

	return special.Digamma(g.shape) - math.Log(g.rate)
}

// LogProb returns ln p(x).
func (g Gamma) LogProb(x float64) float64 {
	switch {
	case g.IsPointMass():
		if x == g.rate {
			return 0
		}
		return math.Inf(-1)
	case x < 0:
		return math.Inf(-1)
	case g.IsUniform():
		return 0
	}
	v := (g.shape-1)*math.Log(x) - g.rate*x
	if g.IsProper() {
		v += g.shape*math.Log(g.rate) - special.LnGamma(g.shape)
	}

	return v
}

// Product multiplies two Gamma densities.
func (g Gamma) Product(o Gamma) (Gamma, error) {
	switch {
	case g.IsPointMass() && o.IsPointMass():
		if g.rate != o.rate {
			return Gamma{}, fmt.Errorf("Gamma.Product(%g, %g): %w", g.rate, o.rate, ErrAllZero)
		}
		return g, nil
	case g.IsPointMass():
		return g, nil
	case o.IsPointMass():
		return o, nil
	}

	return Gamma{shape: g.shape + o.shape - 1, rate: g.rate + o.rate}, nil
}

// Ratio divides g by o.
func (g Gamma) Ratio(o Gamma) (Gamma, error) {
	switch {
	case o.IsPointMass() && g.IsPointMass() && g.rate == o.rate:
		return GammaUniform(), nil
	case o.IsPointMass():
		return Gamma{}, fmt.Errorf("Gamma.Ratio: %w", ErrPointMassRatio)
	case g.IsPointMass():
		return g, nil
	}

	return Gamma{shape: g.shape - o.shape + 1, rate: g.rate - o.rate}, nil
}

// Power raises the density to exponent e.
func (g Gamma) Power(e float64) Gamma {
	if e == 0 {
		return GammaUniform()
	}
	if g.IsPointMass() {
		return g
	}

	return Gamma{shape: e*(g.shape-1) + 1, rate: e * g.rate}
}

// Sample draws one value using rng.
func (g Gamma) Sample(rng *rand.Rand) float64 {
	if g.IsPointMass() {
		return g.rate
	}

	return distuv.Gamma{Alpha: g.shape, Beta: g.rate, Src: rng}.Rand()
}

// Quantile returns the p-quantile of a proper Gamma.
func (g Gamma) Quantile(p float64) float64 {
	if g.IsPointMass() {
		return g.rate
	}

	return distuv.Gamma{Alpha: g.shape, Beta: g.rate}.Quantile(p)
}

// AsPower views g as a GammaPower with power 1.
func (g Gamma) AsPower() GammaPower {
	return GammaPower{shape: g.shape, rate: g.rate, power: 1}
}

// String implements fmt.Stringer.
func (g Gamma) String() string {
	if g.IsPointMass() {
		return fmt.Sprintf("Gamma.PointMass(%g)", g.rate)
	}

	return fmt.Sprintf("Gamma(%g, %g)", g.shape, g.rate)
}
