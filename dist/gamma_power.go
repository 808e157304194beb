// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvinfer/special"
)

// GammaPower is the law of y = x^power with x ~ Gamma(shape, rate):
//
//	p(y) ∝ y^(shape/power - 1) · exp(-rate · y^(1/power)).
//
// Power 1 is the Gamma family, power -1 the inverse Gamma. Shape=+Inf
// encodes a point mass at Rate; (power, 0) is the flat element in y.
type GammaPower struct {
	shape float64
	rate  float64
	power float64
}

// NewGammaPower returns GammaPower(shape, rate, power). Power must be non-zero.
func NewGammaPower(shape, rate, power float64) GammaPower {
	return GammaPower{shape: shape, rate: rate, power: power}
}

// GammaPowerPointMass returns the point mass at y.
func GammaPowerPointMass(y, power float64) GammaPower {
	return GammaPower{shape: math.Inf(1), rate: y, power: power}
}

// GammaPowerUniform returns the flat element for the given power.
func GammaPowerUniform(power float64) GammaPower {
	return GammaPower{shape: power, power: power}
}

// Shape returns the shape parameter.
func (g GammaPower) Shape() float64 { return g.shape }

// Rate returns the rate parameter (or the point location).
func (g GammaPower) Rate() float64 { return g.rate }

// PowerParam returns the power.
func (g GammaPower) PowerParam() float64 { return g.power }

// IsPointMass reports shape == +Inf.
func (g GammaPower) IsPointMass() bool { return math.IsInf(g.shape, 1) }

// IsUniform reports the flat element.
func (g GammaPower) IsUniform() bool { return g.shape == g.power && g.rate == 0 }

// IsProper reports shape > 0 and rate > 0.
func (g GammaPower) IsProper() bool {
	return g.IsPointMass() || (g.shape > 0 && g.rate > 0 && g.power != 0)
}

// Point returns the location of a point mass.
func (g GammaPower) Point() float64 { return g.rate }

// Mean returns E[y] = Γ(shape+power)/(Γ(shape)·rate^power), +Inf when
// shape+power ≤ 0.
func (g GammaPower) Mean() float64 {
	if g.IsPointMass() {
		return g.rate
	}

	return g.rawMoment(1)
}

// Variance returns Var[y], +Inf when the second moment diverges.
func (g GammaPower) Variance() float64 {
	if g.IsPointMass() {
		return 0
	}
	m := g.rawMoment(1)

	return g.rawMoment(2) - m*m
}

// rawMoment returns E[y^k].
func (g GammaPower) rawMoment(k float64) float64 {
	kp := k * g.power
	if g.shape+kp <= 0 {
		return math.Inf(1)
	}

	return math.Exp(special.LnGamma(g.shape+kp) - special.LnGamma(g.shape) - kp*math.Log(g.rate))
}

// LogProb returns ln p(y).
func (g GammaPower) LogProb(y float64) float64 {
	switch {
	case g.IsPointMass():
		if y == g.rate {
			return 0
		}
		return math.Inf(-1)
	case y < 0:
		return math.Inf(-1)
	case g.IsUniform():
		return 0
	}
	v := (g.shape/g.power-1)*math.Log(y) - g.rate*math.Pow(y, 1/g.power)
	if g.IsProper() {
		v += g.shape*math.Log(g.rate) - special.LnGamma(g.shape) - math.Log(math.Abs(g.power))
	}

	return v
}

// Product multiplies two GammaPower densities with the same power.
func (g GammaPower) Product(o GammaPower) (GammaPower, error) {
	switch {
	case g.IsPointMass() && o.IsPointMass():
		if g.rate != o.rate {
			return GammaPower{}, fmt.Errorf("GammaPower.Product(%g, %g): %w", g.rate, o.rate, ErrAllZero)
		}
		return g, nil
	case g.IsPointMass():
		return g, nil
	case o.IsPointMass():
		return o, nil
	case g.power != o.power:
		return GammaPower{}, fmt.Errorf("GammaPower.Product: power %g vs %g: %w", g.power, o.power, ErrDimensionMismatch)
	}

	return GammaPower{shape: g.shape + o.shape - g.power, rate: g.rate + o.rate, power: g.power}, nil
}

// Ratio divides g by o (same power).
func (g GammaPower) Ratio(o GammaPower) (GammaPower, error) {
	switch {
	case o.IsPointMass() && g.IsPointMass() && g.rate == o.rate:
		return GammaPowerUniform(g.power), nil
	case o.IsPointMass():
		return GammaPower{}, fmt.Errorf("GammaPower.Ratio: %w", ErrPointMassRatio)
	case g.IsPointMass():
		return g, nil
	case g.power != o.power:
		return GammaPower{}, fmt.Errorf("GammaPower.Ratio: power %g vs %g: %w", g.power, o.power, ErrDimensionMismatch)
	}

	return GammaPower{shape: g.shape - o.shape + g.power, rate: g.rate - o.rate, power: g.power}, nil
}

// Power raises the density to exponent e.
func (g GammaPower) Power(e float64) GammaPower {
	if e == 0 {
		return GammaPowerUniform(g.power)
	}
	if g.IsPointMass() {
		return g
	}

	return GammaPower{shape: e*(g.shape-g.power) + g.power, rate: e * g.rate, power: g.power}
}

// Sample draws one value using rng.
func (g GammaPower) Sample(rng *rand.Rand) float64 {
	if g.IsPointMass() {
		return g.rate
	}

	return math.Pow(NewGamma(g.shape, g.rate).Sample(rng), g.power)
}

// AsGamma returns the Gamma view; ok is false unless power == 1.
func (g GammaPower) AsGamma() (Gamma, bool) {
	if g.power != 1 {
		return Gamma{}, false
	}

	return Gamma{shape: g.shape, rate: g.rate}, true
}

// String implements fmt.Stringer.
func (g GammaPower) String() string {
	if g.IsPointMass() {
		return fmt.Sprintf("GammaPower.PointMass(%g)", g.rate)
	}

	return fmt.Sprintf("GammaPower(%g, %g, %g)", g.shape, g.rate, g.power)
}
