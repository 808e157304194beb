// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const ln2Pi = 1.8378770664093453 // ln(2π)

// Gaussian is a normal distribution in natural parameters
// (mean×precision, precision). Precision=+Inf encodes a point mass whose
// location is stored in MeanTimesPrecision; (0, 0) is uniform.
type Gaussian struct {
	mtp  float64 // mean × precision (or the location of a point mass)
	prec float64 // precision, +Inf for a point mass
}

// NewGaussian builds a Gaussian from mean and variance. Variance 0 yields a
// point mass, +Inf yields uniform.
func NewGaussian(mean, variance float64) Gaussian {
	switch {
	case variance == 0:
		return GaussianPointMass(mean)
	case math.IsInf(variance, 1):
		return GaussianUniform()
	default:
		return Gaussian{mtp: mean / variance, prec: 1 / variance}
	}
}

// GaussianFromNatural builds a Gaussian from mean×precision and precision.
func GaussianFromNatural(meanTimesPrecision, precision float64) Gaussian {
	return Gaussian{mtp: meanTimesPrecision, prec: precision}
}

// GaussianPointMass returns the point mass at x.
func GaussianPointMass(x float64) Gaussian {
	return Gaussian{mtp: x, prec: math.Inf(1)}
}

// GaussianUniform returns the improper flat Gaussian.
func GaussianUniform() Gaussian { return Gaussian{} }

// MeanTimesPrecision returns the first natural parameter.
func (g Gaussian) MeanTimesPrecision() float64 { return g.mtp }

// Precision returns the second natural parameter.
func (g Gaussian) Precision() float64 { return g.prec }

// IsPointMass reports precision == +Inf.
func (g Gaussian) IsPointMass() bool { return math.IsInf(g.prec, 1) }

// IsUniform reports zero natural parameters.
func (g Gaussian) IsUniform() bool { return g.prec == 0 && g.mtp == 0 }

// IsProper reports positive precision (point masses are proper).
func (g Gaussian) IsProper() bool { return g.prec > 0 }

// Point returns the location of a point mass.
func (g Gaussian) Point() float64 { return g.mtp }

// Mean returns the mean; uniform and zero-precision elements report 0.
func (g Gaussian) Mean() float64 {
	if g.IsPointMass() {
		return g.mtp
	}
	if g.prec == 0 {
		return 0
	}

	return g.mtp / g.prec
}

// Variance returns 1/precision (0 for a point mass, +Inf for uniform).
func (g Gaussian) Variance() float64 {
	if g.IsPointMass() {
		return 0
	}

	return 1 / g.prec
}

// MeanAndVariance returns both moments.
func (g Gaussian) MeanAndVariance() (mean, variance float64) {
	return g.Mean(), g.Variance()
}

// LogProb returns ln p(x). Improper elements return the unnormalized
// exponent; a point mass returns 0 at its location and -Inf elsewhere.
func (g Gaussian) LogProb(x float64) float64 {
	switch {
	case g.IsPointMass():
		if x == g.mtp {
			return 0
		}
		return math.Inf(-1)
	case g.IsUniform():
		return 0
	case !g.IsProper():
		return x*(g.mtp-0.5*g.prec*x)
	}
	m, v := g.Mean(), g.Variance()
	d := x - m

	return -0.5*(ln2Pi+math.Log(v)) - 0.5*d*d/v
}

// LogAverageOf returns ln ∫ g(x)·o(x) dx for proper arguments.
func (g Gaussian) LogAverageOf(o Gaussian) (float64, error) {
	switch {
	case g.IsPointMass():
		return o.LogProb(g.mtp), nil
	case o.IsPointMass():
		return g.LogProb(o.mtp), nil
	case g.IsUniform() || o.IsUniform():
		return 0, nil
	case !g.IsProper() || !o.IsProper():
		return 0, fmt.Errorf("Gaussian.LogAverageOf: %w", ErrImproper)
	}
	v := g.Variance() + o.Variance()
	d := g.Mean() - o.Mean()

	return -0.5*(ln2Pi+math.Log(v)) - 0.5*d*d/v, nil
}

// Product multiplies two Gaussian densities.
func (g Gaussian) Product(o Gaussian) (Gaussian, error) {
	switch {
	case g.IsPointMass() && o.IsPointMass():
		if g.mtp != o.mtp {
			return Gaussian{}, fmt.Errorf("Gaussian.Product(%g, %g): %w", g.mtp, o.mtp, ErrAllZero)
		}
		return g, nil
	case g.IsPointMass():
		return g, nil
	case o.IsPointMass():
		return o, nil
	}

	return Gaussian{mtp: g.mtp + o.mtp, prec: g.prec + o.prec}, nil
}

// Ratio divides g by o (EP message extraction).
func (g Gaussian) Ratio(o Gaussian) (Gaussian, error) {
	switch {
	case o.IsPointMass() && g.IsPointMass() && g.mtp == o.mtp:
		return GaussianUniform(), nil
	case o.IsPointMass():
		return Gaussian{}, fmt.Errorf("Gaussian.Ratio: %w", ErrPointMassRatio)
	case g.IsPointMass():
		return g, nil
	}

	return Gaussian{mtp: g.mtp - o.mtp, prec: g.prec - o.prec}, nil
}

// Power raises the density to exponent e.
func (g Gaussian) Power(e float64) Gaussian {
	if e == 0 {
		return GaussianUniform()
	}
	if g.IsPointMass() {
		return g
	}

	return Gaussian{mtp: e * g.mtp, prec: e * g.prec}
}

// Sample draws one value using rng.
func (g Gaussian) Sample(rng *rand.Rand) float64 {
	if g.IsPointMass() {
		return g.mtp
	}

	return distuv.Normal{Mu: g.Mean(), Sigma: math.Sqrt(g.Variance()), Src: rng}.Rand()
}

// String implements fmt.Stringer.
func (g Gaussian) String() string {
	switch {
	case g.IsPointMass():
		return fmt.Sprintf("Gaussian.PointMass(%g)", g.mtp)
	case g.IsUniform():
		return "Gaussian.Uniform"
	}

	return fmt.Sprintf("Gaussian(%g, %g)", g.Mean(), g.Variance())
}
