// SPDX-License-Identifier: MIT

package dist

import (
	"errors"
	"math/rand/v2"
)

var (
	// ErrAllZero indicates a product that is zero everywhere, e.g. two point
	// masses at different locations.
	ErrAllZero = errors.New("dist: distribution is zero everywhere")

	// ErrImproper indicates a normalizing quantity was requested for an
	// improper (non-normalizable) element.
	ErrImproper = errors.New("dist: distribution is improper")

	// ErrPointMassRatio indicates division of a non-point distribution by a point mass.
	ErrPointMassRatio = errors.New("dist: ratio with a point-mass denominator")

	// ErrDimensionMismatch indicates Discrete/Dirichlet operands of different sizes.
	ErrDimensionMismatch = errors.New("dist: dimension mismatch")

	// ErrBadProbabilities indicates negative, non-finite or all-zero weights.
	ErrBadProbabilities = errors.New("dist: invalid probability vector")
)

// Distribution is the degenerate-case surface shared by all families.
type Distribution interface {
	// IsPointMass reports whether all mass sits at one value.
	IsPointMass() bool

	// IsUniform reports whether this is the identity element of Product.
	IsUniform() bool

	// IsProper reports whether the distribution can be normalized.
	IsProper() bool
}

// Family is the exponential-family algebra used by damping and EP division.
type Family[T any] interface {
	Distribution

	// Product multiplies densities (adds natural parameters).
	Product(other T) (T, error)

	// Power raises the density to an exponent (scales natural parameters).
	Power(exponent float64) T
}

// Sampler is a scalar distribution that can be sampled and evaluated.
type Sampler interface {
	Distribution
	Sample(rng *rand.Rand) float64
	LogProb(x float64) float64
	Mean() float64
	Variance() float64
}

// Compile-time conformance.
var (
	_ Family[Gaussian]   = Gaussian{}
	_ Family[Gamma]      = Gamma{}
	_ Family[GammaPower] = GammaPower{}
	_ Family[Beta]       = Beta{}
	_ Family[Bernoulli]  = Bernoulli{}
	_ Family[Discrete]   = Discrete{}
	_ Family[Dirichlet]  = Dirichlet{}

	_ Sampler = Gaussian{}
	_ Sampler = Gamma{}
	_ Sampler = GammaPower{}
	_ Sampler = Beta{}
)
