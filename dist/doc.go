// SPDX-License-Identifier: MIT

// Package dist defines the distribution primitives that flow as messages
// between factors: Gaussian, Gamma, GammaPower, Beta, Bernoulli, Discrete and
// Dirichlet.
//
// Every family stores its natural parameters and exposes the same small
// surface used by operators:
//
//   - IsPointMass / IsUniform / IsProper — degenerate-case tests.
//   - Product / Power / Ratio — exponential-family algebra in natural
//     parameters (Power(0) of anything is uniform).
//   - Moments (Mean, Variance, family-specific expectations such as MeanLog).
//   - LogProb and LogAverageOf (log ∫ f·g) where a closed form exists.
//   - Sample, drawing through gonum's stat/distuv with a caller-supplied
//     math/rand/v2 generator.
//
// Representation:
//
//	A point mass is the zero-dispersion limit and is stored with an infinite
//	precision/shape/count plus its location. A uniform element is the
//	identity of Product. Values are immutable: every method returns a new
//	value, so a message handed to a caller is never modified afterwards.
//
// Errors:
//   - ErrAllZero          — a product of incompatible point masses (or an
//     all-zero Discrete) is zero everywhere.
//   - ErrImproper         — a normalizer was requested for an improper element.
//   - ErrPointMassRatio   — division of a non-point distribution by a point mass.
//   - ErrDimensionMismatch, ErrBadProbabilities — Discrete/Dirichlet shape checks.
package dist
