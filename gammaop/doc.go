// SPDX-License-Identifier: MIT

// Package gammaop implements exact operators for positive-valued factors:
//
//   - product = a·b and ratio = a/b where a is GammaPower (or Gamma) and b is
//     a positive constant. Scaling y = x^p by b rescales the rate by b^(-1/p)
//     and leaves shape and power unchanged, so both directions are closed form.
//   - sample ~ Gamma(shape, rate) with a random rate, under VMP, where the
//     messages only need E[rate] and E[sample].
//
// These operators are also the exact limit that package laplace falls back to
// when its B argument is a point mass.
package gammaop
