// SPDX-License-Identifier: MIT

// Package special provides the scalar numerics shared by every message
// operator: polygamma functions, log-domain arithmetic, the standard normal
// CDF evaluated in log space, and Gauss–Legendre quadrature nodes.
//
// What is inside:
//
//   - Digamma, Trigamma — derivatives of ln Γ(x) (x > 0).
//   - LogSumExp, Log1pExp, Log1mExp — log-domain sums and complements.
//   - Logistic, LogisticLn, Logit — Bernoulli log-odds conversions.
//   - NormalCdf, NormalCdfLn, NormalPdfLn, NormalCdfRatio — Gaussian tail math
//     that stays finite far into the tails.
//   - Legendre — quadrature nodes/weights on an arbitrary finite interval.
//
// All functions are pure and allocation-free except Legendre.
//
// Numeric contract:
//
//	Probabilities close to 0 or 1 are never exponentiated when a log-domain
//	path exists. Invalid domains return NaN rather than panicking, so callers
//	can detect degeneracy with IsFinite and surface ErrNumerical.
package special
