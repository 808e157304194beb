// SPDX-License-Identifier: MIT

// Package betaop implements the operators of prob ~ Beta(mean·totalCount,
// (1-mean)·totalCount) and of sample ~ Bernoulli(p).
//
// Three techniques are used:
//
//  1. Exact VMP. ProbAverageLogarithm needs only E[mean] and E[totalCount].
//  2. EP moment matching. ProbAverageConditional computes the posterior
//     expectations E[ln x] and E[ln(1-x)] by Gauss–Legendre quadrature over
//     mean and over Gamma quantiles of totalCount, then solves for the Beta
//     with those log-moments by Newton's method on the 2×2 Fisher matrix
//     (ProjectLogMoments), divides out the incoming message and damps.
//  3. NCVMP gradient projection. MeanAverageLogarithm takes the gradient of
//     the expected log factor with respect to the natural parameters of the
//     current mean marginal and maps it through the inverse Fisher matrix.
//
// Non-finite intermediates and singular Fisher matrices fail with
// operator.ErrNumerical. Options (damping, quadrature nodes, Newton
// tolerance, logger) come from package operator.
package betaop
