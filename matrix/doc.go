// SPDX-License-Identifier: MIT

// Package matrix offers the small dense linear algebra used by message
// operators that project gradients through a Fisher information matrix.
//
// The matrix package provides:
//
//   - Dense: row-major storage with safe At/Set accessors (errors, no panics).
//   - Inverse2x2: the closed-form inverse used by Beta projections.
//   - LU / Solve: LU with partial pivoting for the k×k Fisher systems of
//     Dirichlet projections, which lose conditioning as one count dominates.
//
// Fisher matrices here are k×k with k the number of natural parameters of
// an exponential family (2 for Beta, K for a K-category Dirichlet), so every
// routine favours clarity and determinism over blocking or BLAS.
//
// Numeric policy:
//
//	Set rejects NaN/±Inf (ErrNaNInf). A zero or non-finite pivot is reported
//	as ErrSingular instead of silently producing NaN entries; a tiny pivot
//	is avoided by row exchanges.
package matrix
