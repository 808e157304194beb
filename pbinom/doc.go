// SPDX-License-Identifier: MIT

// Package pbinom computes the Poisson-Binomial distribution of the number of
// true values among n independent Bernoulli inputs, and the exact
// leave-one-out message back to every input, in O(n²) total.
//
// Algorithm Outline:
//
//  1. Forward. F[0][0] = 1 and
//     F[i][j] = F[i-1][j]·(1-p_i) + F[i-1][j-1]·p_i, 1 ≤ i ≤ n, 0 ≤ j ≤ i.
//     F[n] is the count marginal. Row i has i+1 entries.
//  2. Backward. Given a target D over the count (the marginal, an observed
//     count, or a downstream message), B_n = D and
//     B_{i-1}[j] = (1-p_i)·B_i[j] + p_i·B_i[j+1], so that
//     B_i[j] = Σ_c D[c]·P(inputs i+1..n sum to c-j).
//  3. Messages. Input i receives
//     P(true) ∝ Σ_j F[i-1][j]·B_i[j+1],  P(false) ∝ Σ_j F[i-1][j]·B_i[j].
//     A normalizer below MinNormalizer fails with ErrDegenerate.
//
// Complexity:
//
//	Time   = O(n²) for all three stages together.
//	Memory = O(n²) for F and B.
//
// Buffering:
//
//	Cache keeps the forward Table between calls and rebuilds it only when
//	an input probability changes, so all n element messages of one
//	iteration share a single forward pass.
//
// Errors:
//   - ErrBadProbability — an input outside [0, 1] or non-finite (all
//     offending entries are reported together).
//   - ErrBadTarget      — a target whose length is not n+1 or has negative entries.
//   - ErrDegenerate     — a vanishing normalizer; wraps operator.ErrNumerical.
package pbinom
