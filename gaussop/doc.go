// SPDX-License-Identifier: MIT

// Package gaussop implements exact EP operators for Gaussian factors:
//
//   - Product and Ratio with a constant: product = a·b, ratio = a/b.
//   - Max with a constant: max = max(a, c). The exact posterior is a mixture
//     of a point mass at c and a truncated Gaussian; it is projected onto a
//     Gaussian and divided by the incoming message.
//   - IsPositive: isPositive = x > 0, and IsGreaterThan: a > b, which reduces
//     to IsPositive on the difference a-b.
//
// Truncated moments use the normal CDF ratio Φ(z)/φ(z) from package special,
// which stays accurate far into the tails, so sharp messages do not lose
// precision. Point-mass arguments are resolved before the general formula.
package gaussop
