// SPDX-License-Identifier: MIT

// Package countop implements the operators of two integer-valued factors:
//
//   - CountTrue: count = number of true entries of a Bernoulli array. The
//     count message is the Poisson-Binomial marginal; the array messages are
//     the leave-one-out messages of package pbinom, sharing one forward
//     table per iteration through a pbinom.Cache.
//   - IsGreaterThan: isGreaterThan = (a > b) for Discrete a and b. A point
//     isGreaterThan that no pair of values can satisfy fails with an
//     *operator.AllZeroError instead of returning a message.
//
// VMP messages of these deterministic factors coincide with the EP ones and
// are exported as AverageLogarithm aliases.
package countop
