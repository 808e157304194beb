// SPDX-License-Identifier: MIT

// Package laplace implements buffered Laplace-approximation operators for
// product = a·b and ratio = a/b, where a and product are GammaPower and b is
// Gamma.
//
// Each operator value owns one buffer holding a Gamma estimate of b's
// posterior. Refresh rebuilds it when any incoming message changed:
//
//	uninitialized ──Refresh──▶ fitted ──Refresh (inputs changed)──▶ refitted
//
// The fit runs Newton's method on ln b to the mode of the log posterior and
// matches the Gamma log density's first two derivatives there. DLogFs is the
// single derivative routine for the integrated factor, shared by every power.
//
// Outgoing messages are closed forms of the buffer: given b, the latent
// y^(1/p) (or a^(1/p)) is Gamma(c, w(b)), and E[1/w], E[1/w²] under the
// buffer come from a second-order delta method. Point-mass a or b bypass to
// package gammaop; uniform inputs yield uniform messages. Damping applies to
// the final message only.
package laplace
