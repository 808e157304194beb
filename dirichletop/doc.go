// SPDX-License-Identifier: MIT

// Package dirichletop implements the operators of sample ~ Discrete(probs)
// with a Dirichlet message on probs.
//
// The VMP messages are exact. The EP message to probs projects the
// k-component posterior mixture Σ_k w_k·Dir(α+e_k) back onto a single
// Dirichlet by matching E[ln p_i], solving the Newton system through the
// k×k Fisher matrix diag(ψ'(α)) - ψ'(Σα)·11ᵀ with package matrix.
package dirichletop
