// SPDX-License-Identifier: MIT

// Package lvinfer is the message-operator core of an expectation-propagation
// (EP) and variational message passing (VMP) engine for factor graphs.
//
// 🚀 What is lvinfer?
//
//	A deterministic, allocation-light library of factor-to-variable messages:
//		• Distributions: Gaussian, Gamma, GammaPower, Beta, Bernoulli, Discrete, Dirichlet
//		• Exact operators: closed-form messages for Gaussian, Gamma and Boolean factors
//		• Moment matching: Newton projection with a Fisher matrix and damping
//		• Laplace operators: a shared buffered posterior refit only when inputs move
//		• Poisson-Binomial: forward/backward DP tables for count factors
//		• Sampling fallback: importance-weighted ProbGreater for mixed families
//		• Strings: weighted finite languages and transducers for concatenation
//
// ✨ Design guarantees
//
//   - Pure functions – operators take incoming messages and return outgoing ones
//   - Explicit errors – sentinel errors wrapped with the failing operator's name
//   - Reproducible – seeded PCG streams and sorted iteration everywhere
//   - Registrable – every package exposes Descriptors() and Register(*operator.Registry)
//
// Packages:
//
//	special/     — log-gamma, digamma, trigamma, logistic and log-sum-exp helpers
//	matrix/      — small dense matrices, LU solve and Fisher systems
//	dist/        — the distribution families and their Product/Ratio/Power algebra
//	operator/    — options, damping, buffers, descriptors and the registry
//	pbinom/      — Poisson-Binomial DP tables and the coefficient cache
//	countop/     — CountTrue and IsGreaterThan over Discrete counts
//	boolop/      — And, Or, Not, AreEqual and Bernoulli-from-Boolean factors
//	gaussop/     — IsPositive, IsGreaterThan, Product with a point mass, Max
//	gammaop/     — Gamma product, ratio and power factors
//	betaop/      — Beta from mean and total count, Bernoulli from Beta
//	dirichletop/ — Discrete from Dirichlet with mean-log projection
//	laplace/     — buffered Laplace Product and Ratio operators over GammaPower
//	compare/     — sampled IsGreaterThan for arbitrary samplers
//	automaton/   — weighted finite languages and transducers
//	strop/       — string concatenation messages
//	config/      — YAML settings mapped onto operator options
//
// Quick example:
//
//	msg := gaussop.IsGreaterThanAverageConditional(dist.NewGaussian(1, 2), dist.NewGaussian(0, 1))
//
// sends the exact Bernoulli message to the outcome of a > b.
//
//	go get github.com/katalvlaran/lvinfer
package lvinfer
