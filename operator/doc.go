// SPDX-License-Identifier: MIT

// Package operator holds the machinery shared by every factor's message
// operators: the degenerate-case dispatcher, capability descriptors and their
// registry, per-factor buffers, damping, the error taxonomy, and the common
// functional options.
//
// Argument classification:
//
//	Every incoming message is one of three kinds, checked in this order:
//	  KindPoint      — a point mass; operators short-circuit to the
//	                   zero-dispersion limit without dividing by zero.
//	  KindDegenerate — uniform or improper; operators either return a neutral
//	                   result or fail with ErrImproperInput.
//	  KindProper     — everything else; the general formula applies.
//	Dispatch routes a message to the matching case function and fails with
//	ErrUnsupported when that case is not implemented.
//
// Descriptors:
//
//	A Descriptor names the factor, the output argument, the semantics
//	(AverageConditional for EP, AverageLogarithm for VMP, LogEvidenceRatio),
//	and the annotations a scheduler needs: required-proper inputs,
//	skip-if-uniform inputs, fresh outputs, outputs that alias an input, and the
//	buffers the operator reads. Operator packages publish theirs through
//	Descriptors() and Register(*Registry).
//
// Buffers:
//
//	Buffer[T] keeps state between calls (Laplace estimates, DP tables). Its
//	Policy decides whether a read before the first Store fails, whether the
//	value is rebuilt on every call, or whether it persists until the trigger
//	inputs change.
//
// Damping:
//
//	Damp(candidate, previous, d) returns candidate^(1-d)·previous^d for
//	d in [0, 1). d == 0 returns the candidate unchanged.
//
// Errors:
//   - ErrImproperInput       — a required-proper argument was improper or uniform.
//   - ErrUnsupported         — a case the operator does not implement.
//   - ErrAllZero             — a deterministic constraint is violated; see AllZeroError.
//   - ErrNumerical           — a non-finite result or singular Fisher matrix.
//   - ErrBadDamping          — damping outside [0, 1).
//   - ErrBufferUninitialized — a buffer was read before its first Store.
package operator
