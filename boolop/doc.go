// SPDX-License-Identifier: MIT

// Package boolop implements exact operators for boolean factors:
// not = ¬b, and = a ∧ b, areEqual = (a == b).
//
// All probabilities are combined as log-odds and log-probabilities, so point
// masses (±Inf log-odds) flow through the same formulas as proper messages.
// A constraint that no assignment satisfies fails with *operator.AllZeroError;
// LogEvidenceRatio functions report it as -Inf instead.
package boolop
