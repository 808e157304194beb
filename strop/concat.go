// SPDX-License-Identifier: MIT

// Package strop implements the operators of str = str1 + str2 over the
// weighted languages of package automaton.
package strop

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/automaton"
	"github.com/katalvlaran/lvinfer/operator"
)

const concatFactor = "Concat"

// normalized returns l with unit mass, mapping an empty language to an
// all-zero error.
func normalized(op string, l automaton.Language) (automaton.Language, error) {
	out, err := l.Normalize()
	if err != nil {
		return automaton.Language{}, operator.AllZero(concatFactor, "%s: %v", op, err)
	}

	return out, nil
}

// ConcatAverageConditional returns the law of str1 + str2.
func ConcatAverageConditional(str1, str2 automaton.Language) (automaton.Language, error) {
	if str1.IsUniform() || str2.IsUniform() {
		return automaton.Uniform(), nil
	}

	return normalized("ConcatAverageConditional", str1.Append(str2))
}

// Str1AverageConditional returns m(x) ∝ Σ_y str(x+y)·str2(y).
func Str1AverageConditional(str, str2 automaton.Language) (automaton.Language, error) {
	if str.IsUniform() {
		return automaton.Uniform(), nil
	}
	t := automaton.Copy().Append(automaton.Consume(str2))

	return normalized("Str1AverageConditional", t.ProjectSource(str))
}

// Str2AverageConditional returns m(y) ∝ Σ_x str(x+y)·str1(x).
func Str2AverageConditional(str, str1 automaton.Language) (automaton.Language, error) {
	if str.IsUniform() {
		return automaton.Uniform(), nil
	}
	t := automaton.Consume(str1).Append(automaton.Copy())

	return normalized("Str2AverageConditional", t.ProjectSource(str))
}

// LogAverageFactor returns ln Σ str(x+y)·str1(x)·str2(y) for normalized
// messages. str may be uniform; str1 and str2 must be finite.
func LogAverageFactor(str, str1, str2 automaton.Language) (float64, error) {
	if err := operator.RequireProper("LogAverageFactor", str1, str2); err != nil {
		return 0, err
	}
	concat, err := ConcatAverageConditional(str1, str2)
	if err != nil {
		return 0, fmt.Errorf("LogAverageFactor: %w", err)
	}
	if str.IsUniform() {
		return 0, nil
	}
	s, err := str.Normalize()
	if err != nil {
		return 0, fmt.Errorf("LogAverageFactor: %w", err)
	}

	return s.LogAverageOf(concat), nil
}

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac := operator.AverageConditional

	return []operator.Descriptor{
		{Factor: concatFactor, Output: "str", Kind: ac, Inputs: []string{"str1", "str2"},
			SkipIfUniform: []string{"str1", "str2"}, Fresh: true},
		{Factor: concatFactor, Output: "str1", Kind: ac, Inputs: []string{"str", "str2"},
			SkipIfUniform: []string{"str"}, Fresh: true},
		{Factor: concatFactor, Output: "str2", Kind: ac, Inputs: []string{"str", "str1"},
			SkipIfUniform: []string{"str"}, Fresh: true},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
