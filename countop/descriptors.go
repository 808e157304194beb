// SPDX-License-Identifier: MIT

package countop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	return []operator.Descriptor{
		{Factor: countFactor, Output: "count", Kind: operator.AverageConditional, Inputs: []string{"array"}},
		{Factor: countFactor, Output: "count", Kind: operator.AverageLogarithm, Inputs: []string{"array"}},
		{Factor: countFactor, Output: "array", Kind: operator.AverageConditional,
			Inputs: []string{"count", "array"}, SkipIfUniform: []string{"count"},
			Buffers: []string{"poissonBinomialTable"}},
		{Factor: countFactor, Output: "array", Kind: operator.AverageLogarithm,
			Inputs: []string{"count", "array"}, SkipIfUniform: []string{"count"},
			Buffers: []string{"poissonBinomialTable"}},
		{Factor: countFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"count", "array"}},
		{Factor: greaterFactor, Output: "isGreaterThan", Kind: operator.AverageConditional, Inputs: []string{"a", "b"}, Fresh: true},
		{Factor: greaterFactor, Output: "isGreaterThan", Kind: operator.AverageLogarithm, Inputs: []string{"a", "b"}, Fresh: true},
		{Factor: greaterFactor, Output: "a", Kind: operator.AverageConditional,
			Inputs: []string{"isGreaterThan", "b"}, SkipIfUniform: []string{"isGreaterThan"}},
		{Factor: greaterFactor, Output: "b", Kind: operator.AverageConditional,
			Inputs: []string{"isGreaterThan", "a"}, SkipIfUniform: []string{"isGreaterThan"}},
		{Factor: greaterFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"isGreaterThan", "a", "b"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
