// SPDX-License-Identifier: MIT

package gaussop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac, al, ev := operator.AverageConditional, operator.AverageLogarithm, operator.LogEvidenceRatio

	return []operator.Descriptor{
		{Factor: productFactor, Output: "product", Kind: ac, Inputs: []string{"a", "b"}},
		{Factor: productFactor, Output: "a", Kind: ac, Inputs: []string{"product", "b"}, SkipIfUniform: []string{"product"}},
		{Factor: productFactor, Output: "product", Kind: al, Inputs: []string{"a", "b"}},
		{Factor: productFactor, Output: "a", Kind: al, Inputs: []string{"product", "b"}, SkipIfUniform: []string{"product"}},
		{Factor: ratioFactor, Output: "ratio", Kind: ac, Inputs: []string{"a", "b"}},
		{Factor: ratioFactor, Output: "a", Kind: ac, Inputs: []string{"ratio", "b"}, SkipIfUniform: []string{"ratio"}},
		{Factor: maxFactor, Output: "max", Kind: ac, Inputs: []string{"max", "a", "c"}, Proper: []string{"a"}},
		{Factor: maxFactor, Output: "a", Kind: ac, Inputs: []string{"max", "a", "c"}, Proper: []string{"a"},
			SkipIfUniform: []string{"max"}},
		{Factor: maxFactor, Kind: ev, Inputs: []string{"max", "a", "c"}, Proper: []string{"a", "max"}},
		{Factor: positiveFactor, Output: "isPositive", Kind: ac, Inputs: []string{"x"}},
		{Factor: positiveFactor, Output: "isPositive", Kind: al, Inputs: []string{"x"}},
		{Factor: positiveFactor, Output: "x", Kind: ac, Inputs: []string{"isPositive", "x"}, Proper: []string{"x"},
			SkipIfUniform: []string{"isPositive"}},
		{Factor: positiveFactor, Kind: ev, Inputs: []string{"isPositive", "x"}},
		{Factor: greaterFactor, Output: "isGreaterThan", Kind: ac, Inputs: []string{"a", "b"}},
		{Factor: greaterFactor, Output: "a", Kind: ac, Inputs: []string{"isGreaterThan", "a", "b"},
			Proper: []string{"a", "b"}, SkipIfUniform: []string{"isGreaterThan"}},
		{Factor: greaterFactor, Output: "b", Kind: ac, Inputs: []string{"isGreaterThan", "a", "b"},
			Proper: []string{"a", "b"}, SkipIfUniform: []string{"isGreaterThan"}},
		{Factor: greaterFactor, Kind: ev, Inputs: []string{"isGreaterThan", "a", "b"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
