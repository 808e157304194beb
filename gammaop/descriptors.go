// SPDX-License-Identifier: MIT

package gammaop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac, al := operator.AverageConditional, operator.AverageLogarithm

	return []operator.Descriptor{
		{Factor: productFactor, Output: "product", Kind: ac, Inputs: []string{"a", "b"}},
		{Factor: productFactor, Output: "a", Kind: ac, Inputs: []string{"product", "b"}, SkipIfUniform: []string{"product"}},
		{Factor: productFactor, Output: "product", Kind: al, Inputs: []string{"a", "b"}},
		{Factor: productFactor, Output: "a", Kind: al, Inputs: []string{"product", "b"}, SkipIfUniform: []string{"product"}},
		{Factor: ratioFactor, Output: "ratio", Kind: ac, Inputs: []string{"a", "b"}},
		{Factor: ratioFactor, Output: "a", Kind: ac, Inputs: []string{"ratio", "b"}, SkipIfUniform: []string{"ratio"}},
		{Factor: shapeRateFactor, Output: "sample", Kind: al, Inputs: []string{"shape", "rate"}, Proper: []string{"rate"}},
		{Factor: shapeRateFactor, Output: "rate", Kind: al, Inputs: []string{"sample", "shape"}, Proper: []string{"sample"}},
		{Factor: shapeRateFactor, Output: "sample", Kind: ac, Inputs: []string{"shape", "rate"}},
		{Factor: shapeRateFactor, Output: "rate", Kind: ac, Inputs: []string{"sample", "shape"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
