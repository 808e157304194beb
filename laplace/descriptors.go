// SPDX-License-Identifier: MIT

package laplace

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac := operator.AverageConditional
	buffers := []string{bufferName}

	return []operator.Descriptor{
		{Factor: productFactor, Output: "product", Kind: ac, Inputs: []string{"product", "a", "b"},
			SkipIfUniform: []string{"a", "b"}, Fresh: true, Buffers: buffers},
		{Factor: productFactor, Output: "a", Kind: ac, Inputs: []string{"product", "a", "b"},
			SkipIfUniform: []string{"product", "b"}, Fresh: true, Buffers: buffers},
		{Factor: productFactor, Output: "b", Kind: ac, Inputs: []string{"product", "a", "b"},
			SkipIfUniform: []string{"product", "a"}, Fresh: true, Buffers: buffers},
		{Factor: ratioFactor, Output: "ratio", Kind: ac, Inputs: []string{"ratio", "a", "b"},
			SkipIfUniform: []string{"a", "b"}, Fresh: true, Buffers: buffers},
		{Factor: ratioFactor, Output: "a", Kind: ac, Inputs: []string{"ratio", "a", "b"},
			SkipIfUniform: []string{"ratio", "b"}, Fresh: true, Buffers: buffers},
		{Factor: ratioFactor, Output: "b", Kind: ac, Inputs: []string{"ratio", "a", "b"},
			SkipIfUniform: []string{"ratio", "a"}, Fresh: true, Buffers: buffers},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
