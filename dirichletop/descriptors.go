// SPDX-License-Identifier: MIT

package dirichletop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac, al := operator.AverageConditional, operator.AverageLogarithm

	return []operator.Descriptor{
		{Factor: discreteFactor, Output: "sample", Kind: ac, Inputs: []string{"probs"}, Proper: []string{"probs"}},
		{Factor: discreteFactor, Output: "sample", Kind: al, Inputs: []string{"probs"}, Proper: []string{"probs"}},
		{Factor: discreteFactor, Output: "probs", Kind: ac, Inputs: []string{"sample", "probs"},
			SkipIfUniform: []string{"sample"}, Fresh: true},
		{Factor: discreteFactor, Output: "probs", Kind: al, Inputs: []string{"sample"}},
		{Factor: discreteFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"sample", "probs"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
