// SPDX-License-Identifier: MIT

package boolop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	var ds []operator.Descriptor
	for _, k := range []operator.Semantics{operator.AverageConditional, operator.AverageLogarithm} {
		ds = append(ds,
			operator.Descriptor{Factor: notFactor, Output: "not", Kind: k, Inputs: []string{"b"}},
			operator.Descriptor{Factor: notFactor, Output: "b", Kind: k, Inputs: []string{"not"}},
			operator.Descriptor{Factor: andFactor, Output: "and", Kind: k, Inputs: []string{"a", "b"}},
			operator.Descriptor{Factor: andFactor, Output: "a", Kind: k, Inputs: []string{"and", "b"},
				SkipIfUniform: []string{"and"}},
			operator.Descriptor{Factor: equalFactor, Output: "areEqual", Kind: k, Inputs: []string{"a", "b"}},
			operator.Descriptor{Factor: equalFactor, Output: "a", Kind: k, Inputs: []string{"areEqual", "b"},
				SkipIfUniform: []string{"areEqual"}},
		)
	}
	ds = append(ds,
		operator.Descriptor{Factor: andFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"and", "a", "b"}},
		operator.Descriptor{Factor: equalFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"areEqual", "a", "b"}},
	)

	return ds
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
