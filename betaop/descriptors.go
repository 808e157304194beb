// SPDX-License-Identifier: MIT

package betaop

import "github.com/katalvlaran/lvinfer/operator"

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	ac, al := operator.AverageConditional, operator.AverageLogarithm

	return []operator.Descriptor{
		{Factor: meanTotalFactor, Output: "prob", Kind: al, Inputs: []string{"mean", "totalCount"},
			Proper: []string{"totalCount"}},
		{Factor: meanTotalFactor, Output: "prob", Kind: ac, Inputs: []string{"prob", "mean", "totalCount"},
			Proper: []string{"mean", "totalCount"}, Fresh: true},
		{Factor: meanTotalFactor, Output: "mean", Kind: al, Inputs: []string{"prob", "mean", "totalCount"},
			Proper: []string{"prob", "mean", "totalCount"}, Fresh: true},
		{Factor: bernoulliFactor, Output: "sample", Kind: ac, Inputs: []string{"p"}},
		{Factor: bernoulliFactor, Output: "sample", Kind: al, Inputs: []string{"p"}},
		{Factor: bernoulliFactor, Output: "p", Kind: ac, Inputs: []string{"sample", "p"}, SkipIfUniform: []string{"sample"}},
		{Factor: bernoulliFactor, Output: "p", Kind: al, Inputs: []string{"sample"}},
		{Factor: bernoulliFactor, Kind: operator.LogEvidenceRatio, Inputs: []string{"sample", "p"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
