// SPDX-License-Identifier: MIT

// Package compare estimates P(a > b) for independent scalar distributions
// that have no closed-form comparison operator.
//
// The estimate is Monte Carlo with a fixed-seed PCG stream, so repeated
// calls with the same options return the same value. Both variables are
// drawn from the higher-variance side; draws standing in for the
// lower-variance side carry the importance weight p_narrow/p_wide.
package compare

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

// seedMix separates the two PCG words derived from one seed.
const seedMix = 0x9e3779b97f4a7c15

// minESSFraction is the effective-sample-size fraction below which the
// weights are reported as degenerate.
const minESSFraction = 0.01

// ProbGreater returns an estimate of P(a > b).
//
// Stage 1: point masses on both sides compare exactly.
// Stage 2: a point mass on the lower-variance side leaves plain sampling of
// the other side.
// Stage 3: otherwise draw n pairs from the wider law and self-normalize the
// importance weights of the narrow coordinate.
func ProbGreater(a, b dist.Sampler, opts ...operator.Option) (float64, error) {
	o := operator.Apply(opts...)
	if err := operator.RequireProper("ProbGreater", a, b); err != nil {
		return 0, err
	}
	if a.IsPointMass() && b.IsPointMass() {
		if a.Mean() > b.Mean() {
			return 1, nil
		}
		return 0, nil
	}
	rng := rand.New(rand.NewPCG(o.Seed, o.Seed^seedMix))
	wide, narrow, swapped := a, b, false
	if b.Variance() > a.Variance() {
		wide, narrow, swapped = b, a, true
	}
	// greater reports the event a > b in terms of (wide, narrow) draws.
	greater := func(w, n float64) bool {
		if swapped {
			return n > w
		}
		return w > n
	}

	if narrow.IsPointMass() {
		at := narrow.Mean()
		hits := 0
		for i := 0; i < o.Samples; i++ {
			if greater(wide.Sample(rng), at) {
				hits++
			}
		}
		return float64(hits) / float64(o.Samples), nil
	}

	all := make([]float64, 0, o.Samples)
	hit := make([]float64, 0, o.Samples)
	for i := 0; i < o.Samples; i++ {
		x := wide.Sample(rng)
		y := wide.Sample(rng)
		lw := narrow.LogProb(y) - wide.LogProb(y)
		if math.IsNaN(lw) {
			continue
		}
		all = append(all, lw)
		if greater(x, y) {
			hit = append(hit, lw)
		}
	}
	z := special.LogSumExp(all...)
	if math.IsInf(z, -1) || math.IsNaN(z) {
		return 0, fmt.Errorf("ProbGreater: importance weights vanish: %w", operator.ErrNumerical)
	}
	if ess := effectiveSampleSize(all, z); ess < minESSFraction*float64(o.Samples) {
		o.Logger.V(1).Info("importance weights are degenerate", "ess", ess, "samples", o.Samples)
	}
	if len(hit) == 0 {
		return 0, nil
	}

	return special.Clamp(math.Exp(special.LogSumExp(hit...)-z), 0, 1), nil
}

// effectiveSampleSize returns (Σw)²/Σw² for log weights with log-sum z.
func effectiveSampleSize(logW []float64, z float64) float64 {
	var s2 float64
	for _, lw := range logW {
		w := math.Exp(lw - z)
		s2 += w * w
	}
	if s2 == 0 {
		return 0
	}

	return 1 / s2
}

// IsGreaterThanAverageConditional returns Bernoulli(P(a > b)).
func IsGreaterThanAverageConditional(a, b dist.Sampler, opts ...operator.Option) (dist.Bernoulli, error) {
	p, err := ProbGreater(a, b, opts...)
	if err != nil {
		return dist.Bernoulli{}, fmt.Errorf("IsGreaterThanAverageConditional: %w", err)
	}

	return dist.NewBernoulli(p), nil
}

// IsGreaterThanLogEvidenceRatio returns ln P(isGreaterThan) under a and b.
func IsGreaterThanLogEvidenceRatio(isGreaterThan bool, a, b dist.Sampler, opts ...operator.Option) (float64, error) {
	p, err := ProbGreater(a, b, opts...)
	if err != nil {
		return 0, fmt.Errorf("IsGreaterThanLogEvidenceRatio: %w", err)
	}
	if isGreaterThan {
		return math.Log(p), nil
	}

	return math.Log1p(-p), nil
}

// Descriptors lists the operators of this package.
func Descriptors() []operator.Descriptor {
	return []operator.Descriptor{
		{Factor: "IsGreaterThanSampled", Output: "isGreaterThan", Kind: operator.AverageConditional,
			Inputs: []string{"a", "b"}, Proper: []string{"a", "b"}, Fresh: true},
		{Factor: "IsGreaterThanSampled", Kind: operator.LogEvidenceRatio,
			Inputs: []string{"isGreaterThan", "a", "b"}, Proper: []string{"a", "b"}},
	}
}

// Register adds Descriptors to r.
func Register(r *operator.Registry) error { return r.Register(Descriptors()...) }
