// SPDX-License-Identifier: MIT

package dirichletop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const discreteFactor = "DiscreteFromDirichlet"

// SampleAverageConditional returns Discrete(E[probs]).
func SampleAverageConditional(probs dist.Dirichlet) (dist.Discrete, error) {
	if !probs.IsProper() {
		return dist.Discrete{}, fmt.Errorf("SampleAverageConditional: %v: %w", probs, operator.ErrImproperInput)
	}

	return dist.NewDiscrete(probs.Mean()...)
}

// SampleAverageLogarithm returns the Discrete proportional to exp(E[ln probs]).
func SampleAverageLogarithm(probs dist.Dirichlet) (dist.Discrete, error) {
	if !probs.IsProper() {
		return dist.Discrete{}, fmt.Errorf("SampleAverageLogarithm: %v: %w", probs, operator.ErrImproperInput)
	}
	ls := probs.MeanLogs()
	top := math.Inf(-1)
	for _, l := range ls {
		top = math.Max(top, l)
	}
	w := make([]float64, len(ls))
	for i, l := range ls {
		w[i] = math.Exp(l - top)
	}

	return dist.NewDiscrete(w...)
}

// ProbsAverageLogarithm returns Dirichlet(1 + q(k)).
func ProbsAverageLogarithm(sample dist.Discrete) dist.Dirichlet {
	q := sample.Probs()
	for i := range q {
		q[i]++
	}

	return dist.NewDirichlet(q...)
}

// ProbsAverageConditional returns the EP message to probs.
//
// An observed sample k gives the exact Dirichlet(1, …, 2, …, 1). Otherwise
// the posterior Σ_k w_k·Dir(α+e_k), w_k ∝ q(k)·α_k, has
// E[ln p_i] = ψ(α_i) + w_i/α_i - ψ(Σα+1); that target is projected with
// ProjectMeanLogs, divided by probs and damped towards previous.
func ProbsAverageConditional(sample dist.Discrete, probs, previous dist.Dirichlet, opts ...operator.Option) (dist.Dirichlet, error) {
	o := operator.Apply(opts...)
	k := sample.Dimension()
	if probs.Dimension() != k {
		return dist.Dirichlet{}, fmt.Errorf("ProbsAverageConditional: sample %d, probs %d: %w",
			k, probs.Dimension(), dist.ErrDimensionMismatch)
	}
	var candidate dist.Dirichlet
	switch {
	case sample.IsPointMass():
		c := make([]float64, k)
		for i := range c {
			c[i] = 1
		}
		c[sample.Point()] = 2
		candidate = dist.NewDirichlet(c...)
	case sample.IsUniform() || probs.IsPointMass():
		candidate = dist.DirichletUniform(k)
	case !probs.IsProper():
		return dist.Dirichlet{}, fmt.Errorf("ProbsAverageConditional: %v: %w", probs, operator.ErrImproperInput)
	default:
		post, err := project(sample, probs, opts...)
		if err != nil {
			return dist.Dirichlet{}, fmt.Errorf("ProbsAverageConditional: %w", err)
		}
		if candidate, err = post.Ratio(probs); err != nil {
			return dist.Dirichlet{}, fmt.Errorf("ProbsAverageConditional: %w", err)
		}
	}
	if o.Damping == 0 {
		return candidate, nil
	}

	return operator.Damp(candidate, previous, o.Damping)
}

func project(sample dist.Discrete, probs dist.Dirichlet, opts ...operator.Option) (dist.Dirichlet, error) {
	alpha := probs.Counts()
	q := sample.Probs()
	w := make([]float64, len(alpha))
	var z, total float64
	for i, a := range alpha {
		w[i] = q[i] * a
		z += w[i]
		total += a
	}
	if z == 0 {
		return dist.Dirichlet{}, operator.AllZero(discreteFactor, "sample %v has no mass under %v", sample, probs)
	}
	ls := probs.MeanLogs()
	// ψ(α0+1) - ψ(α0) = 1/α0
	target := make([]float64, len(alpha))
	for i, a := range alpha {
		target[i] = ls[i] + w[i]/(z*a) - 1/total
	}

	// start at α plus the expected increment
	start := make([]float64, len(alpha))
	copy(start, alpha)
	for i := range start {
		start[i] += w[i] / z
	}

	return ProjectMeanLogs(target, dist.NewDirichlet(start...), opts...)
}

// LogEvidenceRatio returns ln E[probs_k] for an observed sample k.
func LogEvidenceRatio(sample int, probs dist.Dirichlet) (float64, error) {
	if sample < 0 || sample >= probs.Dimension() {
		return math.Inf(-1), fmt.Errorf("LogEvidenceRatio: sample %d of %d: %w",
			sample, probs.Dimension(), dist.ErrDimensionMismatch)
	}

	return math.Log(probs.Mean()[sample]), nil
}
