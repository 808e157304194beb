// SPDX-License-Identifier: MIT

package countop

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/pbinom"
)

const countFactor = "CountTrue"

func probsOf(array []dist.Bernoulli) []float64 {
	p := make([]float64, len(array))
	for i, b := range array {
		p[i] = b.ProbTrue()
	}

	return p
}

// CountAverageConditional returns the distribution of the number of true
// entries of array, over {0, …, len(array)}.
func CountAverageConditional(array []dist.Bernoulli) (dist.Discrete, error) {
	tab, err := pbinom.ForwardBernoulli(array)
	if err != nil {
		return dist.Discrete{}, fmt.Errorf("CountAverageConditional: %w", err)
	}
	d, err := dist.NewDiscrete(tab.Marginal()...)
	if err != nil {
		return dist.Discrete{}, fmt.Errorf("CountAverageConditional: %w", err)
	}

	return d, nil
}

// CountAverageLogarithm is the VMP message to count.
func CountAverageLogarithm(array []dist.Bernoulli) (dist.Discrete, error) {
	return CountAverageConditional(array)
}

// ArrayAverageConditional returns the message to every array entry given the
// message to count. A uniform count yields uniform messages. cache may be nil.
func ArrayAverageConditional(count dist.Discrete, array []dist.Bernoulli, cache *pbinom.Cache) ([]dist.Bernoulli, error) {
	n := len(array)
	if count.Dimension() != n+1 {
		return nil, fmt.Errorf("ArrayAverageConditional: count has %d values, want %d: %w",
			count.Dimension(), n+1, dist.ErrDimensionMismatch)
	}
	if count.IsUniform() {
		out := make([]dist.Bernoulli, n)
		for i := range out {
			out[i] = dist.BernoulliUniform()
		}
		return out, nil
	}
	var (
		tab *pbinom.Table
		err error
	)
	if cache != nil {
		tab, err = cache.Table(probsOf(array))
	} else {
		tab, err = pbinom.ForwardBernoulli(array)
	}
	if err != nil {
		return nil, fmt.Errorf("ArrayAverageConditional: %w", err)
	}
	msgs, err := tab.ElementMessages(count.Probs())
	if err != nil {
		if count.IsPointMass() && errors.Is(err, pbinom.ErrDegenerate) {
			return nil, operator.AllZero(countFactor, "count=%d is impossible under the array", count.Point())
		}
		return nil, fmt.Errorf("ArrayAverageConditional: %w", err)
	}

	return msgs, nil
}

// ArrayAverageLogarithm is the VMP message to array.
func ArrayAverageLogarithm(count dist.Discrete, array []dist.Bernoulli, cache *pbinom.Cache) ([]dist.Bernoulli, error) {
	return ArrayAverageConditional(count, array, cache)
}

// CountLogAverageFactor returns ln Σ_c P(count = c)·count(c).
func CountLogAverageFactor(count dist.Discrete, array []dist.Bernoulli) (float64, error) {
	tab, err := pbinom.ForwardBernoulli(array)
	if err != nil {
		return 0, fmt.Errorf("CountLogAverageFactor: %w", err)
	}
	v, err := tab.LogAverage(count.Probs())
	if err != nil {
		return 0, fmt.Errorf("CountLogAverageFactor: %w", err)
	}

	return v, nil
}

// CountLogEvidenceRatio returns the evidence of an observed count. An
// impossible count yields -Inf.
func CountLogEvidenceRatio(count int, array []dist.Bernoulli) (float64, error) {
	if count < 0 || count > len(array) {
		return math.Inf(-1), nil
	}

	return CountLogAverageFactor(dist.DiscretePointMass(count, len(array)+1), array)
}
