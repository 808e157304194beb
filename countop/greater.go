// SPDX-License-Identifier: MIT

package countop

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const greaterFactor = "IsGreaterThan"

// probGreater returns P(a > b).
func probGreater(a, b dist.Discrete) float64 {
	p := 0.0
	for j := 0; j < b.Dimension(); j++ {
		p += b.Prob(j) * (1 - a.ProbLessThan(j+1))
	}

	return p
}

// IsGreaterThanAverageConditional returns Bernoulli(P(a > b)).
func IsGreaterThanAverageConditional(a, b dist.Discrete) dist.Bernoulli {
	return dist.NewBernoulli(probGreater(a, b))
}

// IsGreaterThanAverageLogarithm is the VMP message to isGreaterThan.
func IsGreaterThanAverageLogarithm(a, b dist.Discrete) dist.Bernoulli {
	return IsGreaterThanAverageConditional(a, b)
}

// IsGreaterThanAAverageConditional returns the message to a, over a's domain:
// m(i) = P(true)·P(b < i) + P(false)·P(b ≥ i).
func IsGreaterThanAAverageConditional(isGreaterThan dist.Bernoulli, a, b dist.Discrete) (dist.Discrete, error) {
	if isGreaterThan.IsUniform() {
		return dist.DiscreteUniform(a.Dimension()), nil
	}
	pt, pf := isGreaterThan.ProbTrue(), isGreaterThan.ProbFalse()
	w := make([]float64, a.Dimension())
	for i := range w {
		lt := b.ProbLessThan(i)
		w[i] = pt*lt + pf*(1-lt)
	}

	return normalize("a", isGreaterThan, w)
}

// IsGreaterThanBAverageConditional returns the message to b, over b's domain:
// m(j) = P(true)·P(a > j) + P(false)·P(a ≤ j).
func IsGreaterThanBAverageConditional(isGreaterThan dist.Bernoulli, a, b dist.Discrete) (dist.Discrete, error) {
	if isGreaterThan.IsUniform() {
		return dist.DiscreteUniform(b.Dimension()), nil
	}
	pt, pf := isGreaterThan.ProbTrue(), isGreaterThan.ProbFalse()
	w := make([]float64, b.Dimension())
	for j := range w {
		le := a.ProbLessThan(j + 1)
		w[j] = pt*(1-le) + pf*le
	}

	return normalize("b", isGreaterThan, w)
}

// IsGreaterThanLogEvidenceRatio returns ln P(isGreaterThan), -Inf when the
// observation is impossible.
func IsGreaterThanLogEvidenceRatio(isGreaterThan bool, a, b dist.Discrete) float64 {
	p := probGreater(a, b)
	if !isGreaterThan {
		p = 1 - p
	}
	if p <= 0 {
		return math.Inf(-1)
	}

	return math.Log(p)
}

func normalize(output string, isGreaterThan dist.Bernoulli, w []float64) (dist.Discrete, error) {
	d, err := dist.NewDiscrete(w...)
	if errors.Is(err, dist.ErrAllZero) {
		return dist.Discrete{}, operator.AllZero(greaterFactor,
			"no value of %s satisfies isGreaterThan=%v", output, isGreaterThan)
	}
	if err != nil {
		return dist.Discrete{}, fmt.Errorf("IsGreaterThan%sAverageConditional: %w", output, err)
	}

	return d, nil
}
