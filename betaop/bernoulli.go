// SPDX-License-Identifier: MIT

package betaop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const bernoulliFactor = "BernoulliFromBeta"

// BernoulliSampleAverageConditional returns Bernoulli(E[p]).
func BernoulliSampleAverageConditional(p dist.Beta) dist.Bernoulli {
	return dist.NewBernoulli(p.Mean())
}

// BernoulliSampleAverageLogarithm returns the Bernoulli with log-odds
// E[ln p] - E[ln(1-p)].
func BernoulliSampleAverageLogarithm(p dist.Beta) dist.Bernoulli {
	l1, l2 := p.MeanLogs()

	return dist.BernoulliFromLogOdds(l1 - l2)
}

// BernoulliProbAverageConditional returns the EP message to p. A point-mass
// sample gives the exact Beta(2, 1) or Beta(1, 2); otherwise the two-component
// posterior is matched in mean and variance and divided by p.
func BernoulliProbAverageConditional(sample dist.Bernoulli, p dist.Beta) (dist.Beta, error) {
	if sample.IsPointMass() {
		if sample.Point() {
			return dist.NewBeta(2, 1), nil
		}
		return dist.NewBeta(1, 2), nil
	}
	if sample.IsUniform() || p.IsPointMass() {
		return dist.BetaUniform(), nil
	}
	if !p.IsProper() {
		return dist.Beta{}, fmt.Errorf("BernoulliProbAverageConditional: p %v: %w", p, operator.ErrImproperInput)
	}
	a, b := p.TrueCount(), p.FalseCount()
	s := a + b
	q := sample.ProbTrue()
	// components Beta(a+1, b) and Beta(a, b+1)
	w1 := q * a / s
	w2 := (1 - q) * b / s
	z := w1 + w2
	w1, w2 = w1/z, w2/z
	m1, m2 := (a+1)/(s+1), a/(s+1)
	v1 := m1 * (1 - m1) / (s + 2)
	v2 := m2 * (1 - m2) / (s + 2)
	mean := w1*m1 + w2*m2
	variance := w1*(v1+m1*m1) + w2*(v2+m2*m2) - mean*mean
	post := dist.BetaFromMeanAndVariance(mean, variance)

	return post.Ratio(p)
}

// BernoulliProbAverageLogarithm returns Beta(1+P(true), 1+P(false)).
func BernoulliProbAverageLogarithm(sample dist.Bernoulli) dist.Beta {
	return dist.NewBeta(1+sample.ProbTrue(), 1+sample.ProbFalse())
}

// BernoulliLogEvidenceRatio returns ln P(sample = observed).
func BernoulliLogEvidenceRatio(sample bool, p dist.Beta) float64 {
	m := p.Mean()
	if sample {
		return math.Log(m)
	}

	return math.Log1p(-m)
}
