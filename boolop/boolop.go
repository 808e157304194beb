// SPDX-License-Identifier: MIT

package boolop

import (
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const (
	notFactor   = "Not"
	andFactor   = "And"
	equalFactor = "AreEqual"
)

// fromLogWeights builds a Bernoulli from unnormalized log weights.
func fromLogWeights(factor, output string, lnTrue, lnFalse float64) (dist.Bernoulli, error) {
	if math.IsInf(lnTrue, -1) && math.IsInf(lnFalse, -1) {
		return dist.Bernoulli{}, operator.AllZero(factor, "no value of %s is consistent", output)
	}

	return dist.BernoulliFromLogOdds(lnTrue - lnFalse), nil
}

// mulLog returns p·x with 0·(±Inf) taken as 0.
func mulLog(p, x float64) float64 {
	if p == 0 {
		return 0
	}

	return p * x
}

// NotAverageConditional returns the message to not.
func NotAverageConditional(b dist.Bernoulli) dist.Bernoulli {
	return dist.BernoulliFromLogOdds(-b.LogOdds())
}

// BAverageConditional returns the message to b of the Not factor.
func BAverageConditional(not dist.Bernoulli) dist.Bernoulli {
	return dist.BernoulliFromLogOdds(-not.LogOdds())
}

// NotAverageLogarithm is the VMP message to not.
func NotAverageLogarithm(b dist.Bernoulli) dist.Bernoulli { return NotAverageConditional(b) }

// BAverageLogarithm is the VMP message to b of the Not factor.
func BAverageLogarithm(not dist.Bernoulli) dist.Bernoulli { return BAverageConditional(not) }

// AndAverageConditional returns Bernoulli(P(a)·P(b)).
func AndAverageConditional(a, b dist.Bernoulli) dist.Bernoulli {
	lnT := a.LogProbTrue() + b.LogProbTrue()

	return dist.BernoulliFromLogOdds(lnT - special.Log1mExp(lnT))
}

// AndAverageLogarithm is the VMP message to and.
func AndAverageLogarithm(a, b dist.Bernoulli) dist.Bernoulli { return AndAverageConditional(a, b) }

// AndAAverageConditional returns the message to a given and and b:
// m(true) ∝ and(t)·b(t) + and(f)·b(f), m(false) ∝ and(f).
func AndAAverageConditional(and, b dist.Bernoulli) (dist.Bernoulli, error) {
	lnT := special.LogSumExp(and.LogProbTrue()+b.LogProbTrue(), and.LogProbFalse()+b.LogProbFalse())

	return fromLogWeights(andFactor, "a", lnT, and.LogProbFalse())
}

// AndAAverageLogarithm is the VMP message to a: log-odds P(b)·logOdds(and).
func AndAAverageLogarithm(and, b dist.Bernoulli) dist.Bernoulli {
	return dist.BernoulliFromLogOdds(mulLog(b.ProbTrue(), and.LogOdds()))
}

// AndLogEvidenceRatio returns ln P(and = observed).
func AndLogEvidenceRatio(and bool, a, b dist.Bernoulli) float64 {
	lnT := a.LogProbTrue() + b.LogProbTrue()
	if and {
		return lnT
	}

	return special.Log1mExp(lnT)
}

// AreEqualAverageConditional returns Bernoulli(P(a == b)).
func AreEqualAverageConditional(a, b dist.Bernoulli) dist.Bernoulli {
	lnEq := special.LogSumExp(a.LogProbTrue()+b.LogProbTrue(), a.LogProbFalse()+b.LogProbFalse())
	lnNe := special.LogSumExp(a.LogProbTrue()+b.LogProbFalse(), a.LogProbFalse()+b.LogProbTrue())

	return dist.BernoulliFromLogOdds(lnEq - lnNe)
}

// AreEqualAverageLogarithm is the VMP message to areEqual.
func AreEqualAverageLogarithm(a, b dist.Bernoulli) dist.Bernoulli {
	return AreEqualAverageConditional(a, b)
}

// AreEqualAAverageConditional returns the message to a given areEqual and b.
func AreEqualAAverageConditional(areEqual, b dist.Bernoulli) (dist.Bernoulli, error) {
	lnT := special.LogSumExp(areEqual.LogProbTrue()+b.LogProbTrue(), areEqual.LogProbFalse()+b.LogProbFalse())
	lnF := special.LogSumExp(areEqual.LogProbTrue()+b.LogProbFalse(), areEqual.LogProbFalse()+b.LogProbTrue())

	return fromLogWeights(equalFactor, "a", lnT, lnF)
}

// AreEqualAAverageLogarithm is the VMP message to a: log-odds
// (2·P(b)-1)·logOdds(areEqual).
func AreEqualAAverageLogarithm(areEqual, b dist.Bernoulli) dist.Bernoulli {
	return dist.BernoulliFromLogOdds(mulLog(2*b.ProbTrue()-1, areEqual.LogOdds()))
}

// AreEqualLogEvidenceRatio returns ln P(areEqual = observed).
func AreEqualLogEvidenceRatio(areEqual bool, a, b dist.Bernoulli) float64 {
	return AreEqualAverageConditional(a, b).LogProb(areEqual)
}
