// SPDX-License-Identifier: MIT

package betaop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const meanTotalFactor = "BetaFromMeanAndTotalCount"

// node is one quadrature point with its log weight.
type node struct {
	x    float64
	logW float64
}

// meanNodes discretizes the mean message over (0, 1).
func meanNodes(mean dist.Beta, n int) ([]node, error) {
	if mean.IsPointMass() {
		return []node{{x: mean.Point()}}, nil
	}
	xs, ws, err := special.Legendre(n, 0, 1)
	if err != nil {
		return nil, err
	}
	out := make([]node, n)
	for i, x := range xs {
		out[i] = node{x: x, logW: math.Log(ws[i]) + mean.LogProb(x)}
	}

	return out, nil
}

// totalNodes discretizes the total-count message through its quantile
// function, so each node carries equal prior mass up to the Legendre weight.
func totalNodes(total dist.Gamma, n int) ([]node, error) {
	if total.IsPointMass() {
		return []node{{x: total.Point()}}, nil
	}
	us, ws, err := special.Legendre(n, 0, 1)
	if err != nil {
		return nil, err
	}
	out := make([]node, n)
	for i, u := range us {
		out[i] = node{x: total.Quantile(u), logW: math.Log(ws[i])}
	}

	return out, nil
}

// ProbAverageLogarithm returns the VMP message to prob:
// Beta(E[mean]·E[totalCount], (1-E[mean])·E[totalCount]).
func ProbAverageLogarithm(mean dist.Beta, totalCount dist.Gamma) (dist.Beta, error) {
	if err := operator.RequireProper("ProbAverageLogarithm", totalCount); err != nil {
		return dist.Beta{}, err
	}
	m, t := mean.Mean(), totalCount.Mean()

	return dist.NewBeta(m*t, (1-m)*t), nil
}

// LogMoments returns E[ln x], E[ln(1-x)] and ln Z under the EP posterior
// prob(x)·∫∫ Beta(x; μt, (1-μ)t)·mean(μ)·totalCount(t) dμ dt.
func LogMoments(prob, mean dist.Beta, totalCount dist.Gamma, opts ...operator.Option) (l1, l2, logZ float64, err error) {
	o := operator.Apply(opts...)
	if prob.IsPointMass() {
		prob = dist.BetaUniform()
	}
	a0, b0 := prob.TrueCount(), prob.FalseCount()
	if a0 < 1 || b0 < 1 {
		return 0, 0, 0, fmt.Errorf("LogMoments: prob %v has a count below 1: %w", prob, operator.ErrUnsupported)
	}
	if !mean.IsProper() {
		return 0, 0, 0, fmt.Errorf("LogMoments: mean %v: %w", mean, operator.ErrImproperInput)
	}
	if err = operator.RequireProper("LogMoments", totalCount); err != nil {
		return 0, 0, 0, err
	}
	mus, err := meanNodes(mean, o.QuadratureNodes)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("LogMoments: %w", err)
	}
	ts, err := totalNodes(totalCount, o.QuadratureNodes)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("LogMoments: %w", err)
	}
	logWs := make([]float64, 0, len(mus)*len(ts))
	e1s := make([]float64, 0, cap(logWs))
	e2s := make([]float64, 0, cap(logWs))
	for _, mu := range mus {
		for _, t := range ts {
			alpha, beta := mu.x*t.x, (1-mu.x)*t.x
			pa, pb := alpha+a0-1, beta+b0-1
			lw := mu.logW + t.logW
			if a0 != 1 || b0 != 1 {
				lw += special.LnBeta(pa, pb) - special.LnBeta(alpha, beta)
			}
			ds := special.Digamma(pa + pb)
			logWs = append(logWs, lw)
			e1s = append(e1s, special.Digamma(pa)-ds)
			e2s = append(e2s, special.Digamma(pb)-ds)
		}
	}
	logZ = special.LogSumExp(logWs...)
	for i, lw := range logWs {
		w := math.Exp(lw - logZ)
		l1 += w * e1s[i]
		l2 += w * e2s[i]
	}
	if !special.AllFinite(l1, l2, logZ) {
		return 0, 0, 0, fmt.Errorf("LogMoments: (%g, %g, %g): %w", l1, l2, logZ, operator.ErrNumerical)
	}

	return l1, l2, logZ, nil
}

// ProbAverageConditional returns the EP message to prob. A point-mass prob is
// treated as uniform. The result is damped towards previous when the
// Damping option is set.
func ProbAverageConditional(prob, mean dist.Beta, totalCount dist.Gamma, previous dist.Beta, opts ...operator.Option) (dist.Beta, error) {
	o := operator.Apply(opts...)
	var candidate dist.Beta
	if mean.IsPointMass() && totalCount.IsPointMass() {
		m, t := mean.Point(), totalCount.Point()
		candidate = dist.NewBeta(m*t, (1-m)*t)
	} else {
		l1, l2, _, err := LogMoments(prob, mean, totalCount, opts...)
		if err != nil {
			return dist.Beta{}, fmt.Errorf("ProbAverageConditional: %w", err)
		}
		start, _ := ProbAverageLogarithm(mean, totalCount)
		if !prob.IsPointMass() {
			start, _ = start.Product(prob)
		}
		post, err := ProjectLogMoments(l1, l2, start, opts...)
		if err != nil {
			return dist.Beta{}, fmt.Errorf("ProbAverageConditional: %w", err)
		}
		if !prob.IsPointMass() {
			if post, err = post.Ratio(prob); err != nil {
				return dist.Beta{}, fmt.Errorf("ProbAverageConditional: %w", err)
			}
		}
		candidate = post
	}

	return damp(candidate, previous, o)
}

func damp(candidate, previous dist.Beta, o operator.Options) (dist.Beta, error) {
	if o.Damping == 0 {
		return candidate, nil
	}
	out, err := operator.Damp(candidate, previous, o.Damping)
	if err != nil {
		return dist.Beta{}, err
	}

	return out, nil
}

// expectedLogFactor returns E_{x,t}[ln Beta(x; μT, (1-μ)T)] with T = E[t].
func expectedLogFactor(mu, total, eLogX, eLog1mX float64) float64 {
	a, b := mu*total, (1-mu)*total

	return (a-1)*eLogX + (b-1)*eLog1mX - special.LnBeta(a, b)
}

// MeanAverageLogarithm returns the NCVMP message to mean.
//
// Stage 1: score-function gradient of E_q[f(μ)] in (α, β), where q is the
// mean marginal and f the expected log factor with totalCount at its mean.
// Stage 2: natural parameters of the message = F⁻¹·gradient.
// Stage 3: optional damping against previous.
//
// An observed (point-mass) mean needs no message and receives uniform.
func MeanAverageLogarithm(prob, mean dist.Beta, totalCount dist.Gamma, previous dist.Beta, opts ...operator.Option) (dist.Beta, error) {
	o := operator.Apply(opts...)
	if mean.IsPointMass() {
		return dist.BetaUniform(), nil
	}
	if !mean.IsProper() {
		return dist.Beta{}, fmt.Errorf("MeanAverageLogarithm: mean %v: %w", mean, operator.ErrImproperInput)
	}
	if err := operator.RequireProper("MeanAverageLogarithm", totalCount); err != nil {
		return dist.Beta{}, err
	}
	if !prob.IsProper() {
		return dist.Beta{}, fmt.Errorf("MeanAverageLogarithm: prob %v: %w", prob, operator.ErrImproperInput)
	}
	eLogX, eLog1mX := prob.MeanLogs()
	total := totalCount.Mean()

	mus, err := meanNodes(mean, o.QuadratureNodes)
	if err != nil {
		return dist.Beta{}, fmt.Errorf("MeanAverageLogarithm: %w", err)
	}
	var wSum, lm, l1m, ef float64
	ws := make([]float64, len(mus))
	for i, mu := range mus {
		ws[i] = math.Exp(mu.logW)
		wSum += ws[i]
	}
	for i, mu := range mus {
		w := ws[i] / wSum
		lm += w * math.Log(mu.x)
		l1m += w * math.Log1p(-mu.x)
		ef += w * expectedLogFactor(mu.x, total, eLogX, eLog1mX)
	}
	var ga, gb float64
	for i, mu := range mus {
		w := ws[i] / wSum
		f := expectedLogFactor(mu.x, total, eLogX, eLog1mX) - ef
		ga += w * f * (math.Log(mu.x) - lm)
		gb += w * f * (math.Log1p(-mu.x) - l1m)
	}
	f11, f12, f22 := fisher(mean.TrueCount(), mean.FalseCount())
	i11, i12, i21, i22, err := matrixInverse(f11, f12, f22)
	if err != nil {
		return dist.Beta{}, fmt.Errorf("MeanAverageLogarithm: %w", err)
	}
	na := i11*ga + i12*gb
	nb := i21*ga + i22*gb
	if !special.AllFinite(na, nb) {
		return dist.Beta{}, fmt.Errorf("MeanAverageLogarithm: natural parameters (%g, %g): %w", na, nb, operator.ErrNumerical)
	}

	return damp(dist.NewBeta(na+1, nb+1), previous, o)
}
