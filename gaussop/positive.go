// SPDX-License-Identifier: MIT

package gaussop

import (
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const (
	positiveFactor = "IsPositive"
	greaterFactor  = "IsGreaterThan"
)

// signLogOdds returns ln P(x > 0) - ln P(x < 0) for x ~ N(m, v).
func signLogOdds(m, v float64) float64 {
	z := m / math.Sqrt(v)

	return special.NormalCdfLn(z) - special.NormalCdfLn(-z)
}

// IsPositiveAverageConditional returns Bernoulli(P(x > 0)).
func IsPositiveAverageConditional(x dist.Gaussian) dist.Bernoulli {
	switch {
	case x.IsPointMass():
		return dist.BernoulliPointMass(x.Point() > 0)
	case x.IsUniform() || !x.IsProper():
		return dist.BernoulliUniform()
	}

	return dist.BernoulliFromLogOdds(signLogOdds(x.MeanAndVariance()))
}

// IsPositiveAverageLogarithm is the VMP message to isPositive.
func IsPositiveAverageLogarithm(x dist.Gaussian) dist.Bernoulli {
	return IsPositiveAverageConditional(x)
}

// signPosterior returns the projection of N(m, v)·[P(t)·1(x>0) + P(f)·1(x<0)].
func signPosterior(factor string, isPositive dist.Bernoulli, m, v float64) (dist.Gaussian, error) {
	up := truncated(m, v, 0, true)
	up.logW += isPositive.LogProbTrue()
	down := truncated(m, v, 0, false)
	down.logW += isPositive.LogProbFalse()

	return project(factor, up, down)
}

// IsPositiveXAverageConditional returns the EP message to x.
func IsPositiveXAverageConditional(isPositive dist.Bernoulli, x dist.Gaussian) (dist.Gaussian, error) {
	if isPositive.IsUniform() {
		return dist.GaussianUniform(), nil
	}
	if x.IsPointMass() {
		if isPositive.IsPointMass() && isPositive.Point() != (x.Point() > 0) {
			return dist.Gaussian{}, operator.AllZero(positiveFactor, "x=%g contradicts isPositive=%v", x.Point(), isPositive.Point())
		}
		return dist.GaussianUniform(), nil
	}
	if err := operator.RequireProper("IsPositiveXAverageConditional", x); err != nil {
		return dist.Gaussian{}, err
	}
	m, v := x.MeanAndVariance()
	post, err := signPosterior(positiveFactor, isPositive, m, v)
	if err != nil {
		return dist.Gaussian{}, err
	}

	return post.Ratio(x)
}

// IsPositiveLogEvidenceRatio returns ln P(isPositive = observed).
func IsPositiveLogEvidenceRatio(isPositive bool, x dist.Gaussian) float64 {
	return IsPositiveAverageConditional(x).LogProb(isPositive)
}

// IsGreaterThanAverageConditional returns Bernoulli(P(a > b)).
func IsGreaterThanAverageConditional(a, b dist.Gaussian) dist.Bernoulli {
	if a.IsPointMass() && b.IsPointMass() {
		return dist.BernoulliPointMass(a.Point() > b.Point())
	}
	if !a.IsProper() || !b.IsProper() {
		return dist.BernoulliUniform()
	}
	ma, va := a.MeanAndVariance()
	mb, vb := b.MeanAndVariance()

	return dist.BernoulliFromLogOdds(signLogOdds(ma-mb, va+vb))
}

// IsGreaterThanLogEvidenceRatio returns ln P(isGreaterThan = observed).
func IsGreaterThanLogEvidenceRatio(isGreaterThan bool, a, b dist.Gaussian) float64 {
	return IsGreaterThanAverageConditional(a, b).LogProb(isGreaterThan)
}

// IsGreaterThanAAverageConditional returns the EP message to a.
func IsGreaterThanAAverageConditional(isGreaterThan dist.Bernoulli, a, b dist.Gaussian) (dist.Gaussian, error) {
	return greaterMessage(isGreaterThan, a, b, 1)
}

// IsGreaterThanBAverageConditional returns the EP message to b.
func IsGreaterThanBAverageConditional(isGreaterThan dist.Bernoulli, a, b dist.Gaussian) (dist.Gaussian, error) {
	return greaterMessage(isGreaterThan, b, a, -1)
}

// greaterMessage conditions the difference x = a - b on its sign and maps the
// posterior of x back to target, whose coefficient in x is sign.
func greaterMessage(isGreaterThan dist.Bernoulli, target, other dist.Gaussian, sign float64) (dist.Gaussian, error) {
	if isGreaterThan.IsUniform() {
		return dist.GaussianUniform(), nil
	}
	if target.IsPointMass() && other.IsPointMass() {
		x := sign * (target.Point() - other.Point())
		if isGreaterThan.IsPointMass() && isGreaterThan.Point() != (x > 0) {
			return dist.Gaussian{}, operator.AllZero(greaterFactor, "a-b=%g contradicts isGreaterThan=%v", x, isGreaterThan.Point())
		}
		return dist.GaussianUniform(), nil
	}
	if err := operator.RequireProper("IsGreaterThanAverageConditional", target, other); err != nil {
		return dist.Gaussian{}, err
	}
	mt, vt := target.MeanAndVariance()
	mo, vo := other.MeanAndVariance()
	mx, vx := sign*(mt-mo), vt+vo
	postX, err := signPosterior(greaterFactor, isGreaterThan, mx, vx)
	if err != nil {
		return dist.Gaussian{}, err
	}
	if target.IsPointMass() {
		return dist.GaussianUniform(), nil
	}
	// Cov(target, x) = sign·vt
	k := sign * vt / vx
	pm, pv := postX.MeanAndVariance()
	mean := mt + k*(pm-mx)
	variance := vt - k*k*(vx-pv)
	post := dist.NewGaussian(mean, variance)

	return post.Ratio(target)
}
