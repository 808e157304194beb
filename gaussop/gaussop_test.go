// SPDX-License-Identifier: MIT

package gaussop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/gaussop"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

// TestProduct_RoundTrip checks the message to a inverts the forward message.
func TestProduct_RoundTrip(t *testing.T) {
	a := dist.NewGaussian(1.5, 2)
	p := gaussop.ProductAverageConditional(a, -3)
	assert.InDelta(t, -4.5, p.Mean(), 1e-12)
	assert.InDelta(t, 18, p.Variance(), 1e-12)

	back, err := gaussop.ProductAAverageConditional(p, -3)
	require.NoError(t, err)
	assert.InDelta(t, a.Mean(), back.Mean(), 1e-12)
	assert.InDelta(t, a.Variance(), back.Variance(), 1e-12)

	r, err := gaussop.RatioAverageConditional(a, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, r.Mean(), 1e-12)
	_, err = gaussop.RatioAverageConditional(a, 0)
	assert.ErrorIs(t, err, operator.ErrUnsupported)
}

// TestProduct_PointMassLimit compares point masses with sharp Gaussians.
func TestProduct_PointMassLimit(t *testing.T) {
	exact := gaussop.ProductAverageConditional(dist.GaussianPointMass(2), 3)
	near := gaussop.ProductAverageConditional(dist.NewGaussian(2, 1e-14), 3)
	require.True(t, exact.IsPointMass())
	assert.InDelta(t, exact.Point(), near.Mean(), 1e-9)

	u, err := gaussop.ProductAAverageConditional(dist.NewGaussian(1, 1), 0)
	require.NoError(t, err)
	assert.True(t, u.IsUniform())
	_, err = gaussop.ProductAAverageConditional(dist.GaussianPointMass(1), 0)
	assert.ErrorIs(t, err, operator.ErrAllZero)
}

// TestMax_UniformMaxMatchesRectifiedMoments compares with the closed-form
// moments of max(a, 0).
func TestMax_UniformMaxMatchesRectifiedMoments(t *testing.T) {
	m, s := 0.5, 1.3
	got, err := gaussop.MaxAverageConditional(dist.GaussianUniform(), dist.NewGaussian(m, s*s), 0)
	require.NoError(t, err)

	z := m / s
	phi := math.Exp(special.NormalPdfLn(z))
	cdf := special.NormalCdf(z)
	mean := m*cdf + s*phi
	m2 := (m*m+s*s)*cdf + m*s*phi
	assert.InDelta(t, mean, got.Mean(), 1e-10)
	assert.InDelta(t, m2-mean*mean, got.Variance(), 1e-10)
}

// posteriorMoments integrates f(a)·N(a; m, v) numerically, splitting the
// range at the kink k.
func posteriorMoments(t *testing.T, m, v, k float64, f func(float64) float64) (mean, variance float64) {
	s := math.Sqrt(v)
	var z, m1, m2 float64
	prior := dist.NewGaussian(m, v)
	for _, iv := range [][2]float64{{m - 14*s, k}, {k, m + 14*s}} {
		xs, ws, err := special.Legendre(200, iv[0], iv[1])
		require.NoError(t, err)
		for i, x := range xs {
			w := ws[i] * math.Exp(prior.LogProb(x)) * f(x)
			z += w
			m1 += w * x
			m2 += w * x * x
		}
	}
	mean = m1 / z

	return mean, m2/z - mean*mean
}

// TestMaxA_Quadrature checks the message to a against numeric integration.
func TestMaxA_Quadrature(t *testing.T) {
	a := dist.NewGaussian(0.2, 1)
	max := dist.NewGaussian(1, 0.5)
	c := 0.4
	msg, err := gaussop.MaxAAverageConditional(max, a, c)
	require.NoError(t, err)
	post, err := msg.Product(a)
	require.NoError(t, err)

	mean, variance := posteriorMoments(t, 0.2, 1, c, func(x float64) float64 {
		return math.Exp(max.LogProb(math.Max(x, c)))
	})
	assert.InDelta(t, mean, post.Mean(), 1e-8)
	assert.InDelta(t, variance, post.Variance(), 1e-8)
}

// TestMaxA_PointMasses covers every degenerate branch.
func TestMaxA_PointMasses(t *testing.T) {
	a := dist.NewGaussian(0, 1)
	_, err := gaussop.MaxAAverageConditional(dist.GaussianPointMass(-1), a, 0)
	assert.ErrorIs(t, err, operator.ErrAllZero)

	got, err := gaussop.MaxAAverageConditional(dist.GaussianPointMass(2), a, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Point())

	max := dist.NewGaussian(3, 1)
	got, err = gaussop.MaxAAverageConditional(max, dist.GaussianPointMass(1), 0)
	require.NoError(t, err)
	assert.Equal(t, max, got)

	got, err = gaussop.MaxAAverageConditional(max, dist.GaussianPointMass(-1), 0)
	require.NoError(t, err)
	assert.True(t, got.IsUniform())

	got, err = gaussop.MaxAverageConditional(max, dist.GaussianPointMass(-1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Point())

	_, err = gaussop.MaxAverageConditional(max, dist.GaussianUniform(), 0)
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}

// TestMax_ArgumentKinds routes each kind of a through the same cases for
// the message and the evidence.
func TestMax_ArgumentKinds(t *testing.T) {
	max := dist.NewGaussian(3, 1)

	lz, err := gaussop.MaxLogAverageFactor(max, dist.GaussianPointMass(-1), 0)
	require.NoError(t, err)
	assert.InDelta(t, max.LogProb(0), lz, 1e-12)

	improper := dist.GaussianFromNatural(0, -1)
	_, err = gaussop.MaxAverageConditional(max, improper, 0)
	assert.ErrorIs(t, err, operator.ErrImproperInput)
	_, err = gaussop.MaxLogAverageFactor(max, improper, 0)
	assert.ErrorIs(t, err, operator.ErrImproperInput)
	_, err = gaussop.MaxLogAverageFactor(max, dist.GaussianUniform(), 0)
	assert.ErrorIs(t, err, operator.ErrImproperInput)

	lz, err = gaussop.MaxLogAverageFactor(max, dist.NewGaussian(1, 2), 0)
	require.NoError(t, err)
	assert.True(t, special.IsFinite(lz))
}

// TestIsPositive checks probabilities and the truncated-normal posterior.
func TestIsPositive(t *testing.T) {
	x := dist.NewGaussian(0.7, 4)
	p := gaussop.IsPositiveAverageConditional(x)
	assert.InDelta(t, special.NormalCdf(0.35), p.ProbTrue(), 1e-12)

	msg, err := gaussop.IsPositiveXAverageConditional(dist.BernoulliPointMass(true), x)
	require.NoError(t, err)
	post, err := msg.Product(x)
	require.NoError(t, err)
	z := 0.35
	lambda := math.Exp(special.NormalPdfLn(z)) / special.NormalCdf(z)
	assert.InDelta(t, 0.7+2*lambda, post.Mean(), 1e-10)

	assert.InDelta(t, math.Log(special.NormalCdf(-0.35)), gaussop.IsPositiveLogEvidenceRatio(false, x), 1e-12)

	_, err = gaussop.IsPositiveXAverageConditional(dist.BernoulliPointMass(false), dist.GaussianPointMass(1))
	assert.ErrorIs(t, err, operator.ErrAllZero)
	u, err := gaussop.IsPositiveXAverageConditional(dist.NewBernoulli(0.3), dist.GaussianPointMass(1))
	require.NoError(t, err)
	assert.True(t, u.IsUniform())
}

// TestIsPositive_DeepTail stays finite when the constraint is far in the tail.
func TestIsPositive_DeepTail(t *testing.T) {
	x := dist.NewGaussian(-40, 1)
	msg, err := gaussop.IsPositiveXAverageConditional(dist.BernoulliPointMass(true), x)
	require.NoError(t, err)
	post, err := msg.Product(x)
	require.NoError(t, err)
	assert.True(t, post.Mean() > 0)
	assert.InDelta(t, 1.0/40, post.Mean(), 1e-3)
}

// TestIsGreaterThan_ShiftedIsPositive matches IsPositive on a - b for point b.
func TestIsGreaterThan_ShiftedIsPositive(t *testing.T) {
	a := dist.NewGaussian(2, 1)
	isGT := dist.NewBernoulli(0.9)
	toA, err := gaussop.IsGreaterThanAAverageConditional(isGT, a, dist.GaussianPointMass(1))
	require.NoError(t, err)
	toX, err := gaussop.IsPositiveXAverageConditional(isGT, dist.NewGaussian(1, 1))
	require.NoError(t, err)
	assert.InDelta(t, toX.Mean()+1, toA.Mean(), 1e-9)
	assert.InDelta(t, toX.Variance(), toA.Variance(), 1e-9)

	sharp, err := gaussop.IsGreaterThanAAverageConditional(isGT, a, dist.NewGaussian(1, 1e-12))
	require.NoError(t, err)
	assert.InDelta(t, toA.Mean(), sharp.Mean(), 1e-6)
}

// TestIsGreaterThan_Symmetry checks the message to b mirrors the message to a.
func TestIsGreaterThan_Symmetry(t *testing.T) {
	a, b := dist.NewGaussian(0.3, 2), dist.NewGaussian(-0.1, 0.5)
	isGT := dist.BernoulliPointMass(true)
	pa, err := gaussop.IsGreaterThanAAverageConditional(isGT, a, b)
	require.NoError(t, err)
	pb, err := gaussop.IsGreaterThanBAverageConditional(isGT, a, b)
	require.NoError(t, err)
	postA, err := pa.Product(a)
	require.NoError(t, err)
	postB, err := pb.Product(b)
	require.NoError(t, err)
	// E[a - b | a > b] must be positive and match the difference posterior.
	diff, err := gaussop.IsPositiveXAverageConditional(isGT, dist.NewGaussian(0.4, 2.5))
	require.NoError(t, err)
	postX, err := diff.Product(dist.NewGaussian(0.4, 2.5))
	require.NoError(t, err)
	assert.InDelta(t, postX.Mean(), postA.Mean()-postB.Mean(), 1e-9)

	_, err = gaussop.IsGreaterThanAAverageConditional(isGT, dist.GaussianPointMass(0), dist.GaussianPointMass(1))
	assert.ErrorIs(t, err, operator.ErrAllZero)
	assert.True(t, math.IsInf(gaussop.IsGreaterThanLogEvidenceRatio(true, dist.GaussianPointMass(0), dist.GaussianPointMass(1)), -1))
}

// TestRegister publishes every operator once.
func TestRegister(t *testing.T) {
	r := operator.NewRegistry()
	require.NoError(t, gaussop.Register(r))
	assert.Equal(t, len(gaussop.Descriptors()), r.Len())
}
