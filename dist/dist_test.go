// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/dist"
)

// TestGaussian_ProductRatioRoundTrip checks Ratio undoes Product.
func TestGaussian_ProductRatioRoundTrip(t *testing.T) {
	a := dist.NewGaussian(1, 2)
	b := dist.NewGaussian(-3, 0.5)
	ab, err := a.Product(b)
	require.NoError(t, err)
	back, err := ab.Ratio(b)
	require.NoError(t, err)
	assert.InDelta(t, a.Mean(), back.Mean(), 1e-12)
	assert.InDelta(t, a.Variance(), back.Variance(), 1e-12)
}

// TestGaussian_PointMass covers the degenerate constructors and products.
func TestGaussian_PointMass(t *testing.T) {
	p := dist.NewGaussian(4, 0)
	require.True(t, p.IsPointMass())
	assert.Equal(t, 4.0, p.Mean())
	assert.Equal(t, 0.0, p.Variance())

	q, err := p.Product(dist.NewGaussian(0, 1))
	require.NoError(t, err)
	assert.Equal(t, p, q)

	_, err = p.Product(dist.GaussianPointMass(5))
	assert.ErrorIs(t, err, dist.ErrAllZero)

	_, err = dist.NewGaussian(0, 1).Ratio(p)
	assert.ErrorIs(t, err, dist.ErrPointMassRatio)

	u, err := p.Ratio(p)
	require.NoError(t, err)
	assert.True(t, u.IsUniform())
	assert.True(t, dist.NewGaussian(0, math.Inf(1)).IsUniform())
}

// TestGaussian_LogAverageOf compares with the closed-form convolution.
func TestGaussian_LogAverageOf(t *testing.T) {
	a := dist.NewGaussian(0, 1)
	b := dist.NewGaussian(1, 3)
	got, err := a.LogAverageOf(b)
	require.NoError(t, err)
	assert.InDelta(t, dist.NewGaussian(0, 4).LogProb(1), got, 1e-12)

	_, err = a.LogAverageOf(dist.GaussianFromNatural(1, -1))
	assert.ErrorIs(t, err, dist.ErrImproper)
}

// TestGamma_Algebra checks natural-parameter arithmetic and Power.
func TestGamma_Algebra(t *testing.T) {
	a := dist.NewGamma(3, 2)
	b := dist.NewGamma(2, 1)
	ab, err := a.Product(b)
	require.NoError(t, err)
	assert.Equal(t, dist.NewGamma(4, 3), ab)

	r, err := ab.Ratio(b)
	require.NoError(t, err)
	assert.Equal(t, a, r)

	assert.True(t, a.Power(0).IsUniform())
	assert.Equal(t, dist.NewGamma(5, 4), a.Power(2))
	assert.InDelta(t, 1.5, a.Mean(), 1e-15)
	assert.InDelta(t, 0.75, a.Variance(), 1e-15)
}

// TestGamma_FromMeanAndVariance round-trips moments.
func TestGamma_FromMeanAndVariance(t *testing.T) {
	g := dist.GammaFromMeanAndVariance(2, 0.5)
	assert.InDelta(t, 2, g.Mean(), 1e-12)
	assert.InDelta(t, 0.5, g.Variance(), 1e-12)
	assert.True(t, dist.GammaFromMeanAndVariance(3, 0).IsPointMass())
}

// TestGammaPower_PowerOneMatchesGamma ensures the power-1 view agrees with Gamma.
func TestGammaPower_PowerOneMatchesGamma(t *testing.T) {
	g := dist.NewGamma(2.5, 1.5)
	gp := g.AsPower()
	for _, x := range []float64{0.1, 1, 3.7} {
		assert.InDelta(t, g.LogProb(x), gp.LogProb(x), 1e-12)
	}
	assert.InDelta(t, g.Mean(), gp.Mean(), 1e-12)
	assert.InDelta(t, g.Variance(), gp.Variance(), 1e-10)

	back, ok := gp.AsGamma()
	require.True(t, ok)
	assert.Equal(t, g, back)

	_, ok = dist.NewGammaPower(2, 1, -1).AsGamma()
	assert.False(t, ok)
}

// TestGammaPower_InverseGammaMean checks E[1/x] = rate/(shape-1).
func TestGammaPower_InverseGammaMean(t *testing.T) {
	g := dist.NewGammaPower(4, 3, -1)
	assert.InDelta(t, 1.0, g.Mean(), 1e-12)
	assert.True(t, math.IsInf(dist.NewGammaPower(0.5, 1, -1).Mean(), 1))

	u := dist.GammaPowerUniform(-1)
	assert.True(t, u.IsUniform())
	prod, err := g.Product(u)
	require.NoError(t, err)
	assert.Equal(t, g, prod)

	_, err = g.Product(dist.NewGammaPower(2, 1, 2))
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)
}

// TestBeta_MeanLogsAndProduct covers Beta moments and algebra.
func TestBeta_MeanLogsAndProduct(t *testing.T) {
	b := dist.NewBeta(2, 3)
	assert.InDelta(t, 0.4, b.Mean(), 1e-15)
	assert.InDelta(t, 0.04, b.Variance(), 1e-15)

	l1, l2 := b.MeanLogs()
	// ψ(2)-ψ(5) = -(1/2+1/3+1/4), ψ(3)-ψ(5) = -(1/3+1/4)
	assert.InDelta(t, -(1.0/2+1.0/3+1.0/4), l1, 1e-12)
	assert.InDelta(t, -(1.0/3+1.0/4), l2, 1e-12)

	prod, err := b.Product(dist.BetaUniform())
	require.NoError(t, err)
	assert.Equal(t, b, prod)

	m := dist.BetaFromMeanAndVariance(0.4, 0.04)
	assert.InDelta(t, 2, m.TrueCount(), 1e-12)
	assert.InDelta(t, 3, m.FalseCount(), 1e-12)
}

// TestBernoulli_LogOdds checks log-odds arithmetic and point masses.
func TestBernoulli_LogOdds(t *testing.T) {
	a := dist.NewBernoulli(0.3)
	assert.InDelta(t, 0.3, a.ProbTrue(), 1e-12)
	assert.InDelta(t, 0.7, a.ProbFalse(), 1e-12)

	ab, err := a.Product(dist.NewBernoulli(0.6))
	require.NoError(t, err)
	want := 0.3 * 0.6 / (0.3*0.6 + 0.7*0.4)
	assert.InDelta(t, want, ab.ProbTrue(), 1e-12)

	_, err = dist.BernoulliPointMass(true).Product(dist.BernoulliPointMass(false))
	assert.ErrorIs(t, err, dist.ErrAllZero)
	assert.True(t, dist.BernoulliPointMass(true).Point())
	assert.InDelta(t, math.Log(0.3*0.6+0.7*0.4), a.LogAverageOf(dist.NewBernoulli(0.6)), 1e-12)
}

// TestDiscrete_Validation aggregates every bad weight into one error.
func TestDiscrete_Validation(t *testing.T) {
	_, err := dist.NewDiscrete(1, -1, math.NaN())
	require.ErrorIs(t, err, dist.ErrBadProbabilities)
	assert.Contains(t, err.Error(), "weight[1]")
	assert.Contains(t, err.Error(), "weight[2]")

	_, err = dist.NewDiscrete(0, 0)
	assert.ErrorIs(t, err, dist.ErrAllZero)

	d, err := dist.NewDiscrete(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, d.Probs())
	assert.Equal(t, 1, d.Point())
	assert.InDelta(t, 0.25, d.ProbLessThan(1), 1e-15)
}

// TestDiscrete_Product reports all-zero and dimension errors.
func TestDiscrete_Product(t *testing.T) {
	a := dist.DiscretePointMass(0, 3)
	_, err := a.Product(dist.DiscretePointMass(2, 3))
	assert.ErrorIs(t, err, dist.ErrAllZero)
	_, err = a.Product(dist.DiscreteUniform(2))
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)

	sq := dist.DiscreteUniform(4).Power(2)
	assert.True(t, sq.IsUniform())
}

// TestDirichlet_MeanLogs compares with the Beta special case.
func TestDirichlet_MeanLogs(t *testing.T) {
	d := dist.NewDirichlet(2, 3)
	l1, l2 := dist.NewBeta(2, 3).MeanLogs()
	ml := d.MeanLogs()
	assert.InDelta(t, l1, ml[0], 1e-12)
	assert.InDelta(t, l2, ml[1], 1e-12)

	p, err := d.Product(dist.DirichletUniform(2))
	require.NoError(t, err)
	assert.Equal(t, d.Counts(), p.Counts())
	assert.True(t, d.Power(0).IsUniform())
}

// TestSamplers_MeanConverges draws from each Sampler and checks the mean.
func TestSamplers_MeanConverges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	samplers := map[string]dist.Sampler{
		"gaussian":   dist.NewGaussian(1, 4),
		"gamma":      dist.NewGamma(3, 2),
		"gammaPower": dist.NewGammaPower(5, 2, -1),
		"beta":       dist.NewBeta(2, 5),
	}
	const n = 20000
	for name, s := range samplers {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += s.Sample(rng)
		}
		tol := 4 * math.Sqrt(s.Variance()/n)
		assert.InDelta(t, s.Mean(), sum/n, tol, name)
	}
}

// TestDiscrete_SampleFrequencies checks category frequencies and that a
// zero-probability category is never drawn.
func TestDiscrete_SampleFrequencies(t *testing.T) {
	d, err := dist.NewDiscrete(1, 0, 3)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(3, 4))
	const n = 20000
	counts := make([]int, d.Dimension())
	for i := 0; i < n; i++ {
		counts[d.Sample(rng)]++
	}
	assert.Zero(t, counts[1])
	for k, c := range counts {
		p := d.Prob(k)
		assert.InDelta(t, p, float64(c)/n, 4*math.Sqrt(p*(1-p)/n)+1e-12, "k=%d", k)
	}
}
