// SPDX-License-Identifier: MIT

package betaop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/betaop"
	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

// TestProjectLogMoments_RoundTrip recovers a Beta from its own log moments.
func TestProjectLogMoments_RoundTrip(t *testing.T) {
	for _, want := range []dist.Beta{dist.NewBeta(2.5, 4), dist.NewBeta(0.7, 0.9), dist.NewBeta(40, 12)} {
		l1, l2 := want.MeanLogs()
		got, err := betaop.ProjectLogMoments(l1, l2, dist.BetaUniform())
		require.NoError(t, err, want)
		assert.InDelta(t, want.TrueCount(), got.TrueCount(), 1e-6*want.TotalCount(), want)
		assert.InDelta(t, want.FalseCount(), got.FalseCount(), 1e-6*want.TotalCount(), want)
	}

	_, err := betaop.ProjectLogMoments(0.1, -1, dist.BetaUniform())
	assert.ErrorIs(t, err, operator.ErrNumerical)
}

// TestProjectLogMoments_StopsWhenStalled asks for a tolerance below machine
// precision with a huge step budget; the solver must stop as soon as step
// halving stops improving the residual.
func TestProjectLogMoments_StopsWhenStalled(t *testing.T) {
	want := dist.NewBeta(2, 3)
	l1, l2 := want.MeanLogs()
	got, err := betaop.ProjectLogMoments(l1, l2, dist.BetaUniform(),
		operator.WithTolerance(1e-300), operator.WithNewtonSteps(1<<22))
	if err != nil {
		require.ErrorIs(t, err, operator.ErrNumerical)
		assert.Contains(t, err.Error(), "stalled")
		return
	}
	assert.InDelta(t, 2, got.TrueCount(), 1e-9)
	assert.InDelta(t, 3, got.FalseCount(), 1e-9)
}

// TestProbAverageConditional_MatchesLogMoments checks the projected posterior
// reproduces E[ln x] and E[ln(1-x)] of the exact posterior.
func TestProbAverageConditional_MatchesLogMoments(t *testing.T) {
	prob := dist.BetaUniform()
	mean := dist.NewBeta(2, 3)
	total := dist.NewGamma(5, 1)

	l1, l2, logZ, err := betaop.LogMoments(prob, mean, total)
	require.NoError(t, err)
	assert.Less(t, l1, 0.0)
	assert.Less(t, l2, 0.0)
	// ∫ prob = 1 for a uniform prob, so the evidence is the prior mass.
	assert.InDelta(t, 0, logZ, 1e-6)

	msg, err := betaop.ProbAverageConditional(prob, mean, total, dist.BetaUniform())
	require.NoError(t, err)
	post, err := msg.Product(prob)
	require.NoError(t, err)
	g1, g2 := post.MeanLogs()
	assert.InDelta(t, l1, g1, 1e-8)
	assert.InDelta(t, l2, g2, 1e-8)
}

// TestProbAverageConditional_PointMasses uses the exact branch.
func TestProbAverageConditional_PointMasses(t *testing.T) {
	msg, err := betaop.ProbAverageConditional(dist.BetaUniform(), dist.BetaPointMass(0.25),
		dist.GammaPointMass(8), dist.BetaUniform())
	require.NoError(t, err)
	assert.Equal(t, dist.NewBeta(2, 6), msg)

	vmp, err := betaop.ProbAverageLogarithm(dist.BetaPointMass(0.25), dist.GammaPointMass(8))
	require.NoError(t, err)
	assert.Equal(t, msg, vmp)

	_, err = betaop.ProbAverageLogarithm(dist.NewBeta(2, 2), dist.GammaUniform())
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}

// TestProbAverageConditional_Damping checks both damping limits.
func TestProbAverageConditional_Damping(t *testing.T) {
	mean, total := dist.NewBeta(2, 3), dist.NewGamma(5, 1)
	previous := dist.NewBeta(3, 3)

	plain, err := betaop.ProbAverageConditional(dist.BetaUniform(), mean, total, previous)
	require.NoError(t, err)
	zero, err := betaop.ProbAverageConditional(dist.BetaUniform(), mean, total, previous, operator.WithDamping(0))
	require.NoError(t, err)
	assert.Equal(t, plain, zero)

	heavy, err := betaop.ProbAverageConditional(dist.BetaUniform(), mean, total, previous, operator.WithDamping(0.999))
	require.NoError(t, err)
	assert.InDelta(t, previous.TrueCount(), heavy.TrueCount(), 0.01)
	assert.InDelta(t, previous.FalseCount(), heavy.FalseCount(), 0.01)
}

// TestLogMoments_Unsupported rejects prob counts below one.
func TestLogMoments_Unsupported(t *testing.T) {
	_, _, _, err := betaop.LogMoments(dist.NewBeta(0.5, 2), dist.NewBeta(2, 2), dist.NewGamma(3, 1))
	assert.ErrorIs(t, err, operator.ErrUnsupported)

	_, _, _, err = betaop.LogMoments(dist.BetaUniform(), dist.NewBeta(2, 2), dist.GammaUniform())
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}

// TestMeanAverageLogarithm covers symmetry, direction and the observed case.
func TestMeanAverageLogarithm(t *testing.T) {
	total := dist.GammaPointMass(10)

	sym, err := betaop.MeanAverageLogarithm(dist.NewBeta(50, 50), dist.NewBeta(3, 3), total, dist.BetaUniform())
	require.NoError(t, err)
	assert.InDelta(t, sym.TrueCount(), sym.FalseCount(), 1e-8)
	assert.True(t, sym.IsProper())

	skew, err := betaop.MeanAverageLogarithm(dist.NewBeta(80, 20), dist.NewBeta(2, 2), total, dist.BetaUniform())
	require.NoError(t, err)
	assert.Greater(t, skew.Mean(), 0.6)

	observed, err := betaop.MeanAverageLogarithm(dist.NewBeta(80, 20), dist.BetaPointMass(0.4), total, dist.BetaUniform())
	require.NoError(t, err)
	assert.True(t, observed.IsUniform())

	_, err = betaop.MeanAverageLogarithm(dist.NewBeta(80, 20), dist.NewBeta(-1, 2), total, dist.BetaUniform())
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}

// TestBernoulli covers the Beta-Bernoulli factor.
func TestBernoulli(t *testing.T) {
	p := dist.NewBeta(2, 3)

	assert.InDelta(t, 0.4, betaop.BernoulliSampleAverageConditional(p).ProbTrue(), 1e-12)
	// ψ(2) - ψ(3) = -1/2
	assert.InDelta(t, -0.5, betaop.BernoulliSampleAverageLogarithm(p).LogOdds(), 1e-12)
	assert.Equal(t, dist.NewBeta(1.25, 1.75), betaop.BernoulliProbAverageLogarithm(dist.NewBernoulli(0.25)))
	assert.InDelta(t, math.Log(0.4), betaop.BernoulliLogEvidenceRatio(true, p), 1e-12)
	assert.InDelta(t, math.Log(0.6), betaop.BernoulliLogEvidenceRatio(false, p), 1e-12)

	exact, err := betaop.BernoulliProbAverageConditional(dist.BernoulliPointMass(true), p)
	require.NoError(t, err)
	assert.Equal(t, dist.NewBeta(2, 1), exact)

	u, err := betaop.BernoulliProbAverageConditional(dist.BernoulliUniform(), p)
	require.NoError(t, err)
	assert.True(t, u.IsUniform())

	// posterior ∝ (0.7x + 0.3(1-x))·Beta(x; 2, 3)
	msg, err := betaop.BernoulliProbAverageConditional(dist.NewBernoulli(0.7), p)
	require.NoError(t, err)
	post, err := msg.Product(p)
	require.NoError(t, err)
	w1, w2 := 0.7*0.4, 0.3*0.6
	wantMean := (w1*3.0/6 + w2*2.0/6) / (w1 + w2)
	assert.InDelta(t, wantMean, post.Mean(), 1e-12)

	_, err = betaop.BernoulliProbAverageConditional(dist.NewBernoulli(0.7), dist.NewBeta(-1, 1))
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}

// TestRegister publishes every descriptor once.
func TestRegister(t *testing.T) {
	r := operator.NewRegistry()
	require.NoError(t, betaop.Register(r))
	assert.Equal(t, len(betaop.Descriptors()), r.Len())
	assert.Error(t, betaop.Register(r))

	d, ok := r.Lookup("BetaFromMeanAndTotalCount", "prob", operator.AverageConditional)
	require.True(t, ok)
	assert.True(t, d.Fresh)
}
