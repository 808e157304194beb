// SPDX-License-Identifier: MIT

package dirichletop_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/dirichletop"
	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

func mustDiscrete(t *testing.T, w ...float64) dist.Discrete {
	t.Helper()
	d, err := dist.NewDiscrete(w...)
	require.NoError(t, err)

	return d
}

// TestProjectMeanLogs_RoundTrip recovers a Dirichlet from its mean logs.
func TestProjectMeanLogs_RoundTrip(t *testing.T) {
	for _, want := range []dist.Dirichlet{
		dist.NewDirichlet(2, 3, 5),
		dist.NewDirichlet(0.6, 0.8, 1.2, 0.9),
		dist.NewDirichlet(30, 10),
	} {
		got, err := dirichletop.ProjectMeanLogs(want.MeanLogs(), dist.DirichletUniform(want.Dimension()),
			operator.WithLogger(testr.New(t)))
		require.NoError(t, err, want)
		wc, gc := want.Counts(), got.Counts()
		for i := range wc {
			assert.InDelta(t, wc[i], gc[i], 1e-6*want.TotalCount(), want)
		}
	}

	_, err := dirichletop.ProjectMeanLogs([]float64{-1}, dist.DirichletUniform(1))
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)
	_, err = dirichletop.ProjectMeanLogs([]float64{-1, math.NaN()}, dist.DirichletUniform(2))
	assert.ErrorIs(t, err, operator.ErrNumerical)
}

// TestProbsAverageConditional_MatchesMixture checks the projected posterior
// reproduces E[ln p_i] of the exact k-component mixture.
func TestProbsAverageConditional_MatchesMixture(t *testing.T) {
	alpha := []float64{2, 1.5, 4}
	probs := dist.NewDirichlet(alpha...)
	q := []float64{0.5, 0.3, 0.2}
	sample := mustDiscrete(t, q...)

	msg, err := dirichletop.ProbsAverageConditional(sample, probs, dist.DirichletUniform(3))
	require.NoError(t, err)
	post, err := msg.Product(probs)
	require.NoError(t, err)

	var z, total float64
	for i, a := range alpha {
		z += q[i] * a
		total += a
	}
	got := post.MeanLogs()
	for i := range alpha {
		var want float64
		for k := range alpha {
			w := q[k] * alpha[k] / z
			a := alpha[i]
			if k == i {
				a++
			}
			want += w * (special.Digamma(a) - special.Digamma(total+1))
		}
		assert.InDelta(t, want, got[i], 1e-8, "component %d", i)
	}
}

// TestProbsAverageConditional_Special covers the exact and neutral branches.
func TestProbsAverageConditional_Special(t *testing.T) {
	probs := dist.NewDirichlet(2, 2, 2)

	exact, err := dirichletop.ProbsAverageConditional(dist.DiscretePointMass(1, 3), probs, dist.DirichletUniform(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1}, exact.Counts())

	u, err := dirichletop.ProbsAverageConditional(dist.DiscreteUniform(3), probs, dist.DirichletUniform(3))
	require.NoError(t, err)
	assert.True(t, u.IsUniform())

	_, err = dirichletop.ProbsAverageConditional(dist.DiscreteUniform(2), probs, dist.DirichletUniform(3))
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)

	previous := dist.NewDirichlet(3, 1, 1)
	damped, err := dirichletop.ProbsAverageConditional(dist.DiscretePointMass(1, 3), probs, previous,
		operator.WithDamping(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1.5, 1}, damped.Counts())
}

// TestSampleMessages covers both sample messages and the VMP probs message.
func TestSampleMessages(t *testing.T) {
	probs := dist.NewDirichlet(1, 3)

	ep, err := dirichletop.SampleAverageConditional(probs)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ep.Prob(0), 1e-12)

	vmp, err := dirichletop.SampleAverageLogarithm(probs)
	require.NoError(t, err)
	// exp(ψ(1)) : exp(ψ(3)) = 1 : exp(3/2)
	assert.InDelta(t, 1/(1+math.Exp(1.5)), vmp.Prob(0), 1e-12)

	assert.Equal(t, []float64{1.25, 1.75}, dirichletop.ProbsAverageLogarithm(mustDiscrete(t, 0.25, 0.75)).Counts())

	lz, err := dirichletop.LogEvidenceRatio(1, probs)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.75), lz, 1e-12)
	_, err = dirichletop.LogEvidenceRatio(2, probs)
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)
}

// TestRegister publishes every descriptor once.
func TestRegister(t *testing.T) {
	r := operator.NewRegistry()
	require.NoError(t, dirichletop.Register(r))
	assert.Len(t, r.Factor("DiscreteFromDirichlet"), len(dirichletop.Descriptors()))
}
