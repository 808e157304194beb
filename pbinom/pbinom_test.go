// SPDX-License-Identifier: MIT

package pbinom_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/pbinom"
)

func randomProbs(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	p := make([]float64, n)
	for i := range p {
		p[i] = rng.Float64()
	}

	return p
}

// TestForward_TwoInputs checks the literal small case.
func TestForward_TwoInputs(t *testing.T) {
	tab, err := pbinom.Forward([]float64{0.3, 0.6})
	require.NoError(t, err)
	m := tab.Marginal()
	require.Len(t, m, 3)
	assert.InDelta(t, 0.28, m[0], 1e-9)
	assert.InDelta(t, 0.54, m[1], 1e-9)
	assert.InDelta(t, 0.18, m[2], 1e-9)
}

// TestForward_RowsSumToOne checks every row of F is normalized.
func TestForward_RowsSumToOne(t *testing.T) {
	probs := randomProbs(40, 7)
	tab, err := pbinom.Forward(probs)
	require.NoError(t, err)
	for i := 0; i <= tab.N(); i++ {
		row := tab.Row(i)
		require.Len(t, row, i+1)
		s := 0.0
		for _, v := range row {
			s += v
		}
		assert.InDelta(t, 1, s, 1e-12, "row %d", i)
	}
}

// TestForward_Validation reports all bad entries at once.
func TestForward_Validation(t *testing.T) {
	_, err := pbinom.Forward([]float64{0.5, -0.1, math.NaN(), 1.2})
	require.ErrorIs(t, err, pbinom.ErrBadProbability)
	assert.Len(t, multierr.Errors(pbinom.Validate([]float64{0.5, -0.1, math.NaN(), 1.2})), 3)

	tab, err := pbinom.Forward(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, tab.Marginal())
}

// TestBackward_Invariant checks Σ_j F[i][j]·B_i[j] is the same for every i.
func TestBackward_Invariant(t *testing.T) {
	probs := randomProbs(12, 3)
	tab, err := pbinom.Forward(probs)
	require.NoError(t, err)
	target := randomProbs(13, 11)
	b, err := tab.Backward(target)
	require.NoError(t, err)

	want, err := tab.LogAverage(target)
	require.NoError(t, err)
	for i := 0; i <= tab.N(); i++ {
		s := 0.0
		for j, fj := range tab.Row(i) {
			s += fj * b[i][j]
		}
		assert.InDelta(t, math.Exp(want), s, 1e-12, "row %d", i)
	}

	_, err = tab.Backward(target[:5])
	assert.ErrorIs(t, err, pbinom.ErrBadTarget)
}

// TestElementMessages_RoundTrip conditions on an observed count and checks
// the per-input posteriors add back up to that count.
func TestElementMessages_RoundTrip(t *testing.T) {
	probs := randomProbs(15, 5)
	tab, err := pbinom.Forward(probs)
	require.NoError(t, err)
	for _, count := range []int{0, 4, 9, 15} {
		target := make([]float64, len(probs)+1)
		target[count] = 1
		msgs, err := tab.ElementMessages(target)
		require.NoError(t, err)
		sum := 0.0
		for i, m := range msgs {
			pt := probs[i] * m.ProbTrue()
			pf := (1 - probs[i]) * m.ProbFalse()
			sum += pt / (pt + pf)
		}
		assert.InDelta(t, float64(count), sum, 1e-9, "count %d", count)
	}
}

// TestElementMessages_BruteForce compares with explicit enumeration.
func TestElementMessages_BruteForce(t *testing.T) {
	probs := []float64{0.2, 0.7, 0.5, 0.9}
	target := []float64{0.1, 0.4, 0.2, 0.2, 0.1}
	tab, err := pbinom.Forward(probs)
	require.NoError(t, err)
	msgs, err := tab.ElementMessages(target)
	require.NoError(t, err)

	n := len(probs)
	for i := 0; i < n; i++ {
		var w [2]float64
		for mask := 0; mask < 1<<n; mask++ {
			pr, c := 1.0, 0
			for k := 0; k < n; k++ {
				if k == i {
					continue
				}
				if mask&(1<<k) != 0 {
					pr *= probs[k]
					c++
				} else {
					pr *= 1 - probs[k]
				}
			}
			if mask&(1<<i) != 0 {
				continue
			}
			w[0] += pr * target[c]
			w[1] += pr * target[c+1]
		}
		assert.InDelta(t, w[1]/(w[0]+w[1]), msgs[i].ProbTrue(), 1e-12, "element %d", i)
	}
}

// TestElementMessages_UniformTarget yields uniform messages.
func TestElementMessages_UniformTarget(t *testing.T) {
	probs := randomProbs(8, 9)
	tab, err := pbinom.Forward(probs)
	require.NoError(t, err)
	target := make([]float64, 9)
	for i := range target {
		target[i] = 1
	}
	msgs, err := tab.ElementMessages(target)
	require.NoError(t, err)
	for _, m := range msgs {
		assert.InDelta(t, 0.5, m.ProbTrue(), 1e-12)
	}
}

// TestElementMessages_Degenerate surfaces a vanishing normalizer.
func TestElementMessages_Degenerate(t *testing.T) {
	tab, err := pbinom.Forward([]float64{1, 1, 0.5})
	require.NoError(t, err)
	_, err = tab.ElementMessages([]float64{1, 0, 0, 0})
	require.ErrorIs(t, err, pbinom.ErrDegenerate)
	assert.ErrorIs(t, err, operator.ErrNumerical)
}

// TestCache_RebuildsOnChange rebuilds only when probabilities change.
func TestCache_RebuildsOnChange(t *testing.T) {
	c := pbinom.NewCache(operator.WithLogger(testr.New(t)))
	probs := []float64{0.1, 0.2}
	t1, err := c.Table(probs)
	require.NoError(t, err)
	t2, err := c.Table([]float64{0.1, 0.2})
	require.NoError(t, err)
	assert.Same(t, t1, t2)
	assert.Equal(t, 1, c.Builds())

	probs[1] = 0.3
	t3, err := c.Table(probs)
	require.NoError(t, err)
	assert.NotSame(t, t1, t3)
	assert.Equal(t, 2, c.Builds())
	assert.Equal(t, []float64{0.1, 0.2}, t1.Probs())
}
