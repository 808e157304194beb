// SPDX-License-Identifier: MIT

package strop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinfer/automaton"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/strop"
)

type fixture struct {
	str, str1, str2 map[string]float64
}

func lang(t *testing.T, w map[string]float64) automaton.Language {
	t.Helper()
	l, err := automaton.FromWeights(w)
	require.NoError(t, err)

	return l
}

// bruteForce enumerates every (x, y) pair and returns the three normalized
// messages and the log evidence.
func bruteForce(f fixture) (toStr, toStr1, toStr2 map[string]float64, logZ float64) {
	norm := func(m map[string]float64) map[string]float64 {
		var z float64
		for _, w := range m {
			z += w
		}
		out := make(map[string]float64, len(m))
		for s, w := range m {
			out[s] = w / z
		}
		return out
	}
	str, str1, str2 := norm(f.str), norm(f.str1), norm(f.str2)
	toStr, toStr1, toStr2 = map[string]float64{}, map[string]float64{}, map[string]float64{}
	var z float64
	for x, w1 := range str1 {
		for y, w2 := range str2 {
			toStr[x+y] += w1 * w2
			z += str[x+y] * w1 * w2
		}
	}
	for s, w := range str {
		for i := 0; i <= len(s); i++ {
			x, y := s[:i], s[i:]
			if w2, ok := str2[y]; ok {
				toStr1[x] += w * w2
			}
			if w1, ok := str1[x]; ok {
				toStr2[y] += w * w1
			}
		}
	}

	return norm(toStr), norm(toStr1), norm(toStr2), math.Log(z)
}

func assertMatches(t *testing.T, want map[string]float64, got automaton.Language, what string) {
	t.Helper()
	assert.Equal(t, len(want), got.Len(), "%s: %v", what, got)
	for s, p := range want {
		assert.InDelta(t, p, got.Prob(s), 1e-12, "%s %q", what, s)
	}
}

// TestConcat_BruteForce compares all messages with direct enumeration.
func TestConcat_BruteForce(t *testing.T) {
	cases := []fixture{
		{
			str:  map[string]float64{"abc": 1, "ab": 2, "b": 1},
			str1: map[string]float64{"a": 1, "ab": 3, "": 1},
			str2: map[string]float64{"c": 2, "b": 1, "bc": 1},
		},
		{
			str:  map[string]float64{"aa": 1, "aaa": 1},
			str1: map[string]float64{"a": 1, "aa": 1},
			str2: map[string]float64{"a": 1, "": 2},
		},
	}
	for _, f := range cases {
		str, str1, str2 := lang(t, f.str), lang(t, f.str1), lang(t, f.str2)
		wantStr, want1, want2, wantZ := bruteForce(f)

		got, err := strop.ConcatAverageConditional(str1, str2)
		require.NoError(t, err)
		assertMatches(t, wantStr, got, "str")

		got1, err := strop.Str1AverageConditional(str, str2)
		require.NoError(t, err)
		assertMatches(t, want1, got1, "str1")

		got2, err := strop.Str2AverageConditional(str, str1)
		require.NoError(t, err)
		assertMatches(t, want2, got2, "str2")

		lz, err := strop.LogAverageFactor(str, str1, str2)
		require.NoError(t, err)
		assert.InDelta(t, wantZ, lz, 1e-12)
	}
}

// TestConcat_UniformAndZero covers neutral and contradictory inputs.
func TestConcat_UniformAndZero(t *testing.T) {
	str1 := lang(t, map[string]float64{"a": 1})
	u, err := strop.ConcatAverageConditional(str1, automaton.Uniform())
	require.NoError(t, err)
	assert.True(t, u.IsUniform())

	u, err = strop.Str1AverageConditional(automaton.Uniform(), str1)
	require.NoError(t, err)
	assert.True(t, u.IsUniform())

	// str2 uniform: every prefix of an observed string
	prefixes, err := strop.Str1AverageConditional(automaton.PointMass("ab"), automaton.Uniform())
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "ab"}, prefixes.Support())

	_, err = strop.Str2AverageConditional(automaton.PointMass("xyz"), lang(t, map[string]float64{"a": 1}))
	var az *operator.AllZeroError
	require.ErrorAs(t, err, &az)
	assert.Equal(t, "Concat", az.Factor)
	assert.ErrorIs(t, err, operator.ErrAllZero)

	lz, err := strop.LogAverageFactor(automaton.Uniform(), str1, str1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lz)
	lz, err = strop.LogAverageFactor(automaton.PointMass("b"), str1, str1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lz, -1))
	_, err = strop.LogAverageFactor(automaton.PointMass("a"), automaton.Uniform(), str1)
	assert.ErrorIs(t, err, operator.ErrImproperInput)
}
