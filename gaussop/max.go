// SPDX-License-Identifier: MIT

package gaussop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const maxFactor = "Max"

// maxComponents returns the two pieces of N(a)·max(max(a, c)): a ≤ c, where
// max(a, c) = c, and a > c, where it tracks a.
func maxComponents(max, a dist.Gaussian, c float64) (lower, upper component, err error) {
	m, v := a.MeanAndVariance()
	lower = truncated(m, v, c, false)
	lower.logW += logFactor(max, c)

	logZ, tm, tv, err := tilt(m, v, max)
	if err != nil {
		return component{}, component{}, err
	}
	upper = truncated(tm, tv, c, true)
	upper.logW += logZ

	return lower, upper, nil
}

// MaxAverageConditional returns the EP message to max = max(a, c).
// A point-mass max message carries no usable shape and is treated as uniform.
func MaxAverageConditional(max, a dist.Gaussian, c float64) (dist.Gaussian, error) {
	return operator.Dispatch("MaxAverageConditional", a, operator.Cases[dist.Gaussian, dist.Gaussian]{
		Point: func(a dist.Gaussian) (dist.Gaussian, error) {
			return dist.GaussianPointMass(math.Max(a.Point(), c)), nil
		},
		Proper:     func(a dist.Gaussian) (dist.Gaussian, error) { return maxMessage(max, a, c) },
		Degenerate: improperA[dist.Gaussian]("MaxAverageConditional"),
	})
}

// improperA fails a required-proper a argument.
func improperA[R any](name string) func(dist.Gaussian) (R, error) {
	return func(a dist.Gaussian) (R, error) {
		var zero R
		return zero, fmt.Errorf("%s: a %v: %w", name, a, operator.ErrImproperInput)
	}
}

func maxMessage(max, a dist.Gaussian, c float64) (dist.Gaussian, error) {
	if max.IsPointMass() {
		max = dist.GaussianUniform()
	}
	lower, upper, err := maxComponents(max, a, c)
	if err != nil {
		return dist.Gaussian{}, fmt.Errorf("MaxAverageConditional: %w", err)
	}
	// the lower piece collapses onto c
	lower.mean, lower.variance = c, 0
	post, err := project(maxFactor, lower, upper)
	if err != nil {
		return dist.Gaussian{}, err
	}
	if post.IsPointMass() {
		return post, nil
	}

	return post.Ratio(max)
}

// MaxAAverageConditional returns the EP message to a.
func MaxAAverageConditional(max, a dist.Gaussian, c float64) (dist.Gaussian, error) {
	if max.IsUniform() {
		return dist.GaussianUniform(), nil
	}
	if max.IsPointMass() {
		y := max.Point()
		switch {
		case y < c:
			return dist.Gaussian{}, operator.AllZero(maxFactor, "max=%g < c=%g", y, c)
		case y > c:
			return dist.GaussianPointMass(y), nil
		}
	}
	if a.IsPointMass() {
		x := a.Point()
		switch {
		case x > c && max.IsPointMass():
			return dist.Gaussian{}, operator.AllZero(maxFactor, "a=%g > max=%g", x, c)
		case x > c:
			return max, nil
		default:
			return dist.GaussianUniform(), nil
		}
	}
	if err := operator.RequireProper("MaxAAverageConditional", a); err != nil {
		return dist.Gaussian{}, err
	}
	m, v := a.MeanAndVariance()
	var (
		post dist.Gaussian
		err  error
	)
	if max.IsPointMass() {
		// max == c: a is confined below c
		post, err = project(maxFactor, truncated(m, v, c, false))
	} else {
		var lower, upper component
		lower, upper, err = maxComponents(max, a, c)
		if err != nil {
			return dist.Gaussian{}, fmt.Errorf("MaxAAverageConditional: %w", err)
		}
		post, err = project(maxFactor, lower, upper)
	}
	if err != nil {
		return dist.Gaussian{}, err
	}

	return post.Ratio(a)
}

// MaxLogAverageFactor returns ln ∫ max(max(a, c))·a(a) da.
func MaxLogAverageFactor(max, a dist.Gaussian, c float64) (float64, error) {
	return operator.Dispatch("MaxLogAverageFactor", a, operator.Cases[dist.Gaussian, float64]{
		Point: func(a dist.Gaussian) (float64, error) {
			return max.LogProb(math.Max(a.Point(), c)), nil
		},
		Proper:     func(a dist.Gaussian) (float64, error) { return maxLogAverage(max, a, c) },
		Degenerate: improperA[float64]("MaxLogAverageFactor"),
	})
}

func maxLogAverage(max, a dist.Gaussian, c float64) (float64, error) {
	if max.IsPointMass() || !max.IsProper() {
		return 0, fmt.Errorf("MaxLogAverageFactor: max %v: %w", max, operator.ErrUnsupported)
	}
	lower, upper, err := maxComponents(max, a, c)
	if err != nil {
		return 0, fmt.Errorf("MaxLogAverageFactor: %w", err)
	}
	// normalize the unnormalized max density
	mm, mv := max.MeanAndVariance()
	norm := -0.5*math.Log(2*math.Pi*mv) - 0.5*mm*mm/mv

	return special.LogSumExp(lower.logW, upper.logW) + norm, nil
}
