// SPDX-License-Identifier: MIT

package gammaop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const shapeRateFactor = "GammaFromShapeAndRate"

// SampleAverageLogarithm returns the VMP message to sample ~ Gamma(shape, rate):
// Gamma(shape, E[rate]).
func SampleAverageLogarithm(shape float64, rate dist.Gamma) (dist.Gamma, error) {
	if err := operator.RequireProper("SampleAverageLogarithm", rate); err != nil {
		return dist.Gamma{}, err
	}

	return dist.NewGamma(shape, rate.Mean()), nil
}

// RateAverageLogarithm returns the VMP message to rate: Gamma(shape+1, E[sample]).
func RateAverageLogarithm(sample dist.Gamma, shape float64) (dist.Gamma, error) {
	if err := operator.RequireProper("RateAverageLogarithm", sample); err != nil {
		return dist.Gamma{}, err
	}

	return dist.NewGamma(shape+1, sample.Mean()), nil
}

// SampleAverageConditional is the exact EP message when rate is a point mass.
func SampleAverageConditional(shape float64, rate dist.Gamma) (dist.Gamma, error) {
	if !rate.IsPointMass() {
		return dist.Gamma{}, fmt.Errorf("SampleAverageConditional: random rate: %w", operator.ErrUnsupported)
	}

	return dist.NewGamma(shape, rate.Point()), nil
}

// RateAverageConditional is the exact EP message when sample is a point mass.
func RateAverageConditional(sample dist.Gamma, shape float64) (dist.Gamma, error) {
	if !sample.IsPointMass() {
		return dist.Gamma{}, fmt.Errorf("RateAverageConditional: random sample: %w", operator.ErrUnsupported)
	}

	return dist.NewGamma(shape+1, sample.Point()), nil
}

// AverageLogFactor returns E[ln Gamma(sample; shape, rate)] under the VMP
// posteriors of sample and rate.
func AverageLogFactor(sample dist.Gamma, shape float64, rate dist.Gamma) (float64, error) {
	if err := operator.RequireProper("AverageLogFactor", sample, rate); err != nil {
		return 0, err
	}
	v := shape*rate.MeanLog() - special.LnGamma(shape) +
		(shape-1)*sample.MeanLog() - rate.Mean()*sample.Mean()
	if math.IsNaN(v) {
		return 0, fmt.Errorf("AverageLogFactor: %w", operator.ErrNumerical)
	}

	return v, nil
}
