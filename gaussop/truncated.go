// SPDX-License-Identifier: MIT

package gaussop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

// component is one weighted piece of a posterior mixture.
type component struct {
	logW     float64
	mean     float64
	variance float64
}

// truncated returns the log mass and moments of X ~ N(m, v) restricted to
// X > t (upper) or X < t.
func truncated(m, v, t float64, upper bool) component {
	s := math.Sqrt(v)
	var z float64
	if upper {
		z = (m - t) / s
	} else {
		z = (t - m) / s
	}
	lambda := 1 / special.NormalCdfRatio(z)
	shift := s * lambda
	if !upper {
		shift = -shift
	}

	return component{
		logW:     special.NormalCdfLn(z),
		mean:     m + shift,
		variance: v * (1 - lambda*(z+lambda)),
	}
}

// project moment-matches a mixture. All-zero weights fail with an
// *operator.AllZeroError naming factor.
func project(factor string, cs ...component) (dist.Gaussian, error) {
	var live []component
	for _, c := range cs {
		if !math.IsInf(c.logW, -1) {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return dist.Gaussian{}, operator.AllZero(factor, "posterior has zero mass")
	}
	mean, variance := live[0].mean, live[0].variance
	if len(live) > 1 {
		ws := make([]float64, len(live))
		for i, c := range live {
			ws[i] = c.logW
		}
		logZ := special.LogSumExp(ws...)
		m2 := 0.0
		mean = 0
		for _, c := range live {
			w := math.Exp(c.logW - logZ)
			mean += w * c.mean
			m2 += w * (c.variance + c.mean*c.mean)
		}
		variance = m2 - mean*mean
		if variance < 0 && variance > -1e-12*m2 {
			variance = 0
		}
	}
	if !special.AllFinite(mean, variance) || variance < 0 {
		return dist.Gaussian{}, fmt.Errorf("%s: projected mean %g variance %g: %w", factor, mean, variance, operator.ErrNumerical)
	}

	return dist.NewGaussian(mean, variance), nil
}

// logFactor returns the unnormalized log density y·mtp - prec·y²/2 of msg.
func logFactor(msg dist.Gaussian, y float64) float64 {
	return y * (msg.MeanTimesPrecision() - 0.5*msg.Precision()*y)
}

// tilt returns the normalizer and moments of N(y; m, v)·exp(logFactor(msg, y)).
func tilt(m, v float64, msg dist.Gaussian) (logZ, mean, variance float64, err error) {
	prec := 1/v + msg.Precision()
	mtp := m/v + msg.MeanTimesPrecision()
	if !(prec > 0) {
		return 0, 0, 0, fmt.Errorf("tilt: precision %g: %w", prec, operator.ErrNumerical)
	}
	logZ = -0.5*math.Log(v*prec) + 0.5*mtp*mtp/prec - 0.5*m*m/v

	return logZ, mtp / prec, 1 / prec, nil
}
