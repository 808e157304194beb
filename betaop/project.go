// SPDX-License-Identifier: MIT

package betaop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/matrix"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

// fisher returns the Beta Fisher matrix [[f11, f12], [f12, f22]] in (α, β).
func fisher(alpha, beta float64) (f11, f12, f22 float64) {
	ts := special.Trigamma(alpha + beta)

	return special.Trigamma(alpha) - ts, -ts, special.Trigamma(beta) - ts
}

// matrixInverse inverts the symmetric Fisher matrix, mapping singularity to
// ErrNumerical.
func matrixInverse(f11, f12, f22 float64) (i11, i12, i21, i22 float64, err error) {
	i11, i12, i21, i22, err = matrix.Inverse2x2(f11, f12, f12, f22)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %w", operator.ErrNumerical, err)
	}

	return i11, i12, i21, i22, nil
}

// ProjectLogMoments returns the Beta whose E[ln x] and E[ln(1-x)] equal l1
// and l2, by Newton iteration from start.
//
// Stage 1: residual g = (ψ(α)-ψ(α+β)-l1, ψ(β)-ψ(α+β)-l2).
// Stage 2: step -F⁻¹g with the closed-form 2×2 inverse of the Fisher matrix.
// Stage 3: halve the step until both counts stay positive and |g| shrinks;
// stop once no halving improves |g|.
func ProjectLogMoments(l1, l2 float64, start dist.Beta, opts ...operator.Option) (dist.Beta, error) {
	o := operator.Apply(opts...)
	if !(l1 < 0 && l2 < 0) || !special.AllFinite(l1, l2) {
		return dist.Beta{}, fmt.Errorf("ProjectLogMoments(%g, %g): %w", l1, l2, operator.ErrNumerical)
	}
	alpha, beta := start.TrueCount(), start.FalseCount()
	if start.IsPointMass() || !(alpha > 0 && beta > 0) {
		alpha, beta = initialCounts(l1, l2)
	}
	res := logMomentResidual(alpha, beta, l1, l2)
	iter, stalled := 0, false
	for ; iter < o.NewtonSteps && !stalled; iter++ {
		if res.norm() < o.Tolerance {
			return dist.NewBeta(alpha, beta), nil
		}
		f11, f12, f22 := fisher(alpha, beta)
		i11, i12, i21, i22, err := matrixInverse(f11, f12, f22)
		if err != nil {
			return dist.Beta{}, fmt.Errorf("ProjectLogMoments: %w", err)
		}
		da := -(i11*res.g1 + i12*res.g2)
		db := -(i21*res.g1 + i22*res.g2)
		if !special.AllFinite(da, db) {
			return dist.Beta{}, fmt.Errorf("ProjectLogMoments: step (%g, %g): %w", da, db, operator.ErrNumerical)
		}
		stalled = true
		step := 1.0
		for k := 0; k < maxHalvings; k++ {
			na, nb := alpha+step*da, beta+step*db
			if na > 0 && nb > 0 {
				if next := logMomentResidual(na, nb, l1, l2); next.norm() < res.norm() {
					alpha, beta, res = na, nb, next
					stalled = false
					break
				}
			}
			step /= 2
		}
	}
	if res.norm() > math.Sqrt(o.Tolerance) {
		if stalled {
			return dist.Beta{}, fmt.Errorf("ProjectLogMoments: stalled at residual %g after %d steps: %w",
				res.norm(), iter, operator.ErrNumerical)
		}
		return dist.Beta{}, fmt.Errorf("ProjectLogMoments: residual %g after %d steps: %w",
			res.norm(), iter, operator.ErrNumerical)
	}
	o.Logger.V(1).Info("log-moment projection stopped before tolerance",
		"residual", res.norm(), "iterations", iter, "stalled", stalled)

	return dist.NewBeta(alpha, beta), nil
}

const maxHalvings = 40

type residual struct{ g1, g2 float64 }

func (r residual) norm() float64 { return math.Max(math.Abs(r.g1), math.Abs(r.g2)) }

func logMomentResidual(alpha, beta, l1, l2 float64) residual {
	ds := special.Digamma(alpha + beta)

	return residual{g1: special.Digamma(alpha) - ds - l1, g2: special.Digamma(beta) - ds - l2}
}

// initialCounts inverts the large-count expansion ψ(a) ≈ ln(a) - 1/(2a):
// the mean comes from e^l1 : e^l2 and the total from how far l1 + l2 falls
// below ln(m) + ln(1-m).
func initialCounts(l1, l2 float64) (alpha, beta float64) {
	e1, e2 := math.Exp(l1), math.Exp(l2)
	m := e1 / (e1 + e2)
	gap := math.Log(m) + math.Log1p(-m) - l1 - l2
	total := 1.0
	if gap > 0 {
		total = math.Max((1/(m*(1-m))-2)/(2*gap), 0.5)
	}

	return m * total, (1 - m) * total
}
