// SPDX-License-Identifier: MIT

package dirichletop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/matrix"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const maxHalvings = 40

// fisher returns diag(ψ'(α)) - ψ'(Σα)·11ᵀ.
func fisher(alpha []float64) (*matrix.Dense, error) {
	k := len(alpha)
	f, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, a := range alpha {
		total += a
	}
	ts := special.Trigamma(total)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := -ts
			if i == j {
				v += special.Trigamma(alpha[i])
			}
			if err = f.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// meanLogResidual returns ψ(α_i) - ψ(Σα) - target_i and its max-norm.
func meanLogResidual(alpha, target []float64) ([]float64, float64) {
	var total float64
	for _, a := range alpha {
		total += a
	}
	ds := special.Digamma(total)
	g := make([]float64, len(alpha))
	var norm float64
	for i, a := range alpha {
		g[i] = special.Digamma(a) - ds - target[i]
		norm = math.Max(norm, math.Abs(g[i]))
	}

	return g, norm
}

// initialCounts places the mean at exp(target) normalized and picks the
// total from ψ(x) ≈ ln x - 1/(2x), which gives
// Σ m_i(ln m_i - t_i) ≈ (k-1)/(2·total).
func initialCounts(target []float64) []float64 {
	k := len(target)
	m := make([]float64, k)
	var z float64
	for i, t := range target {
		m[i] = math.Exp(t)
		z += m[i]
	}
	var gap float64
	for i := range m {
		m[i] /= z
		gap += m[i] * (math.Log(m[i]) - target[i])
	}
	total := 1.0
	if gap > 0 {
		total = math.Max(float64(k-1)/(2*gap), 0.5)
	}
	for i := range m {
		m[i] *= total
	}

	return m
}

// ProjectMeanLogs returns the Dirichlet with E[ln p_i] = target[i], by
// Newton iteration from start.
//
// Stage 1: residual g_i = ψ(α_i) - ψ(Σα) - target_i.
// Stage 2: solve F·δ = -g with the Fisher matrix through LU.
// Stage 3: halve δ until every count stays positive and |g| shrinks.
func ProjectMeanLogs(target []float64, start dist.Dirichlet, opts ...operator.Option) (dist.Dirichlet, error) {
	o := operator.Apply(opts...)
	if len(target) < 2 {
		return dist.Dirichlet{}, fmt.Errorf("ProjectMeanLogs: %d targets: %w", len(target), dist.ErrDimensionMismatch)
	}
	for i, t := range target {
		if !(t < 0) || !special.IsFinite(t) {
			return dist.Dirichlet{}, fmt.Errorf("ProjectMeanLogs: target[%d]=%g: %w", i, t, operator.ErrNumerical)
		}
	}
	alpha := start.Counts()
	if start.IsPointMass() || !start.IsProper() || len(alpha) != len(target) {
		alpha = initialCounts(target)
	}
	g, norm := meanLogResidual(alpha, target)
	next := make([]float64, len(alpha))
	for iter := 0; iter < o.NewtonSteps && norm >= o.Tolerance; iter++ {
		f, err := fisher(alpha)
		if err != nil {
			return dist.Dirichlet{}, fmt.Errorf("ProjectMeanLogs: %w", err)
		}
		for i := range g {
			g[i] = -g[i]
		}
		delta, err := matrix.Solve(f, g)
		if err != nil {
			return dist.Dirichlet{}, fmt.Errorf("ProjectMeanLogs: %w: %w", operator.ErrNumerical, err)
		}
		step := 1.0
		moved := false
		for h := 0; h < maxHalvings && !moved; h++ {
			positive := true
			for i := range alpha {
				next[i] = alpha[i] + step*delta[i]
				positive = positive && next[i] > 0
			}
			if positive {
				if ng, nn := meanLogResidual(next, target); nn < norm {
					copy(alpha, next)
					g, norm = ng, nn
					moved = true
				}
			}
			step /= 2
		}
		if !moved {
			// restore the sign flipped above
			g, norm = meanLogResidual(alpha, target)
			break
		}
	}
	if norm > math.Sqrt(o.Tolerance) {
		return dist.Dirichlet{}, fmt.Errorf("ProjectMeanLogs: residual %g: %w", norm, operator.ErrNumerical)
	}
	if norm >= o.Tolerance {
		o.Logger.V(1).Info("mean-log projection stopped early", "residual", norm)
	}

	return dist.NewDirichlet(alpha...), nil
}
