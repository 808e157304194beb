// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvinfer/special"
)

// Bernoulli is a distribution over {false, true} stored as log-odds.
// ±Inf log-odds are the point masses, 0 is uniform.
type Bernoulli struct {
	logOdds float64
}

// NewBernoulli returns Bernoulli with P(true) = p.
func NewBernoulli(p float64) Bernoulli {
	return Bernoulli{logOdds: special.Logit(p)}
}

// BernoulliFromLogOdds returns the Bernoulli with the given log-odds.
func BernoulliFromLogOdds(logOdds float64) Bernoulli {
	return Bernoulli{logOdds: logOdds}
}

// BernoulliPointMass returns the point mass at v.
func BernoulliPointMass(v bool) Bernoulli {
	if v {
		return Bernoulli{logOdds: math.Inf(1)}
	}

	return Bernoulli{logOdds: math.Inf(-1)}
}

// BernoulliUniform returns P(true) = 0.5.
func BernoulliUniform() Bernoulli { return Bernoulli{} }

// LogOdds returns ln P(true)/P(false).
func (b Bernoulli) LogOdds() float64 { return b.logOdds }

// ProbTrue returns P(true).
func (b Bernoulli) ProbTrue() float64 { return special.Logistic(b.logOdds) }

// ProbFalse returns P(false).
func (b Bernoulli) ProbFalse() float64 { return special.Logistic(-b.logOdds) }

// LogProbTrue returns ln P(true).
func (b Bernoulli) LogProbTrue() float64 { return special.LogisticLn(b.logOdds) }

// LogProbFalse returns ln P(false).
func (b Bernoulli) LogProbFalse() float64 { return special.LogisticLn(-b.logOdds) }

// IsPointMass reports infinite log-odds.
func (b Bernoulli) IsPointMass() bool { return math.IsInf(b.logOdds, 0) }

// IsUniform reports zero log-odds.
func (b Bernoulli) IsUniform() bool { return b.logOdds == 0 }

// IsProper is true for every non-NaN Bernoulli.
func (b Bernoulli) IsProper() bool { return !math.IsNaN(b.logOdds) }

// Point returns the value of a point mass.
func (b Bernoulli) Point() bool { return b.logOdds > 0 }

// Mean returns P(true).
func (b Bernoulli) Mean() float64 { return b.ProbTrue() }

// LogProb returns ln P(v).
func (b Bernoulli) LogProb(v bool) float64 {
	if v {
		return b.LogProbTrue()
	}

	return b.LogProbFalse()
}

// LogAverageOf returns ln Σ_v b(v)·o(v).
func (b Bernoulli) LogAverageOf(o Bernoulli) float64 {
	return special.LogSumExp(
		b.LogProbTrue()+o.LogProbTrue(),
		b.LogProbFalse()+o.LogProbFalse(),
	)
}

// Product multiplies two Bernoulli distributions.
func (b Bernoulli) Product(o Bernoulli) (Bernoulli, error) {
	if b.IsPointMass() && o.IsPointMass() && b.logOdds != o.logOdds {
		return Bernoulli{}, fmt.Errorf("Bernoulli.Product: %w", ErrAllZero)
	}

	return Bernoulli{logOdds: b.logOdds + o.logOdds}, nil
}

// Ratio divides b by o.
func (b Bernoulli) Ratio(o Bernoulli) (Bernoulli, error) {
	switch {
	case o.IsPointMass() && b.logOdds == o.logOdds:
		return BernoulliUniform(), nil
	case o.IsPointMass():
		return Bernoulli{}, fmt.Errorf("Bernoulli.Ratio: %w", ErrPointMassRatio)
	}

	return Bernoulli{logOdds: b.logOdds - o.logOdds}, nil
}

// Power raises the distribution to exponent e.
func (b Bernoulli) Power(e float64) Bernoulli {
	if e == 0 {
		return BernoulliUniform()
	}

	return Bernoulli{logOdds: e * b.logOdds}
}

// Sample draws one value using rng.
func (b Bernoulli) Sample(rng *rand.Rand) bool {
	return rng.Float64() < b.ProbTrue()
}

// String implements fmt.Stringer.
func (b Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(%g)", b.ProbTrue())
}
