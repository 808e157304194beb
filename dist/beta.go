// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvinfer/special"
)

// Beta is p(x) ∝ x^(trueCount-1)·(1-x)^(falseCount-1) on [0, 1].
// TrueCount=+Inf encodes a point mass at FalseCount; (1, 1) is uniform.
type Beta struct {
	trueCount  float64
	falseCount float64
}

// NewBeta returns Beta(trueCount, falseCount).
func NewBeta(trueCount, falseCount float64) Beta {
	return Beta{trueCount: trueCount, falseCount: falseCount}
}

// BetaFromMeanAndVariance moment-matches a Beta.
func BetaFromMeanAndVariance(mean, variance float64) Beta {
	if variance == 0 {
		return BetaPointMass(mean)
	}
	total := mean*(1-mean)/variance - 1

	return Beta{trueCount: mean * total, falseCount: (1 - mean) * total}
}

// BetaPointMass returns the point mass at p.
func BetaPointMass(p float64) Beta {
	return Beta{trueCount: math.Inf(1), falseCount: p}
}

// BetaUniform returns Beta(1, 1).
func BetaUniform() Beta { return Beta{trueCount: 1, falseCount: 1} }

// TrueCount returns the first pseudo-count.
func (b Beta) TrueCount() float64 { return b.trueCount }

// FalseCount returns the second pseudo-count (or the point location).
func (b Beta) FalseCount() float64 { return b.falseCount }

// TotalCount returns trueCount+falseCount.
func (b Beta) TotalCount() float64 { return b.trueCount + b.falseCount }

// IsPointMass reports trueCount == +Inf.
func (b Beta) IsPointMass() bool { return math.IsInf(b.trueCount, 1) }

// IsUniform reports Beta(1, 1).
func (b Beta) IsUniform() bool { return b.trueCount == 1 && b.falseCount == 1 }

// IsProper reports positive counts.
func (b Beta) IsProper() bool {
	return b.IsPointMass() || (b.trueCount > 0 && b.falseCount > 0)
}

// Point returns the location of a point mass.
func (b Beta) Point() float64 { return b.falseCount }

// Mean returns trueCount/totalCount.
func (b Beta) Mean() float64 {
	if b.IsPointMass() {
		return b.falseCount
	}

	return b.trueCount / b.TotalCount()
}

// Variance returns αβ/((α+β)²(α+β+1)).
func (b Beta) Variance() float64 {
	if b.IsPointMass() {
		return 0
	}
	s := b.TotalCount()

	return b.trueCount * b.falseCount / (s * s * (s + 1))
}

// MeanLogs returns E[ln x] and E[ln(1-x)].
func (b Beta) MeanLogs() (eLogP, eLogQ float64) {
	if b.IsPointMass() {
		return math.Log(b.falseCount), math.Log1p(-b.falseCount)
	}
	ds := special.Digamma(b.TotalCount())

	return special.Digamma(b.trueCount) - ds, special.Digamma(b.falseCount) - ds
}

// LogProb returns ln p(x).
func (b Beta) LogProb(x float64) float64 {
	switch {
	case b.IsPointMass():
		if x == b.falseCount {
			return 0
		}
		return math.Inf(-1)
	case x < 0 || x > 1:
		return math.Inf(-1)
	case b.IsUniform():
		return 0
	}
	v := (b.trueCount-1)*math.Log(x) + (b.falseCount-1)*math.Log1p(-x)
	if b.IsProper() {
		v -= special.LnBeta(b.trueCount, b.falseCount)
	}

	return v
}

// Product multiplies two Beta densities.
func (b Beta) Product(o Beta) (Beta, error) {
	switch {
	case b.IsPointMass() && o.IsPointMass():
		if b.falseCount != o.falseCount {
			return Beta{}, fmt.Errorf("Beta.Product(%g, %g): %w", b.falseCount, o.falseCount, ErrAllZero)
		}
		return b, nil
	case b.IsPointMass():
		return b, nil
	case o.IsPointMass():
		return o, nil
	}

	return Beta{trueCount: b.trueCount + o.trueCount - 1, falseCount: b.falseCount + o.falseCount - 1}, nil
}

// Ratio divides b by o.
func (b Beta) Ratio(o Beta) (Beta, error) {
	switch {
	case o.IsPointMass() && b.IsPointMass() && b.falseCount == o.falseCount:
		return BetaUniform(), nil
	case o.IsPointMass():
		return Beta{}, fmt.Errorf("Beta.Ratio: %w", ErrPointMassRatio)
	case b.IsPointMass():
		return b, nil
	}

	return Beta{trueCount: b.trueCount - o.trueCount + 1, falseCount: b.falseCount - o.falseCount + 1}, nil
}

// Power raises the density to exponent e.
func (b Beta) Power(e float64) Beta {
	if e == 0 {
		return BetaUniform()
	}
	if b.IsPointMass() {
		return b
	}

	return Beta{trueCount: e*(b.trueCount-1) + 1, falseCount: e*(b.falseCount-1) + 1}
}

// Sample draws one value using rng.
func (b Beta) Sample(rng *rand.Rand) float64 {
	if b.IsPointMass() {
		return b.falseCount
	}

	return distuv.Beta{Alpha: b.trueCount, Beta: b.falseCount, Src: rng}.Rand()
}

// String implements fmt.Stringer.
func (b Beta) String() string {
	if b.IsPointMass() {
		return fmt.Sprintf("Beta.PointMass(%g)", b.falseCount)
	}

	return fmt.Sprintf("Beta(%g, %g)", b.trueCount, b.falseCount)
}
