// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete is a normalized distribution over {0, …, n-1}.
type Discrete struct {
	probs []float64
}

// NewDiscrete normalizes weights into a Discrete. Weights must be finite,
// non-negative and not all zero.
func NewDiscrete(weights ...float64) (Discrete, error) {
	if len(weights) == 0 {
		return Discrete{}, fmt.Errorf("NewDiscrete: empty: %w", ErrBadProbabilities)
	}
	var errs error
	sum := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			errs = multierr.Append(errs, fmt.Errorf("weight[%d]=%g", i, w))
			continue
		}
		sum += w
	}
	if errs != nil {
		return Discrete{}, fmt.Errorf("NewDiscrete: %w: %w", ErrBadProbabilities, errs)
	}
	if sum == 0 {
		return Discrete{}, fmt.Errorf("NewDiscrete: all zero: %w", ErrAllZero)
	}
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / sum
	}

	return Discrete{probs: probs}, nil
}

// DiscreteUniform returns the uniform distribution over n values.
func DiscreteUniform(n int) Discrete {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1 / float64(n)
	}

	return Discrete{probs: probs}
}

// DiscretePointMass returns the point mass at k over n values.
func DiscretePointMass(k, n int) Discrete {
	probs := make([]float64, n)
	probs[k] = 1

	return Discrete{probs: probs}
}

// Dimension returns the number of values.
func (d Discrete) Dimension() int { return len(d.probs) }

// Probs returns a copy of the probability vector.
func (d Discrete) Probs() []float64 {
	out := make([]float64, len(d.probs))
	copy(out, d.probs)

	return out
}

// Prob returns P(k); out-of-range k has probability zero.
func (d Discrete) Prob(k int) float64 {
	if k < 0 || k >= len(d.probs) {
		return 0
	}

	return d.probs[k]
}

// ProbLessThan returns P(x < k).
func (d Discrete) ProbLessThan(k int) float64 {
	sum := 0.0
	for i := 0; i < k && i < len(d.probs); i++ {
		sum += d.probs[i]
	}

	return sum
}

// IsPointMass reports a single nonzero entry.
func (d Discrete) IsPointMass() bool {
	nz := 0
	for _, p := range d.probs {
		if p > 0 {
			nz++
		}
	}

	return nz == 1
}

// IsUniform reports equal probabilities.
func (d Discrete) IsUniform() bool {
	for _, p := range d.probs {
		if p != d.probs[0] {
			return false
		}
	}

	return true
}

// IsProper is true for every constructed Discrete.
func (d Discrete) IsProper() bool { return len(d.probs) > 0 }

// Point returns the mode, which is the location of a point mass.
func (d Discrete) Point() int {
	best := 0
	for i, p := range d.probs {
		if p > d.probs[best] {
			best = i
		}
	}

	return best
}

// Mean returns Σ k·P(k).
func (d Discrete) Mean() float64 {
	m := 0.0
	for i, p := range d.probs {
		m += float64(i) * p
	}

	return m
}

// LogProb returns ln P(k).
func (d Discrete) LogProb(k int) float64 { return math.Log(d.Prob(k)) }

// Product multiplies elementwise and renormalizes.
func (d Discrete) Product(o Discrete) (Discrete, error) {
	if len(d.probs) != len(o.probs) {
		return Discrete{}, fmt.Errorf("Discrete.Product(%d, %d): %w", len(d.probs), len(o.probs), ErrDimensionMismatch)
	}
	w := make([]float64, len(d.probs))
	for i := range w {
		w[i] = d.probs[i] * o.probs[i]
	}

	return NewDiscrete(w...)
}

// Ratio divides elementwise. 0/0 is taken as 0.
func (d Discrete) Ratio(o Discrete) (Discrete, error) {
	if len(d.probs) != len(o.probs) {
		return Discrete{}, fmt.Errorf("Discrete.Ratio(%d, %d): %w", len(d.probs), len(o.probs), ErrDimensionMismatch)
	}
	w := make([]float64, len(d.probs))
	for i := range w {
		switch {
		case d.probs[i] == 0:
		case o.probs[i] == 0:
			return Discrete{}, fmt.Errorf("Discrete.Ratio: entry %d: %w", i, ErrPointMassRatio)
		default:
			w[i] = d.probs[i] / o.probs[i]
		}
	}

	return NewDiscrete(w...)
}

// Power raises each probability to e and renormalizes. Zero stays zero.
func (d Discrete) Power(e float64) Discrete {
	if e == 0 {
		return DiscreteUniform(len(d.probs))
	}
	w := make([]float64, len(d.probs))
	sum := 0.0
	for i, p := range d.probs {
		if p > 0 {
			w[i] = math.Pow(p, e)
		}
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}

	return Discrete{probs: w}
}

// Sample draws one index using rng.
func (d Discrete) Sample(rng *rand.Rand) int {
	return int(distuv.NewCategorical(d.probs, rng).Rand())
}

// String implements fmt.Stringer.
func (d Discrete) String() string {
	parts := make([]string, len(d.probs))
	for i, p := range d.probs {
		parts[i] = fmt.Sprintf("%.4g", p)
	}

	return "Discrete(" + strings.Join(parts, " ") + ")"
}
