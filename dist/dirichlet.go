// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvinfer/special"
)

// Dirichlet is a distribution over the probability simplex with
// pseudo-counts α. A non-nil point marks a point mass at that vector.
type Dirichlet struct {
	counts []float64
	point  []float64
}

// NewDirichlet returns Dirichlet(counts...). The slice is copied.
func NewDirichlet(counts ...float64) Dirichlet {
	c := make([]float64, len(counts))
	copy(c, counts)

	return Dirichlet{counts: c}
}

// DirichletUniform returns Dirichlet(1, …, 1).
func DirichletUniform(k int) Dirichlet {
	c := make([]float64, k)
	for i := range c {
		c[i] = 1
	}

	return Dirichlet{counts: c}
}

// DirichletPointMass returns the point mass at probs.
func DirichletPointMass(probs []float64) Dirichlet {
	p := make([]float64, len(probs))
	copy(p, probs)
	c := make([]float64, len(probs))
	for i := range c {
		c[i] = math.Inf(1)
	}

	return Dirichlet{counts: c, point: p}
}

// Dimension returns k.
func (d Dirichlet) Dimension() int { return len(d.counts) }

// Counts returns a copy of α.
func (d Dirichlet) Counts() []float64 {
	out := make([]float64, len(d.counts))
	copy(out, d.counts)

	return out
}

// TotalCount returns Σα.
func (d Dirichlet) TotalCount() float64 {
	s := 0.0
	for _, c := range d.counts {
		s += c
	}

	return s
}

// IsPointMass reports whether a point vector is set.
func (d Dirichlet) IsPointMass() bool { return d.point != nil }

// IsUniform reports all counts equal to one.
func (d Dirichlet) IsUniform() bool {
	if d.IsPointMass() {
		return false
	}
	for _, c := range d.counts {
		if c != 1 {
			return false
		}
	}

	return true
}

// IsProper reports positive counts.
func (d Dirichlet) IsProper() bool {
	if d.IsPointMass() {
		return true
	}
	for _, c := range d.counts {
		if !(c > 0) {
			return false
		}
	}

	return len(d.counts) > 0
}

// Point returns a copy of the point-mass location.
func (d Dirichlet) Point() []float64 {
	out := make([]float64, len(d.point))
	copy(out, d.point)

	return out
}

// Mean returns α/Σα.
func (d Dirichlet) Mean() []float64 {
	if d.IsPointMass() {
		return d.Point()
	}
	s := d.TotalCount()
	out := make([]float64, len(d.counts))
	for i, c := range d.counts {
		out[i] = c / s
	}

	return out
}

// MeanLogs returns E[ln p_i] = ψ(α_i) - ψ(Σα).
func (d Dirichlet) MeanLogs() []float64 {
	out := make([]float64, len(d.counts))
	if d.IsPointMass() {
		for i, p := range d.point {
			out[i] = math.Log(p)
		}
		return out
	}
	ds := special.Digamma(d.TotalCount())
	for i, c := range d.counts {
		out[i] = special.Digamma(c) - ds
	}

	return out
}

// Product adds pseudo-counts minus one.
func (d Dirichlet) Product(o Dirichlet) (Dirichlet, error) {
	if len(d.counts) != len(o.counts) {
		return Dirichlet{}, fmt.Errorf("Dirichlet.Product(%d, %d): %w", len(d.counts), len(o.counts), ErrDimensionMismatch)
	}
	switch {
	case d.IsPointMass() && o.IsPointMass():
		for i := range d.point {
			if d.point[i] != o.point[i] {
				return Dirichlet{}, fmt.Errorf("Dirichlet.Product: %w", ErrAllZero)
			}
		}
		return d, nil
	case d.IsPointMass():
		return d, nil
	case o.IsPointMass():
		return o, nil
	}
	c := make([]float64, len(d.counts))
	for i := range c {
		c[i] = d.counts[i] + o.counts[i] - 1
	}

	return Dirichlet{counts: c}, nil
}

// Ratio subtracts pseudo-counts.
func (d Dirichlet) Ratio(o Dirichlet) (Dirichlet, error) {
	if len(d.counts) != len(o.counts) {
		return Dirichlet{}, fmt.Errorf("Dirichlet.Ratio(%d, %d): %w", len(d.counts), len(o.counts), ErrDimensionMismatch)
	}
	if o.IsPointMass() {
		return Dirichlet{}, fmt.Errorf("Dirichlet.Ratio: %w", ErrPointMassRatio)
	}
	if d.IsPointMass() {
		return d, nil
	}
	c := make([]float64, len(d.counts))
	for i := range c {
		c[i] = d.counts[i] - o.counts[i] + 1
	}

	return Dirichlet{counts: c}, nil
}

// Power scales α-1 by e.
func (d Dirichlet) Power(e float64) Dirichlet {
	if e == 0 {
		return DirichletUniform(len(d.counts))
	}
	if d.IsPointMass() {
		return d
	}
	c := make([]float64, len(d.counts))
	for i, a := range d.counts {
		c[i] = e*(a-1) + 1
	}

	return Dirichlet{counts: c}
}

// Sample draws a probability vector by normalizing Gamma draws.
func (d Dirichlet) Sample(rng *rand.Rand) []float64 {
	if d.IsPointMass() {
		return d.Point()
	}
	out := make([]float64, len(d.counts))
	sum := 0.0
	for i, c := range d.counts {
		out[i] = distuv.Gamma{Alpha: c, Beta: 1, Src: rng}.Rand()
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}

// String implements fmt.Stringer.
func (d Dirichlet) String() string {
	parts := make([]string, len(d.counts))
	for i, c := range d.counts {
		parts[i] = fmt.Sprintf("%g", c)
	}

	return "Dirichlet(" + strings.Join(parts, " ") + ")"
}
