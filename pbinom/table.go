// SPDX-License-Identifier: MIT

package pbinom

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

// MinNormalizer is the smallest leave-one-out normalizer accepted.
const MinNormalizer = 1e-300

var (
	// ErrBadProbability indicates an input probability outside [0, 1].
	ErrBadProbability = errors.New("pbinom: probability must be finite and in [0, 1]")

	// ErrBadTarget indicates a count target of the wrong length or sign.
	ErrBadTarget = errors.New("pbinom: invalid count target")

	// ErrDegenerate indicates a near-impossible configuration.
	ErrDegenerate = fmt.Errorf("pbinom: degenerate distribution: %w", operator.ErrNumerical)
)

// Table is the forward DP table F.
type Table struct {
	probs []float64
	f     [][]float64
}

// N returns the number of inputs.
func (t *Table) N() int { return len(t.probs) }

// Probs returns a copy of the input probabilities.
func (t *Table) Probs() []float64 { return slices.Clone(t.probs) }

// Row returns a copy of F[i].
func (t *Table) Row(i int) []float64 { return slices.Clone(t.f[i]) }

// Marginal returns a copy of F[n], the count distribution.
func (t *Table) Marginal() []float64 { return t.Row(len(t.probs)) }

// Validate checks every probability and aggregates all failures.
func Validate(probs []float64) error {
	var errs error
	for i, p := range probs {
		if !(p >= 0 && p <= 1) {
			errs = multierr.Append(errs, fmt.Errorf("p[%d]=%g: %w", i, p, ErrBadProbability))
		}
	}

	return errs
}

// Forward builds F from the input probabilities.
func Forward(probs []float64) (*Table, error) {
	if err := Validate(probs); err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	n := len(probs)
	f := make([][]float64, n+1)
	f[0] = []float64{1}
	for i := 1; i <= n; i++ {
		p := probs[i-1]
		prev := f[i-1]
		row := make([]float64, i+1)
		for j := 0; j < i; j++ {
			row[j] += prev[j] * (1 - p)
			row[j+1] += prev[j] * p
		}
		f[i] = row
	}

	return &Table{probs: slices.Clone(probs), f: f}, nil
}

// ForwardBernoulli builds F from Bernoulli messages.
func ForwardBernoulli(array []dist.Bernoulli) (*Table, error) {
	probs := make([]float64, len(array))
	for i, b := range array {
		probs[i] = b.ProbTrue()
	}

	return Forward(probs)
}

// Backward returns B_0..B_n for the count target D (length n+1).
func (t *Table) Backward(target []float64) ([][]float64, error) {
	n := len(t.probs)
	if len(target) != n+1 {
		return nil, fmt.Errorf("Backward: len(target)=%d, want %d: %w", len(target), n+1, ErrBadTarget)
	}
	for c, d := range target {
		if !(d >= 0) || math.IsInf(d, 1) {
			return nil, fmt.Errorf("Backward: target[%d]=%g: %w", c, d, ErrBadTarget)
		}
	}
	b := make([][]float64, n+1)
	b[n] = slices.Clone(target)
	for i := n; i >= 1; i-- {
		p := t.probs[i-1]
		next := b[i]
		row := make([]float64, i)
		for j := 0; j < i; j++ {
			row[j] = (1-p)*next[j] + p*next[j+1]
		}
		b[i-1] = row
	}

	return b, nil
}

// ElementMessages returns the leave-one-out message to every input.
func (t *Table) ElementMessages(target []float64) ([]dist.Bernoulli, error) {
	b, err := t.Backward(target)
	if err != nil {
		return nil, fmt.Errorf("ElementMessages: %w", err)
	}
	n := len(t.probs)
	out := make([]dist.Bernoulli, n)
	for i := 1; i <= n; i++ {
		pt, pf := 0.0, 0.0
		for j, fj := range t.f[i-1] {
			pt += fj * b[i][j+1]
			pf += fj * b[i][j]
		}
		z := pt + pf
		if !(z >= MinNormalizer) || math.IsInf(z, 0) {
			return nil, fmt.Errorf("ElementMessages: element %d: normalizer %g: %w", i-1, z, ErrDegenerate)
		}
		out[i-1] = dist.NewBernoulli(pt / z)
	}

	return out, nil
}

// LogAverage returns ln Σ_c F[n][c]·D[c].
func (t *Table) LogAverage(target []float64) (float64, error) {
	n := len(t.probs)
	if len(target) != n+1 {
		return 0, fmt.Errorf("LogAverage: len(target)=%d, want %d: %w", len(target), n+1, ErrBadTarget)
	}
	s := 0.0
	for c, fc := range t.f[n] {
		s += fc * target[c]
	}

	return math.Log(s), nil
}
