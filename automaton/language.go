// SPDX-License-Identifier: MIT

package automaton

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/special"
)

var (
	// ErrBadWeight indicates a negative or non-finite weight.
	ErrBadWeight = errors.New("automaton: invalid weight")

	// ErrInfinite indicates an operation that would enumerate the uniform language.
	ErrInfinite = errors.New("automaton: language is infinite")

	// ErrZero indicates a language without strings where mass is required.
	ErrZero = errors.New("automaton: language is empty")
)

// Language is a weighted set of strings. The zero value is the empty
// language; Uniform returns the language of all strings.
type Language struct {
	logW    map[string]float64
	uniform bool
}

// Compile-time conformance with the distribution algebra.
var _ dist.Family[Language] = Language{}

// Uniform returns the language giving weight 1 to every string.
func Uniform() Language { return Language{uniform: true} }

// PointMass returns the language containing only s.
func PointMass(s string) Language {
	return Language{logW: map[string]float64{s: 0}}
}

// FromWeights builds a finite language. Zero weights are dropped; every
// invalid weight is reported.
func FromWeights(weights map[string]float64) (Language, error) {
	var errs error
	logW := make(map[string]float64, len(weights))
	for _, s := range slices.Sorted(maps.Keys(weights)) {
		w := weights[s]
		if !(w >= 0) || math.IsInf(w, 1) {
			errs = multierr.Append(errs, fmt.Errorf("weight[%q]=%g: %w", s, w, ErrBadWeight))
			continue
		}
		if w > 0 {
			logW[s] = math.Log(w)
		}
	}
	if errs != nil {
		return Language{}, errs
	}

	return Language{logW: logW}, nil
}

// FromLogWeights builds a finite language from log weights; -Inf entries are dropped.
func FromLogWeights(logW map[string]float64) Language {
	out := make(map[string]float64, len(logW))
	for s, lw := range logW {
		if !math.IsInf(lw, -1) && !math.IsNaN(lw) {
			out[s] = lw
		}
	}

	return Language{logW: out}
}

// IsUniform reports the language of all strings.
func (l Language) IsUniform() bool { return l.uniform }

// IsPointMass reports a single-string language.
func (l Language) IsPointMass() bool { return !l.uniform && len(l.logW) == 1 }

// IsProper reports a finite, non-empty language.
func (l Language) IsProper() bool { return !l.uniform && len(l.logW) > 0 }

// IsZero reports the empty language.
func (l Language) IsZero() bool { return !l.uniform && len(l.logW) == 0 }

// Len returns the number of strings; -1 for the uniform language.
func (l Language) Len() int {
	if l.uniform {
		return -1
	}

	return len(l.logW)
}

// Support returns the strings in lexical order.
func (l Language) Support() []string {
	return slices.Sorted(maps.Keys(l.logW))
}

// LogWeight returns ln w(s).
func (l Language) LogWeight(s string) float64 {
	if l.uniform {
		return 0
	}
	if lw, ok := l.logW[s]; ok {
		return lw
	}

	return math.Inf(-1)
}

// LogTotal returns ln Σ w(s).
func (l Language) LogTotal() float64 {
	if l.uniform {
		return math.Inf(1)
	}

	return special.LogSumExp(l.logWeights()...)
}

// logWeights returns the log weights in Support order.
func (l Language) logWeights() []float64 {
	keys := l.Support()
	out := make([]float64, len(keys))
	for i, s := range keys {
		out[i] = l.logW[s]
	}

	return out
}

// Prob returns the normalized probability of s.
func (l Language) Prob(s string) float64 {
	if l.uniform || len(l.logW) == 0 {
		return 0
	}

	return math.Exp(l.LogWeight(s) - l.LogTotal())
}

// Normalize scales the weights to sum to one.
func (l Language) Normalize() (Language, error) {
	switch {
	case l.uniform:
		return l, nil
	case len(l.logW) == 0:
		return Language{}, fmt.Errorf("Normalize: %w", ErrZero)
	}
	z := l.LogTotal()
	out := make(map[string]float64, len(l.logW))
	for s, lw := range l.logW {
		out[s] = lw - z
	}

	return Language{logW: out}, nil
}

// Product multiplies weights pointwise.
func (l Language) Product(o Language) (Language, error) {
	switch {
	case l.uniform:
		return o, nil
	case o.uniform:
		return l, nil
	}
	out := make(map[string]float64)
	for s, lw := range l.logW {
		if ow, ok := o.logW[s]; ok {
			out[s] = lw + ow
		}
	}

	return Language{logW: out}, nil
}

// Power raises every weight to e.
func (l Language) Power(e float64) Language {
	if e == 0 || l.uniform {
		return Uniform()
	}
	out := make(map[string]float64, len(l.logW))
	for s, lw := range l.logW {
		out[s] = e * lw
	}

	return Language{logW: out}
}

// Append returns the concatenation language: w(s) = Σ_{s = x+y} l(x)·o(y).
func (l Language) Append(o Language) Language {
	if l.uniform || o.uniform {
		return Uniform()
	}
	acc := make(map[string][]float64)
	ys := o.Support()
	for _, x := range l.Support() {
		for _, y := range ys {
			acc[x+y] = append(acc[x+y], l.logW[x]+o.logW[y])
		}
	}
	out := make(map[string]float64, len(acc))
	for s, ws := range acc {
		out[s] = special.LogSumExp(ws...)
	}

	return Language{logW: out}
}

// LogAverageOf returns ln Σ_s l(s)·o(s).
func (l Language) LogAverageOf(o Language) float64 {
	switch {
	case l.uniform && o.uniform:
		return math.Inf(1)
	case l.uniform:
		return o.LogTotal()
	case o.uniform:
		return l.LogTotal()
	}
	var terms []float64
	for _, s := range l.Support() {
		if ow, ok := o.logW[s]; ok {
			terms = append(terms, l.logW[s]+ow)
		}
	}

	return special.LogSumExp(terms...)
}

// String implements fmt.Stringer.
func (l Language) String() string {
	if l.uniform {
		return "Language.Uniform"
	}
	parts := make([]string, 0, len(l.logW))
	for _, s := range l.Support() {
		parts = append(parts, fmt.Sprintf("%q:%.4g", s, math.Exp(l.logW[s])))
	}

	return "Language{" + strings.Join(parts, " ") + "}"
}
