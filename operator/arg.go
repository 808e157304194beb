// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
)

// Kind classifies an incoming message.
type Kind int

const (
	// KindProper is a normalizable, non-point message.
	KindProper Kind = iota

	// KindPoint is a point mass.
	KindPoint

	// KindDegenerate is a uniform or improper message.
	KindDegenerate
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindDegenerate:
		return "degenerate"
	default:
		return "proper"
	}
}

// Classify returns the Kind of d. Point masses win over every other test.
func Classify(d dist.Distribution) Kind {
	switch {
	case d.IsPointMass():
		return KindPoint
	case d.IsUniform() || !d.IsProper():
		return KindDegenerate
	default:
		return KindProper
	}
}

// Cases holds one handler per Kind. A nil handler is an unsupported case.
type Cases[D dist.Distribution, R any] struct {
	Point      func(D) (R, error)
	Proper     func(D) (R, error)
	Degenerate func(D) (R, error)
}

// Dispatch runs the handler matching the Kind of d.
func Dispatch[D dist.Distribution, R any](name string, d D, c Cases[D, R]) (R, error) {
	kind := Classify(d)
	var fn func(D) (R, error)
	switch kind {
	case KindPoint:
		fn = c.Point
	case KindDegenerate:
		fn = c.Degenerate
	default:
		fn = c.Proper
	}
	if fn == nil {
		var zero R
		return zero, fmt.Errorf("%s: %s argument %v: %w", name, kind, d, ErrUnsupported)
	}

	return fn(d)
}

// RequireProper fails with ErrImproperInput unless every argument is a
// point mass or proper and non-uniform.
func RequireProper(name string, ds ...dist.Distribution) error {
	for i, d := range ds {
		if Classify(d) == KindDegenerate {
			return fmt.Errorf("%s: argument %d (%v): %w", name, i, d, ErrImproperInput)
		}
	}

	return nil
}

// AnyUniform reports whether any argument is uniform.
func AnyUniform(ds ...dist.Distribution) bool {
	for _, d := range ds {
		if d.IsUniform() {
			return true
		}
	}

	return false
}
