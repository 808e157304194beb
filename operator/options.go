// SPDX-License-Identifier: MIT

package operator

import (
	"github.com/go-logr/logr"
)

// Default tuning values.
const (
	DefaultSamples         = 10000
	DefaultSeed            = 1
	DefaultTolerance       = 1e-10
	DefaultNewtonSteps     = 50
	DefaultQuadratureNodes = 32
)

// Options configures the iterative and sampling operators.
//
// Damping         – weight of the previous message in [0, 1). 0 disables damping.
// Samples         – Monte Carlo draws for sampling fallbacks (> 0).
// Seed            – seed for the deterministic PCG stream; 0 means DefaultSeed.
// Tolerance       – convergence threshold for Newton solvers (> 0).
// NewtonSteps     – iteration cap for Newton solvers (> 0).
// QuadratureNodes – Gauss–Legendre nodes per dimension (> 0).
// Logger          – receives V(1) numerical fallbacks and V(2) buffer refreshes.
type Options struct {
	Damping         float64
	Samples         int
	Seed            uint64
	Tolerance       float64
	NewtonSteps     int
	QuadratureNodes int
	Logger          logr.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Damping:         0
//   - Samples:         DefaultSamples
//   - Seed:            DefaultSeed
//   - Tolerance:       DefaultTolerance
//   - NewtonSteps:     DefaultNewtonSteps
//   - QuadratureNodes: DefaultQuadratureNodes
//   - Logger:          logr.Discard()
func DefaultOptions() Options {
	return Options{
		Samples:         DefaultSamples,
		Seed:            DefaultSeed,
		Tolerance:       DefaultTolerance,
		NewtonSteps:     DefaultNewtonSteps,
		QuadratureNodes: DefaultQuadratureNodes,
		Logger:          logr.Discard(),
	}
}

// Apply returns DefaultOptions with opts applied in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithDamping sets the damping coefficient. Panics outside [0, 1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if !(d >= 0 && d < 1) {
			panic(ErrBadDamping.Error())
		}
		o.Damping = d
	}
}

// WithSamples sets the Monte Carlo sample count. Panics if n <= 0.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("operator: Samples must be positive")
		}
		o.Samples = n
	}
}

// WithSeed sets the sampling seed. 0 selects DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = DefaultSeed
		}
		o.Seed = seed
	}
}

// WithTolerance sets the Newton convergence threshold. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			panic("operator: Tolerance must be positive")
		}
		o.Tolerance = tol
	}
}

// WithNewtonSteps caps Newton iterations. Panics if n <= 0.
func WithNewtonSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("operator: NewtonSteps must be positive")
		}
		o.NewtonSteps = n
	}
}

// WithQuadratureNodes sets the Gauss–Legendre node count. Panics if n <= 0.
func WithQuadratureNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("operator: QuadratureNodes must be positive")
		}
		o.QuadratureNodes = n
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
