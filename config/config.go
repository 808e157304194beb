// SPDX-License-Identifier: MIT

// Package config loads operator tuning from a YAML file.
//
// A settings file holds the global values of operator.Options and optional
// per-factor overrides keyed by descriptor factor name:
//
//	damping: 0.2
//	samples: 20000
//	seed: 7
//	tolerance: 1e-10
//	newton_steps: 60
//	quadrature_nodes: 48
//	factors:
//	  BetaFromMeanAndTotalCount:
//	    damping: 0.5
//
// Unknown keys are rejected, and every invalid value is reported together.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvinfer/operator"
)

// ErrInvalid indicates a settings value outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Settings mirrors operator.Options in a file-friendly shape.
type Settings struct {
	Damping         float64                   `yaml:"damping"`
	Samples         int                       `yaml:"samples"`
	Seed            uint64                    `yaml:"seed"`
	Tolerance       float64                   `yaml:"tolerance"`
	NewtonSteps     int                       `yaml:"newton_steps"`
	QuadratureNodes int                       `yaml:"quadrature_nodes"`
	Factors         map[string]FactorSettings `yaml:"factors,omitempty"`
}

// FactorSettings overrides the global values for one factor. Nil fields
// inherit.
type FactorSettings struct {
	Damping         *float64 `yaml:"damping,omitempty"`
	Samples         *int     `yaml:"samples,omitempty"`
	Tolerance       *float64 `yaml:"tolerance,omitempty"`
	NewtonSteps     *int     `yaml:"newton_steps,omitempty"`
	QuadratureNodes *int     `yaml:"quadrature_nodes,omitempty"`
}

// Default returns the settings equivalent to operator.DefaultOptions.
func Default() *Settings {
	o := operator.DefaultOptions()

	return &Settings{
		Damping:         o.Damping,
		Samples:         o.Samples,
		Seed:            o.Seed,
		Tolerance:       o.Tolerance,
		NewtonSteps:     o.NewtonSteps,
		QuadratureNodes: o.QuadratureNodes,
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadFile reads and parses the settings file at path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Validate reports every out-of-range value, globals first and then
// factors in name order.
func (s *Settings) Validate() error {
	var errs error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s=%v: %w", field, v, ErrInvalid))
		}
	}
	check(s.Damping >= 0 && s.Damping < 1, "damping", s.Damping)
	check(s.Samples > 0, "samples", s.Samples)
	check(s.Tolerance > 0, "tolerance", s.Tolerance)
	check(s.NewtonSteps > 0, "newton_steps", s.NewtonSteps)
	check(s.QuadratureNodes > 0, "quadrature_nodes", s.QuadratureNodes)
	for _, name := range slices.Sorted(maps.Keys(s.Factors)) {
		f := s.Factors[name]
		prefix := "factors." + name + "."
		if f.Damping != nil {
			check(*f.Damping >= 0 && *f.Damping < 1, prefix+"damping", *f.Damping)
		}
		if f.Samples != nil {
			check(*f.Samples > 0, prefix+"samples", *f.Samples)
		}
		if f.Tolerance != nil {
			check(*f.Tolerance > 0, prefix+"tolerance", *f.Tolerance)
		}
		if f.NewtonSteps != nil {
			check(*f.NewtonSteps > 0, prefix+"newton_steps", *f.NewtonSteps)
		}
		if f.QuadratureNodes != nil {
			check(*f.QuadratureNodes > 0, prefix+"quadrature_nodes", *f.QuadratureNodes)
		}
	}

	return errs
}

// Options returns the operator options for factor: the globals followed by
// that factor's overrides. Settings must have passed Validate.
func (s *Settings) Options(factor string) []operator.Option {
	opts := []operator.Option{
		operator.WithDamping(s.Damping),
		operator.WithSamples(s.Samples),
		operator.WithSeed(s.Seed),
		operator.WithTolerance(s.Tolerance),
		operator.WithNewtonSteps(s.NewtonSteps),
		operator.WithQuadratureNodes(s.QuadratureNodes),
	}
	f, ok := s.Factors[factor]
	if !ok {
		return opts
	}
	if f.Damping != nil {
		opts = append(opts, operator.WithDamping(*f.Damping))
	}
	if f.Samples != nil {
		opts = append(opts, operator.WithSamples(*f.Samples))
	}
	if f.Tolerance != nil {
		opts = append(opts, operator.WithTolerance(*f.Tolerance))
	}
	if f.NewtonSteps != nil {
		opts = append(opts, operator.WithNewtonSteps(*f.NewtonSteps))
	}
	if f.QuadratureNodes != nil {
		opts = append(opts, operator.WithQuadratureNodes(*f.QuadratureNodes))
	}

	return opts
}
