// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Semantics names the message-passing rule an operator implements.
type Semantics int

const (
	// AverageConditional is the EP message.
	AverageConditional Semantics = iota

	// AverageLogarithm is the VMP message.
	AverageLogarithm

	// LogEvidenceRatio is the factor's evidence contribution.
	LogEvidenceRatio
)

// String implements fmt.Stringer.
func (s Semantics) String() string {
	switch s {
	case AverageLogarithm:
		return "AverageLogarithm"
	case LogEvidenceRatio:
		return "LogEvidenceRatio"
	default:
		return "AverageConditional"
	}
}

// Descriptor is the capability metadata of one operator.
type Descriptor struct {
	Factor        string    // factor name, e.g. "Product"
	Output        string    // argument the message is sent to; "" for evidence
	Kind          Semantics // EP, VMP or evidence
	Inputs        []string  // arguments read by the operator
	Proper        []string  // inputs that must be proper
	SkipIfUniform []string  // inputs whose uniformity yields a uniform output
	Fresh         bool      // output must be recomputed on every call
	ReturnsInput  string    // input aliased by the output, if any
	Buffers       []string  // buffers the operator reads
}

// Key identifies the descriptor within a registry.
func (d Descriptor) Key() string {
	return fmt.Sprintf("%s.%s.%s", d.Factor, d.Output, d.Kind)
}

// Registry collects descriptors published by operator packages.
type Registry struct {
	byKey map[string]Descriptor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Descriptor)}
}

// Register adds every descriptor. Duplicates are skipped and reported
// together, each wrapping ErrDuplicateDescriptor.
func (r *Registry) Register(ds ...Descriptor) error {
	var errs error
	for _, d := range ds {
		k := d.Key()
		if _, dup := r.byKey[k]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", k, ErrDuplicateDescriptor))
			continue
		}
		r.byKey[k] = d
	}

	return errs
}

// Lookup returns the descriptor for factor/output/kind.
func (r *Registry) Lookup(factor, output string, kind Semantics) (Descriptor, bool) {
	d, ok := r.byKey[Descriptor{Factor: factor, Output: output, Kind: kind}.Key()]

	return d, ok
}

// Factor returns all descriptors of a factor sorted by key.
func (r *Registry) Factor(name string) []Descriptor {
	var out []Descriptor
	for _, d := range r.byKey {
		if d.Factor == name {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.byKey) }
