// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"slices"
)

// Policy controls when a Buffer must be rebuilt.
type Policy int

const (
	// SkipIfUninitialized fails reads until the first Store; the value
	// persists afterwards regardless of inputs.
	SkipIfUninitialized Policy = iota

	// FreshEveryCall is stale on every call.
	FreshEveryCall

	// PersistUntilTriggerChanges is stale only when the trigger inputs differ
	// from those recorded at the last Store.
	PersistUntilTriggerChanges
)

// Buffer is per-factor state kept between operator calls. It is not safe for
// concurrent use.
type Buffer[T any] struct {
	name    string
	policy  Policy
	value   T
	trigger []float64
	ok      bool
}

// NewBuffer returns an empty buffer with the given policy.
func NewBuffer[T any](name string, p Policy) *Buffer[T] {
	return &Buffer[T]{name: name, policy: p}
}

// Name returns the buffer name used in descriptors.
func (b *Buffer[T]) Name() string { return b.name }

// Policy returns the buffer policy.
func (b *Buffer[T]) Policy() Policy { return b.policy }

// Initialized reports whether Store has been called.
func (b *Buffer[T]) Initialized() bool { return b.ok }

// Stale reports whether the buffer must be recomputed for trigger.
func (b *Buffer[T]) Stale(trigger ...float64) bool {
	if !b.ok {
		return true
	}
	switch b.policy {
	case FreshEveryCall:
		return true
	case PersistUntilTriggerChanges:
		return !slices.Equal(b.trigger, trigger)
	default:
		return false
	}
}

// Store records v together with the trigger inputs it was computed from.
func (b *Buffer[T]) Store(v T, trigger ...float64) {
	b.value = v
	b.trigger = slices.Clone(trigger)
	b.ok = true
}

// Value returns the stored value or ErrBufferUninitialized.
func (b *Buffer[T]) Value() (T, error) {
	if !b.ok {
		var zero T
		return zero, fmt.Errorf("buffer %q: %w", b.name, ErrBufferUninitialized)
	}

	return b.value, nil
}

// Reset forgets the stored value.
func (b *Buffer[T]) Reset() {
	var zero T
	b.value, b.trigger, b.ok = zero, nil, false
}
