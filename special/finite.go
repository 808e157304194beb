// SPDX-License-Identifier: MIT

package special

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T constraints.Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite[T constraints.Float](xs ...T) bool {
	for _, x := range xs {
		if !IsFinite(x) {
			return false
		}
	}

	return true
}

// Clamp limits x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
