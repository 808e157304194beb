// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
)

// Damp returns candidate^(1-d) · previous^d.
//
// d == 0 returns candidate exactly, so undamped operators are bit-for-bit
// unchanged. As d approaches 1 the result approaches previous.
func Damp[T dist.Family[T]](candidate, previous T, d float64) (T, error) {
	if !(d >= 0 && d < 1) {
		var zero T
		return zero, fmt.Errorf("Damp(%g): %w", d, ErrBadDamping)
	}
	if d == 0 {
		return candidate, nil
	}
	out, err := candidate.Power(1 - d).Product(previous.Power(d))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Damp: %w", err)
	}

	return out, nil
}
