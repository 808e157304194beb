// SPDX-License-Identifier: MIT

package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
)

var (
	// ErrImproperInput indicates a required-proper argument was improper or uniform.
	ErrImproperInput = dist.ErrImproper

	// ErrAllZero indicates the factor's constraint cannot hold under the inputs.
	ErrAllZero = dist.ErrAllZero

	// ErrUnsupported indicates an argument case the operator does not implement.
	ErrUnsupported = errors.New("operator: unsupported argument case")

	// ErrNumerical indicates a non-finite intermediate, a singular Fisher
	// matrix, or a vanishing normalizer.
	ErrNumerical = errors.New("operator: numerical failure")

	// ErrBadDamping indicates a damping coefficient outside [0, 1).
	ErrBadDamping = errors.New("operator: damping must be in [0, 1)")

	// ErrBufferUninitialized indicates a buffer read before its first Store.
	ErrBufferUninitialized = errors.New("operator: buffer is uninitialized")

	// ErrDuplicateDescriptor indicates two registrations of the same operator.
	ErrDuplicateDescriptor = errors.New("operator: duplicate descriptor")
)

// AllZeroError reports a violated deterministic constraint together with the
// factor that detected it. errors.Is(err, ErrAllZero) holds for it.
type AllZeroError struct {
	Factor string
	Reason string
}

// Error implements error.
func (e *AllZeroError) Error() string {
	return fmt.Sprintf("%s: all-zero: %s", e.Factor, e.Reason)
}

// Is matches ErrAllZero.
func (e *AllZeroError) Is(target error) bool { return target == ErrAllZero }

// AllZero builds an *AllZeroError.
func AllZero(factor, format string, args ...any) error {
	return &AllZeroError{Factor: factor, Reason: fmt.Sprintf(format, args...)}
}
