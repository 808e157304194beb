// SPDX-License-Identifier: MIT

package special

import (
	"errors"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrBadNodeCount is returned when fewer than one quadrature node is requested.
var ErrBadNodeCount = errors.New("special: quadrature node count must be positive")

// Legendre returns n Gauss–Legendre nodes and weights on [lo, hi].
// The weights sum to hi-lo.
func Legendre(n int, lo, hi float64) (nodes, weights []float64, err error) {
	if n < 1 {
		return nil, nil, ErrBadNodeCount
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	quad.Legendre{}.FixedLocations(nodes, weights, lo, hi)

	return nodes, weights, nil
}
