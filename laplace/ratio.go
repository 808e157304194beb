// SPDX-License-Identifier: MIT

package laplace

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const ratioFactor = "RatioLaplace"

// jacobian is the density ∝ b, from δ(ratio - a/b) = b·δ(a - ratio·b).
var jacobian = dist.NewGamma(2, 0)

// RatioOp is ratio = a/b, evaluated as the product a = ratio·b with the
// b message multiplied by the Jacobian b. It is not safe for concurrent use.
type RatioOp struct {
	inner   *ProductOp
	damping float64
}

// NewRatioOp returns an operator with an uninitialized buffer.
func NewRatioOp(opts ...operator.Option) *RatioOp {
	o := operator.Apply(opts...)
	inner := append(opts[:len(opts):len(opts)], operator.WithDamping(0))

	return &RatioOp{inner: NewProductOp(inner...), damping: o.Damping}
}

// withJacobian returns b·jacobian; point masses and the uniform b pass through.
func withJacobian(b dist.Gamma) dist.Gamma {
	if b.IsPointMass() || b.IsUniform() {
		return b
	}
	out, _ := b.Product(jacobian)

	return out
}

// Posterior returns the buffered Gamma estimate of b's posterior.
func (op *RatioOp) Posterior() (dist.Gamma, error) { return op.inner.Posterior() }

// Refreshes reports how many times the buffer was refitted.
func (op *RatioOp) Refreshes() int { return op.inner.Refreshes() }

// Refresh refits the buffer; see ProductOp.Refresh.
func (op *RatioOp) Refresh(ratio, a dist.GammaPower, b dist.Gamma) (bool, error) {
	return op.inner.Refresh(a, ratio, withJacobian(b))
}

// RatioAverageConditional returns the EP message to ratio.
func (op *RatioOp) RatioAverageConditional(ratio, a dist.GammaPower, b dist.Gamma, previous dist.GammaPower) (dist.GammaPower, error) {
	msg, err := op.inner.AAverageConditional(a, ratio, withJacobian(b), previous)
	if err != nil {
		return dist.GammaPower{}, fmt.Errorf("RatioAverageConditional: %w", err)
	}

	return operator.Damp(msg, previous, op.damping)
}

// AAverageConditional returns the EP message to the numerator a.
func (op *RatioOp) AAverageConditional(ratio, a dist.GammaPower, b dist.Gamma, previous dist.GammaPower) (dist.GammaPower, error) {
	msg, err := op.inner.ProductAverageConditional(a, ratio, withJacobian(b), previous)
	if err != nil {
		return dist.GammaPower{}, fmt.Errorf("AAverageConditional: %w", err)
	}

	return operator.Damp(msg, previous, op.damping)
}

// BAverageConditional returns the EP message to the denominator b: the
// product-form message times the Jacobian. Uniform messages stay uniform.
func (op *RatioOp) BAverageConditional(ratio, a dist.GammaPower, b dist.Gamma, previous dist.Gamma) (dist.Gamma, error) {
	msg, err := op.inner.BAverageConditional(a, ratio, withJacobian(b), previous)
	if err != nil {
		return dist.Gamma{}, fmt.Errorf("BAverageConditional: %w", err)
	}
	if !msg.IsUniform() && !b.IsPointMass() {
		if msg, err = msg.Product(jacobian); err != nil {
			return dist.Gamma{}, fmt.Errorf("BAverageConditional: %w", err)
		}
	}

	return operator.Damp(msg, previous, op.damping)
}
