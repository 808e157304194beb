// SPDX-License-Identifier: MIT

package laplace

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/gammaop"
	"github.com/katalvlaran/lvinfer/operator"
	"github.com/katalvlaran/lvinfer/special"
)

const (
	productFactor = "ProductLaplace"
	bufferName    = "bPosterior"
	maxLogStep    = 1.0
)

// ProductOp holds the buffer of one product = a·b factor instance.
// It is not safe for concurrent use.
type ProductOp struct {
	buf       *operator.Buffer[dist.Gamma]
	opts      operator.Options
	logger    logr.Logger
	refreshes int
}

// NewProductOp returns an operator with an uninitialized buffer.
func NewProductOp(opts ...operator.Option) *ProductOp {
	o := operator.Apply(opts...)

	return &ProductOp{
		buf:    operator.NewBuffer[dist.Gamma](bufferName, operator.PersistUntilTriggerChanges),
		opts:   o,
		logger: o.Logger,
	}
}

// Posterior returns the buffered Gamma estimate of b's posterior.
func (op *ProductOp) Posterior() (dist.Gamma, error) { return op.buf.Value() }

// Refreshes reports how many times the buffer was refitted.
func (op *ProductOp) Refreshes() int { return op.refreshes }

// Reset returns the buffer to the uninitialized state.
func (op *ProductOp) Reset() { op.buf.Reset() }

func triggers(product, a dist.GammaPower, b dist.Gamma) []float64 {
	return []float64{product.Shape(), product.Rate(), a.Shape(), a.Rate(), a.PowerParam(), b.Shape(), b.Rate()}
}

// Refresh refits the buffer if any message changed since the last fit and
// reports whether it did. A failed refit keeps an existing estimate and is
// logged at V(1); with no estimate to keep it returns ErrNumerical.
//
// Stage 1: start from the buffered mode, else E[b], else 1.
// Stage 2: Newton on t = ln b for the mode of ln(h(b)·b-message(b)).
// Stage 3: Gamma(s, r) with s-1 = -ℓ''(b₀)·b₀² and r = (s-1)/b₀ - ℓ'(b₀).
func (op *ProductOp) Refresh(product, a dist.GammaPower, b dist.Gamma) (bool, error) {
	if product.PowerParam() != a.PowerParam() {
		return false, fmt.Errorf("Refresh: power %g vs %g: %w",
			product.PowerParam(), a.PowerParam(), dist.ErrDimensionMismatch)
	}
	trig := triggers(product, a, b)
	if !op.buf.Stale(trig...) {
		return false, nil
	}
	q, err := op.fit(product, a, b, op.start(b))
	if err != nil {
		if op.buf.Initialized() {
			op.logger.V(1).Info("Laplace refit failed, keeping previous estimate", "err", err.Error())
			return false, nil
		}
		return false, fmt.Errorf("Refresh: %w", err)
	}
	op.buf.Store(q, trig...)
	op.refreshes++
	op.logger.V(2).Info("refitted Laplace buffer", "buffer", bufferName, "posterior", q.String())

	return true, nil
}

func (op *ProductOp) start(b dist.Gamma) float64 {
	if q, err := op.buf.Value(); err == nil && q.IsProper() {
		if q.Shape() > 1 {
			return (q.Shape() - 1) / q.Rate()
		}
		return q.Mean()
	}
	if b.IsProper() {
		return b.Mean()
	}

	return 1
}

func (op *ProductOp) fit(product, a dist.GammaPower, b dist.Gamma, x0 float64) (dist.Gamma, error) {
	t := math.Log(x0)
	for iter := 0; iter < op.opts.NewtonSteps; iter++ {
		x := math.Exp(t)
		d1, d2 := logPosterior(x, product, a, b)
		g1 := x * d1
		g2 := g1 + x*x*d2
		var step float64
		if g2 < 0 {
			step = -g1 / g2
		} else {
			step = math.Copysign(maxLogStep, g1)
		}
		step = special.Clamp(step, -maxLogStep, maxLogStep)
		if !special.IsFinite(step) {
			return dist.Gamma{}, fmt.Errorf("fit: Newton step at b=%g: %w", x, operator.ErrNumerical)
		}
		t += step
		if math.Abs(step) < op.opts.Tolerance {
			break
		}
	}
	b0 := math.Exp(t)
	d1, d2 := logPosterior(b0, product, a, b)
	shape := 1 - d2*b0*b0
	rate := (shape-1)/b0 - d1
	if !(d2 < 0) || !(rate > 0) || !special.AllFinite(shape, rate) {
		return dist.Gamma{}, fmt.Errorf("fit: curvature %g at b=%g: %w", d2, b0, operator.ErrNumerical)
	}

	return dist.NewGamma(shape, rate), nil
}

// latentPosterior projects u ~ Gamma(c, w(b)), b ~ q, onto GammaPower in
// u^p by matching the first two moments of u.
func latentPosterior(q dist.Gamma, c, w0, w1, e, p float64) (dist.GammaPower, error) {
	m1, m2 := inverseRateMoments(q, w0, w1, e)
	mean := c * m1
	variance := c*(c+1)*m2 - mean*mean
	if !(variance > 0) || !special.AllFinite(mean, variance) {
		return dist.GammaPower{}, fmt.Errorf("latent moments (%g, %g): %w", mean, variance, operator.ErrNumerical)
	}

	return dist.NewGammaPower(mean*mean/variance, mean/variance, p), nil
}

func (op *ProductOp) posterior(product, a dist.GammaPower, b dist.Gamma) (dist.Gamma, error) {
	if _, err := op.Refresh(product, a, b); err != nil {
		return dist.Gamma{}, err
	}

	return op.buf.Value()
}

// ProductAverageConditional returns the EP message to product.
func (op *ProductOp) ProductAverageConditional(product, a dist.GammaPower, b dist.Gamma, previous dist.GammaPower) (dist.GammaPower, error) {
	p := a.PowerParam()
	var candidate dist.GammaPower
	switch {
	case b.IsPointMass():
		out, err := gammaop.ProductAverageConditional(a, b.Point())
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: %w", err)
		}
		candidate = out
	case a.IsPointMass():
		if p != 1 {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: point-mass a with power %g: %w", p, operator.ErrUnsupported)
		}
		out, err := gammaop.ProductAverageConditionalGamma(b, a.Point())
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: %w", err)
		}
		candidate = out.AsPower()
	case operator.AnyUniform(a, b):
		candidate = dist.GammaPowerUniform(p)
	case product.IsPointMass():
		return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: observed product: %w", operator.ErrUnsupported)
	default:
		q, err := op.posterior(product, a, b)
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: %w", err)
		}
		c := product.Shape() + a.Shape() - p
		post, err := latentPosterior(q, c, product.Rate(), a.Rate(), -1/p, p)
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: %w", err)
		}
		if candidate, err = post.Ratio(product); err != nil {
			return dist.GammaPower{}, fmt.Errorf("ProductAverageConditional: %w", err)
		}
	}

	return operator.Damp(candidate, previous, op.opts.Damping)
}

// AAverageConditional returns the EP message to a.
func (op *ProductOp) AAverageConditional(product, a dist.GammaPower, b dist.Gamma, previous dist.GammaPower) (dist.GammaPower, error) {
	p := a.PowerParam()
	var candidate dist.GammaPower
	switch {
	case b.IsPointMass():
		out, err := gammaop.ProductAAverageConditional(product, b.Point())
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("AAverageConditional: %w", err)
		}
		candidate = out
	case a.IsPointMass() || operator.AnyUniform(product, b):
		candidate = dist.GammaPowerUniform(p)
	case product.IsPointMass():
		return dist.GammaPower{}, fmt.Errorf("AAverageConditional: observed product: %w", operator.ErrUnsupported)
	default:
		q, err := op.posterior(product, a, b)
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("AAverageConditional: %w", err)
		}
		c := product.Shape() + a.Shape() - p
		post, err := latentPosterior(q, c, a.Rate(), product.Rate(), 1/p, p)
		if err != nil {
			return dist.GammaPower{}, fmt.Errorf("AAverageConditional: %w", err)
		}
		if candidate, err = post.Ratio(a); err != nil {
			return dist.GammaPower{}, fmt.Errorf("AAverageConditional: %w", err)
		}
	}

	return operator.Damp(candidate, previous, op.opts.Damping)
}

// BAverageConditional returns the EP message to b: the buffer divided by b.
func (op *ProductOp) BAverageConditional(product, a dist.GammaPower, b dist.Gamma, previous dist.Gamma) (dist.Gamma, error) {
	var candidate dist.Gamma
	switch {
	case b.IsPointMass():
		candidate = dist.GammaUniform()
	case a.IsPointMass():
		y, ok := product.AsGamma()
		if !ok {
			return dist.Gamma{}, fmt.Errorf("BAverageConditional: point-mass a with power %g: %w",
				a.PowerParam(), operator.ErrUnsupported)
		}
		out, err := gammaop.ProductAAverageConditionalGamma(y, a.Point())
		if err != nil {
			return dist.Gamma{}, fmt.Errorf("BAverageConditional: %w", err)
		}
		candidate = out
	case operator.AnyUniform(product, a):
		candidate = dist.GammaUniform()
	case product.IsPointMass():
		return dist.Gamma{}, fmt.Errorf("BAverageConditional: observed product: %w", operator.ErrUnsupported)
	default:
		q, err := op.posterior(product, a, b)
		if err != nil {
			return dist.Gamma{}, fmt.Errorf("BAverageConditional: %w", err)
		}
		if candidate, err = q.Ratio(b); err != nil {
			return dist.Gamma{}, fmt.Errorf("BAverageConditional: %w", err)
		}
	}

	return operator.Damp(candidate, previous, op.opts.Damping)
}
