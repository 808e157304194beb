// SPDX-License-Identifier: MIT

package gammaop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const (
	productFactor = "Product"
	ratioFactor   = "Ratio"
)

func checkScale(name string, b float64) error {
	if !(b >= 0) || math.IsInf(b, 1) {
		return fmt.Errorf("%s: b=%g: %w", name, b, operator.ErrUnsupported)
	}

	return nil
}

// ProductAverageConditional returns the law of a·b for b ≥ 0.
func ProductAverageConditional(a dist.GammaPower, b float64) (dist.GammaPower, error) {
	if err := checkScale("ProductAverageConditional", b); err != nil {
		return dist.GammaPower{}, err
	}
	p := a.PowerParam()
	if b == 0 {
		return dist.GammaPowerPointMass(0, p), nil
	}

	return operator.Dispatch("ProductAverageConditional", a, scaleCases(b))
}

// scaleCases maps the law of x to the law of x·b. The scaling keeps the
// uniform element uniform, so degenerate messages share the proper case.
func scaleCases(b float64) operator.Cases[dist.GammaPower, dist.GammaPower] {
	scale := func(g dist.GammaPower) (dist.GammaPower, error) {
		p := g.PowerParam()
		return dist.NewGammaPower(g.Shape(), g.Rate()*math.Pow(b, -1/p), p), nil
	}

	return operator.Cases[dist.GammaPower, dist.GammaPower]{
		Point: func(g dist.GammaPower) (dist.GammaPower, error) {
			return dist.GammaPowerPointMass(g.Point()*b, g.PowerParam()), nil
		},
		Proper:     scale,
		Degenerate: scale,
	}
}

// ProductAAverageConditional returns the message to a given product = a·b.
func ProductAAverageConditional(product dist.GammaPower, b float64) (dist.GammaPower, error) {
	if err := checkScale("ProductAAverageConditional", b); err != nil {
		return dist.GammaPower{}, err
	}
	p := product.PowerParam()
	if b == 0 {
		if product.IsPointMass() && product.Point() != 0 {
			return dist.GammaPower{}, operator.AllZero(productFactor, "product=%g but b=0", product.Point())
		}
		return dist.GammaPowerUniform(p), nil
	}

	return operator.Dispatch("ProductAAverageConditional", product, scaleCases(1/b))
}

// ProductAverageLogarithm is the VMP message to product.
func ProductAverageLogarithm(a dist.GammaPower, b float64) (dist.GammaPower, error) {
	return ProductAverageConditional(a, b)
}

// ProductAAverageLogarithm is the VMP message to a.
func ProductAAverageLogarithm(product dist.GammaPower, b float64) (dist.GammaPower, error) {
	return ProductAAverageConditional(product, b)
}

// RatioAverageConditional returns the law of a/b for b > 0.
func RatioAverageConditional(a dist.GammaPower, b float64) (dist.GammaPower, error) {
	if b == 0 {
		return dist.GammaPower{}, fmt.Errorf("RatioAverageConditional: b=0: %w", operator.ErrUnsupported)
	}

	return ProductAverageConditional(a, 1/b)
}

// RatioAAverageConditional returns the message to a given ratio = a/b.
func RatioAAverageConditional(ratio dist.GammaPower, b float64) (dist.GammaPower, error) {
	if b == 0 {
		return dist.GammaPower{}, fmt.Errorf("RatioAAverageConditional: b=0: %w", operator.ErrUnsupported)
	}

	return ProductAAverageConditional(ratio, 1/b)
}

// ProductAverageConditionalGamma is ProductAverageConditional for Gamma a.
func ProductAverageConditionalGamma(a dist.Gamma, b float64) (dist.Gamma, error) {
	out, err := ProductAverageConditional(a.AsPower(), b)
	if err != nil {
		return dist.Gamma{}, err
	}

	return asGamma(out), nil
}

// ProductAAverageConditionalGamma is ProductAAverageConditional for Gamma messages.
func ProductAAverageConditionalGamma(product dist.Gamma, b float64) (dist.Gamma, error) {
	out, err := ProductAAverageConditional(product.AsPower(), b)
	if err != nil {
		return dist.Gamma{}, err
	}

	return asGamma(out), nil
}

// RatioAverageConditionalGamma is RatioAverageConditional for Gamma a.
func RatioAverageConditionalGamma(a dist.Gamma, b float64) (dist.Gamma, error) {
	out, err := RatioAverageConditional(a.AsPower(), b)
	if err != nil {
		return dist.Gamma{}, err
	}

	return asGamma(out), nil
}

// RatioAAverageConditionalGamma is RatioAAverageConditional for Gamma messages.
func RatioAAverageConditionalGamma(ratio dist.Gamma, b float64) (dist.Gamma, error) {
	out, err := RatioAAverageConditional(ratio.AsPower(), b)
	if err != nil {
		return dist.Gamma{}, err
	}

	return asGamma(out), nil
}

// asGamma converts a power-1 result; point masses keep their location.
func asGamma(g dist.GammaPower) dist.Gamma {
	if g.IsPointMass() {
		return dist.GammaPointMass(g.Point())
	}
	out, _ := g.AsGamma()

	return out
}
