// SPDX-License-Identifier: MIT

package gaussop

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

const (
	productFactor = "Product"
	ratioFactor   = "Ratio"
)

// ProductAverageConditional returns the law of a·b.
func ProductAverageConditional(a dist.Gaussian, b float64) dist.Gaussian {
	switch {
	case b == 0:
		return dist.GaussianPointMass(0)
	case a.IsPointMass():
		return dist.GaussianPointMass(a.Point() * b)
	}

	return dist.GaussianFromNatural(a.MeanTimesPrecision()/b, a.Precision()/(b*b))
}

// ProductAAverageConditional returns the message to a given product = a·b.
// With b == 0 the product carries no information about a unless it
// contradicts 0.
func ProductAAverageConditional(product dist.Gaussian, b float64) (dist.Gaussian, error) {
	if b == 0 {
		if product.IsPointMass() && product.Point() != 0 {
			return dist.Gaussian{}, operator.AllZero(productFactor, "product=%g but b=0", product.Point())
		}
		return dist.GaussianUniform(), nil
	}
	if product.IsPointMass() {
		return dist.GaussianPointMass(product.Point() / b), nil
	}

	return dist.GaussianFromNatural(product.MeanTimesPrecision()*b, product.Precision()*b*b), nil
}

// ProductAverageLogarithm is the VMP message to product.
func ProductAverageLogarithm(a dist.Gaussian, b float64) dist.Gaussian {
	return ProductAverageConditional(a, b)
}

// ProductAAverageLogarithm is the VMP message to a.
func ProductAAverageLogarithm(product dist.Gaussian, b float64) (dist.Gaussian, error) {
	return ProductAAverageConditional(product, b)
}

// RatioAverageConditional returns the law of a/b. b must be non-zero.
func RatioAverageConditional(a dist.Gaussian, b float64) (dist.Gaussian, error) {
	if b == 0 {
		return dist.Gaussian{}, fmt.Errorf("RatioAverageConditional: b=0: %w", operator.ErrUnsupported)
	}

	return ProductAverageConditional(a, 1/b), nil
}

// RatioAAverageConditional returns the message to a given ratio = a/b.
func RatioAAverageConditional(ratio dist.Gaussian, b float64) (dist.Gaussian, error) {
	if b == 0 {
		return dist.Gaussian{}, fmt.Errorf("RatioAAverageConditional: b=0: %w", operator.ErrUnsupported)
	}

	return ProductAverageConditional(ratio, b), nil
}

// ProductLogAverageFactor returns ln ∫ product(a·b)·a(a) da.
func ProductLogAverageFactor(product, a dist.Gaussian, b float64) (float64, error) {
	v, err := ProductAverageConditional(a, b).LogAverageOf(product)
	if err != nil {
		return 0, fmt.Errorf("ProductLogAverageFactor: %w", err)
	}

	return v, nil
}
