// SPDX-License-Identifier: MIT

package laplace

import (
	"math"

	"github.com/katalvlaran/lvinfer/dist"
)

// DLogFs returns the first and second derivative in b of
//
//	h(b) = ((sy-p)/p)·ln b - c·ln(ry·b^(1/p) + ra),  c = sy + sa - p,
//
// the log of ∫ product(y)·a(y/b)/b dy for product = GammaPower(sy, ry, p) and
// a = GammaPower(sa, ra, p).
func DLogFs(b float64, product, a dist.GammaPower) (d1, d2 float64) {
	p := a.PowerParam()
	sy, ry := product.Shape(), product.Rate()
	sa, ra := a.Shape(), a.Rate()
	k := (sy - p) / p
	c := sy + sa - p

	e := 1 / p
	v := ry*math.Pow(b, e) + ra
	v1 := ry * e * math.Pow(b, e-1)
	v2 := ry * e * (e - 1) * math.Pow(b, e-2)

	d1 = k/b - c*v1/v
	d2 = -k/(b*b) - c*(v2*v-v1*v1)/(v*v)

	return d1, d2
}

// logPosterior adds the b message to DLogFs.
func logPosterior(x float64, product, a dist.GammaPower, b dist.Gamma) (d1, d2 float64) {
	d1, d2 = DLogFs(x, product, a)
	d1 += (b.Shape()-1)/x - b.Rate()
	d2 -= (b.Shape() - 1) / (x * x)

	return d1, d2
}

// inverseRateMoments returns E[w^-1] and E[w^-2] under q for
// w(b) = w0 + w1·b^e, by the second-order delta method around E[b].
func inverseRateMoments(q dist.Gamma, w0, w1, e float64) (m1, m2 float64) {
	m, v := q.Mean(), q.Variance()
	w := w0 + w1*math.Pow(m, e)
	dw := w1 * e * math.Pow(m, e-1)
	ddw := w1 * e * (e - 1) * math.Pow(m, e-2)
	moment := func(k float64) float64 {
		g := math.Pow(w, -k)
		g2 := k*(k+1)*math.Pow(w, -k-2)*dw*dw - k*math.Pow(w, -k-1)*ddw
		return g + 0.5*g2*v
	}

	return moment(1), moment(2)
}
