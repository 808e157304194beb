// SPDX-License-Identifier: MIT

package pbinom_test

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/pbinom"
)

// ExampleForward computes the count distribution of two coins.
func ExampleForward() {
	tab, err := pbinom.Forward([]float64{0.3, 0.6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for c, p := range tab.Marginal() {
		fmt.Printf("P(%d) = %.2f\n", c, p)
	}
	// Output:
	// P(0) = 0.28
	// P(1) = 0.54
	// P(2) = 0.18
}
