// SPDX-License-Identifier: MIT

package operator_test

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/dist"
	"github.com/katalvlaran/lvinfer/operator"
)

// ExampleDamp shows how a damped message sits between candidate and previous.
func ExampleDamp() {
	candidate := dist.NewGamma(3, 2)
	previous := dist.NewGamma(5, 4)
	damped, err := operator.Damp(candidate, previous, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(damped)
	// Output: Gamma(4, 3)
}
