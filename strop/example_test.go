// SPDX-License-Identifier: MIT

package strop_test

import (
	"fmt"

	"github.com/katalvlaran/lvinfer/automaton"
	"github.com/katalvlaran/lvinfer/strop"
)

// ExampleStr2AverageConditional infers the suffix of an observed string.
func ExampleStr2AverageConditional() {
	prefix, _ := automaton.FromWeights(map[string]float64{"foo": 1, "fo": 1})
	msg, err := strop.Str2AverageConditional(automaton.PointMass("foobar"), prefix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range msg.Support() {
		fmt.Printf("%q %.2f\n", s, msg.Prob(s))
	}
	// Output:
	// "bar" 0.50
	// "obar" 0.50
}
