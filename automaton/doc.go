// SPDX-License-Identifier: MIT

// Package automaton is a small weighted-language algebra for string-valued
// factors.
//
// A Language is either a finite map from strings to positive weights or the
// uniform language that gives weight 1 to every string. A Transducer is a
// weighted relation between strings, built by concatenating segments:
//
//	Copy()      relates x to x
//	Consume(L)  relates x to "" with weight L(x)
//	Produce(L)  relates "" to y with weight L(y)
//
// t.Append(u) concatenates relations, and t.ProjectSource(L) returns the
// output language Σ_x L(x)·t(x, y). Weights are kept in log space.
package automaton
