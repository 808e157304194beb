// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/lvinfer/special"
)

type segmentKind int

const (
	segCopy segmentKind = iota
	segConsume
	segProduce
)

type segment struct {
	kind segmentKind
	lang Language
}

// Transducer is a weighted relation between input and output strings,
// stored as a concatenation of segments. The zero value relates "" to "".
type Transducer struct {
	segs []segment
}

// Copy relates every string to itself with weight 1.
func Copy() Transducer { return Transducer{segs: []segment{{kind: segCopy}}} }

// Consume reads a string x from the input and writes nothing, with weight L(x).
func Consume(l Language) Transducer {
	return Transducer{segs: []segment{{kind: segConsume, lang: l}}}
}

// Produce reads nothing and writes y, with weight L(y).
func Produce(l Language) Transducer {
	return Transducer{segs: []segment{{kind: segProduce, lang: l}}}
}

// Append returns the concatenation: (x1+x2, y1+y2) has weight
// t(x1, y1)·u(x2, y2) summed over all splits.
func (t Transducer) Append(u Transducer) Transducer {
	segs := make([]segment, 0, len(t.segs)+len(u.segs))
	segs = append(segs, t.segs...)
	segs = append(segs, u.segs...)

	return Transducer{segs: segs}
}

// producesUniform reports whether some Produce segment emits the uniform language.
func (t Transducer) producesUniform() bool {
	for _, s := range t.segs {
		if s.kind == segProduce && s.lang.IsUniform() {
			return true
		}
	}

	return false
}

// ProjectSource returns the output language Σ_x src(x)·t(x, y).
// A uniform source, or a segment producing the uniform language, yields the
// uniform language.
func (t Transducer) ProjectSource(src Language) Language {
	if src.IsUniform() || t.producesUniform() {
		return Uniform()
	}
	acc := make(map[string][]float64)
	for _, x := range src.Support() {
		lx := src.logW[x]
		for y, ly := range t.apply(x) {
			acc[y] = append(acc[y], lx+ly)
		}
	}
	out := make(map[string]float64, len(acc))
	for y, ws := range acc {
		out[y] = special.LogSumExp(ws...)
	}

	return FromLogWeights(out)
}

// runeCuts returns the byte offsets of every rune boundary of x, 0 and
// len(x) included, so splits never fall inside a multi-byte rune.
func runeCuts(x string) []int {
	cuts := make([]int, 0, len(x)+1)
	for i := range x {
		cuts = append(cuts, i)
	}

	return append(cuts, len(x))
}

// apply returns the output log weights for input x.
//
// Stage 1: reach[i] holds the outputs after consuming the first i runes of
// x with the segments processed so far.
// Stage 2: each segment maps every reachable prefix end i to every j ≥ i.
// Stage 3: the answer is reach[n] after the last segment, n the rune count.
func (t Transducer) apply(x string) map[string]float64 {
	cuts := runeCuts(x)
	n := len(cuts) - 1
	reach := make([]map[string][]float64, n+1)
	reach[0] = map[string][]float64{"": {0}}
	for _, seg := range t.segs {
		next := make([]map[string][]float64, n+1)
		for i := 0; i <= n; i++ {
			if reach[i] == nil {
				continue
			}
			for _, out := range slices.Sorted(maps.Keys(reach[i])) {
				seg.extend(x, cuts, i, out, special.LogSumExp(reach[i][out]...), next)
			}
		}
		reach = next
	}
	res := make(map[string]float64, len(reach[n]))
	for out, ws := range reach[n] {
		if lw := special.LogSumExp(ws...); !math.IsInf(lw, -1) {
			res[out] = lw
		}
	}

	return res
}

// extend applies one segment starting at rune boundary i.
func (s segment) extend(x string, cuts []int, i int, out string, lw float64, next []map[string][]float64) {
	add := func(j int, o string, w float64) {
		if math.IsInf(w, -1) {
			return
		}
		if next[j] == nil {
			next[j] = make(map[string][]float64)
		}
		next[j][o] = append(next[j][o], w)
	}
	switch s.kind {
	case segCopy:
		for j := i; j < len(cuts); j++ {
			add(j, out+x[cuts[i]:cuts[j]], lw)
		}
	case segConsume:
		for j := i; j < len(cuts); j++ {
			add(j, out, lw+s.lang.LogWeight(x[cuts[i]:cuts[j]]))
		}
	case segProduce:
		for _, y := range s.lang.Support() {
			add(i, out+y, lw+s.lang.logW[y])
		}
	}
}

// String implements fmt.Stringer.
func (t Transducer) String() string {
	out := "Transducer["
	for i, s := range t.segs {
		if i > 0 {
			out += " · "
		}
		switch s.kind {
		case segCopy:
			out += "Copy"
		case segConsume:
			out += fmt.Sprintf("Consume(%d)", s.lang.Len())
		default:
			out += fmt.Sprintf("Produce(%d)", s.lang.Len())
		}
	}

	return out + "]"
}
