// SPDX-License-Identifier: MIT

package simd

import "math"

// Scalar variants: plain loops. They are the whole implementation at
// LevelScalar and finish the tail of every vector variant.

func addScalar(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subScalar(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func negScalar(dst, a []float64) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func absScalar(dst, a []float64) {
	for i := range dst {
		dst[i] = math.Abs(a[i])
	}
}

func fillScalar(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

func dotScalar(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func dot4Scalar(a, b0, b1, b2, b3 []float64) (r0, r1, r2, r3 float64) {
	var av float64
	for i := range a {
		av = a[i]
		r0 += av * b0[i]
		r1 += av * b1[i]
		r2 += av * b2[i]
		r3 += av * b3[i]
	}

	return r0, r1, r2, r3
}

var scalarImpl = impl{addScalar, subScalar, negScalar, absScalar, fillScalar, dotScalar, dot4Scalar}
