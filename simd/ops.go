// SPDX-License-Identifier: MIT

package simd

const panicLenMismatch = "simd: slice length mismatch"

// AddBlock stores a[i] + b[i] into dst[i]. All slices must have equal length.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(panicLenMismatch)
	}
	bound.add(dst, a, b)
}

// SubBlock stores a[i] - b[i] into dst[i]. All slices must have equal length.
func SubBlock(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(panicLenMismatch)
	}
	bound.sub(dst, a, b)
}

// NegBlock stores -a[i] into dst[i].
func NegBlock(dst, a []float64) {
	if len(a) != len(dst) {
		panic(panicLenMismatch)
	}
	bound.neg(dst, a)
}

// AbsBlock stores |a[i]| into dst[i].
func AbsBlock(dst, a []float64) {
	if len(a) != len(dst) {
		panic(panicLenMismatch)
	}
	bound.abs(dst, a)
}

// Fill sets every element of dst to v.
func Fill(dst []float64, v float64) { bound.fill(dst, v) }

// Dot returns sum(a[i]*b[i]) with one accumulator per lane.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(panicLenMismatch)
	}

	return bound.dot(a, b)
}

// Dot4 returns the dot products of a with b0..b3 in one pass over a.
// Every b must have len(a) elements.
func Dot4(a, b0, b1, b2, b3 []float64) (r0, r1, r2, r3 float64) {
	n := len(a)
	if len(b0) != n || len(b1) != n || len(b2) != n || len(b3) != n {
		panic(panicLenMismatch)
	}

	return bound.dot4(a, b0, b1, b2, b3)
}
