// SPDX-License-Identifier: MIT

package kernel

import "math"

// Reference is the scalar kernel: fixed i→j (→t) loop orders, one element at
// a time, no goroutines. It is the numerical baseline the optimized kernel is
// compared against.
type Reference struct{}

var _ Kernel = Reference{}

// Name returns "reference".
func (Reference) Name() string { return "reference" }

// Add stores a+b into dst.
func (Reference) Add(dst, a, b Operand) {
	mustSameShape("Add", dst, a)
	mustSameShape("Add", dst, b)
	var i, j int
	for i = 0; i < dst.Rows; i++ {
		for j = 0; j < dst.Cols; j++ {
			dst.Data[i*dst.Stride+j] = a.Data[i*a.Stride+j] + b.Data[i*b.Stride+j]
		}
	}
}

// Sub stores a-b into dst.
func (Reference) Sub(dst, a, b Operand) {
	mustSameShape("Sub", dst, a)
	mustSameShape("Sub", dst, b)
	var i, j int
	for i = 0; i < dst.Rows; i++ {
		for j = 0; j < dst.Cols; j++ {
			dst.Data[i*dst.Stride+j] = a.Data[i*a.Stride+j] - b.Data[i*b.Stride+j]
		}
	}
}

// Neg stores -a into dst.
func (Reference) Neg(dst, a Operand) {
	mustSameShape("Neg", dst, a)
	var i, j int
	for i = 0; i < dst.Rows; i++ {
		for j = 0; j < dst.Cols; j++ {
			dst.Data[i*dst.Stride+j] = -a.Data[i*a.Stride+j]
		}
	}
}

// Abs stores |a| into dst.
func (Reference) Abs(dst, a Operand) {
	mustSameShape("Abs", dst, a)
	var i, j int
	for i = 0; i < dst.Rows; i++ {
		for j = 0; j < dst.Cols; j++ {
			dst.Data[i*dst.Stride+j] = math.Abs(a.Data[i*a.Stride+j])
		}
	}
}

// Mul computes dst[i][j] = sum over t of a[i][t]*b[t][j], t ascending.
// Zero entries are not skipped, so NaN and Inf propagate as IEEE-754 says.
func (Reference) Mul(dst, a, b Operand) {
	mustMulShape(dst, a, b)
	var (
		i, j, t int
		sum     float64
	)
	for i = 0; i < a.Rows; i++ {
		for j = 0; j < b.Cols; j++ {
			sum = 0
			for t = 0; t < a.Cols; t++ {
				sum += a.Data[i*a.Stride+t] * b.Data[t*b.Stride+j]
			}
			dst.Data[i*dst.Stride+j] = sum
		}
	}
}
