// SPDX-License-Identifier: MIT

// Package kernel holds the arithmetic routines behind package matrix.
//
// Purpose:
//   - Define the Kernel strategy seam: one interface, two implementations.
//   - Reference: scalar nested loops with a fixed summation order.
//   - Optimized: lane-blocked loops (package simd), packed multiplication and
//     fork-join row-block parallelism (package parallel).
//
// Contracts:
//   - Kernels never validate user input. Package matrix checks shapes first
//     and only then hands over Operands; a violated precondition here is a
//     programmer error and panics.
//   - dst is always a freshly allocated, contiguous operand that does not
//     alias any input. Inputs are only read.
//   - Element-wise kernels are bit-identical across implementations. Mul may
//     differ in the last bits because the optimized path sums per lane.
package kernel

import "fmt"

// Operand is a strided read/write window over a row-major float64 buffer.
// Data starts at the window's first element; row i occupies
// Data[i*Stride : i*Stride+Cols].
type Operand struct {
	Data   []float64 // buffer starting at the window origin
	Rows   int       // window height (>0)
	Cols   int       // window width (>0)
	Stride int       // elements between row starts (>=Cols)
}

// Contiguous reports whether the rows are packed back to back.
func (o Operand) Contiguous() bool { return o.Stride == o.Cols }

// Row returns the Cols elements of row i.
func (o Operand) Row(i int) []float64 {
	start := i * o.Stride

	return o.Data[start : start+o.Cols : start+o.Cols]
}

// Len returns Rows*Cols.
func (o Operand) Len() int { return o.Rows * o.Cols }

// Kernel is the arithmetic strategy used by matrix.Engine.
type Kernel interface {
	// Name identifies the implementation (e.g. "reference", "optimized/avx2").
	Name() string

	// Add stores a+b into dst. All three share one shape.
	Add(dst, a, b Operand)

	// Sub stores a-b into dst. All three share one shape.
	Sub(dst, a, b Operand)

	// Neg stores -a into dst.
	Neg(dst, a Operand)

	// Abs stores |a| into dst.
	Abs(dst, a Operand)

	// Mul stores the product of a (m×k) and b (k×n) into dst (m×n).
	Mul(dst, a, b Operand)
}

// mustSameShape panics unless x and y have identical dimensions.
func mustSameShape(op string, x, y Operand) {
	if x.Rows != y.Rows || x.Cols != y.Cols {
		panic(fmt.Sprintf("kernel: %s: operand shape %dx%d vs %dx%d", op, x.Rows, x.Cols, y.Rows, y.Cols))
	}
}

// mustMulShape panics unless dst = a×b is dimensionally valid.
func mustMulShape(dst, a, b Operand) {
	if a.Cols != b.Rows || dst.Rows != a.Rows || dst.Cols != b.Cols {
		panic(fmt.Sprintf("kernel: Mul: operand shape %dx%d * %dx%d -> %dx%d",
			a.Rows, a.Cols, b.Rows, b.Cols, dst.Rows, dst.Cols))
	}
}
