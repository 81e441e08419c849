// SPDX-License-Identifier: MIT

//go:build amd64 && goexperiment.simd

package simd

import (
	"simd/archsimd"

	"github.com/ajroetker/go-highway/hwy"
)

// AVX-512 variants: eight float64 lanes per archsimd.Float64x8, scalar tail.

var avx512Impl = impl{addAVX512, subAVX512, negAVX512, absAVX512, fillAVX512, dotAVX512, dot4AVX512}

func addAVX512(dst, a, b []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	addScalar(dst[i:], a[i:], b[i:])
}

func subAVX512(dst, a, b []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	subScalar(dst[i:], a[i:], b[i:])
}

// negAVX512 flips the sign bit, so -0 and NaN payloads behave like unary minus.
func negAVX512(dst, a []float64) {
	sign := hwy.SignBit_AVX512_F64x8()
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		hwy.Xor_AVX512_F64x8(va, sign).StoreSlice(dst[i:])
	}
	negScalar(dst[i:], a[i:])
}

// absAVX512 clears the sign bit, matching math.Abs.
func absAVX512(dst, a []float64) {
	magnitude := hwy.Not_AVX512_F64x8(hwy.SignBit_AVX512_F64x8())
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		hwy.And_AVX512_F64x8(va, magnitude).StoreSlice(dst[i:])
	}
	absScalar(dst[i:], a[i:])
}

func fillAVX512(dst []float64, v float64) {
	vv := archsimd.BroadcastFloat64x8(v)
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		vv.StoreSlice(dst[i:])
	}
	fillScalar(dst[i:], v)
}

// sum8 folds the lanes in a fixed pairwise order.
func sum8(v archsimd.Float64x8) float64 {
	var l [8]float64
	v.StoreSlice(l[:])

	return ((l[0] + l[1]) + (l[2] + l[3])) + ((l[4] + l[5]) + (l[6] + l[7]))
}

func dotAVX512(a, b []float64) float64 {
	acc := archsimd.BroadcastFloat64x8(0)
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		acc = acc.Add(va.Mul(vb))
	}

	return sum8(acc) + dotScalar(a[i:], b[i:])
}

func dot4AVX512(a, b0, b1, b2, b3 []float64) (r0, r1, r2, r3 float64) {
	acc0 := archsimd.BroadcastFloat64x8(0)
	acc1, acc2, acc3 := acc0, acc0, acc0
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		acc0 = acc0.Add(va.Mul(archsimd.LoadFloat64x8Slice(b0[i:])))
		acc1 = acc1.Add(va.Mul(archsimd.LoadFloat64x8Slice(b1[i:])))
		acc2 = acc2.Add(va.Mul(archsimd.LoadFloat64x8Slice(b2[i:])))
		acc3 = acc3.Add(va.Mul(archsimd.LoadFloat64x8Slice(b3[i:])))
	}
	t0, t1, t2, t3 := dot4Scalar(a[i:], b0[i:], b1[i:], b2[i:], b3[i:])

	return sum8(acc0) + t0, sum8(acc1) + t1, sum8(acc2) + t2, sum8(acc3) + t3
}
