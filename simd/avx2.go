// SPDX-License-Identifier: MIT

//go:build amd64 && goexperiment.simd

package simd

import (
	"simd/archsimd"

	"github.com/ajroetker/go-highway/hwy"
)

// AVX2 variants: four float64 lanes per archsimd.Float64x4, scalar tail.

var avx2Impl = impl{addAVX2, subAVX2, negAVX2, absAVX2, fillAVX2, dotAVX2, dot4AVX2}

func addAVX2(dst, a, b []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	addScalar(dst[i:], a[i:], b[i:])
}

func subAVX2(dst, a, b []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	subScalar(dst[i:], a[i:], b[i:])
}

// negAVX2 flips the sign bit, so -0 and NaN payloads behave like unary minus.
func negAVX2(dst, a []float64) {
	sign := hwy.SignBit_AVX2_F64x4()
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		hwy.Xor_AVX2_F64x4(va, sign).StoreSlice(dst[i:])
	}
	negScalar(dst[i:], a[i:])
}

// absAVX2 clears the sign bit, matching math.Abs.
func absAVX2(dst, a []float64) {
	magnitude := hwy.Not_AVX2_F64x4(hwy.SignBit_AVX2_F64x4())
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		hwy.And_AVX2_F64x4(va, magnitude).StoreSlice(dst[i:])
	}
	absScalar(dst[i:], a[i:])
}

func fillAVX2(dst []float64, v float64) {
	vv := archsimd.BroadcastFloat64x4(v)
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		vv.StoreSlice(dst[i:])
	}
	fillScalar(dst[i:], v)
}

// sum4 folds the lanes in a fixed order: (l0+l1) + (l2+l3).
func sum4(v archsimd.Float64x4) float64 {
	var l [4]float64
	v.StoreSlice(l[:])

	return (l[0] + l[1]) + (l[2] + l[3])
}

func dotAVX2(a, b []float64) float64 {
	acc := archsimd.BroadcastFloat64x4(0)
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		acc = acc.Add(va.Mul(vb))
	}

	return sum4(acc) + dotScalar(a[i:], b[i:])
}

func dot4AVX2(a, b0, b1, b2, b3 []float64) (r0, r1, r2, r3 float64) {
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1, acc2, acc3 := acc0, acc0, acc0
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		acc0 = acc0.Add(va.Mul(archsimd.LoadFloat64x4Slice(b0[i:])))
		acc1 = acc1.Add(va.Mul(archsimd.LoadFloat64x4Slice(b1[i:])))
		acc2 = acc2.Add(va.Mul(archsimd.LoadFloat64x4Slice(b2[i:])))
		acc3 = acc3.Add(va.Mul(archsimd.LoadFloat64x4Slice(b3[i:])))
	}
	t0, t1, t2, t3 := dot4Scalar(a[i:], b0[i:], b1[i:], b2[i:], b3[i:])

	return sum4(acc0) + t0, sum4(acc1) + t1, sum4(acc2) + t2, sum4(acc3) + t3
}
