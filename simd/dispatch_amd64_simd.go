// SPDX-License-Identifier: MIT

//go:build amd64 && goexperiment.simd

package simd

import "github.com/ajroetker/go-highway/hwy"

// hostLevel maps hwy's CPU detection (archsimd feature bits, HWY_NO_SIMD)
// onto the levels numc has kernels for.
func hostLevel() Level {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		return LevelAVX512
	case hwy.DispatchAVX2:
		return LevelAVX2
	default:
		return LevelScalar
	}
}

func vectorImpl(l Level) (impl, bool) {
	switch l {
	case LevelAVX512:
		return avx512Impl, true
	case LevelAVX2:
		return avx2Impl, true
	default:
		return impl{}, false
	}
}
