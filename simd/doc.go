// SPDX-License-Identifier: MIT

// Package simd provides vectorized float64 primitives and the runtime
// dispatch that binds them.
//
// What:
//
//	Vector kernels are written against simd/archsimd and go-highway's hwy
//	helpers (sign-bit masks, bitwise And/Xor/Not), so they exist only in
//	amd64 builds with GOEXPERIMENT=simd. At init the package reads hwy's CPU
//	detection and binds:
//
//	  AVX-512  → archsimd.Float64x8, 8 lanes
//	  AVX2     → archsimd.Float64x4, 4 lanes
//	  anything else → plain scalar loops
//
//	CurrentName always names the kernels actually bound; HostName reports
//	what hwy found on the CPU (e.g. "neon" on arm64, where numc runs scalar).
//
//	Each vector variant walks its input in full registers and finishes the
//	tail with the scalar loop. Reductions (Dot, Dot4) keep one accumulator
//	register and fold it with a fixed-order horizontal sum before adding the
//	tail, so their summation order depends on the level.
//
// Configuration:
//
//	NUMC_NO_SIMD (or hwy's HWY_NO_SIMD) set to a true value forces the scalar
//	kernels regardless of CPU capabilities.
//
// Contracts:
//
//	All primitives panic when slice lengths disagree. That is a programmer
//	error: callers in package kernel validate shapes before slicing.
//
// Complexity:
//
//	Every primitive is O(n) time, O(1) extra space and allocation-free.
package simd
