// Package numc is a dense-matrix engine for float64 2-D arrays: shared,
// reference-counted storage with row-range views, element-wise arithmetic,
// matrix multiplication and integer powers, each available as a scalar
// reference kernel and as an optimized kernel.
//
// 🚀 What is in numc?
//
//	• Handles & views: owning matrices and aliasing row-range views over one
//	  reference-counted buffer
//	• Element-wise kernels: Add, Sub, Neg, Abs
//	• Multiplication: packed Bᵀ, four-column dot blocks, row-block parallelism
//	• Power: binary exponentiation on top of the multiply kernel
//	• Runtime dispatch: AVX2 / AVX-512 vector kernels (archsimd + go-highway)
//	  with a scalar fallback, NUMC_NO_SIMD
//
// ✨ Why numc?
//
//   - Safe surface - every fallible call returns a sentinel error, no panics
//   - Two kernels, one contract - results agree exactly (element-wise) or
//     within summation-order tolerance (Mul, Pow)
//   - No cgo, no hand-written assembly: vector code uses Go's simd/archsimd
//     (GOEXPERIMENT=simd on amd64); every other build runs scalar loops
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   - Dense, Storage, constructors, Engine, Add/Sub/Neg/Abs/Mul/Pow
//	kernel/   - Kernel interface, Reference and Optimized implementations
//	simd/     - vector kernel dispatch and float64 primitives
//	parallel/ - bounded fork-join over contiguous index ranges
//	oracle/   - naive [][]float64 matrix for differential tests
//	examples/ - runnable demonstrations
//
// Quick example (Fibonacci via matrix power):
//
//	q, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 0}})
//	q10, _ := matrix.Pow(q, 10) // [[89, 55], [55, 34]]
//
//	go get github.com/katalvlaran/numc/matrix
package numc
