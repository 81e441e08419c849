// SPDX-License-Identifier: MIT

// Package matrix provides dense, row-major float64 matrices and the
// arithmetic engine that operates on them.
//
// The matrix package provides:
//
//   - Dense, a handle over reference-counted Storage. A handle either owns its
//     buffer or is a row-range view (View, RowSlice) that aliases its parent;
//     the buffer is dropped when the owner and every view were released.
//   - Constructors: NewDense, NewZeros, NewFilled, NewFromSlice, NewFromRows,
//     NewRandom, NewIdentity, ZerosLike, IdentityLike.
//   - Engine: Add, Sub, Neg, Abs, Mul and Pow over any handles (owners or
//     views), dispatching to the reference (scalar) or optimized (lane-blocked,
//     packed, parallel) kernel. Package-level functions and *Dense methods of
//     the same names use Default().
//   - AllClose and Equal for comparing a Dense with any Matrix.
//
// Every fallible call returns a sentinel from errors.go, wrapped with call-site
// context and matched with errors.Is. Validation happens before allocation:
// a failed call never writes anything.
//
// Complexity:
//
//	At/Set/View: O(1). Add/Sub/Neg/Abs/Clone: O(r*c).
//	Mul: O(m*n*k). Pow: O(n³ log p).
package matrix
