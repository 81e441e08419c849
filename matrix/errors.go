// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public operation returns one of these (possibly wrapped with
// call-site context) and tests match them via errors.Is. No public operation
// panics on user-triggered conditions; panics are reserved for programmer
// errors (invalid Option values, kernel preconditions).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with fmt.Errorf("<ctx>: %w", ErrX); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> released -> shape/exponent -> allocation.

var (
	// ErrInvalidShape is returned when a requested shape has a non-positive
	// dimension, or when list input is empty or ragged.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows, or a data length that does
	// not match the declared shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that Pow received a non-square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidExponent signals a negative exponent.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrIndexOutOfRange indicates that an index or a view range falls outside
	// the handle's bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocationFailure is returned when the element count overflows
	// MaxElements or the runtime refuses the allocation.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrNilMatrix indicates that a nil handle (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates use of a handle after Release.
	ErrReleased = errors.New("matrix: use of released matrix")

	// ErrNotScalar is returned by scalar reads of a handle that is not 1×1.
	ErrNotScalar = errors.New("matrix: not a 1x1 matrix")

	// ErrInvalidTolerance is returned by AllClose for NaN or ±Inf tolerances.
	ErrInvalidTolerance = errors.New("matrix: invalid tolerance")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps err with an operation tag and both operand shapes.
func shapeErrorf(tag string, a, b Matrix, err error) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
}
