// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by Dense and test doubles.
package matrix

// Matrix is a two-dimensional mutable array of float64 values addressed by
// (row, col). *Dense implements it; comparison helpers and validators accept
// it so that any row-major container can be checked against a Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrIndexOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	// Returns ErrIndexOutOfRange if i or j is outside the shape.
	Set(i, j int, v float64) error
}
