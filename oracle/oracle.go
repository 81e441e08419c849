// SPDX-License-Identifier: MIT

// Package oracle is a deliberately naive matrix over [][]float64 used to
// check package matrix in differential tests. It shares no code with the
// engine: no strides, no views, no lanes, no goroutines.
//
// Its method set (Rows, Cols, At, Set) matches matrix.Matrix, so an oracle
// result can be compared with matrix.AllClose directly.
package oracle

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape is returned for invalid or incompatible shapes.
	ErrShape = errors.New("oracle: bad shape")

	// ErrIndex is returned for out-of-range indices.
	ErrIndex = errors.New("oracle: index out of range")
)

// Matrix is a rows×cols matrix stored as one slice per row.
type Matrix struct {
	data [][]float64
}

// New returns a rows×cols zero matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrShape)
	}
	d := make([][]float64, rows)
	for i := range d {
		d[i] = make([]float64, cols)
	}

	return &Matrix{data: d}, nil
}

// FromRows copies rows into a new Matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrShape
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.Cols() {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrShape)
		}
		copy(m.data[i], r)
	}

	return m, nil
}

// Identity returns the n×n identity.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.data) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return len(m.data[0]) }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndex)
	}

	return m.data[i][j], nil
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrIndex)
	}
	m.data[i][j] = v

	return nil
}

// map2 applies f to matching elements of m and o.
func (m *Matrix) map2(o *Matrix, f func(x, y float64) float64) (*Matrix, error) {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return nil, ErrShape
	}
	out, _ := New(m.Rows(), m.Cols())
	for i, r := range m.data {
		for j, v := range r {
			out.data[i][j] = f(v, o.data[i][j])
		}
	}

	return out, nil
}

// Add returns m+o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.map2(o, func(x, y float64) float64 { return x + y })
}

// Sub returns m-o.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	return m.map2(o, func(x, y float64) float64 { return x - y })
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	out, _ := m.map2(m, func(x, _ float64) float64 { return -x })

	return out
}

// Abs returns |m|.
func (m *Matrix) Abs() *Matrix {
	out, _ := m.map2(m, func(x, _ float64) float64 { return math.Abs(x) })

	return out
}

// Mul returns m×o with the textbook triple loop.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.Cols() != o.Rows() {
		return nil, ErrShape
	}
	out, _ := New(m.Rows(), o.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < o.Cols(); j++ {
			var sum float64
			for t := 0; t < m.Cols(); t++ {
				sum += m.data[i][t] * o.data[t][j]
			}
			out.data[i][j] = sum
		}
	}

	return out, nil
}

// Pow returns m^p by p-1 successive multiplications.
func (m *Matrix) Pow(p int) (*Matrix, error) {
	if m.Rows() != m.Cols() || p < 0 {
		return nil, ErrShape
	}
	out, _ := Identity(m.Rows())
	for ; p > 0; p-- {
		out, _ = out.Mul(m)
	}

	return out, nil
}
