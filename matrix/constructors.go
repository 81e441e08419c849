// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/numc/simd"
)

// NewFilled returns a rows×cols matrix with every element set to v.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	simd.Fill(m.storage.data, v)

	return m, nil
}

// NewFromSlice builds a rows×cols matrix from row-major data (copied).
// Shape and length are checked before anything is allocated.
//
// Errors:
//   - ErrInvalidShape when rows<=0 or cols<=0.
//   - ErrAllocationFailure when rows*cols exceeds MaxElements.
//   - ErrShapeMismatch when len(data) != rows*cols.
func NewFromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidShape)
	}
	n, err := elements(rows, cols)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("NewFromSlice: %dx%d from %d values: %w", rows, cols, len(data), ErrShapeMismatch)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	copy(m.storage.data, data)

	return m, nil
}

// NewFromRows builds a matrix from a list of equally long rows (copied).
// Returns ErrInvalidShape when rows is empty, a row is empty, or rows are ragged.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidShape)
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(r), cols, ErrInvalidShape)
		}
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		copy(m.row(i), r)
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix of values drawn uniformly from
// [low, high) by a source seeded with seed. Equal seeds give equal matrices.
func NewRandom(rows, cols int, seed int64, low, high float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	span := high - low
	for i := range m.storage.data {
		m.storage.data[i] = low + span*rng.Float64()
	}

	return m, nil
}
