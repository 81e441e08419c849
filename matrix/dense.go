// SPDX-License-Identifier: MIT

// Package matrix - Dense handle (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a row-major handle over a shared, reference-counted Storage with
//     the explicit index formula offset + i*stride + j.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking.
//   - Support no-copy row-range views (View, RowSlice) that alias the parent.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/numc/kernel"
	"github.com/katalvlaran/numc/simd"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxElem     = "Elem"
	ctxSetElem  = "SetElem"
	ctxView     = "View"
	ctxRowSlice = "RowSlice"
	ctxSetRow   = "SetRow"
	ctxScalar   = "Scalar"
	ctxClone    = "Clone"
	ctxFill     = "Fill"
	ctxExport   = "ToRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtReleased = "[released]\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix handle: either the owner of a Storage or a view
// of a contiguous row range of another handle.
//   - rows, cols hold the logical shape (both > 0).
//   - stride is the distance between row starts (== cols for owners).
//   - offset is the index of element (0,0) inside storage.
//   - parent is nil for owners; views keep their parent reachable.
type Dense struct {
	rows, cols int
	stride     int
	offset     int
	storage    *Storage
	parent     *Dense
	released   atomic.Bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a rows×cols zero matrix that owns fresh Storage.
//
// Errors:
//   - ErrInvalidShape when rows<=0 or cols<=0.
//   - ErrAllocationFailure when rows*cols exceeds MaxElements or the runtime
//     cannot allocate it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidShape)
	}
	n, err := elements(rows, cols)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	s, err := newStorage(n)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	return &Dense{rows: rows, cols: cols, stride: cols, storage: s}, nil
}

// live reports ErrNilMatrix or ErrReleased for unusable handles.
func (m *Dense) live() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.released.Load() {
		return ErrReleased
	}

	return nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.rows, m.cols }

// Stride returns the distance in elements between consecutive row starts.
func (m *Dense) Stride() int { return m.stride }

// Offset returns the storage index of element (0,0).
func (m *Dense) Offset() int { return m.offset }

// IsView reports whether m was created as a view; Release does not change it.
func (m *Dense) IsView() bool { return m.parent != nil }

// Parent returns the handle m was sliced from, or nil for owners.
func (m *Dense) Parent() *Dense { return m.parent }

// Refs returns the number of live handles sharing m's storage.
func (m *Dense) Refs() int64 { return m.storage.Refs() }

// Released reports whether Release was called on m.
func (m *Dense) Released() bool { return m.released.Load() }

// Release gives up m's hold on its storage. The buffer is dropped once the
// owner and every view have been released. Calling Release more than once on
// the same handle is a no-op; any other use afterwards returns ErrReleased.
func (m *Dense) Release() {
	if m == nil || !m.released.CompareAndSwap(false, true) {
		return
	}
	m.storage.release()
}

// index computes the storage index for (row, col) or returns ErrIndexOutOfRange.
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	return m.offset + row*m.stride + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := m.live(); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	off, err := m.index(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.storage.data[off], nil
}

// Set assigns v at (row, col). The write is visible through every handle that
// shares the storage.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := m.live(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	off, err := m.index(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.storage.data[off] = v

	return nil
}

// row returns the cols elements of row i without bounds checks.
func (m *Dense) row(i int) []float64 {
	start := m.offset + i*m.stride

	return m.storage.data[start : start+m.cols : start+m.cols]
}

// operand exposes m to the kernels.
func (m *Dense) operand() kernel.Operand {
	return kernel.Operand{
		Data:   m.storage.data[m.offset:],
		Rows:   m.rows,
		Cols:   m.cols,
		Stride: m.stride,
	}
}

// Clone returns a deep copy of m as a fresh owning matrix. Views are
// compacted (stride == cols).
// Complexity: O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf("Dense."+ctxClone, err)
	}
	out, err := NewDense(m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf("Dense."+ctxClone, err)
	}
	for i := 0; i < m.rows; i++ {
		copy(out.row(i), m.row(i))
	}

	return out, nil
}

// Fill sets every element of m to v (lane-blocked per row).
func (m *Dense) Fill(v float64) error {
	if err := m.live(); err != nil {
		return matrixErrorf("Dense."+ctxFill, err)
	}
	for i := 0; i < m.rows; i++ {
		simd.Fill(m.row(i), v)
	}

	return nil
}

// ToRows exports m as a fresh [][]float64.
func (m *Dense) ToRows() ([][]float64, error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf("Dense."+ctxExport, err)
	}
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = append([]float64(nil), m.row(i)...)
	}

	return out, nil
}

// ToSlice exports m as a fresh row-major []float64 of length rows*cols.
func (m *Dense) ToSlice() ([]float64, error) {
	if err := m.live(); err != nil {
		return nil, matrixErrorf("Dense.ToSlice", err)
	}
	out := make([]float64, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		out = append(out, m.row(i)...)
	}

	return out, nil
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	if m.live() != nil {
		return _fmtReleased
	}
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
