// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// View returns a handle over rows [rowStart, rowStart+rowCount) of m that
// shares m's storage: writes through either handle are visible through the
// other. The view keeps the storage alive until it is released itself.
//
// Errors:
//   - ErrInvalidShape when rowCount<=0.
//   - ErrIndexOutOfRange when rowStart<0 or the range passes m.Rows().
//
// Complexity: O(1), no element copy.
func (m *Dense) View(rowStart, rowCount int) (*Dense, error) {
	if err := m.live(); err != nil {
		return nil, denseErrorf(ctxView, rowStart, rowCount, err)
	}
	if rowCount <= 0 {
		return nil, denseErrorf(ctxView, rowStart, rowCount, ErrInvalidShape)
	}
	if rowStart < 0 || rowStart > m.rows-rowCount {
		return nil, denseErrorf(ctxView, rowStart, rowCount, ErrIndexOutOfRange)
	}

	m.storage.retain()

	return &Dense{
		rows:    rowCount,
		cols:    m.cols,
		stride:  m.stride,
		offset:  m.offset + rowStart*m.stride,
		storage: m.storage,
		parent:  m,
	}, nil
}

// RowSlice returns row `row` as a 1×cols view (the m[row] of list notation).
// Use Elem on the result for m[row][col], or Scalar when cols == 1.
func (m *Dense) RowSlice(row int) (*Dense, error) {
	if err := m.live(); err != nil {
		return nil, denseErrorf(ctxRowSlice, row, 0, err)
	}
	if row < 0 || row >= m.rows {
		return nil, denseErrorf(ctxRowSlice, row, 0, ErrIndexOutOfRange)
	}

	return m.View(row, 1)
}

// Elem reads the i-th element of m in row-major order.
func (m *Dense) Elem(i int) (float64, error) {
	if err := m.live(); err != nil {
		return 0, denseErrorf(ctxElem, i, 0, err)
	}
	if i < 0 || i >= m.rows*m.cols {
		return 0, denseErrorf(ctxElem, i, 0, ErrIndexOutOfRange)
	}

	return m.storage.data[m.offset+(i/m.cols)*m.stride+i%m.cols], nil
}

// SetElem writes v to the i-th element of m in row-major order.
func (m *Dense) SetElem(i int, v float64) error {
	if err := m.live(); err != nil {
		return denseErrorf(ctxSetElem, i, 0, err)
	}
	if i < 0 || i >= m.rows*m.cols {
		return denseErrorf(ctxSetElem, i, 0, ErrIndexOutOfRange)
	}
	m.storage.data[m.offset+(i/m.cols)*m.stride+i%m.cols] = v

	return nil
}

// Scalar returns the single value of a 1×1 handle.
func (m *Dense) Scalar() (float64, error) {
	if err := m.live(); err != nil {
		return 0, matrixErrorf("Dense."+ctxScalar, err)
	}
	if m.rows != 1 || m.cols != 1 {
		return 0, fmt.Errorf("Dense.%s: %dx%d: %w", ctxScalar, m.rows, m.cols, ErrNotScalar)
	}

	return m.storage.data[m.offset], nil
}

// EqualScalar reports whether a 1×1 handle holds exactly v.
func (m *Dense) EqualScalar(v float64) (bool, error) {
	s, err := m.Scalar()
	if err != nil {
		return false, err
	}

	return s == v, nil
}

// SetRow overwrites row `row` with values (the m[row] = [...] of list
// notation). len(values) must equal Cols().
func (m *Dense) SetRow(row int, values []float64) error {
	if err := m.live(); err != nil {
		return denseErrorf(ctxSetRow, row, len(values), err)
	}
	if row < 0 || row >= m.rows {
		return denseErrorf(ctxSetRow, row, len(values), ErrIndexOutOfRange)
	}
	if len(values) != m.cols {
		return denseErrorf(ctxSetRow, row, len(values), ErrShapeMismatch)
	}
	copy(m.row(row), values)

	return nil
}
