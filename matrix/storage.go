// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sync/atomic"
)

// MaxElements bounds rows*cols for a single allocation (16 GiB of float64).
const MaxElements = math.MaxInt32

// Storage is the shared, reference-counted element buffer behind one owning
// Dense and all of its views.
//
// Invariants:
//   - The buffer is allocated once and never resized.
//   - refs counts the live handles (owner + views) using the buffer.
//   - When refs drops to zero the buffer is dropped and Len reports 0.
type Storage struct {
	data []float64
	refs atomic.Int64
}

// newStorage allocates a zeroed buffer of n elements with one reference.
// Returns ErrAllocationFailure when n exceeds MaxElements or the runtime
// rejects the size.
func newStorage(n int) (s *Storage, err error) {
	if n < 0 || n > MaxElements {
		return nil, ErrAllocationFailure
	}
	defer func() {
		// makeslice reports an impossible length with a runtime panic.
		if r := recover(); r != nil {
			s, err = nil, ErrAllocationFailure
		}
	}()
	s = &Storage{data: make([]float64, n)}
	s.refs.Store(1)

	return s, nil
}

// Len returns the number of elements in the buffer (0 once dropped).
func (s *Storage) Len() int { return len(s.data) }

// Refs returns the current reference count.
func (s *Storage) Refs() int64 { return s.refs.Load() }

func (s *Storage) retain() { s.refs.Add(1) }

// release drops one reference and frees the buffer on the last one.
// Reports whether the buffer was dropped.
func (s *Storage) release() bool {
	if s.refs.Add(-1) == 0 {
		s.data = nil

		return true
	}

	return false
}

// elements checks that rows*cols fits in MaxElements without overflow.
func elements(rows, cols int) (int, error) {
	if rows > MaxElements/cols {
		return 0, ErrAllocationFailure
	}

	return rows * cols, nil
}
