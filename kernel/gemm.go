// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/numc/parallel"
	"github.com/katalvlaran/numc/simd"
)

// Mul stores a×b into dst.
//
// Implementation:
//   - Stage 1: pack Bᵀ into a contiguous n×k buffer so that every output
//     element becomes a dot product of two unit-stride slices.
//   - Stage 2: for each panel of MulPanel packed columns and each output row
//     in the block, compute four outputs per pass with simd.Dot4, then the
//     remaining columns with simd.Dot.
//   - Stage 3: split output rows across goroutines when m*n*k reaches
//     MulParallelThreshold. Row blocks are disjoint, so no synchronization is
//     needed beyond the final join.
//
// Complexity: O(m*n*k) time, O(n*k) extra space for the packed copy.
func (o *Optimized) Mul(dst, a, b Operand) {
	mustMulShape(dst, a, b)
	m, k, n := a.Rows, a.Cols, b.Cols

	bt := o.packTransposed(b)
	run := func(lo, hi int) { o.mulRows(dst, a, bt, k, n, lo, hi) }

	if m*n*k < o.cfg.MulParallelThreshold {
		run(0, m)
		return
	}
	parallel.For(m, 1, o.cfg.Workers, run)
}

// mulRows fills output rows [lo, hi) from the packed Bᵀ.
func (o *Optimized) mulRows(dst, a Operand, bt []float64, k, n, lo, hi int) {
	panel := o.cfg.MulPanel
	var (
		i, j, j0, j1 int
		aRow, cRow   []float64
	)
	for j0 = 0; j0 < n; j0 += panel {
		j1 = min(j0+panel, n)
		for i = lo; i < hi; i++ {
			aRow = a.Row(i)
			cRow = dst.Row(i)
			for j = j0; j+4 <= j1; j += 4 {
				cRow[j], cRow[j+1], cRow[j+2], cRow[j+3] = simd.Dot4(aRow,
					bt[j*k:(j+1)*k],
					bt[(j+1)*k:(j+2)*k],
					bt[(j+2)*k:(j+3)*k],
					bt[(j+3)*k:(j+4)*k])
			}
			for ; j < j1; j++ {
				cRow[j] = simd.Dot(aRow, bt[j*k:(j+1)*k])
			}
		}
	}
}

// packTransposed returns Bᵀ as a contiguous n×k buffer, walking B in square
// tiles. Large copies are split by packed rows across goroutines.
func (o *Optimized) packTransposed(b Operand) []float64 {
	k, n := b.Rows, b.Cols
	bt := make([]float64, n*k)

	run := func(lo, hi int) {
		var t, j, t0, t1, j0, j1 int
		for j0 = lo; j0 < hi; j0 += packTile {
			j1 = min(j0+packTile, hi)
			for t0 = 0; t0 < k; t0 += packTile {
				t1 = min(t0+packTile, k)
				for t = t0; t < t1; t++ {
					row := b.Row(t)
					for j = j0; j < j1; j++ {
						bt[j*k+t] = row[j]
					}
				}
			}
		}
	}

	if n*k < o.cfg.ParallelThreshold {
		run(0, n)
	} else {
		parallel.For(n, rowGrain(k), o.cfg.Workers, run)
	}

	return bt
}
