// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/numc/parallel"
	"github.com/katalvlaran/numc/simd"
)

// Defaults applied by NewOptimized to zero Config fields.
const (
	// DefaultParallelThreshold is the element count from which element-wise
	// kernels split work across goroutines.
	DefaultParallelThreshold = 1 << 16

	// DefaultMulParallelThreshold is the m*n*k work estimate from which Mul
	// splits output rows across goroutines.
	DefaultMulParallelThreshold = 1 << 18

	// DefaultMulPanel is the number of packed B columns processed per output
	// row before moving to the next row of the block.
	DefaultMulPanel = 64

	// minChunk is the smallest element-wise task, in elements.
	minChunk = 1 << 12

	// packTile is the square tile edge used when transposing B.
	packTile = 32
)

// Config tunes the optimized kernel. Zero fields take the package defaults.
type Config struct {
	Workers              int // goroutine bound; <=0 means parallel.DefaultWorkers()
	ParallelThreshold    int // element-wise: go parallel when Rows*Cols >= this
	MulParallelThreshold int // Mul: go parallel when m*n*k >= this
	MulPanel             int // Mul: packed columns per panel
}

// Optimized is the lane-blocked, multi-goroutine kernel.
//
// Element-wise ops run one simd block over the whole buffer when every operand
// is contiguous, otherwise one block per row. Mul packs Bᵀ once, then each
// output row computes four dot products per pass over the A row (simd.Dot4).
// Work above the configured thresholds is split into disjoint row blocks with
// parallel.For; every goroutine writes only its own rows of dst.
type Optimized struct {
	cfg Config
}

var _ Kernel = (*Optimized)(nil)

// NewOptimized returns an Optimized kernel with zero fields of cfg defaulted.
func NewOptimized(cfg Config) *Optimized {
	if cfg.ParallelThreshold <= 0 {
		cfg.ParallelThreshold = DefaultParallelThreshold
	}
	if cfg.MulParallelThreshold <= 0 {
		cfg.MulParallelThreshold = DefaultMulParallelThreshold
	}
	if cfg.MulPanel <= 0 {
		cfg.MulPanel = DefaultMulPanel
	}

	return &Optimized{cfg: cfg}
}

// Config returns the effective configuration.
func (o *Optimized) Config() Config { return o.cfg }

// Name returns "optimized/<simd level>".
func (o *Optimized) Name() string { return "optimized/" + simd.CurrentName() }

// Add stores a+b into dst.
func (o *Optimized) Add(dst, a, b Operand) {
	mustSameShape("Add", dst, a)
	mustSameShape("Add", dst, b)
	o.binary(dst, a, b, simd.AddBlock)
}

// Sub stores a-b into dst.
func (o *Optimized) Sub(dst, a, b Operand) {
	mustSameShape("Sub", dst, a)
	mustSameShape("Sub", dst, b)
	o.binary(dst, a, b, simd.SubBlock)
}

// Neg stores -a into dst.
func (o *Optimized) Neg(dst, a Operand) {
	mustSameShape("Neg", dst, a)
	o.unary(dst, a, simd.NegBlock)
}

// Abs stores |a| into dst.
func (o *Optimized) Abs(dst, a Operand) {
	mustSameShape("Abs", dst, a)
	o.unary(dst, a, simd.AbsBlock)
}

// rowGrain converts minChunk elements into whole rows of width cols.
func rowGrain(cols int) int {
	g := minChunk / cols
	if g < 1 {
		return 1
	}

	return g
}

// binary runs block over dst/a/b, flat when all are contiguous.
func (o *Optimized) binary(dst, a, b Operand, block func(dst, a, b []float64)) {
	var run func(lo, hi int)
	if dst.Contiguous() && a.Contiguous() && b.Contiguous() {
		cols := dst.Cols
		run = func(lo, hi int) {
			s, e := lo*cols, hi*cols
			block(dst.Data[s:e], a.Data[s:e], b.Data[s:e])
		}
	} else {
		run = func(lo, hi int) {
			for i := lo; i < hi; i++ {
				block(dst.Row(i), a.Row(i), b.Row(i))
			}
		}
	}
	o.rows(dst, run)
}

// unary runs block over dst/a, flat when both are contiguous.
func (o *Optimized) unary(dst, a Operand, block func(dst, a []float64)) {
	var run func(lo, hi int)
	if dst.Contiguous() && a.Contiguous() {
		cols := dst.Cols
		run = func(lo, hi int) {
			s, e := lo*cols, hi*cols
			block(dst.Data[s:e], a.Data[s:e])
		}
	} else {
		run = func(lo, hi int) {
			for i := lo; i < hi; i++ {
				block(dst.Row(i), a.Row(i))
			}
		}
	}
	o.rows(dst, run)
}

// rows runs run over [0, dst.Rows), in parallel above the threshold.
func (o *Optimized) rows(dst Operand, run func(lo, hi int)) {
	if dst.Len() < o.cfg.ParallelThreshold {
		run(0, dst.Rows)
		return
	}
	parallel.For(dst.Rows, rowGrain(dst.Cols), o.cfg.Workers, run)
}
