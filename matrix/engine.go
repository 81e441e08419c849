// SPDX-License-Identifier: MIT

package matrix

import (
	"sync"

	"github.com/katalvlaran/numc/kernel"
)

// ---------- operation tags ----------

const (
	opAdd = "Add"
	opSub = "Sub"
	opNeg = "Neg"
	opAbs = "Abs"
	opMul = "Mul"
	opPow = "Pow"
)

// Engine validates operands, allocates results and dispatches to one Kernel.
//
// Contracts:
//   - Validation completes before any allocation; on error nothing is written.
//   - Every result is a fresh owning Dense that aliases no input.
//   - Inputs may be views (any stride); they are only read.
//   - An Engine is immutable and safe for concurrent use. Callers must still
//     serialize writes to Storage shared with a concurrent call.
type Engine struct {
	kern kernel.Kernel
	opts Options
}

// NewEngine builds an Engine from the defaults overridden by opts.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{opts: o}
	if o.variant == VariantReference {
		e.kern = kernel.Reference{}
	} else {
		e.kern = kernel.NewOptimized(o.kernelConfig())
	}

	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// Default returns the process-wide Engine used by the package-level
// functions and the *Dense arithmetic methods. Its variant is read from
// NUMC_VARIANT on first use.
func Default() *Engine { return defaultEngine() }

// Name identifies the kernel, e.g. "reference" or "optimized/avx2".
func (e *Engine) Name() string { return e.kern.Name() }

// Variant returns the configured kernel family.
func (e *Engine) Variant() Variant { return e.opts.variant }

// Kernel returns the kernel the engine dispatches to.
func (e *Engine) Kernel() kernel.Kernel { return e.kern }

// Workers returns the configured goroutine bound (0 = GOMAXPROCS).
func (e *Engine) Workers() int { return e.opts.workers }

// result allocates a fresh owning output, tagging failures with op.
func result(op string, rows, cols int) (*Dense, error) {
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// binaryCheck runs the shared Add/Sub validation with shape context.
func binaryCheck(op string, a, b *Dense) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		if a.live() == nil && b.live() == nil {
			return shapeErrorf(op, a, b, err)
		}

		return matrixErrorf(op, err)
	}

	return nil
}

// Add returns a+b. ErrShapeMismatch unless both have the same shape.
// Complexity: O(r*c).
func (e *Engine) Add(a, b *Dense) (*Dense, error) {
	if err := binaryCheck(opAdd, a, b); err != nil {
		return nil, err
	}
	out, err := result(opAdd, a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	e.kern.Add(out.operand(), a.operand(), b.operand())

	return out, nil
}

// Sub returns a-b. ErrShapeMismatch unless both have the same shape.
// Complexity: O(r*c).
func (e *Engine) Sub(a, b *Dense) (*Dense, error) {
	if err := binaryCheck(opSub, a, b); err != nil {
		return nil, err
	}
	out, err := result(opSub, a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	e.kern.Sub(out.operand(), a.operand(), b.operand())

	return out, nil
}

// Neg returns -a.
// Complexity: O(r*c).
func (e *Engine) Neg(a *Dense) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	out, err := result(opNeg, a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	e.kern.Neg(out.operand(), a.operand())

	return out, nil
}

// Abs returns |a| element-wise.
// Complexity: O(r*c).
func (e *Engine) Abs(a *Dense) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}
	out, err := result(opAbs, a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	e.kern.Abs(out.operand(), a.operand())

	return out, nil
}

// Mul returns the matrix product a×b (m×k times k×n gives m×n).
// ErrShapeMismatch when a.Cols() != b.Rows().
// Complexity: O(m*n*k).
func (e *Engine) Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateBinaryMul(a, b); err != nil {
		if a.live() == nil && b.live() == nil {
			return nil, shapeErrorf(opMul, a, b, err)
		}

		return nil, matrixErrorf(opMul, err)
	}
	out, err := result(opMul, a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	e.kern.Mul(out.operand(), a.operand(), b.operand())

	return out, nil
}
