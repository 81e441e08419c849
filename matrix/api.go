// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points over the Default engine so that the common
//     case needs no Engine value.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     Engine method or constructor.
//
// Determinism & Policy:
//   - Facades never change loop orders or validation of the underlying engine.
//   - Results are always fresh owning matrices; inputs are never modified.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.storage.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.rows, m.cols)
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.rows)
}

// ---------- Arithmetic on the Default engine ----------

// Add returns a+b using the Default engine.
func Add(a, b *Dense) (*Dense, error) { return Default().Add(a, b) }

// Sub returns a-b using the Default engine.
func Sub(a, b *Dense) (*Dense, error) { return Default().Sub(a, b) }

// Neg returns -a using the Default engine.
func Neg(a *Dense) (*Dense, error) { return Default().Neg(a) }

// Abs returns |a| using the Default engine.
func Abs(a *Dense) (*Dense, error) { return Default().Abs(a) }

// Mul returns a×b using the Default engine.
func Mul(a, b *Dense) (*Dense, error) { return Default().Mul(a, b) }

// Pow returns a^p using the Default engine.
func Pow(a *Dense, p int) (*Dense, error) { return Default().Pow(a, p) }

// Add returns m+b using the Default engine.
func (m *Dense) Add(b *Dense) (*Dense, error) { return Default().Add(m, b) }

// Sub returns m-b using the Default engine.
func (m *Dense) Sub(b *Dense) (*Dense, error) { return Default().Sub(m, b) }

// Neg returns -m using the Default engine.
func (m *Dense) Neg() (*Dense, error) { return Default().Neg(m) }

// Abs returns |m| using the Default engine.
func (m *Dense) Abs() (*Dense, error) { return Default().Abs(m) }

// Mul returns m×b using the Default engine.
func (m *Dense) Mul(b *Dense) (*Dense, error) { return Default().Mul(m, b) }

// Pow returns m^p using the Default engine.
func (m *Dense) Pow(p int) (*Dense, error) { return Default().Pow(m, p) }
