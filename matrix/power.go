// SPDX-License-Identifier: MIT

package matrix

// Pow returns a raised to the non-negative integer power p.
//
// Implementation:
//   - Stage 1: validate (Live → Square → Exponent) before any allocation.
//   - Stage 2: p == 0 gives the identity whatever a holds; p == 1 a copy.
//   - Stage 3: binary exponentiation. The running base starts as a and is
//     squared once per exponent bit; the running result (unset = identity)
//     absorbs the base on every set bit. Every product goes through e.Mul.
//     Superseded intermediates are released immediately.
//
// Errors:
//   - ErrNotSquare when rows != cols, ErrInvalidExponent when p < 0.
//   - ErrAllocationFailure from any intermediate; no partial result escapes.
//
// Complexity:
//   - Time O(n³ · log p) multiplications, Space O(n²) for three live buffers.
func (e *Engine) Pow(a *Dense, p int) (*Dense, error) {
	if err := ValidatePow(a, p); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	switch p {
	case 0:
		out, err := NewIdentity(a.rows)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return out, nil
	case 1:
		out, err := a.Clone()
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return out, nil
	}

	var (
		acc  *Dense // nil stands for the identity
		base = a    // borrowed until the first squaring
		next *Dense
		err  error
	)
	// dropBase releases base unless it is still the caller's matrix.
	dropBase := func() {
		if base != a {
			base.Release()
		}
	}

	for {
		if p&1 == 1 {
			if acc == nil {
				next, err = base.Clone()
			} else {
				next, err = e.Mul(acc, base)
				acc.Release()
			}
			if err != nil {
				dropBase()

				return nil, matrixErrorf(opPow, err)
			}
			acc = next
		}
		p >>= 1
		if p == 0 {
			break
		}
		next, err = e.Mul(base, base)
		dropBase()
		if err != nil {
			acc.Release()

			return nil, matrixErrorf(opPow, err)
		}
		base = next
	}
	dropBase()

	return acc, nil
}
