// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Negative tolerances are taken by absolute value. NaN never compares close;
// equal infinities do.
//
// Errors:
//   - ErrInvalidTolerance for NaN/±Inf tolerances.
//   - ErrNilMatrix, ErrReleased, ErrShapeMismatch for unusable operands.
//   - Any error returned by At of a non-Dense operand.
//
// Complexity: O(r*c), no allocation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	const tag = "AllClose"
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(tag, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := checkComparable(a, b); err != nil {
		return false, matrixErrorf(tag, err)
	}

	// Dense fast-path: walk rows directly when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < da.rows; i++ {
				ra, rb := da.row(i), db.row(i)
				for j := range ra {
					if !withinTol(ra[j], rb[j], rtol, atol) {
						return false, nil
					}
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, bv, err = atPair(a, b, i, j); err != nil {
				return false, matrixErrorf(tag, err)
			}
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality (NaN != NaN).
func Equal(a, b Matrix) (bool, error) {
	if err := checkComparable(a, b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, bv, err = atPair(a, b, i, j); err != nil {
				return false, matrixErrorf("Equal", err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// checkComparable validates presence, liveness and equal shape of a and b.
func checkComparable(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	for _, m := range []Matrix{a, b} {
		if d, ok := m.(*Dense); ok {
			if err := ValidateLive(d); err != nil {
				return err
			}
		}
	}

	return ValidateSameShape(a, b)
}

// atPair reads (i, j) from both matrices. Wrapped handles are only checked
// here, so a released *Dense behind a Matrix wrapper surfaces ErrReleased.
func atPair(a, b Matrix, i, j int) (av, bv float64, err error) {
	if av, err = a.At(i, j); err != nil {
		return 0, 0, err
	}
	if bv, err = b.At(i, j); err != nil {
		return 0, 0, err
	}

	return av, bv, nil
}

func withinTol(x, y, rtol, atol float64) bool {
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
