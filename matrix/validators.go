// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand validation.
//   - Keep the Engine minimal by delegating nil/shape/exponent checks here.
//   - Return sentinel errors tagged with the validator name; call sites add
//     their own operation context.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Live → Shape), so
//     the first failing condition decides the returned sentinel.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive ensures a Dense handle is non-nil and not released.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if err := m.live(); err != nil {
		return validatorErrorf("ValidateLive", err)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateExponent ensures p >= 0.
func ValidateExponent(p int) error {
	if p < 0 {
		return validatorErrorf("ValidateExponent", ErrInvalidExponent)
	}

	return nil
}

// ValidateBinarySameShape - Composite: Live(a) → Live(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBinaryMul - Composite: Live(a) → Live(b) → MulCompatible.
func ValidateBinaryMul(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}

	return nil
}

// ValidatePow - Composite: Live → Square → Exponent.
func ValidatePow(m *Dense, p int) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidatePow", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidatePow", err)
	}
	if err := ValidateExponent(p); err != nil {
		return validatorErrorf("ValidatePow", err)
	}

	return nil
}
