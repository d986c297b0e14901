// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Dimension).
//   - All checks are O(1) and allocate nothing.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// validateIndex checks 0 <= i < n for a row or column index.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateOperand – Composite: NotNil(o) → SameDim(m, o).
// Assumes m is the non-nil receiver.
func validateOperand[T vector.Number](m, o *Matrix[T]) error {
	if o == nil {
		return ErrNilMatrix
	}
	if len(m.rows) != len(o.rows) {
		return ErrSizeMismatch
	}

	return nil
}

// validateVecLen – Composite: NotNil(v) → v.Len() == m.Dim().
func validateVecLen[T vector.Number](m *Matrix[T], v *vector.Vector[T]) error {
	if v == nil {
		return ErrNilVector
	}
	if v.Len() != len(m.rows) {
		return ErrSizeMismatch
	}

	return nil
}
