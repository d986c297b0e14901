// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for size, index and operand checks.
//   - Return plain sentinels; callers wrap with their operation tag.
//
// All checks are pure, allocate nothing and run in O(1).

package vector

// ValidateSize reports whether n is a legal length under limit.
// Returns ErrInvalidSize when n < 1 or n > limit.
// The limit is injected so that both vector and matrix constructors share
// one rule with their own bound.
// Complexity: O(1).
func ValidateSize(n, limit int) error {
	if n < 1 || n > limit {
		return ErrInvalidSize
	}

	return nil
}

// validateIndex checks 0 <= i < n. Negative indices are rejected directly
// rather than relying on any wrap-around.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateOperand – Composite: NotNil(o) → SameSize(v, o).
// Assumes v is non-nil (it is the receiver).
func validateOperand[T Number](v, o *Vector[T]) error {
	if o == nil {
		return ErrNilVector
	}
	if len(v.data) != len(o.data) {
		return ErrSizeMismatch
	}

	return nil
}
