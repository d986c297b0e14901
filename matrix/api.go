// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, function-style entry points mirroring the methods.
//   - Each facade delegates to the method.
//   - Nil receivers are reported as ErrNilMatrix instead of panicking.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// Sum is an alias for a.Add(b): element-wise a + b.
// Complexity: O(n²).
func Sum[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b): element-wise a − b.
// Complexity: O(n²).
func Diff[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf(opSub, ErrNilMatrix)
	}

	return a.Sub(b)
}

// Product is an alias for a.Mul(b): naive matrix product a × b.
// Complexity: O(n³).
func Product[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}

	return a.Mul(b)
}

// ScaleBy is an alias for m.MulScalar(x).
// Complexity: O(n²).
func ScaleBy[T vector.Number](m *Matrix[T], x T) (*Matrix[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMulScalar, ErrNilMatrix)
	}

	return m.MulScalar(x)
}

// MatVecMul is an alias for m.MulVec(v): y = m·v.
// Complexity: O(n²).
func MatVecMul[T vector.Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}

	return m.MulVec(v)
}
