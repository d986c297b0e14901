// SPDX-License-Identifier: MIT
// Package matrix provides the matrix-level arithmetic kernels: scalar
// multiply, matrix×vector, element-wise add/sub and matrix×matrix.
// All kernels perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Layer matrix operations over row-vector operations (row*x, row·v, row±row).
//   - Always allocate a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed i→j→k loop orders; accumulators start at T's zero value.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// MulScalar returns a new matrix whose row i is row_i * x.
//
// Errors:
//   - ErrInvalidSize when m is empty (no result can be constructed).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) MulScalar(x T) (*Matrix[T], error) {
	if err := vector.ValidateSize(len(m.rows), MaxMatrixSize); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	out := &Matrix[T]{rows: make([]*vector.Vector[T], len(m.rows))}
	for i, r := range m.rows {
		row, err := r.MulScalar(x)
		if err != nil {
			return nil, matrixErrorf(opMulScalar, fmt.Errorf("row %d: %w", i, err))
		}
		out.rows[i] = row
	}

	return out, nil
}

// MulVec computes y = m·v where y[i] = row_i · v.
// Implementation:
//   - Stage 1: validate v (non-nil, v.Len() == Dim()).
//   - Stage 2: one dot product per row into a fresh vector.
//
// Errors:
//   - ErrNilVector, ErrSizeMismatch (before any element work).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := validateVecLen(m, v); err != nil {
		return nil, mismatchErrorf(opMulVec, len(m.rows), v, err)
	}
	y, err := vector.New[T](len(m.rows))
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	for i, r := range m.rows {
		acc, err := r.Dot(v)
		if err != nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("row %d: %w", i, err))
		}
		_ = y.Set(i, acc) // i < Dim() == y.Len()
	}

	return y, nil
}

// mismatchErrorf attaches the dimension and the operand length, if known.
func mismatchErrorf[T vector.Number](op string, dim int, v *vector.Vector[T], err error) error {
	if v == nil {
		return matrixErrorf(op, err)
	}

	return fmt.Errorf("Matrix.%s(dim %d vs len %d): %w", op, dim, v.Len(), err)
}

// addSub computes row-wise out_i = f(m_i, o_i) for f ∈ {Add, Sub}.
// Internal helper for Add/Sub to share validation and allocation.
func (m *Matrix[T]) addSub(o *Matrix[T], opTag string) (*Matrix[T], error) {
	if err := validateOperand(m, o); err != nil {
		return nil, dimErrorf(opTag, m, o, err)
	}
	if err := vector.ValidateSize(len(m.rows), MaxMatrixSize); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Matrix[T]{rows: make([]*vector.Vector[T], len(m.rows))}
	var (
		row *vector.Vector[T]
		err error
	)
	for i, r := range m.rows {
		if opTag == opAdd {
			row, err = r.Add(o.rows[i])
		} else {
			row, err = r.Sub(o.rows[i])
		}
		if err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
		out.rows[i] = row
	}

	return out, nil
}

// dimErrorf attaches both dimensions when the operand is present.
func dimErrorf[T vector.Number](op string, m, o *Matrix[T], err error) error {
	if o == nil {
		return matrixErrorf(op, err)
	}

	return fmt.Errorf("Matrix.%s(dim %d vs %d): %w", op, len(m.rows), len(o.rows), err)
}

// Add computes the element-wise sum C = M + O as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrSizeMismatch (dimension mismatch),
//     ErrInvalidSize (empty operands).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, opAdd) }

// Sub computes the element-wise difference C = M - O as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrSizeMismatch (dimension mismatch),
//     ErrInvalidSize (empty operands).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, opSub) }

// Mul performs the standard product C = M × O:
// C[i][j] = Σ_k M[i][k]*O[k][j], each accumulator starting at T's zero value.
// Implementation:
//   - Stage 1: validate O (non-nil, same dimension).
//   - Stage 2: snapshot operand rows once, then the naive i→j→k triple loop.
//
// Behavior highlights:
//   - No blocking, no zero-skipping: every product term is evaluated, so
//     floating-point NaN/Inf propagate exactly as the definition dictates.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch, ErrInvalidSize (empty operands).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := validateOperand(m, o); err != nil {
		return nil, dimErrorf(opMul, m, o, err)
	}
	n := len(m.rows)
	if err := vector.ValidateSize(n, MaxMatrixSize); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	a := make([][]T, n) // a[i][k] = M[i][k]
	b := make([][]T, n) // b[k][j] = O[k][j]
	for i := 0; i < n; i++ {
		a[i] = m.rows[i].Values()
		b[i] = o.rows[i].Values()
	}

	out := &Matrix[T]{rows: make([]*vector.Vector[T], n)}
	buf := make([]T, n) // one result row, reused
	var (
		i, j, k   int
		acc, zero T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = zero // additive identity
			for k = 0; k < n; k++ {
				acc += a[i][k] * b[k][j]
			}
			buf[j] = acc
		}
		row, err := vector.FromSlice(buf) // copies buf
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		out.rows[i] = row
	}

	return out, nil
}
