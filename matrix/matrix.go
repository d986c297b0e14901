// SPDX-License-Identifier: MIT

// Package matrix - square storage over owned row vectors & safe accessors.
//
// Purpose:
//   - Compose Dim() vector.Vector rows, each of length Dim().
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Keep copies (Clone/Assign) deep and transfers (Move/AssignMove) O(1).
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²); Move/AssignMove/Dim/Row: O(1); At/Set: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Matrix is a square n×n container of T.
//   - rows holds exactly n exclusively owned rows, each of length n.
//   - The zero value and a moved-from matrix are empty (rows == nil, Dim()==0).
type Matrix[T vector.Number] struct {
	rows []*vector.Vector[T] // never shared with another Matrix
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an n×n matrix with every element set to T's zero value.
// Implementation:
//   - Stage 1: validate 1 <= n <= MaxMatrixSize; else ErrInvalidSize.
//   - Stage 2: construct n fresh rows via vector.New(n).
//
// Errors:
//   - ErrInvalidSize (before any allocation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T vector.Number](n int) (*Matrix[T], error) {
	if err := vector.ValidateSize(n, MaxMatrixSize); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opNew, n, err)
	}
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		row, err := vector.New[T](n)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{rows: rows}, nil
}

// FromRows builds a matrix holding a copy of src, where src[i] is row i.
//
// Errors:
//   - ErrInvalidSize when len(src) is 0 or exceeds MaxMatrixSize.
//   - ErrNonSquare when any len(src[i]) != len(src).
//
// Complexity: O(n²).
func FromRows[T vector.Number](src [][]T) (*Matrix[T], error) {
	n := len(src)
	if err := vector.ValidateSize(n, MaxMatrixSize); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d rows): %w", opFromRows, n, err)
	}
	// Validate the whole shape before allocating any row.
	for i, r := range src {
		if len(r) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w", opFromRows, i, len(r), n, ErrNonSquare)
		}
	}
	rows := make([]*vector.Vector[T], n)
	for i, r := range src {
		row, err := vector.FromSlice(r)
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{rows: rows}, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Complexity: O(n²).
func Identity[T vector.Number](n int) (*Matrix[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		_ = m.rows[i].Set(i, 1) // index is in range after New
	}

	return m, nil
}

// Dim returns the side length (0 for an empty matrix). O(1).
func (m *Matrix[T]) Dim() int { return len(m.rows) }

// IsEmpty reports whether m is in the empty (zero-value or moved-from) state.
func (m *Matrix[T]) IsEmpty() bool { return len(m.rows) == 0 }

// cloneRows deep-copies a row set.
func cloneRows[T vector.Number](rows []*vector.Vector[T]) []*vector.Vector[T] {
	if len(rows) == 0 {
		return nil
	}
	out := make([]*vector.Vector[T], len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}

	return out
}

// Clone returns a deep copy: every row is freshly allocated.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: cloneRows(m.rows)}
}

// Move transfers m's rows to a new matrix in O(1) and leaves m empty.
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows}
	m.rows = nil

	return out
}

// Assign replaces m with a deep copy of src (dimension may change).
// Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows = cloneRows(src.rows)

	return nil
}

// AssignMove adopts src's rows and leaves src empty.
// Moving a matrix into itself is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Matrix[T]) AssignMove(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opAssignMove, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows = src.rows
	src.rows = nil

	return nil
}

// Row returns a handle to row i. The handle reads and writes elements of
// m in place; it cannot replace the row or change its length.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Dim(). The zero Row is returned.
//
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	if err := validateIndex(i, len(m.rows)); err != nil {
		return Row[T]{}, fmt.Errorf("Matrix.%s(%d) with dim %d: %w", opRow, i, len(m.rows), err)
	}

	return Row[T]{v: m.rows[i]}, nil
}

// At returns the element at (i, j). Row and column are checked independently.
//
// Errors:
//   - ErrIndexOutOfRange when either index is out of bounds.
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T
		return zero, matrixErrorf(opAt, err)
	}
	x, err := row.At(j)
	if err != nil {
		return x, matrixErrorf(opAt, err)
	}

	return x, nil
}

// Set stores x at (i, j). Nothing is written on error.
//
// Errors:
//   - ErrIndexOutOfRange when either index is out of bounds.
func (m *Matrix[T]) Set(i, j int, x T) error {
	row, err := m.Row(i)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	if err = row.Set(j, x); err != nil {
		return matrixErrorf(opSet, err)
	}

	return nil
}

// Values returns a deep snapshot of the elements, row by row.
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}

// Equal reports whether m and o have the same dimension and row-wise equal
// contents. It stops at the first mismatching row. Two nil matrices are equal.
// Complexity: O(n²) worst case.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }
