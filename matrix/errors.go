// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified with package vector).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// SHARED SENTINELS
// ----------------
// Size, index and mismatch conditions are the same conditions at both layers,
// so the matrix package re-exports the vector sentinels instead of declaring
// look-alikes. errors.Is(err, matrix.ErrSizeMismatch) and
// errors.Is(err, vector.ErrSizeMismatch) are interchangeable.
var (
	// ErrInvalidSize is returned when a dimension is < 1 or > MaxMatrixSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row or column index outside [0, Dim()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates incompatible dimensions between operands.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilVector indicates a nil vector operand (MulVec).
	ErrNilVector = vector.ErrNilVector

	// ErrMalformedInput indicates unparsable textual input.
	ErrMalformedInput = vector.ErrMalformedInput
)

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that nested input rows do not form a square.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opIdentity   = "Identity"
	opAssign     = "Assign"
	opAssignMove = "AssignMove"
	opRow        = "Row"
	opAt         = "At"
	opSet        = "Set"
	opMulScalar  = "MulScalar"
	opMulVec     = "MulVec"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opWrite      = "Write"
	opRead       = "Read"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}
