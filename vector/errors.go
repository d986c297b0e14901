// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every exported
// operation returns one of these (possibly wrapped with operation context)
// and tests MUST check them via errors.Is. No operation panics on
// user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for grep-ability. Call sites
// wrap with vectorErrorf(op, err) or indexErrorf(op, i, n, err); callers still
// match the sentinel with errors.Is.

var (
	// ErrInvalidSize is returned when a requested length is zero, negative or
	// exceeds MaxVectorSize. Raised before any allocation.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	// At/Set/Ref MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates operands of a binary operation with different lengths.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrMalformedInput indicates that textual input could not be parsed into
	// the element type (or ended early).
	ErrMalformedInput = errors.New("vector: malformed input")
)

// Operation tags used in error wrappers.
const (
	opNew        = "New"
	opFromSlice  = "FromSlice"
	opAssign     = "Assign"
	opAssignMove = "AssignMove"
	opAt         = "At"
	opSet        = "Set"
	opSetValues  = "SetValues"
	opRef        = "Ref"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opMulScalar  = "MulScalar"
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opWrite      = "Write"
	opRead       = "Read"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// indexErrorf attaches the offending index and current length.
func indexErrorf(op string, i, n int, err error) error {
	return fmt.Errorf("Vector.%s(%d) with len %d: %w", op, i, n, err)
}
