// SPDX-License-Identifier: MIT

// Package vector - owning storage, ownership transfer & safe accessors.
//
// Purpose:
//   - Own a slice whose length IS the vector length (cap == len).
//   - Make copies explicit (Clone/Assign) and transfers explicit (Move/AssignMove).
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/AssignMove/Len: O(1); At/Set/Ref: O(1).

package vector

import "fmt"

// Vector is a dense, owning sequence of n elements of type T.
//   - data holds exactly n elements (len == cap == n).
//   - The zero value and a moved-from vector are empty (data == nil).
type Vector[T Number] struct {
	data []T // owned storage; never shared with another Vector
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a vector of length n with every element set to T's zero value.
// Implementation:
//   - Stage 1: ValidateSize(n, MaxVectorSize).
//   - Stage 2: allocate a zero-filled slice of exactly n elements.
//
// Errors:
//   - ErrInvalidSize when n < 1 or n > MaxVectorSize.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](n int) (*Vector[T], error) {
	if err := ValidateSize(n, MaxVectorSize); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d): %w", opNew, n, err)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice creates a vector holding a copy of src.
// The length is len(src); the caller keeps ownership of src.
//
// Errors:
//   - ErrInvalidSize when src is nil/empty or longer than MaxVectorSize.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T Number](src []T) (*Vector[T], error) {
	if err := ValidateSize(len(src), MaxVectorSize); err != nil {
		return nil, fmt.Errorf("Vector.%s(len %d): %w", opFromSlice, len(src), err)
	}

	return &Vector[T]{data: clone(src)}, nil
}

// clone returns an exact-capacity copy of s (nil for an empty s).
func clone[T Number](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	cp := make([]T, len(s))
	copy(cp, s)

	return cp
}

// Clone returns a deep copy with independent storage.
// Cloning an empty vector yields an empty vector.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: clone(v.data)}
}

// Move transfers v's storage to a new vector in O(1) and leaves v empty.
// The emptied v may only be reassigned, queried for Len/IsEmpty, compared
// or dropped; every index on it fails with ErrIndexOutOfRange.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data}
	v.data = nil

	return out
}

// Assign replaces v's length and contents with a copy of src.
// Self-assignment is a no-op. The previous storage is released.
//
// Errors:
//   - ErrNilVector when src is nil.
//
// Complexity: O(len(src)).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opAssign, ErrNilVector)
	}
	if v == src {
		return nil
	}
	v.data = clone(src.data)

	return nil
}

// AssignMove adopts src's storage and leaves src empty.
// Moving a vector into itself is a no-op.
//
// Errors:
//   - ErrNilVector when src is nil.
//
// Complexity: O(1).
func (v *Vector[T]) AssignMove(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opAssignMove, ErrNilVector)
	}
	if v == src {
		return nil
	}
	v.data = src.data
	src.data = nil

	return nil
}

// Len returns the current length (0 for an empty vector). O(1).
func (v *Vector[T]) Len() int { return len(v.data) }

// IsEmpty reports whether v is in the empty (zero-value or moved-from) state.
func (v *Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// At returns the element at i.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		var zero T
		return zero, indexErrorf(opAt, i, len(v.data), err)
	}

	return v.data[i], nil
}

// Set stores x at i. Nothing is written on error.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len().
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return indexErrorf(opSet, i, len(v.data), err)
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to the element at i for in-place updates.
// The pointer stays valid while v owns its current storage; after Move,
// Assign or AssignMove on v it refers to storage v no longer owns.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len(). No reference is returned.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return nil, indexErrorf(opRef, i, len(v.data), err)
	}

	return &v.data[i], nil
}

// Values returns a copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports whether v and o have the same length and pairwise equal
// elements. It returns false on the first length mismatch, then on the
// first unequal element. Two nil vectors are equal; nil and non-nil are not.
// Complexity: O(1) best case, O(n) worst case.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }
