// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/dynmat/vector"

// Row is a restricted handle to one row of a Matrix.
// It exposes element access and read-only vector operations, but nothing
// that replaces storage or changes length. Writes through a Row are
// visible in the owning Matrix.
//
// The zero Row (returned alongside an error) behaves as an empty row.
type Row[T vector.Number] struct {
	v *vector.Vector[T]
}

// vec returns the underlying row, or an empty vector for the zero Row.
func (r Row[T]) vec() *vector.Vector[T] {
	if r.v == nil {
		return &vector.Vector[T]{}
	}

	return r.v
}

// Len returns the row length (equal to the matrix dimension).
func (r Row[T]) Len() int { return r.vec().Len() }

// At returns element j of the row. Errors: ErrIndexOutOfRange.
func (r Row[T]) At(j int) (T, error) { return r.vec().At(j) }

// Set stores x at column j. Errors: ErrIndexOutOfRange.
func (r Row[T]) Set(j int, x T) error { return r.vec().Set(j, x) }

// Ref returns a pointer to element j for in-place updates.
// Errors: ErrIndexOutOfRange.
func (r Row[T]) Ref(j int) (*T, error) { return r.vec().Ref(j) }

// Dot returns the dot product of the row with x.
// Errors: ErrNilVector, ErrSizeMismatch.
func (r Row[T]) Dot(x *vector.Vector[T]) (T, error) { return r.vec().Dot(x) }

// Equal compares two rows element-wise.
func (r Row[T]) Equal(o Row[T]) bool { return r.vec().Equal(o.vec()) }

// Values returns a copy of the row's elements.
func (r Row[T]) Values() []T { return r.vec().Values() }

// Clone copies the row out as an independent vector.
func (r Row[T]) Clone() *vector.Vector[T] { return r.vec().Clone() }

// String renders the row in the vector textual format.
func (r Row[T]) String() string { return r.vec().String() }
