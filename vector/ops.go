// SPDX-License-Identifier: MIT
// Package vector: scalar and element-wise arithmetic.
//
// Purpose:
//   - Every operation allocates a fresh result of the receiver's length;
//     operands are never mutated.
//   - Binary operations check lengths before any element work begins.
//
// Determinism:
//   - Fixed 0..n-1 loop order; the dot product accumulates left to right
//     starting from T's zero value.

package vector

import "fmt"

// newResult allocates the output of a unary or binary kernel.
// An empty receiver cannot produce a result (length 0 is not constructible).
func newResult[T Number](op string, n int) (*Vector[T], error) {
	if err := ValidateSize(n, MaxVectorSize); err != nil {
		return nil, vectorErrorf(op, err)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// scalarKernel computes out[i] = f(v[i], x) into a fresh vector.
func (v *Vector[T]) scalarKernel(op string, x T, f func(a, b T) T) (*Vector[T], error) {
	out, err := newResult[T](op, len(v.data))
	if err != nil {
		return nil, err
	}
	for i, a := range v.data {
		out.data[i] = f(a, x)
	}

	return out, nil
}

// pairKernel computes out[i] = f(v[i], o[i]) after validating o.
func (v *Vector[T]) pairKernel(op string, o *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := validateOperand(v, o); err != nil {
		return nil, sizeErrorf(op, v, o, err)
	}
	out, err := newResult[T](op, len(v.data))
	if err != nil {
		return nil, err
	}
	for i, a := range v.data {
		out.data[i] = f(a, o.data[i])
	}

	return out, nil
}

// sizeErrorf wraps an operand error with both lengths when available.
func sizeErrorf[T Number](op string, v, o *Vector[T], err error) error {
	if o == nil {
		return vectorErrorf(op, err)
	}

	return fmt.Errorf("Vector.%s(len %d vs %d): %w", op, len(v.data), len(o.data), err)
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }

// AddScalar returns a new vector with out[i] = v[i] + x.
// Errors: ErrInvalidSize when v is empty.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(x T) (*Vector[T], error) {
	return v.scalarKernel(opAddScalar, x, add[T])
}

// SubScalar returns a new vector with out[i] = v[i] - x.
// Errors: ErrInvalidSize when v is empty.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(x T) (*Vector[T], error) {
	return v.scalarKernel(opSubScalar, x, sub[T])
}

// MulScalar returns a new vector with out[i] = v[i] * x.
// Errors: ErrInvalidSize when v is empty.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) (*Vector[T], error) {
	return v.scalarKernel(opMulScalar, x, mul[T])
}

// Add returns the element-wise sum v + o.
// Errors: ErrNilVector, ErrSizeMismatch (checked before any element work).
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.pairKernel(opAdd, o, add[T])
}

// Sub returns the element-wise difference v - o.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.pairKernel(opSub, o, sub[T])
}

// Dot returns Σ v[i]*o[i], accumulated from T's zero value.
// Two empty vectors have a zero dot product.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var acc T // additive identity
	if err := validateOperand(v, o); err != nil {
		return acc, sizeErrorf(opDot, v, o, err)
	}
	for i, a := range v.data {
		acc += a * o.data[i]
	}

	return acc, nil
}
