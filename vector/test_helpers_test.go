// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for vector tests and benchmarks.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

// mustNew ALLOCATES a zero vector of length n or fails the test.
func mustNew[T vector.Number](tb testing.TB, n int) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](n)
	if err != nil {
		tb.Fatalf("vector.New(%d): %v", n, err)
	}

	return v
}

// mustFrom builds a vector from literal values or fails the test.
func mustFrom[T vector.Number](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(vals)
	if err != nil {
		tb.Fatalf("vector.FromSlice(%v): %v", vals, err)
	}

	return v
}

// fillRand writes deterministic pseudo-random values in [-1, 1) into v.
func fillRand(tb testing.TB, v *vector.Vector[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < v.Len(); i++ {
		if err := v.Set(i, rng.Float64()*2-1); err != nil {
			tb.Fatalf("Set(%d): %v", i, err)
		}
	}
}
