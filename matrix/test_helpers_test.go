// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests and benchmarks.
//   • Bridge to gonum/mat so products can be cross-checked against an
//     independent implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"gonum.org/v1/gonum/mat"
)

// mustNew ALLOCATES an n×n zero matrix or fails the test (fatal on error).
func mustNew[T vector.Number](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		tb.Fatalf("matrix.New(%d): %v", n, err)
	}

	return m
}

// mustRows builds a matrix from nested literals or fails the test.
func mustRows[T vector.Number](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("matrix.FromRows: %v", err)
	}

	return m
}

// mustVec builds a vector from literal values or fails the test.
func mustVec[T vector.Number](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(vals)
	if err != nil {
		tb.Fatalf("vector.FromSlice: %v", err)
	}

	return v
}

// fillRand writes deterministic pseudo-random values in [-1, 1) into m.
func fillRand(tb testing.TB, m *matrix.Matrix[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// toGonum copies m into a row-major *mat.Dense.
func toGonum(m *matrix.Matrix[float64]) *mat.Dense {
	n := m.Dim()
	data := make([]float64, 0, n*n)
	for _, row := range m.Values() {
		data = append(data, row...)
	}

	return mat.NewDense(n, n, data)
}

// requireMatchesGonum asserts element-wise |got - want| <= tol.
func requireMatchesGonum(tb testing.TB, want mat.Matrix, got *matrix.Matrix[float64], tol float64) {
	tb.Helper()
	r, c := want.Dims()
	if r != got.Dim() || c != got.Dim() {
		tb.Fatalf("shape mismatch: gonum %dx%d vs dim %d", r, c, got.Dim())
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g, err := got.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if d := g - want.At(i, j); d > tol || d < -tol {
				tb.Fatalf("(%d,%d): got %v, want %v", i, j, g, want.At(i, j))
			}
		}
	}
}
