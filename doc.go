// Package dynmat is a small dense linear-algebra toolkit: fixed-length
// numeric vectors and square matrices built from vector rows, with
// bounds-checked access, value/move ownership and sentinel-error reporting.
//
// Layout:
//
//	vector/         Vector[T]: construction, copy/move, access, scalar and
//	                element-wise arithmetic, dot product, textual I/O
//	matrix/         Matrix[T]: square matrices over vector rows, Row handles,
//	                element-wise arithmetic, MulVec, Mul, textual I/O
//	internal/cli/   cobra command tree driving both packages over text input
//	cmd/dynmat/     the dynmat binary
//
// Element types are any Go integer, float or complex type (vector.Number).
// Integer arithmetic wraps per Go semantics; floats follow IEEE-754.
//
// Quick start:
//
//	a, _ := vector.FromSlice([]int{1, 2, 3})
//	b, _ := vector.FromSlice([]int{4, 5, 6})
//	dot, _ := a.Dot(b) // 32
//
//	m, _ := matrix.Identity[float64](3)
//	y, _ := m.MulVec(x) // y equals x
//
// Errors are sentinels (vector.ErrInvalidSize, vector.ErrIndexOutOfRange,
// vector.ErrSizeMismatch, matrix.ErrNonSquare, ...) wrapped with operation
// context; match them with errors.Is.
package dynmat
