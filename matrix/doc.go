// Package matrix offers Matrix, a square container composed of vector.Vector rows.
//
// The matrix package provides:
//
//   - Construction by dimension (zero-filled), from nested slices, or as identity.
//   - Explicit deep copy (Clone/Assign) and ownership transfer (Move/AssignMove).
//   - Bounds-checked two-step access: Row(i) then Row.At(j), each step checked.
//     The Row handle cannot change a row's length, so a Matrix is always square.
//   - Matrix arithmetic: scalar multiply, matrix×vector, matrix±matrix and
//     the naive O(n³) matrix×matrix product.
//   - A line-per-row textual format delegating to the vector format.
//
// The matrix package does NOT expose the vector surface on the matrix itself;
// only matrix-appropriate operations are available.
//
// See the examples in this package for usage patterns.
package matrix
