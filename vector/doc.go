// Package vector provides Vector, an owning dense sequence of numeric
// elements with a length fixed at construction.
//
// The vector package provides:
//
//   - Construction from a length (zero-filled) or from an existing slice (copied).
//   - Explicit copy (Clone/Assign) and ownership transfer (Move/AssignMove).
//     A moved-from vector is empty: Len()==0, every index fails.
//   - Bounds-checked element access (At/Set/Ref); there is no unchecked path.
//   - Scalar and element-wise arithmetic that always returns a fresh vector.
//   - A whitespace-separated textual format (Write/Read) without a length prefix.
//
// All size and index violations are reported through the sentinel errors
// in errors.go and are meant to be matched with errors.Is.
//
// Vectors are not safe for concurrent mutation; concurrent reads are fine.
package vector
