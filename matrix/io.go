// SPDX-License-Identifier: MIT
// Package matrix: textual I/O.
//
// Format:
//   - Output: Dim() lines; line i is the vector format of row i followed by '\n'.
//   - Input: Dim() rows read sequentially with the vector input contract.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynmat/vector"
)

// Write renders m to w, one row per line. Options are forwarded to every row.
// Complexity: O(n²).
func (m *Matrix[T]) Write(w io.Writer, opts ...vector.WriteOption) error {
	bw := bufio.NewWriter(w)
	for i, r := range m.rows {
		if err := r.Write(bw, opts...); err != nil {
			return matrixErrorf(opWrite, fmt.Errorf("row %d: %w", i, err))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWrite, err)
	}

	return nil
}

// String renders m in the default textual format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Write(&sb) // strings.Builder never fails

	return sb.String()
}

// Read overwrites m with the next Dim()×Dim() tokens from r, row by row.
// Implementation:
//   - Stage 1: parse every row into a staging buffer through one shared scanner.
//   - Stage 2: copy the buffer into the existing rows.
//
// On error m is left unchanged. Row handles and Ref pointers taken before
// Read stay attached to m and observe the new values.
//
// Errors:
//   - ErrMalformedInput (wrapping the cause) on a bad token or early EOF.
//
// Complexity: O(n²).
func (m *Matrix[T]) Read(r io.Reader) error {
	rs := vector.NewScanReader(r)
	n := len(m.rows)
	staged := make([][]T, n)
	for i := range staged {
		vals, err := vector.ScanValues[T](rs, n)
		if err != nil {
			return matrixErrorf(opRead, fmt.Errorf("row %d: %w", i, err))
		}
		staged[i] = vals
	}
	for i, row := range m.rows {
		if err := row.SetValues(staged[i]); err != nil {
			return matrixErrorf(opRead, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}
