// SPDX-License-Identifier: MIT
// Package vector: textual I/O.
//
// Format:
//   - Output: Len() elements in index order, each formatted with the
//     configured verb (default %v), separated by a single space; no length
//     prefix and no trailing separator or newline.
//   - Input: exactly Len() whitespace-delimited tokens parsed as T, in order.
//     The length is never re-read or changed by input.

package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ScanReader is a reader that can push back one rune. fmt scanning uses
// UnreadRune to stop exactly after a token.
type ScanReader interface {
	io.Reader
	io.RuneScanner
}

// NewScanReader returns r itself when it already implements ScanReader,
// otherwise a bufio.Reader over r. Reading several values from one stream
// (e.g. matrix rows) must reuse the returned reader, because a bufio.Reader
// may read ahead of the last consumed token.
func NewScanReader(r io.Reader) ScanReader {
	if sr, ok := r.(ScanReader); ok {
		return sr
	}

	return bufio.NewReader(r)
}

// Write renders v to w using the textual format.
// Errors from w are wrapped with the Write tag.
// Complexity: O(n).
func (v *Vector[T]) Write(w io.Writer, opts ...WriteOption) error {
	o := NewWriteOptions(opts...)
	bw := bufio.NewWriter(w)
	for i, x := range v.data {
		if i > 0 {
			if _, err := bw.WriteString(o.sep); err != nil {
				return vectorErrorf(opWrite, err)
			}
		}
		if _, err := fmt.Fprintf(bw, o.verb, x); err != nil {
			return vectorErrorf(opWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return vectorErrorf(opWrite, err)
	}

	return nil
}

// String renders v in the default textual format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = v.Write(&sb) // strings.Builder never fails

	return sb.String()
}

// Read overwrites every element of v with the next Len() tokens from r.
// Implementation:
//   - Stage 1: ScanValues parses all tokens into a staging buffer.
//   - Stage 2: commit the buffer into v's existing storage.
//
// On error v is left unchanged. References from Ref stay valid.
//
// Errors:
//   - ErrMalformedInput (wrapping the fmt/io cause) on a bad token or early EOF.
//
// Complexity: O(n).
func (v *Vector[T]) Read(r io.Reader) error {
	if len(v.data) == 0 {
		return nil
	}
	staged, err := ScanValues[T](r, len(v.data))
	if err != nil {
		return err
	}
	copy(v.data, staged)

	return nil
}

// ScanValues reads exactly n whitespace-delimited tokens from r and parses
// each as T. A token is rejected unless it parses completely, so "3.5" is
// not an int and "1x" is not a float64.
//
// Errors:
//   - ErrMalformedInput (wrapping the fmt/io cause) on a bad token or early EOF.
//
// Complexity: O(n).
func ScanValues[T Number](r io.Reader, n int) ([]T, error) {
	rs := NewScanReader(r)
	out := make([]T, n)
	var tok string
	for i := range out {
		if _, err := fmt.Fscan(rs, &tok); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, readErrorf(i, n, err)
		}
		x, err := parseToken[T](tok)
		if err != nil {
			return nil, readErrorf(i, n, err)
		}
		out[i] = x
	}

	return out, nil
}

// parseToken parses one whole token as T; trailing characters are an error.
func parseToken[T Number](tok string) (T, error) {
	var x T
	sr := strings.NewReader(tok)
	if _, err := fmt.Fscan(sr, &x); err != nil {
		return x, fmt.Errorf("token %q: %w", tok, err)
	}
	if sr.Len() != 0 {
		return x, fmt.Errorf("token %q: trailing %q", tok, tok[len(tok)-sr.Len():])
	}

	return x, nil
}

func readErrorf(i, n int, err error) error {
	return fmt.Errorf("Vector.%s(element %d of %d): %w: %w", opRead, i, n, ErrMalformedInput, err)
}

// SetValues overwrites v's elements in place with src.
// The storage is kept, so references from Ref observe the new values.
//
// Errors:
//   - ErrSizeMismatch when len(src) != Len(). Nothing is written.
//
// Complexity: O(n).
func (v *Vector[T]) SetValues(src []T) error {
	if len(src) != len(v.data) {
		return fmt.Errorf("Vector.%s(len %d vs %d): %w", opSetValues, len(v.data), len(src), ErrSizeMismatch)
	}
	copy(v.data, src)

	return nil
}
