// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// readVector allocates a vector of length n and fills it from r.
func readVector[T vector.Number](r io.Reader, n int, what string) (*vector.Vector[T], error) {
	v, err := vector.New[T](n)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: --size", what)
	}
	if err = v.Read(r); err != nil {
		return nil, errors.Wrapf(err, "read %s", what)
	}

	return v, nil
}

// readMatrix allocates an n×n matrix and fills it from r.
func readMatrix[T vector.Number](r io.Reader, n int, what string) (*matrix.Matrix[T], error) {
	m, err := matrix.New[T](n)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: --dim", what)
	}
	if err = m.Read(r); err != nil {
		return nil, errors.Wrapf(err, "read %s", what)
	}

	return m, nil
}

// parseScalar parses the --scalar flag as T.
func parseScalar[T vector.Number](text string) (T, error) {
	var x T
	if text == "" {
		return x, errors.New("--scalar is required")
	}
	if _, err := fmt.Sscan(text, &x); err != nil {
		return x, errors.Wrapf(err, "parse --scalar %q", text)
	}

	return x, nil
}
