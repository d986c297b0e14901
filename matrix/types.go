// SPDX-License-Identifier: MIT

// Package matrix: process-wide limits.
package matrix

// MaxMatrixSize is the upper bound on a matrix dimension.
// It is a process-wide constant with no runtime override.
const MaxMatrixSize = 10_000
