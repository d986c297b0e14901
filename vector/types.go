// SPDX-License-Identifier: MIT

// Package vector: element constraint and process-wide limits.
// This file contains ONLY domain-facing types and constants; the container
// itself lives in vector.go.
package vector

import "golang.org/x/exp/constraints"

// MaxVectorSize is the upper bound on a vector length.
// It is a process-wide constant with no runtime override.
const MaxVectorSize = 100_000_000

// Number is the set of element types a Vector may hold.
// Every member supports + - * and ==, and its zero value is the additive
// identity used to initialize elements and accumulators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
