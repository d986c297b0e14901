// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported validators to matrix_test only.
// Generic functions cannot be bound to variables uninstantiated, so the
// bridges are instantiated for int.

var (
	ExportedValidateIndex = validateIndex

	ExportedValidateOperand = validateOperand[int]
	ExportedValidateVecLen  = validateVecLen[int]
)
