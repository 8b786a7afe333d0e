// SPDX-License-Identifier: MIT

package banded

// Operator is the capability a 1D discretized derivative exposes to
// downstream composers: it owns an order and maps a field of that length to
// a field of the same length. TriDiagonal and PentaDiagonal both implement
// it, so code like the mixed-derivative composer is written once against
// this interface instead of per concrete band type.
type Operator interface {
	// Order reports the number of grid points the operator acts on.
	Order() int
	// Action applies the operator to a field of length Order and returns a
	// fresh slice of the same length. Implementations panic on a length
	// mismatch; validate before calling when the length is caller-supplied.
	Action(v []float64) []float64
}

// Both band types satisfy Operator.
var (
	_ Operator = (*TriDiagonal)(nil)
	_ Operator = (*PentaDiagonal)(nil)
)
