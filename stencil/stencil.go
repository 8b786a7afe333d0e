// SPDX-License-Identifier: MIT

// Package stencil derives finite-difference weights for arbitrary point
// spacings.
//
// Given the offsets d_k of the stencil points from the evaluation point, the
// weights w_k of the m-th derivative satisfy the moment conditions
//
//	Σ_k w_k · d_k^p = p! · δ_{p,m}   for p = 0..len(d)-1,
//
// i.e. the stencil reproduces the Taylor expansion of the derivative exactly
// for all polynomials up to degree len(d)-1. On irregular grids this system
// must be solved per row; both derivative builders share this package so
// sibling operators stay consistent.
package stencil

import (
	"errors"
	"math"
)

var (
	// ErrNoPoints indicates an empty offset set.
	ErrNoPoints = errors.New("stencil: offsets must be non-empty")
	// ErrDerivativeOrder indicates m outside [0, len(offsets)) — the stencil
	// cannot resolve a derivative of that order.
	ErrDerivativeOrder = errors.New("stencil: derivative order out of range for stencil size")
	// ErrDegenerateOffsets indicates repeated (or numerically coincident)
	// offsets; the moment system is singular.
	ErrDegenerateOffsets = errors.New("stencil: degenerate offsets")
)

// Weights computes the finite-difference weights of the m-th derivative for
// stencil points at the given offsets from the evaluation point.
//
// The s×s moment system (s = len(offsets)) is solved by Gaussian elimination
// with partial pivoting. Elimination order is fixed, so identical inputs
// yield bit-identical weights.
//
// Complexity: O(s³) time, O(s²) memory — s is the stencil width (≤ 6 for
// every operator in this module), so each call is O(1) in the grid size.
func Weights(offsets []float64, m int) ([]float64, error) {
	s := len(offsets)
	if s == 0 {
		return nil, ErrNoPoints
	}
	if m < 0 || m >= s {
		return nil, ErrDerivativeOrder
	}

	// Moment matrix a[p][k] = offsets[k]^p, right-hand side b[p] = p!·δ_{p,m}.
	a := make([][]float64, s)
	b := make([]float64, s)
	var p, k int
	for p = 0; p < s; p++ {
		a[p] = make([]float64, s)
		for k = 0; k < s; k++ {
			a[p][k] = pow(offsets[k], p)
		}
	}
	b[m] = factorial(m)

	return solve(a, b)
}

// solve performs in-place Gaussian elimination with partial pivoting on the
// s×s system a·w = b and returns w. a and b are consumed.
func solve(a [][]float64, b []float64) ([]float64, error) {
	s := len(b)
	var col, row, pivot, k int
	var best, f float64
	for col = 0; col < s; col++ {
		// pick the largest remaining pivot in this column
		pivot = col
		best = math.Abs(a[col][col])
		for row = col + 1; row < s; row++ {
			if abs := math.Abs(a[row][col]); abs > best {
				best = abs
				pivot = row
			}
		}
		if best == 0 {
			return nil, ErrDegenerateOffsets
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}
		for row = col + 1; row < s; row++ {
			f = a[row][col] / a[col][col]
			if f == 0 {
				continue
			}
			a[row][col] = 0
			for k = col + 1; k < s; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}

	// back substitution
	w := make([]float64, s)
	var sum float64
	for row = s - 1; row >= 0; row-- {
		sum = b[row]
		for k = row + 1; k < s; k++ {
			sum -= a[row][k] * w[k]
		}
		w[row] = sum / a[row][row]
	}

	return w, nil
}

// pow computes x^p for small non-negative integer p by repeated
// multiplication. math.Pow rounds differently across platforms for exact
// integer exponents; the plain product keeps weight derivation bit-stable.
func pow(x float64, p int) float64 {
	r := 1.0
	for ; p > 0; p-- {
		r *= x
	}

	return r
}

// factorial returns m! as a float64 (m ≤ 5 in practice).
func factorial(m int) float64 {
	r := 1.0
	for ; m > 1; m-- {
		r *= float64(m)
	}

	return r
}
