// SPDX-License-Identifier: MIT
// Package d1dx1: builders for uniform (equidistant) grids.
//
// On a uniform grid the stencil weights reduce to fixed fractions of the
// spacing h, so rows are filled from closed-form coefficients rather than
// per-row solves.

package d1dx1

import "github.com/katalvlaran/findiff/banded"

// Minimum grid sizes per builder: the widest stencil any row of the
// operator touches.
const (
	minC2 = 3
	minC4 = 5
)

// UniformC2B1 builds d/dx on a uniform grid.
// Interior: central difference, 2nd order. Boundary rows: forward/backward
// difference, 1st order.
func UniformC2B1(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	h := g[1] - g[0]
	m := banded.NewTriDiagonal(n)
	sub, sup := m.Sub(), m.Super()
	for i := 1; i < n-1; i++ {
		sub[i] = -0.5 / h
		sup[i] = 0.5 / h
	}
	m.SetLowerRow(0, -1.0/h, 1.0/h)
	m.SetUpperRow(0, -1.0/h, 1.0/h)

	return m, nil
}

// UniformC2B2 builds d/dx on a uniform grid.
// Interior: central difference, 2nd order. Boundary rows: forward/backward
// difference, 2nd order.
func UniformC2B2(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	h := g[1] - g[0]
	m := banded.NewTriDiagonal(n)
	sub, sup := m.Sub(), m.Super()
	for i := 1; i < n-1; i++ {
		sub[i] = -0.5 / h
		sup[i] = 0.5 / h
	}
	m.SetLowerRow(0, -1.5/h, 2.0/h, -0.5/h)
	m.SetUpperRow(0, 0.5/h, -2.0/h, 1.5/h)

	return m, nil
}

// UniformC4B2 builds d/dx on a uniform grid.
// Interior: central difference, 4th order. First/last row: one-sided
// difference, 2nd order. Second/second-to-last row: central difference,
// 2nd order.
func UniformC4B2(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	h := g[1] - g[0]
	m := banded.NewPentaDiagonal(n)
	interiorC4(m, h)
	m.SetLowerRow(0, -1.5/h, 2.0/h, -0.5/h)
	m.SetLowerRow(1, -0.5/h, 0, 0.5/h)
	m.SetUpperRow(0, -0.5/h, 0, 0.5/h)
	m.SetUpperRow(1, 0.5/h, -2.0/h, 1.5/h)

	return m, nil
}

// UniformC4B4 builds d/dx on a uniform grid.
// Interior: central difference, 4th order. First/last two rows: one-sided
// (row 0) and skewed (row 1) five-point differences, 4th order.
func UniformC4B4(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	h := g[1] - g[0]
	m := banded.NewPentaDiagonal(n)
	interiorC4(m, h)
	m.SetLowerRow(0, -25.0/12.0/h, 4.0/h, -3.0/h, 4.0/3.0/h, -0.25/h)
	m.SetLowerRow(1, -0.25/h, -5.0/6.0/h, 1.5/h, -0.5/h, 1.0/12.0/h)
	m.SetUpperRow(0, -1.0/12.0/h, 0.5/h, -1.5/h, 5.0/6.0/h, 0.25/h)
	m.SetUpperRow(1, 0.25/h, -4.0/3.0/h, 3.0/h, -4.0/h, 25.0/12.0/h)

	return m, nil
}

// interiorC4 fills every interior row with the 4th-order central weights
// (1, -8, 0, 8, -1)/(12h).
func interiorC4(m *banded.PentaDiagonal, h float64) {
	n := m.Order()
	sub2, sub, sup, sup2 := m.Sub2(), m.Sub(), m.Super(), m.Super2()
	for i := 2; i < n-2; i++ {
		sub2[i] = 1.0 / (12.0 * h)
		sub[i] = -8.0 / (12.0 * h)
		sup[i] = 8.0 / (12.0 * h)
		sup2[i] = -1.0 / (12.0 * h)
	}
}
