// SPDX-License-Identifier: MIT
// Package d2dx2: builders for uniform (equidistant) grids.

package d2dx2

import "github.com/katalvlaran/findiff/banded"

// Minimum grid sizes per builder: the widest stencil any row touches.
// b2 needs a four-point boundary stencil on top of the c2 interior, and the
// 4th-order one-sided second derivative of c4b4 needs six points.
const (
	minC2   = 3
	minC2B2 = 4
	minC4   = 5
	minC4B4 = 6
)

// UniformC2B0 builds d²/dx² on a uniform grid.
// Interior: central difference, 2nd order. Boundary rows: zeroed, pinning
// the second derivative to 0 at the edge (see the package note on b0).
func UniformC2B0(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	m := banded.NewTriDiagonal(len(g))
	interiorC2(m, g[1]-g[0])
	// boundary rows stay zero

	return m, nil
}

// UniformC2B1 builds d²/dx² on a uniform grid.
// Interior: central difference, 2nd order. Boundary rows: three-point
// one-sided difference, 1st order.
func UniformC2B1(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	h := g[1] - g[0]
	hh := h * h
	m := banded.NewTriDiagonal(len(g))
	interiorC2(m, h)
	m.SetLowerRow(0, 1.0/hh, -2.0/hh, 1.0/hh)
	m.SetUpperRow(0, 1.0/hh, -2.0/hh, 1.0/hh)

	return m, nil
}

// UniformC2B2 builds d²/dx² on a uniform grid.
// Interior: central difference, 2nd order. Boundary rows: four-point
// one-sided difference, 2nd order.
func UniformC2B2(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2B2 {
		return nil, ErrInvalidGridSize
	}
	h := g[1] - g[0]
	hh := h * h
	m := banded.NewTriDiagonal(len(g))
	interiorC2(m, h)
	m.SetLowerRow(0, 2.0/hh, -5.0/hh, 4.0/hh, -1.0/hh)
	m.SetUpperRow(0, -1.0/hh, 4.0/hh, -5.0/hh, 2.0/hh)

	return m, nil
}

// UniformC4B0 builds d²/dx² on a uniform grid.
// Interior: central difference, 4th order. First/last row: zeroed (b0,
// see the package note). Second/second-to-last row: central difference,
// 2nd order.
func UniformC4B0(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4 {
		return nil, ErrInvalidGridSize
	}
	h := g[1] - g[0]
	hh := h * h
	m := banded.NewPentaDiagonal(len(g))
	interiorC4(m, h)
	// rows 0 and n-1 stay zero
	m.SetLowerRow(1, 1.0/hh, -2.0/hh, 1.0/hh)
	m.SetUpperRow(0, 1.0/hh, -2.0/hh, 1.0/hh)

	return m, nil
}

// UniformC4B2 builds d²/dx² on a uniform grid.
// Interior: central difference, 4th order. First/last row: four-point
// one-sided difference, 2nd order. Second/second-to-last row: central
// difference, 2nd order.
func UniformC4B2(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4 {
		return nil, ErrInvalidGridSize
	}
	h := g[1] - g[0]
	hh := h * h
	m := banded.NewPentaDiagonal(len(g))
	interiorC4(m, h)
	m.SetLowerRow(0, 2.0/hh, -5.0/hh, 4.0/hh, -1.0/hh)
	m.SetLowerRow(1, 1.0/hh, -2.0/hh, 1.0/hh)
	m.SetUpperRow(0, 1.0/hh, -2.0/hh, 1.0/hh)
	m.SetUpperRow(1, -1.0/hh, 4.0/hh, -5.0/hh, 2.0/hh)

	return m, nil
}

// UniformC4B4 builds d²/dx² on a uniform grid.
// Interior: central difference, 4th order. First/last two rows: six-point
// one-sided (row 0) and skewed (row 1) differences, 4th order.
func UniformC4B4(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4B4 {
		return nil, ErrInvalidGridSize
	}
	h := g[1] - g[0]
	hh := h * h
	m := banded.NewPentaDiagonal(len(g))
	interiorC4(m, h)
	m.SetLowerRow(0, 15.0/4.0/hh, -77.0/6.0/hh, 107.0/6.0/hh, -13.0/hh, 61.0/12.0/hh, -5.0/6.0/hh)
	m.SetLowerRow(1, 5.0/6.0/hh, -5.0/4.0/hh, -1.0/3.0/hh, 7.0/6.0/hh, -0.5/hh, 1.0/12.0/hh)
	m.SetUpperRow(0, 1.0/12.0/hh, -0.5/hh, 7.0/6.0/hh, -1.0/3.0/hh, -5.0/4.0/hh, 5.0/6.0/hh)
	m.SetUpperRow(1, -5.0/6.0/hh, 61.0/12.0/hh, -13.0/hh, 107.0/6.0/hh, -77.0/6.0/hh, 15.0/4.0/hh)

	return m, nil
}

// interiorC2 fills every interior row with (1, -2, 1)/h².
func interiorC2(m *banded.TriDiagonal, h float64) {
	n := m.Order()
	hh := h * h
	sub, mainDiag, sup := m.Sub(), m.Main(), m.Super()
	for i := 1; i < n-1; i++ {
		sub[i] = 1.0 / hh
		mainDiag[i] = -2.0 / hh
		sup[i] = 1.0 / hh
	}
}

// interiorC4 fills every interior row with (-1, 16, -30, 16, -1)/(12h²).
func interiorC4(m *banded.PentaDiagonal, h float64) {
	n := m.Order()
	hh12 := 12.0 * h * h
	sub2, sub, mainDiag, sup, sup2 := m.Sub2(), m.Sub(), m.Main(), m.Super(), m.Super2()
	for i := 2; i < n-2; i++ {
		sub2[i] = -1.0 / hh12
		sub[i] = 16.0 / hh12
		mainDiag[i] = -30.0 / hh12
		sup[i] = 16.0 / hh12
		sup2[i] = -1.0 / hh12
	}
}
