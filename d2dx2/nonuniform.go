// SPDX-License-Identifier: MIT
// Package d2dx2: builders for non-uniform grids.
//
// As in d1dx1, every row is derived from its local offsets through the
// shared stencil solver.

package d2dx2

import (
	"github.com/katalvlaran/findiff/banded"
	"github.com/katalvlaran/findiff/stencil"
)

// NonUniformC2B0 builds d²/dx² on a non-uniform grid.
// Interior: three-point stencil from the local spacings. Boundary rows:
// zeroed, pinning the second derivative to 0 at the edge (see the package
// note on b0).
func NonUniformC2B0(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	m := banded.NewTriDiagonal(len(g))
	if err := interiorTri(m, g); err != nil {
		return nil, err
	}
	// boundary rows stay zero

	return m, nil
}

// NonUniformC2B1 builds d²/dx² on a non-uniform grid.
// Interior: three-point stencil from the local spacings. Boundary rows:
// three-point one-sided stencil, 1st order.
func NonUniformC2B1(g []float64) (*banded.TriDiagonal, error) {
	if len(g) < minC2 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	m := banded.NewTriDiagonal(n)
	if err := interiorTri(m, g); err != nil {
		return nil, err
	}
	w, err := stencil.Weights([]float64{0, g[1] - g[0], g[2] - g[0]}, 2)
	if err != nil {
		return nil, err
	}
	m.SetLowerRow(0, w...)
	if w, err = stencil.Weights([]float64{g[n-3] - g[n-1], g[n-2] - g[n-1], 0}, 2); err != nil {
		return nil, err
	}
	m.SetUpperRow(0, w...)

	return m, nil
}

// NonUniformC4B0 builds d²/dx² on a non-uniform grid.
// Interior: five-point stencil from the local spacings. First/last row:
// zeroed (b0). Second/second-to-last row: three-point central stencil,
// 2nd order.
func NonUniformC4B0(g []float64) (*banded.PentaDiagonal, error) {
	if len(g) < minC4 {
		return nil, ErrInvalidGridSize
	}
	n := len(g)
	m := banded.NewPentaDiagonal(n)
	sub2, sub, mainDiag, sup, sup2 := m.Sub2(), m.Sub(), m.Main(), m.Super(), m.Super2()
	var w []float64
	var err error
	for i := 2; i < n-2; i++ {
		w, err = stencil.Weights([]float64{
			g[i-2] - g[i], g[i-1] - g[i], 0, g[i+1] - g[i], g[i+2] - g[i],
		}, 2)
		if err != nil {
			return nil, err
		}
		sub2[i], sub[i], mainDiag[i], sup[i], sup2[i] = w[0], w[1], w[2], w[3], w[4]
	}
	// rows 0 and n-1 stay zero
	if w, err = stencil.Weights([]float64{g[0] - g[1], 0, g[2] - g[1]}, 2); err != nil {
		return nil, err
	}
	m.SetLowerRow(1, w...)
	if w, err = stencil.Weights([]float64{g[n-3] - g[n-2], 0, g[n-1] - g[n-2]}, 2); err != nil {
		return nil, err
	}
	m.SetUpperRow(0, w...)

	return m, nil
}

// interiorTri fills every interior row of m with the three-point
// second-derivative stencil derived from the local spacings around point i.
func interiorTri(m *banded.TriDiagonal, g []float64) error {
	n := len(g)
	sub, mainDiag, sup := m.Sub(), m.Main(), m.Super()
	var w []float64
	var err error
	for i := 1; i < n-1; i++ {
		w, err = stencil.Weights([]float64{g[i-1] - g[i], 0, g[i+1] - g[i]}, 2)
		if err != nil {
			return err
		}
		sub[i], mainDiag[i], sup[i] = w[0], w[1], w[2]
	}

	return nil
}
