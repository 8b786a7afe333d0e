// SPDX-License-Identifier: MIT

// Package mixed composes two 1D derivative operators into a mixed
// second-order derivative ∂²/∂x∂y on a flattened 2D field.
//
// The field of an nx×ny problem is flattened x-major: the value at grid cell
// (i, j) sits at flat index i*ny + j, so each x-slice is a contiguous run of
// ny values. Evaluation applies the y-axis operator to those contiguous runs
// first, then the x-axis operator along strided columns, then multiplies by
// the prefactor field elementwise. The y-then-x pass order matches the field
// layout and is a design commitment, not an arbitrary choice.
//
// Prefactors default to 1.0 everywhere and can be reassigned as a uniform
// scalar, a separable per-axis product, or a full field. A Derivative is not
// synchronized: prefactor mutation and D2DxDy evaluation on the same
// instance must not overlap (single-writer discipline); distinct instances
// are safe to use concurrently.
package mixed

import (
	"errors"

	"github.com/katalvlaran/findiff/banded"
)

// ErrDimensionMismatch indicates a coefficient or field slice whose length
// does not match the required axis order or their product. Matched with
// errors.Is.
var ErrDimensionMismatch = errors.New("mixed: dimension mismatch")

// Derivative approximates ∂²/∂x∂y by applying one 1D operator per axis in
// tensor-product fashion and weighting the result by a prefactor field.
type Derivative struct {
	dx, dy     banded.Operator
	prefactors []float64 // length OrderX()*OrderY(), invariant
}

// New builds a mixed-derivative composer from two already-built 1D
// operators, one per axis. Prefactors are initialized to 1.0 for every cell.
func New(dx, dy banded.Operator) *Derivative {
	pf := make([]float64, dx.Order()*dy.Order())
	for i := range pf {
		pf[i] = 1.0
	}

	return &Derivative{dx: dx, dy: dy, prefactors: pf}
}

// OrderX reports the number of grid points along the x axis.
func (d *Derivative) OrderX() int { return d.dx.Order() }

// OrderY reports the number of grid points along the y axis.
func (d *Derivative) OrderY() int { return d.dy.Order() }

// SetPrefactor assigns the same scalar to every cell of the prefactor field.
func (d *Derivative) SetPrefactor(scalar float64) {
	for i := range d.prefactors {
		d.prefactors[i] = scalar
	}
}

// SetPrefactorsSeparable assigns coefX[i]*coefY[j] to the cell at (i, j).
// len(coefX) must equal OrderX and len(coefY) must equal OrderY.
func (d *Derivative) SetPrefactorsSeparable(coefX, coefY []float64) error {
	nx, ny := d.dx.Order(), d.dy.Order()
	if len(coefX) != nx || len(coefY) != ny {
		return ErrDimensionMismatch
	}
	idx := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			d.prefactors[idx] = coefX[i] * coefY[j]
			idx++
		}
	}

	return nil
}

// SetPrefactorsFull copies the supplied field verbatim. len(factors) must
// equal OrderX*OrderY; shorter or longer fields are rejected rather than
// truncated.
func (d *Derivative) SetPrefactorsFull(factors []float64) error {
	if len(factors) != len(d.prefactors) {
		return ErrDimensionMismatch
	}
	copy(d.prefactors, factors)

	return nil
}

// D2DxDy applies the mixed-derivative operator to a flattened field of
// length OrderX*OrderY and returns a fresh slice of the same length. The
// input field is not mutated.
//
// Pass order: y first (contiguous blocks), then x (strided columns), then
// the prefactor field elementwise.
func (d *Derivative) D2DxDy(field []float64) ([]float64, error) {
	nx, ny := d.dx.Order(), d.dy.Order()
	if len(field) != nx*ny {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(field))
	copy(out, field)

	// First-order partial derivative wrt y: each x-slice is contiguous.
	var i, j int
	for i = 0; i < nx; i++ {
		blk := out[i*ny : (i+1)*ny]
		copy(blk, d.dy.Action(blk))
	}

	// First-order partial derivative wrt x: columns are strided by ny.
	col := make([]float64, nx)
	var res []float64
	for j = 0; j < ny; j++ {
		for i = 0; i < nx; i++ {
			col[i] = out[i*ny+j]
		}
		res = d.dx.Action(col)
		for i = 0; i < nx; i++ {
			out[i*ny+j] = res[i]
		}
	}

	for i = range out {
		out[i] *= d.prefactors[i]
	}

	return out, nil
}
