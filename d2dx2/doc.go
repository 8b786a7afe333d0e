// Package d2dx2 builds banded finite-difference representations of the
// second-order derivative operator d²/dx² on 1D grids.
//
// Naming follows the same cXbY convention as d1dx1, with one addition: b0
// does not approximate the derivative from one-sided data — it substitutes a
// boundary condition by zeroing the boundary row, pinning the discrete
// second derivative to 0 at the domain edge. This is sometimes labeled a
// Neumann condition; note it constrains curvature, not slope, and callers
// who need a true zero-slope Neumann boundary must impose it in their
// solver instead.
//
// Uniform grids offer c2b0, c2b1, c2b2, c4b0, c4b2 and c4b4; non-uniform
// grids offer only c2b0, c2b1 and c4b0. The asymmetric set matches what the
// boundary stencils can deliver on each grid type and is deliberately not
// generalized.
//
// c2 builders return *banded.TriDiagonal, c4 builders *banded.PentaDiagonal.
// Every builder validates the grid length against its own stencil reach and
// returns ErrInvalidGridSize when the grid is too narrow.
package d2dx2
