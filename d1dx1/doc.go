// Package d1dx1 builds banded finite-difference representations of the
// first-order derivative operator d/dx on 1D grids.
//
// Naming follows the cXbY convention: X is the interior order of accuracy
// (central differences), Y the boundary order (one-sided differences at the
// first/last rows, where central stencils are unavailable). Uniform grids
// offer c2b1, c2b2, c4b2 and c4b4; non-uniform grids offer c2b1, c2b2 and
// c4b2 — 4th-order boundary stencils are not cheaply available under
// irregular spacing, and the set is deliberately not generalized beyond
// what each grid type supports.
//
// c2 builders return *banded.TriDiagonal, c4 builders *banded.PentaDiagonal.
// Every builder validates the grid length against its own stencil reach and
// returns ErrInvalidGridSize when the grid is too narrow.
package d1dx1
