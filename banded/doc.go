// Package banded provides fixed-bandwidth square matrix storage for
// finite-difference operators.
//
// The banded package provides:
//
//   - TriDiagonal: one sub-, one main- and one super-diagonal, with a single
//     dense boundary row at each end of the domain.
//   - PentaDiagonal: two sub- and two super-diagonals around the main one,
//     with two dense boundary rows at each end.
//   - Operator: the minimal "owns an order, maps a field to a field"
//     capability both concrete types implement, so downstream composers can
//     be written once against it.
//
// Boundary rows exist because one-sided boundary stencils may reach further
// into the domain than the interior band allows (a 2nd-order one-sided
// second derivative needs four points, a 4th-order one needs six). They are
// short dense rows of fixed width anchored at the domain edge; everything
// outside the stored structure is implicitly zero.
//
// These are pure storage types: builders fill them once, callers read or
// scale them afterwards. They never validate numerical content.
package banded
