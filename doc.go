// Package findiff turns one-dimensional grids into compact banded
// finite-difference operators and composes them into the generator of a
// parabolic pricing PDE.
//
// 🚀 What is findiff?
//
//	A small, library-first toolkit that brings together:
//		• Band storage: tri- and penta-diagonal matrices with boundary rows
//		• First derivative: d/dx operators at 2nd and 4th interior order
//		• Second derivative: d²/dx² operators, incl. zero-curvature boundaries
//		• Mixed derivative: tensor-product ∂²/∂x∂y on flattened 2D fields
//		• Grids: uniform, exponential and hyperbolic point placement
//		• Black-Scholes: closed-form prices, Greeks, implied vol, PDE prefactors
//
// ✨ Why choose findiff?
//
//   - Deterministic – rebuilding an operator from the same grid is bit-identical
//   - Fail-fast – undersized grids and mismatched coefficient fields return
//     sentinel errors at the call site, never silent corruption
//   - Pure Go kernels – no cgo; the only runtime dependency is gonum's
//     normal distribution for the analytic module
//
// Everything is organized under flat subpackages:
//
//	banded/  — TriDiagonal, PentaDiagonal, the Operator interface
//	stencil/ — finite-difference weights for arbitrary point spacings
//	grid/    — grid generators and uniformity checks
//	d1dx1/   — first-derivative operator builders
//	d2dx2/   — second-derivative operator builders
//	mixed/   — mixed-derivative composer
//	bs/      — Black-Scholes analytics and generator prefactors
//
// Quick sketch of the intended flow:
//
//	grid ──▶ d1dx1/d2dx2 builders ──▶ banded operators
//	                                        │
//	rate, σ ──▶ bs.GeneratorPrefactors ──▶  ▼
//	                        external solver combines and time-steps
//
// This module builds the spatial generator; time integration and linear
// solves belong to the caller.
//
//	go get github.com/katalvlaran/findiff
package findiff
