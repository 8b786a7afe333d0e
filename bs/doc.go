// Package bs provides the closed-form Black-Scholes machinery surrounding
// the discretized pricing PDE.
//
// The bs package provides:
//
//   - Prices, Greeks and payoffs for European call and put options, and
//     implied volatility via a guarded Newton-Raphson search.
//   - GeneratorPrefactors: the three spatially varying coefficients
//     (identity, first-derivative, second-derivative) that an external
//     solver combines with the d1dx1/d2dx2 operator matrices to form the
//     Black-Scholes generator.
//   - CallSolution / PutSolution: analytic prices across a grid, used to
//     validate numerical solutions.
//
// The standard normal CDF/PDF comes from gonum's distuv; this package does
// not implement the distribution itself.
package bs
