// SPDX-License-Identifier: MIT
// Package bs: spatially varying coefficients of the Black-Scholes generator.

package bs

// Prefactors holds the three per-point coefficient rows of the discretized
// Black-Scholes generator. An external solver forms the generator as
//
//	G = diag(Identity) + diag(FirstDeriv)·D₁ + diag(SecondDeriv)·D₂
//
// where D₁ and D₂ are the banded derivative operators built from the same
// grid. All three slices share the grid's length.
type Prefactors struct {
	// Identity multiplies the identity operator: -rate at every point.
	Identity []float64
	// FirstDeriv multiplies the first-derivative operator: rate·x.
	FirstDeriv []float64
	// SecondDeriv multiplies the second-derivative operator: ½(σx)².
	SecondDeriv []float64
}

// GeneratorPrefactors computes the generator coefficients for the given
// short rate and volatility at every point of the spatial grid. Pure
// function: no state, no failure modes beyond ordinary floating-point
// propagation (degenerate inputs yield NaN/Inf in the output, which is the
// caller's concern).
func GeneratorPrefactors(rate, sigma float64, g []float64) Prefactors {
	n := len(g)
	p := Prefactors{
		Identity:    make([]float64, n),
		FirstDeriv:  make([]float64, n),
		SecondDeriv: make([]float64, n),
	}
	var sx float64
	for i := 0; i < n; i++ {
		p.Identity[i] = -rate
		p.FirstDeriv[i] = rate * g[i]
		sx = sigma * g[i]
		p.SecondDeriv[i] = 0.5 * sx * sx
	}

	return p
}
