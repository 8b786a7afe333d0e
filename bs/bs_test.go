package bs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/findiff/bs"
)

const tol = 1e-8

// A single liquid-option scenario reused across tests.
const (
	spot   = 100.0
	rate   = 0.05
	sigma  = 0.25
	strike = 100.0
	tau    = 1.0
)

// TestPutCallParity: C - P = S - K·exp(-rτ) must hold to round-off for any
// scenario, since PutPrice is literally derived from it but the identity is
// what downstream solvers lean on.
func TestPutCallParity(t *testing.T) {
	t.Parallel()

	for _, s := range []float64{60, 85, 100, 120, 180} {
		c := bs.CallPrice(s, rate, sigma, strike, tau)
		p := bs.PutPrice(s, rate, sigma, strike, tau)
		assert.InDelta(t, s-strike*math.Exp(-rate*tau), c-p, tol, "spot %v", s)
	}
}

// TestPriceBounds: arbitrage bounds for the call; near expiry the price
// collapses to the payoff exactly.
func TestPriceBounds(t *testing.T) {
	t.Parallel()

	c := bs.CallPrice(spot, rate, sigma, strike, tau)
	assert.Greater(t, c, bs.CallPayoff(spot, strike))
	assert.Less(t, c, spot)

	require.Equal(t, bs.CallPayoff(120, strike), bs.CallPrice(120, rate, sigma, strike, 0))
	require.Equal(t, bs.PutPayoff(80, strike), bs.PutPrice(80, rate, sigma, strike, 0))
	assert.InDelta(t, bs.PutPayoff(80, strike), bs.PutPrice(80, rate, sigma, strike, 1e-12), tol)
}

// TestGreeksAgainstBumps: analytic Greeks vs central finite-difference bumps
// of the price, the same consistency check a pricing desk runs.
func TestGreeksAgainstBumps(t *testing.T) {
	t.Parallel()

	const h = 1e-5
	bump := 1e-4

	callAt := func(s, r, v, tt float64) float64 { return bs.CallPrice(s, r, v, strike, tt) }

	delta := (callAt(spot+h, rate, sigma, tau) - callAt(spot-h, rate, sigma, tau)) / (2 * h)
	assert.InDelta(t, bs.CallDelta(spot, rate, sigma, strike, tau), delta, bump)

	// wider step for the second difference; h² in the denominator amplifies
	// round-off otherwise
	const hg = 1e-3
	gamma := (callAt(spot+hg, rate, sigma, tau) - 2*callAt(spot, rate, sigma, tau) + callAt(spot-hg, rate, sigma, tau)) / (hg * hg)
	assert.InDelta(t, bs.CallGamma(spot, rate, sigma, strike, tau), gamma, bump)

	vega := (callAt(spot, rate, sigma+h, tau) - callAt(spot, rate, sigma-h, tau)) / (2 * h)
	assert.InDelta(t, bs.CallVega(spot, rate, sigma, strike, tau), vega, bump)

	theta := -(callAt(spot, rate, sigma, tau+h) - callAt(spot, rate, sigma, tau-h)) / (2 * h)
	assert.InDelta(t, bs.CallTheta(spot, rate, sigma, strike, tau), theta, bump)

	rho := (callAt(spot, rate+h, sigma, tau) - callAt(spot, rate-h, sigma, tau)) / (2 * h)
	assert.InDelta(t, bs.CallRho(spot, rate, sigma, strike, tau), rho, bump)

	putDelta := (bs.PutPrice(spot+h, rate, sigma, strike, tau) - bs.PutPrice(spot-h, rate, sigma, strike, tau)) / (2 * h)
	assert.InDelta(t, bs.PutDelta(spot, rate, sigma, strike, tau), putDelta, bump)
}

// TestGreekIdentities: put/call gamma and vega coincide; deltas differ by 1.
func TestGreekIdentities(t *testing.T) {
	t.Parallel()

	require.Equal(t, bs.CallGamma(spot, rate, sigma, strike, tau), bs.PutGamma(spot, rate, sigma, strike, tau))
	require.Equal(t, bs.CallVega(spot, rate, sigma, strike, tau), bs.PutVega(spot, rate, sigma, strike, tau))
	assert.InDelta(t, 1.0, bs.CallDelta(spot, rate, sigma, strike, tau)-bs.PutDelta(spot, rate, sigma, strike, tau), tol)
}

// TestSolutionSurfaces: the per-grid-point evaluators agree with the scalar
// pricers pointwise.
func TestSolutionSurfaces(t *testing.T) {
	t.Parallel()

	g := []float64{50, 75, 100, 125, 150}
	calls := bs.CallSolution(g, rate, sigma, strike, tau)
	puts := bs.PutSolution(g, rate, sigma, strike, tau)
	require.Len(t, calls, len(g))
	require.Len(t, puts, len(g))
	for i, s := range g {
		require.Equal(t, bs.CallPrice(s, rate, sigma, strike, tau), calls[i])
		require.Equal(t, bs.PutPrice(s, rate, sigma, strike, tau), puts[i])
	}
}

// TestImpliedVolRoundTrip: price at a known σ, recover it; both option
// types, in- and out-of-the-money.
func TestImpliedVolRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []float64{80, 100, 125} {
		c := bs.CallPrice(s, rate, sigma, strike, tau)
		iv, err := bs.CallImpliedVol(c, s, rate, strike, tau)
		require.NoError(t, err, "call spot %v", s)
		assert.InDelta(t, sigma, iv, 1e-6, "call spot %v", s)

		p := bs.PutPrice(s, rate, sigma, strike, tau)
		iv, err = bs.PutImpliedVol(p, s, rate, strike, tau)
		require.NoError(t, err, "put spot %v", s)
		assert.InDelta(t, sigma, iv, 1e-6, "put spot %v", s)
	}
}

// TestImpliedVolNoConvergence: a price below the no-arbitrage floor has no
// implied volatility; the search must fail with the sentinel, not loop.
func TestImpliedVolNoConvergence(t *testing.T) {
	t.Parallel()

	// intrinsic value of the call is 20; 5 is unattainable at any σ ≥ 0
	_, err := bs.CallImpliedVol(5.0, 120, rate, strike, tau)
	require.ErrorIs(t, err, bs.ErrNoConvergence)
}

// TestGeneratorPrefactors: coefficient rows of the pricing generator
// -r·u + r·x·∂u/∂x + ½σ²x²·∂²u/∂x² on a small grid, against hand-computed
// values.
func TestGeneratorPrefactors(t *testing.T) {
	t.Parallel()

	g := []float64{50, 100, 150}
	p := bs.GeneratorPrefactors(0.05, 0.2, g)

	require.Equal(t, []float64{-0.05, -0.05, -0.05}, p.Identity)
	require.Equal(t, []float64{2.5, 5.0, 7.5}, p.FirstDeriv)
	// ½(σx)²: ½·(0.2·50)² = 50, ½·(0.2·100)² = 200, ½·(0.2·150)² = 450
	require.Equal(t, []float64{50.0, 200.0, 450.0}, p.SecondDeriv)

	empty := bs.GeneratorPrefactors(0.05, 0.2, nil)
	require.Empty(t, empty.Identity)
	require.Empty(t, empty.FirstDeriv)
	require.Empty(t, empty.SecondDeriv)
}

// TestDArguments: d₋ = d₊ - σ√τ by definition; spot = strike at zero drift
// gives symmetric arguments.
func TestDArguments(t *testing.T) {
	t.Parallel()

	dp := bs.DPlus(spot, rate, sigma, strike, tau)
	dm := bs.DMinus(spot, rate, sigma, strike, tau)
	assert.InDelta(t, sigma*math.Sqrt(tau), dp-dm, tol)

	dp0 := bs.DPlus(100, 0, sigma, 100, tau)
	dm0 := bs.DMinus(100, 0, sigma, 100, tau)
	assert.InDelta(t, -dm0, dp0, tol)
}
