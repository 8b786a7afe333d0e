// SPDX-License-Identifier: MIT
// Package bs: closed-form European option prices and Greeks.

package bs

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal distribution backing every CDF/PDF
// evaluation in this package.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ErrNoConvergence indicates the implied-volatility search ran out of
// iterations or lost its vega signal before matching the target price.
var ErrNoConvergence = errors.New("bs: implied volatility search did not converge")

// expiryCutoff is the time-to-maturity below which prices collapse to the
// undiscounted payoff.
const expiryCutoff = 1.0e-10

// Implied-volatility search policy.
const (
	ivInitial    = 0.2    // starting guess
	ivMaxIter    = 100    // hard iteration cap
	ivTol        = 1.0e-8 // absolute price tolerance
	ivVegaFloor  = 1e-10  // below this the Newton step is meaningless
	ivSigmaFloor = 1e-4   // clamp for steps that overshoot below zero
)

// DPlus returns the d₊ argument of the Black-Scholes formula.
func DPlus(spot, rate, sigma, strike, tau float64) float64 {
	drift := (rate + sigma*sigma/2.0) * tau

	return (math.Log(spot/strike) + drift) / (sigma * math.Sqrt(tau))
}

// DMinus returns the d₋ argument of the Black-Scholes formula.
func DMinus(spot, rate, sigma, strike, tau float64) float64 {
	return DPlus(spot, rate, sigma, strike, tau) - sigma*math.Sqrt(tau)
}

// CallPayoff returns the European call payoff max(spot-strike, 0).
func CallPayoff(spot, strike float64) float64 {
	return math.Max(spot-strike, 0.0)
}

// PutPayoff returns the European put payoff max(strike-spot, 0).
func PutPayoff(spot, strike float64) float64 {
	return math.Max(strike-spot, 0.0)
}

// CallPrice returns the European call price. At (or numerically at) expiry
// it returns the payoff.
func CallPrice(spot, rate, sigma, strike, tau float64) float64 {
	if tau <= expiryCutoff {
		return CallPayoff(spot, strike)
	}
	dp := DPlus(spot, rate, sigma, strike, tau)
	dm := DMinus(spot, rate, sigma, strike, tau)

	return stdNormal.CDF(dp)*spot - stdNormal.CDF(dm)*strike*math.Exp(-rate*tau)
}

// PutPrice returns the European put price via put-call parity.
func PutPrice(spot, rate, sigma, strike, tau float64) float64 {
	call := CallPrice(spot, rate, sigma, strike, tau)

	return call - spot + strike*math.Exp(-rate*tau)
}

// CallDelta returns ∂C/∂spot.
func CallDelta(spot, rate, sigma, strike, tau float64) float64 {
	return stdNormal.CDF(DPlus(spot, rate, sigma, strike, tau))
}

// PutDelta returns ∂P/∂spot.
func PutDelta(spot, rate, sigma, strike, tau float64) float64 {
	return CallDelta(spot, rate, sigma, strike, tau) - 1.0
}

// CallGamma returns ∂²C/∂spot².
func CallGamma(spot, rate, sigma, strike, tau float64) float64 {
	dp := DPlus(spot, rate, sigma, strike, tau)

	return stdNormal.Prob(dp) / (spot * sigma * math.Sqrt(tau))
}

// PutGamma returns ∂²P/∂spot² (identical to the call gamma).
func PutGamma(spot, rate, sigma, strike, tau float64) float64 {
	return CallGamma(spot, rate, sigma, strike, tau)
}

// CallVega returns ∂C/∂σ.
func CallVega(spot, rate, sigma, strike, tau float64) float64 {
	dp := DPlus(spot, rate, sigma, strike, tau)

	return stdNormal.Prob(dp) * spot * math.Sqrt(tau)
}

// PutVega returns ∂P/∂σ (identical to the call vega).
func PutVega(spot, rate, sigma, strike, tau float64) float64 {
	return CallVega(spot, rate, sigma, strike, tau)
}

// CallTheta returns -∂C/∂tau.
func CallTheta(spot, rate, sigma, strike, tau float64) float64 {
	dp := DPlus(spot, rate, sigma, strike, tau)
	dm := DMinus(spot, rate, sigma, strike, tau)

	return -stdNormal.Prob(dp)*spot*sigma/(2.0*math.Sqrt(tau)) -
		stdNormal.CDF(dm)*rate*strike*math.Exp(-rate*tau)
}

// PutTheta returns -∂P/∂tau.
func PutTheta(spot, rate, sigma, strike, tau float64) float64 {
	dp := DPlus(spot, rate, sigma, strike, tau)
	dm := DMinus(spot, rate, sigma, strike, tau)

	return -stdNormal.Prob(dp)*spot*sigma/(2.0*math.Sqrt(tau)) +
		stdNormal.CDF(-dm)*rate*strike*math.Exp(-rate*tau)
}

// CallRho returns ∂C/∂rate.
func CallRho(spot, rate, sigma, strike, tau float64) float64 {
	dm := DMinus(spot, rate, sigma, strike, tau)

	return stdNormal.CDF(dm) * strike * tau * math.Exp(-rate*tau)
}

// PutRho returns ∂P/∂rate.
func PutRho(spot, rate, sigma, strike, tau float64) float64 {
	dm := DMinus(spot, rate, sigma, strike, tau)

	return -stdNormal.CDF(-dm) * strike * tau * math.Exp(-rate*tau)
}

// CallSolution evaluates the analytic call price at every grid point,
// producing the reference surface numerical solutions are validated against.
func CallSolution(g []float64, rate, sigma, strike, tau float64) []float64 {
	out := make([]float64, len(g))
	for i, spot := range g {
		out[i] = CallPrice(spot, rate, sigma, strike, tau)
	}

	return out
}

// PutSolution evaluates the analytic put price at every grid point.
func PutSolution(g []float64, rate, sigma, strike, tau float64) []float64 {
	out := make([]float64, len(g))
	for i, spot := range g {
		out[i] = PutPrice(spot, rate, sigma, strike, tau)
	}

	return out
}

// CallImpliedVol returns the volatility at which the Black-Scholes call
// price matches optionPrice, via Newton-Raphson on the vega. The iteration
// is capped, the vega is floored and sigma is clamped positive; a search
// that cannot land within tolerance returns ErrNoConvergence.
func CallImpliedVol(optionPrice, spot, rate, strike, tau float64) (float64, error) {
	return impliedVol(optionPrice, spot, rate, strike, tau, CallPrice)
}

// PutImpliedVol returns the implied volatility of a European put.
func PutImpliedVol(optionPrice, spot, rate, strike, tau float64) (float64, error) {
	return impliedVol(optionPrice, spot, rate, strike, tau, PutPrice)
}

// impliedVol runs the guarded Newton-Raphson search for the given pricer.
// Call and put vegas coincide, so one kernel serves both.
func impliedVol(
	optionPrice, spot, rate, strike, tau float64,
	price func(spot, rate, sigma, strike, tau float64) float64,
) (float64, error) {
	sigma := ivInitial
	var diff, vega float64
	for iter := 0; iter < ivMaxIter; iter++ {
		diff = price(spot, rate, sigma, strike, tau) - optionPrice
		if math.Abs(diff) < ivTol {
			return sigma, nil
		}
		vega = CallVega(spot, rate, sigma, strike, tau)
		if vega < ivVegaFloor {
			return 0, ErrNoConvergence
		}
		sigma -= diff / vega
		if sigma <= 0 {
			sigma = ivSigmaFloor
		}
	}

	return 0, ErrNoConvergence
}
