// SPDX-License-Identifier: MIT

// Package grid places points on one-dimensional solution domains.
//
// The grid package provides:
//
//   - Uniform: equidistant points on [xMin, xMax].
//   - Exponential / ExponentialScaled: points clustered toward one end of
//     the domain, following White (2013).
//   - Hyperbolic / HyperbolicCentered: points clustered around an interior
//     point (typically the strike of the option being priced), following
//     White (2013).
//   - IsUniform and Validate, used by callers to dispatch between the
//     uniform and non-uniform operator builders.
//
// A grid is an ordered sequence of strictly increasing float64 coordinates,
// owned by the caller and passed by reference to the operator builders.
package grid

import (
	"errors"
	"math"
)

var (
	// ErrInvalidGridSize indicates fewer than two requested points.
	ErrInvalidGridSize = errors.New("grid: need at least two points")
	// ErrInvalidRange indicates xMin ≥ xMax.
	ErrInvalidRange = errors.New("grid: x_min must be strictly less than x_max")
	// ErrInvalidScaling indicates a scaling parameter the placement formula
	// cannot use (zero for exponential grids, non-positive for hyperbolic).
	ErrInvalidScaling = errors.New("grid: invalid scaling parameter")
	// ErrInvalidCenter indicates a hyperbolic center outside [xMin, xMax].
	ErrInvalidCenter = errors.New("grid: center outside the domain")
	// ErrNotIncreasing indicates coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: coordinates must be strictly increasing")
)

// uniformTol is the relative spacing tolerance below which a grid counts as
// uniform. Generators accumulate at most a few ulps of jitter per spacing,
// far below this threshold.
const uniformTol = 1e-12

// Uniform returns n equidistant points spanning [xMin, xMax] inclusive.
func Uniform(xMin, xMax float64, n int) ([]float64, error) {
	if err := checkSpan(xMin, xMax, n); err != nil {
		return nil, err
	}
	dx := (xMax - xMin) / float64(n-1)
	g := make([]float64, n)
	for i := 0; i < n; i++ {
		g[i] = xMin + dx*float64(i)
	}

	return g, nil
}

// Exponential returns n points on [xMin, xMax] with exponential clustering
// toward xMin, using scaling 1. See ExponentialScaled for the full knob.
func Exponential(xMin, xMax float64, n int) ([]float64, error) {
	return ExponentialScaled(xMin, xMax, n, 1.0)
}

// ExponentialScaled returns n points on [xMin, xMax] placed exponentially.
// Scaling ≫ 0 shifts points toward xMin, scaling ≪ 0 toward xMax; the
// magnitude controls how hard they cluster. Scaling 0 is rejected (the
// placement formula degenerates).
//
// Reference: White (2013).
func ExponentialScaled(xMin, xMax float64, n int, scaling float64) ([]float64, error) {
	if err := checkSpan(xMin, xMax, n); err != nil {
		return nil, err
	}
	if scaling == 0 {
		return nil, ErrInvalidScaling
	}
	eta := (xMax - xMin) / (math.Exp(scaling) - 1.0)
	g := make([]float64, n)
	var z float64
	for i := 0; i < n; i++ {
		z = float64(i) / float64(n-1)
		g[i] = (xMin - eta) + eta*math.Exp(scaling*z)
	}
	// pin the endpoints; the closed form reproduces them only up to rounding
	g[0], g[n-1] = xMin, xMax

	return g, nil
}

// Hyperbolic returns n points on [xMin, xMax] clustered around the midpoint
// with scaling 0.1. See HyperbolicCentered for the full parameterization.
func Hyperbolic(xMin, xMax float64, n int) ([]float64, error) {
	return HyperbolicCentered(xMin, xMax, n, xMin+(xMax-xMin)/2.0, 0.1)
}

// HyperbolicCentered returns n points on [xMin, xMax] clustered around
// xCenter. Smaller positive scaling clusters harder; scaling must be > 0 and
// xCenter must lie inside [xMin, xMax].
//
// Reference: White (2013).
func HyperbolicCentered(xMin, xMax float64, n int, xCenter, scaling float64) ([]float64, error) {
	if err := checkSpan(xMin, xMax, n); err != nil {
		return nil, err
	}
	if scaling <= 0 {
		return nil, ErrInvalidScaling
	}
	if xCenter < xMin || xCenter > xMax {
		return nil, ErrInvalidCenter
	}
	beta := scaling * (xMax - xMin)
	delta := math.Asinh((xMin - xCenter) / beta)
	gamma := math.Asinh((xMax-xCenter)/beta) - delta
	g := make([]float64, n)
	var z float64
	for i := 0; i < n; i++ {
		z = float64(i) / float64(n-1)
		g[i] = xCenter + beta*math.Sinh(gamma*z+delta)
	}
	g[0], g[n-1] = xMin, xMax

	return g, nil
}

// IsUniform reports whether every spacing of g matches the mean spacing to
// within a relative tolerance. Grids shorter than three points are trivially
// uniform. Callers use this to pick between the uniform and non-uniform
// operator builders.
func IsUniform(g []float64) bool {
	n := len(g)
	if n < 3 {
		return true
	}
	h := (g[n-1] - g[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		if math.Abs((g[i]-g[i-1])-h) > uniformTol*math.Abs(h) {
			return false
		}
	}

	return true
}

// Validate checks that g is strictly increasing. NaN coordinates fail the
// comparison and are reported as ErrNotIncreasing as well.
func Validate(g []float64) error {
	for i := 1; i < len(g); i++ {
		if !(g[i] > g[i-1]) {
			return ErrNotIncreasing
		}
	}

	return nil
}

// checkSpan validates the common (xMin, xMax, n) triplet of all generators.
func checkSpan(xMin, xMax float64, n int) error {
	if n < 2 {
		return ErrInvalidGridSize
	}
	if !(xMin < xMax) {
		return ErrInvalidRange
	}

	return nil
}
