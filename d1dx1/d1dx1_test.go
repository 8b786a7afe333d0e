// Package d1dx1_test verifies the first-derivative operator builders through
// their polynomial exactness properties: a stencil spanning s points must
// differentiate polynomials up to degree s-1 without truncation error, at
// the boundary rows as much as in the interior.
package d1dx1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/findiff/banded"
	"github.com/katalvlaran/findiff/d1dx1"
	"github.com/katalvlaran/findiff/grid"
)

// tol covers closed-form uniform weights; tolSolve adds headroom for the
// conditioning of per-row weight solves on irregular spacings.
const (
	tol      = 1e-8
	tolSolve = 1e-6
)

// sample evaluates f at every grid point.
func sample(g []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(g))
	for i, x := range g {
		out[i] = f(x)
	}

	return out
}

// assertDerivative applies op to f sampled on g and compares every row
// against the exact derivative df.
func assertDerivative(t *testing.T, op banded.Operator, g []float64, f, df func(float64) float64) {
	t.Helper()
	got := op.Action(sample(g, f))
	for i, x := range g {
		assert.InDelta(t, df(x), got[i], tol, "row %d (x = %v)", i, x)
	}
}

// assertInteriorDerivative compares only rows whose stencil is the interior
// one, skipping skirt boundary rows on each side.
func assertInteriorDerivative(t *testing.T, op banded.Operator, g []float64, f, df func(float64) float64, skirt int, delta float64) {
	t.Helper()
	got := op.Action(sample(g, f))
	for i := skirt; i < len(g)-skirt; i++ {
		assert.InDelta(t, df(g[i]), got[i], delta, "row %d (x = %v)", i, g[i])
	}
}

func mustUniform(t *testing.T, n int) []float64 {
	t.Helper()
	g, err := grid.Uniform(0, 10, n)
	require.NoError(t, err)

	return g
}

func mustNonUniform(t *testing.T, n int) []float64 {
	t.Helper()
	g, err := grid.HyperbolicCentered(0, 10, n, 4.0, 0.2)
	require.NoError(t, err)
	require.False(t, grid.IsUniform(g))

	return g
}

// TestUniformExactOnLinear: every uniform builder must reproduce the slope
// of a linear function exactly, boundary rows included (the exactness floor
// for the lowest boundary order b1).
func TestUniformExactOnLinear(t *testing.T) {
	t.Parallel()

	g := mustUniform(t, 11)
	f := func(x float64) float64 { return 3*x + 1 }
	df := func(float64) float64 { return 3 }

	for _, tc := range []struct {
		name  string
		build func([]float64) (banded.Operator, error)
	}{
		{"c2b1", wrapTri(d1dx1.UniformC2B1)},
		{"c2b2", wrapTri(d1dx1.UniformC2B2)},
		{"c4b2", wrapPenta(d1dx1.UniformC4B2)},
		{"c4b4", wrapPenta(d1dx1.UniformC4B4)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			op, err := tc.build(g)
			require.NoError(t, err)
			assertDerivative(t, op, g, f, df)
		})
	}
}

// TestUniformC2B2ExactOnQuadratic: three-point stencils (central and
// one-sided) are exact for quadratics.
func TestUniformC2B2ExactOnQuadratic(t *testing.T) {
	t.Parallel()

	g := mustUniform(t, 11)
	op, err := d1dx1.UniformC2B2(g)
	require.NoError(t, err)
	assertDerivative(t, op, g,
		func(x float64) float64 { return x*x - 4*x },
		func(x float64) float64 { return 2*x - 4 })
}

// TestUniformC4B4ExactOnQuartic: every row of c4b4 spans five points, so
// degree-4 polynomials differentiate exactly everywhere.
func TestUniformC4B4ExactOnQuartic(t *testing.T) {
	t.Parallel()

	g := mustUniform(t, 12)
	op, err := d1dx1.UniformC4B4(g)
	require.NoError(t, err)
	assertDerivative(t, op, g,
		func(x float64) float64 { return x * x * x * x },
		func(x float64) float64 { return 4 * x * x * x })
}

// TestUniformC4B2Orders: the interior is exact on quartics while the
// 2nd-order boundary rows are exact only up to quadratics.
func TestUniformC4B2Orders(t *testing.T) {
	t.Parallel()

	g := mustUniform(t, 12)
	op, err := d1dx1.UniformC4B2(g)
	require.NoError(t, err)

	assertDerivative(t, op, g,
		func(x float64) float64 { return x * x },
		func(x float64) float64 { return 2 * x })
	assertInteriorDerivative(t, op, g,
		func(x float64) float64 { return x * x * x * x },
		func(x float64) float64 { return 4 * x * x * x }, 2, tol)
}

// TestNonUniformExactness: stencil weights derived per row from the local
// spacings keep the same polynomial exactness on irregular grids.
func TestNonUniformExactness(t *testing.T) {
	t.Parallel()

	g := mustNonUniform(t, 21)
	quad := func(x float64) float64 { return x*x + x }
	dquad := func(x float64) float64 { return 2*x + 1 }

	t.Run("c2b1 linear everywhere", func(t *testing.T) {
		op, err := d1dx1.NonUniformC2B1(g)
		require.NoError(t, err)
		assertDerivative(t, op, g,
			func(x float64) float64 { return 5*x - 2 },
			func(float64) float64 { return 5 })
	})

	t.Run("c2b1 quadratic interior", func(t *testing.T) {
		op, err := d1dx1.NonUniformC2B1(g)
		require.NoError(t, err)
		assertInteriorDerivative(t, op, g, quad, dquad, 1, tolSolve)
	})

	t.Run("c2b2 quadratic everywhere", func(t *testing.T) {
		op, err := d1dx1.NonUniformC2B2(g)
		require.NoError(t, err)
		assertDerivative(t, op, g, quad, dquad)
	})

	t.Run("c4b2 quadratic everywhere", func(t *testing.T) {
		op, err := d1dx1.NonUniformC4B2(g)
		require.NoError(t, err)
		assertDerivative(t, op, g, quad, dquad)
	})

	t.Run("c4b2 quartic interior", func(t *testing.T) {
		op, err := d1dx1.NonUniformC4B2(g)
		require.NoError(t, err)
		assertInteriorDerivative(t, op, g,
			func(x float64) float64 { return x * x * x * x },
			func(x float64) float64 { return 4 * x * x * x }, 2, tolSolve)
	})
}

// TestNonUniformMatchesUniformOnEquidistantGrid: on a constant-spacing grid
// the per-row solves must land on the closed-form uniform coefficients.
func TestNonUniformMatchesUniformOnEquidistantGrid(t *testing.T) {
	t.Parallel()

	g := mustUniform(t, 11)
	f := sample(g, func(x float64) float64 { return x*x*x - x })

	u, err := d1dx1.UniformC2B2(g)
	require.NoError(t, err)
	nu, err := d1dx1.NonUniformC2B2(g)
	require.NoError(t, err)

	want := u.Action(f)
	got := nu.Action(f)
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "row %d", i)
	}
}

// TestInvalidGridSize: every builder rejects grids narrower than its
// stencil with the sentinel, before touching any storage.
func TestInvalidGridSize(t *testing.T) {
	t.Parallel()

	short2 := []float64{0, 1}
	short4 := []float64{0, 1, 2, 3}

	_, err := d1dx1.UniformC2B1(short2)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.UniformC2B2(short2)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.UniformC4B2(short4)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.UniformC4B4(short4)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.NonUniformC2B1(short2)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.NonUniformC2B2(short2)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
	_, err = d1dx1.NonUniformC4B2(short4)
	require.ErrorIs(t, err, d1dx1.ErrInvalidGridSize)
}

// TestRebuildBitIdentical: building twice from the same grid must produce
// bit-identical operators — no hidden nondeterminism in weight derivation.
func TestRebuildBitIdentical(t *testing.T) {
	t.Parallel()

	gu := mustUniform(t, 11)
	gn := mustNonUniform(t, 11)

	a, err := d1dx1.UniformC4B4(gu)
	require.NoError(t, err)
	b, err := d1dx1.UniformC4B4(gu)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := d1dx1.NonUniformC4B2(gn)
	require.NoError(t, err)
	d, err := d1dx1.NonUniformC4B2(gn)
	require.NoError(t, err)
	require.Equal(t, c, d)
}

// wrapTri and wrapPenta lift the concrete builder signatures to the shared
// Operator capability so table-driven tests can mix band types.
func wrapTri(b func([]float64) (*banded.TriDiagonal, error)) func([]float64) (banded.Operator, error) {
	return func(g []float64) (banded.Operator, error) { return b(g) }
}

func wrapPenta(b func([]float64) (*banded.PentaDiagonal, error)) func([]float64) (banded.Operator, error) {
	return func(g []float64) (banded.Operator, error) { return b(g) }
}
