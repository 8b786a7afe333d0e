// SPDX-License-Identifier: MIT
// Package banded: concrete band-diagonal storage types.

package banded

// bandMatrix is the storage layout shared by TriDiagonal and PentaDiagonal.
//
// Layout:
//   - diags holds 2*half+1 diagonals of length n; diags[k][i] is the entry
//     at (i, i+k-half). Diagonal entries of the first/last bRows rows are
//     unused — those rows live in the dense boundary storage instead.
//   - lower holds bRows dense rows anchored at column 0 (matrix rows
//     0..bRows-1), upper holds bRows dense rows anchored at column n-bWidth
//     (matrix rows n-bRows..n-1). Each is bWidth entries wide.
//
// Everything outside the stored structure is implicitly zero.
type bandMatrix struct {
	n      int         // order (row and column count)
	half   int         // sub/super diagonals per side: 1 (tri) or 2 (penta)
	bRows  int         // dense boundary rows per side
	bWidth int         // width of each boundary row, capped at n
	diags  [][]float64 // interior bands
	lower  [][]float64 // first bRows rows, columns [0, bWidth)
	upper  [][]float64 // last bRows rows, columns [n-bWidth, n)
}

// newBandMatrix allocates zeroed storage for an order-n matrix with the given
// number of sub/super diagonals. A negative order is a programmer error and
// panics; order zero yields an empty operator.
func newBandMatrix(n, half int) bandMatrix {
	if n < 0 {
		panic("banded: order must be non-negative")
	}
	m := bandMatrix{n: n, half: half, bRows: half, bWidth: 2*half + 2}
	if m.bWidth > n {
		m.bWidth = n
	}
	if m.bRows > n {
		m.bRows = n
	}
	m.diags = make([][]float64, 2*half+1)
	for k := range m.diags {
		m.diags[k] = make([]float64, n)
	}
	m.lower = make([][]float64, m.bRows)
	m.upper = make([][]float64, m.bRows)
	for r := 0; r < m.bRows; r++ {
		m.lower[r] = make([]float64, m.bWidth)
		m.upper[r] = make([]float64, m.bWidth)
	}

	return m
}

// Order returns the number of rows (= columns) of the matrix.
func (m *bandMatrix) Order() int { return m.n }

// Bandwidth returns the number of stored diagonals (3 or 5).
func (m *bandMatrix) Bandwidth() int { return 2*m.half + 1 }

// BoundaryRows returns the number of dense boundary rows per side.
func (m *bandMatrix) BoundaryRows() int { return m.bRows }

// BoundaryWidth returns the column span of each dense boundary row.
func (m *bandMatrix) BoundaryWidth() int { return m.bWidth }

// check panics when (i, j) addresses a cell outside the n×n matrix.
// Index errors are programmer errors here, mirroring the contract that
// out-of-band access is the caller's responsibility to avoid.
func (m *bandMatrix) check(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic("banded: index out of range")
	}
}

// At returns the matrix entry at (i, j). It is total over [0,n)² and returns
// 0 for any cell outside the stored band and boundary-row structure.
func (m *bandMatrix) At(i, j int) float64 {
	m.check(i, j)
	if i < m.bRows {
		if j < m.bWidth {
			return m.lower[i][j]
		}

		return 0
	}
	if i >= m.n-m.bRows {
		if j >= m.n-m.bWidth {
			return m.upper[i-(m.n-m.bRows)][j-(m.n-m.bWidth)]
		}

		return 0
	}
	if k := j - i + m.half; k >= 0 && k <= 2*m.half {
		return m.diags[k][i]
	}

	return 0
}

// Set writes v at (i, j). Writing outside the stored structure would silently
// lose the value, so it panics instead (programmer error).
func (m *bandMatrix) Set(i, j int, v float64) {
	m.check(i, j)
	if i < m.bRows {
		if j < m.bWidth {
			m.lower[i][j] = v

			return
		}
		panic("banded: write outside stored structure")
	}
	if i >= m.n-m.bRows {
		if j >= m.n-m.bWidth {
			m.upper[i-(m.n-m.bRows)][j-(m.n-m.bWidth)] = v

			return
		}
		panic("banded: write outside stored structure")
	}
	if k := j - i + m.half; k >= 0 && k <= 2*m.half {
		m.diags[k][i] = v

		return
	}
	panic("banded: write outside stored structure")
}

// LowerRow returns a mutable view of the r-th dense boundary row at the lower
// end of the domain (matrix row r, columns [0, BoundaryWidth)).
func (m *bandMatrix) LowerRow(r int) []float64 { return m.lower[r] }

// UpperRow returns a mutable view of the r-th dense boundary row at the upper
// end (matrix row n-BoundaryRows+r, columns [n-BoundaryWidth, n)).
func (m *bandMatrix) UpperRow(r int) []float64 { return m.upper[r] }

// SetLowerRow fills boundary row r with weights anchored at column 0.
// Fewer weights than BoundaryWidth leave the tail zero.
func (m *bandMatrix) SetLowerRow(r int, weights ...float64) {
	if len(weights) > m.bWidth {
		panic("banded: boundary stencil wider than boundary row")
	}
	copy(m.lower[r], weights)
}

// SetUpperRow fills boundary row r with weights anchored at column n-1, i.e.
// the last weight lands on the last column. Fewer weights than BoundaryWidth
// leave the head zero.
func (m *bandMatrix) SetUpperRow(r int, weights ...float64) {
	if len(weights) > m.bWidth {
		panic("banded: boundary stencil wider than boundary row")
	}
	copy(m.upper[r][m.bWidth-len(weights):], weights)
}

// Scale multiplies every stored entry by c, in place.
func (m *bandMatrix) Scale(c float64) {
	var k, i int
	for k = range m.diags {
		for i = range m.diags[k] {
			m.diags[k][i] *= c
		}
	}
	for k = range m.lower {
		for i = range m.lower[k] {
			m.lower[k][i] *= c
			m.upper[k][i] *= c
		}
	}
}

// AddIdentity adds c to every diagonal entry, in place. Together with Scale
// and ScaleRows this lets an external solver form generator combinations
// such as A - λI without densifying.
func (m *bandMatrix) AddIdentity(c float64) {
	var r, i int
	for r = 0; r < m.bRows; r++ {
		m.lower[r][r] += c
		m.upper[r][m.bWidth-m.bRows+r] += c
	}
	for i = m.bRows; i < m.n-m.bRows; i++ {
		m.diags[m.half][i] += c
	}
}

// ScaleRows multiplies row i by w[i], in place. This is the operation an
// external solver uses to weight a derivative operator by spatially varying
// PDE prefactors. len(w) must equal the order.
func (m *bandMatrix) ScaleRows(w []float64) error {
	if len(w) != m.n {
		return ErrDimensionMismatch
	}
	var r, k, i int
	for r = 0; r < m.bRows; r++ {
		for k = range m.lower[r] {
			m.lower[r][k] *= w[r]
			m.upper[r][k] *= w[m.n-m.bRows+r]
		}
	}
	for k = range m.diags {
		for i = m.bRows; i < m.n-m.bRows; i++ {
			m.diags[k][i] *= w[i]
		}
	}

	return nil
}

// Action computes the matrix-vector product with v and returns a fresh slice.
// Accumulation runs left to right within each row, so repeated evaluations
// are bit-identical. len(v) must equal the order; a mismatch panics because
// Operator carries no error channel (callers such as the mixed-derivative
// composer validate field lengths before dispatching here).
func (m *bandMatrix) Action(v []float64) []float64 {
	if len(v) != m.n {
		panic("banded: Action on field of wrong length")
	}
	out := make([]float64, m.n)
	var r, i, k int
	var s float64
	for r = 0; r < m.bRows; r++ {
		s = 0
		for k = 0; k < m.bWidth; k++ {
			s += m.lower[r][k] * v[k]
		}
		out[r] = s
	}
	for i = m.bRows; i < m.n-m.bRows; i++ {
		s = 0
		for k = 0; k <= 2*m.half; k++ {
			s += m.diags[k][i] * v[i+k-m.half]
		}
		out[i] = s
	}
	for r = 0; r < m.bRows; r++ {
		i = m.n - m.bRows + r
		if i < m.bRows {
			continue // degenerate tiny order, row already covered
		}
		s = 0
		for k = 0; k < m.bWidth; k++ {
			s += m.upper[r][k] * v[m.n-m.bWidth+k]
		}
		out[i] = s
	}

	return out
}

// TriDiagonal is a square matrix with one sub-, one main- and one
// super-diagonal, plus one dense boundary row (width 4) at each end.
type TriDiagonal struct {
	bandMatrix
}

// NewTriDiagonal creates an order-n TriDiagonal initialized to zeros.
// n must be non-negative; n = 0 yields an empty operator.
func NewTriDiagonal(n int) *TriDiagonal {
	return &TriDiagonal{bandMatrix: newBandMatrix(n, 1)}
}

// Sub returns the sub-diagonal; Sub()[i] is the entry at (i, i-1).
// Index 0 is unused (that row lives in the boundary storage).
func (m *TriDiagonal) Sub() []float64 { return m.diags[0] }

// Main returns the main diagonal; Main()[i] is the entry at (i, i).
func (m *TriDiagonal) Main() []float64 { return m.diags[1] }

// Super returns the super-diagonal; Super()[i] is the entry at (i, i+1).
// Index n-1 is unused.
func (m *TriDiagonal) Super() []float64 { return m.diags[2] }

// PentaDiagonal is a square matrix with two sub- and two super-diagonals
// around the main one, plus two dense boundary rows (width 6) at each end.
type PentaDiagonal struct {
	bandMatrix
}

// NewPentaDiagonal creates an order-n PentaDiagonal initialized to zeros.
// n must be non-negative; n = 0 yields an empty operator.
func NewPentaDiagonal(n int) *PentaDiagonal {
	return &PentaDiagonal{bandMatrix: newBandMatrix(n, 2)}
}

// Sub2 returns the second sub-diagonal; Sub2()[i] is the entry at (i, i-2).
func (m *PentaDiagonal) Sub2() []float64 { return m.diags[0] }

// Sub returns the first sub-diagonal; Sub()[i] is the entry at (i, i-1).
func (m *PentaDiagonal) Sub() []float64 { return m.diags[1] }

// Main returns the main diagonal.
func (m *PentaDiagonal) Main() []float64 { return m.diags[2] }

// Super returns the first super-diagonal; Super()[i] is the entry at (i, i+1).
func (m *PentaDiagonal) Super() []float64 { return m.diags[3] }

// Super2 returns the second super-diagonal; Super2()[i] is the entry at (i, i+2).
func (m *PentaDiagonal) Super2() []float64 { return m.diags[4] }
