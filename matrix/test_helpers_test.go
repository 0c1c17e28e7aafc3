// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.
//   - Host the structural RREF checker used by the property tests; the
//     checker is a test concern, not production code.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback path. Wrap only the
// operand whose path you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or aborts the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from nested rows or aborts the test.
func MustFromRows(tb testing.TB, values [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(values)
	require.NoError(tb, err, "NewDenseFromRows(%v)", values)

	return m
}

// MustAt reads m(i,j) or aborts the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m(i,j)=v or aborts the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v), "Set(%d,%d,%g)", i, j, v)
}

// fillDenseRand fills m with reproducible pseudo-random values in [-5, 5).
func fillDenseRand(tb testing.TB, m matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(tb, m, i, j, rng.Float64()*10-5)
		}
	}
}

// requireMatrixEquals asserts got matches want element-wise within eps.
func requireMatrixEquals(tb testing.TB, want [][]float64, got matrix.Matrix, eps float64) {
	tb.Helper()
	require.Equal(tb, len(want), got.Rows(), "row count")
	require.Equal(tb, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			require.InDelta(tb, want[i][j], MustAt(tb, got, i, j), eps, "element (%d,%d)", i, j)
		}
	}
}

// requireIsRREF asserts the four structural Reduced Row Echelon Form
// properties within eps:
//  1. every nonzero row's first nonzero entry is 1,
//  2. pivot columns strictly increase from row to row,
//  3. a pivot column is zero everywhere except at its pivot,
//  4. all-zero rows are contiguous at the bottom.
func requireIsRREF(tb testing.TB, m matrix.Matrix, eps float64) {
	tb.Helper()
	rows, cols := m.Rows(), m.Cols()
	prevPivot := -1
	zeroRowSeen := false
	for i := 0; i < rows; i++ {
		// Locate the row's first entry exceeding the tolerance.
		pivotCol := -1
		for j := 0; j < cols; j++ {
			if math.Abs(MustAt(tb, m, i, j)) > eps {
				pivotCol = j
				break
			}
		}
		if pivotCol < 0 {
			zeroRowSeen = true
			continue
		}
		require.False(tb, zeroRowSeen, "nonzero row %d found below an all-zero row", i)
		require.InDelta(tb, 1.0, MustAt(tb, m, i, pivotCol), eps, "pivot of row %d must be 1", i)
		require.Greater(tb, pivotCol, prevPivot, "pivot column of row %d must increase", i)
		prevPivot = pivotCol
		for k := 0; k < rows; k++ {
			if k == i {
				continue
			}
			require.InDelta(tb, 0.0, MustAt(tb, m, k, pivotCol), eps,
				"pivot column %d must be zero at row %d", pivotCol, k)
		}
	}
}
