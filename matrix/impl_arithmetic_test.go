// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the arithmetic kernels
// (Add/Sub/Mul/Scale/Div/Transpose/Equal) and their algebraic properties.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestAddSub_Basic(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireMatrixEquals(t, [][]float64{{11, 22}, {33, 44}}, sum, matrix.DefaultEpsilon)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	requireMatrixEquals(t, [][]float64{{9, 18}, {27, 36}}, diff, matrix.DefaultEpsilon)

	// Operands untouched.
	requireMatrixEquals(t, [][]float64{{1, 2}, {3, 4}}, a, 0)
	requireMatrixEquals(t, [][]float64{{10, 20}, {30, 40}}, b, 0)
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSub_NilInput(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_ZeroIdentityElement(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 4)
	fillDenseRand(t, a, 7)
	zero := MustDense(t, 3, 4)

	sum, err := matrix.Add(a, zero)
	require.NoError(t, err)
	eq, err := matrix.Equal(sum, a)
	require.NoError(t, err)
	assert.True(t, eq, "A + 0 must equal A")

	diff, err := matrix.Sub(a, zero)
	require.NoError(t, err)
	eq, err = matrix.Equal(diff, a)
	require.NoError(t, err)
	assert.True(t, eq, "A - 0 must equal A")
}

func TestMul_Basic(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3x2

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	requireMatrixEquals(t, [][]float64{{58, 64}, {139, 154}}, c, matrix.DefaultEpsilon)
}

func TestMul_InnerMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // a.Cols != b.Rows

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityNeutral(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 4, 4)
	fillDenseRand(t, a, 99)
	identity, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	left, err := matrix.Mul(identity, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, identity)
	require.NoError(t, err)

	for _, got := range []matrix.Matrix{left, right} {
		eq, err := matrix.Equal(got, a)
		require.NoError(t, err)
		assert.True(t, eq)
	}
}

func TestScaleDiv_RoundTrip(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3)
	fillDenseRand(t, a, 42)

	for _, k := range []float64{2, -3.5, 0.125, 1e6} {
		scaled, err := matrix.Scale(a, k)
		require.NoError(t, err)
		back, err := matrix.Div(scaled, k)
		require.NoError(t, err)

		eq, err := matrix.Equal(back, a)
		require.NoError(t, err)
		assert.True(t, eq, "(A*%g)/%g must round-trip", k, k)
	}
}

func TestDiv_ByZero(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	_, err := matrix.Div(a, 0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
}

func TestScale_Commutes(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	s, err := matrix.Scale(a, 2.5)
	require.NoError(t, err)
	requireMatrixEquals(t, [][]float64{{2.5, -5}, {7.5, 10}}, s, matrix.DefaultEpsilon)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireMatrixEquals(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)
}

func TestEqual_Semantics(t *testing.T) {
	t.Parallel()

	t.Run("shape mismatch is false, not error", func(t *testing.T) {
		a := MustDense(t, 2, 2)
		b := MustDense(t, 2, 3)
		eq, err := matrix.Equal(a, b)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("within tolerance", func(t *testing.T) {
		a := MustFromRows(t, [][]float64{{1, 2}})
		b := MustFromRows(t, [][]float64{{1 + 1e-10, 2 - 1e-10}})
		eq, err := matrix.Equal(a, b)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("beyond tolerance", func(t *testing.T) {
		a := MustFromRows(t, [][]float64{{1, 2}})
		b := MustFromRows(t, [][]float64{{1 + 1e-6, 2}})
		eq, err := matrix.Equal(a, b)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("custom epsilon", func(t *testing.T) {
		a := MustFromRows(t, [][]float64{{1}})
		b := MustFromRows(t, [][]float64{{1.4}})
		eq, err := matrix.Equal(a, b, matrix.WithEpsilon(0.5))
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("nil operand", func(t *testing.T) {
		a := MustDense(t, 1, 1)
		_, err := matrix.Equal(nil, a)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestKernels_FallbackParity hides the concrete type of one operand to force
// the generic At/Set paths and asserts they match the *Dense fast paths.
func TestKernels_FallbackParity(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3)
	b := MustDense(t, 3, 3)
	fillDenseRand(t, a, 1)
	fillDenseRand(t, b, 2)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	eq, err := matrix.Equal(fast, slow)
	require.NoError(t, err)
	assert.True(t, eq, "Add fallback must match fast path")

	fast, err = matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	eq, err = matrix.Equal(fast, slow)
	require.NoError(t, err)
	assert.True(t, eq, "Mul fallback must match fast path")

	fast, err = matrix.Scale(a, 3.25)
	require.NoError(t, err)
	slow, err = matrix.Scale(hide{a}, 3.25)
	require.NoError(t, err)
	eq, err = matrix.Equal(fast, slow)
	require.NoError(t, err)
	assert.True(t, eq, "Scale fallback must match fast path")
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{-1, -1e-12} {
		assert.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() {
			matrix.WithEpsilon(bad)
		})
	}
}
