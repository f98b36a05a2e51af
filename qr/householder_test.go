// SPDX-License-Identifier: MIT
// Package qr_test: unit tests for the Householder-reflection strategy.

package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decomp/matrix"
	"github.com/katalvlaran/decomp/qr"
)

// TestHouseholder_NilInput ensures a nil matrix is rejected, not dereferenced.
func TestHouseholder_NilInput(t *testing.T) {
	t.Parallel()

	_, _, err := qr.Householder(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHouseholder_Reconstruction5x5 checks Q·R ≈ A within 1e-9 and the
// orthonormality Qᵀ·Q ≈ I on the full-rank reference matrix.
func TestHouseholder_Reconstruction5x5(t *testing.T) {
	t.Parallel()

	a := fixture5x5(t)
	q, r, err := qr.Householder(a)
	require.NoError(t, err)

	assert.Less(t, reconstructionResidual(t, q, r, a), 1e-9, "‖Q·R − A‖ too large")
	assert.Less(t, orthonormalityResidual(t, q), 1e-9, "Qᵀ·Q must be ≈ I")
}

// TestHouseholder_Rectangular covers tall and wide inputs; R must come back
// upper-trapezoidal and reconstruction must still hold.
func TestHouseholder_Rectangular(t *testing.T) {
	t.Parallel()

	for name, rows := range map[string][][]float64{
		"tall_4x2": {{1, 2}, {3, 4}, {5, 6}, {7, -8}},
		"wide_2x4": {{1, 2, 3, 4}, {5, -6, 7, 8}},
	} {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := matrix.NewFromRows(rows)
			require.NoError(t, err)

			q, r, err := qr.Householder(a)
			require.NoError(t, err)

			// Shapes: Q is m×m, R is m×n.
			m, n := a.Rows(), a.Cols()
			assert.Equal(t, m, q.Rows())
			assert.Equal(t, m, q.Cols())
			assert.Equal(t, m, r.Rows())
			assert.Equal(t, n, r.Cols())

			// Guarantees hold for any shape.
			assert.Less(t, reconstructionResidual(t, q, r, a), 1e-9)
			assert.Less(t, orthonormalityResidual(t, q), 1e-9)

			// R is upper-trapezoidal: exact zeros below the diagonal.
			for i := 0; i < m; i++ {
				for j := 0; j < i && j < n; j++ {
					assert.Zero(t, mustAt(t, r, i, j), "R(%d,%d)", i, j)
				}
			}
		})
	}
}

// TestHouseholder_RankDeficient verifies that reflectors need no degeneracy
// special-casing: duplicate columns still reconstruct exactly.
func TestHouseholder_RankDeficient(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{
		{1, 1, 2},
		{2, 2, 3},
		{3, 3, 4},
	})
	require.NoError(t, err)

	q, r, err := qr.Householder(a)
	require.NoError(t, err, "rank deficiency must not error")
	assert.Less(t, reconstructionResidual(t, q, r, a), 1e-9)
	assert.Less(t, orthonormalityResidual(t, q), 1e-9, "Q stays orthogonal regardless of rank")
}

// TestHouseholder_ZeroMatrix covers the all-zero tail: every reflector
// degenerates to the identity and the step is skipped.
func TestHouseholder_ZeroMatrix(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	q, r, err := qr.Householder(a)
	require.NoError(t, err)

	// Q stays the identity seed; R stays zero.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, mustAt(t, q, i, j), "Q(%d,%d)", i, j)
			assert.Zero(t, mustAt(t, r, i, j), "R(%d,%d)", i, j)
		}
	}
}

// TestHouseholder_SignStability verifies the copysign rule on a 1×1 input:
// the reflector flips the sign instead of cancelling against the norm.
func TestHouseholder_SignStability(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{-5}})
	require.NoError(t, err)

	q, r, err := qr.Householder(a)
	require.NoError(t, err)

	// y = copysign(‖x‖, −x₀) = +5, so Q = [−1] and R = [5].
	assert.Equal(t, -1.0, mustAt(t, q, 0, 0))
	assert.Equal(t, 5.0, mustAt(t, r, 0, 0))
}

// TestHouseholder_InputUntouched ensures the working copy is private: the
// caller's matrix is bit-identical after the call.
func TestHouseholder_InputUntouched(t *testing.T) {
	t.Parallel()

	a := fixture5x5(t)
	want := a.Clone()

	_, _, err := qr.Householder(a)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.Equal(t, mustAt(t, want, i, j), mustAt(t, a, i, j), "input mutated at (%d,%d)", i, j)
		}
	}
}
