// SPDX-License-Identifier: MIT
// Package qr_test: unit tests for the classical Gram-Schmidt strategy.

package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decomp/matrix"
	"github.com/katalvlaran/decomp/qr"
)

// TestGramSchmidt_NonSquare ensures the classical process rejects
// rectangular input with ErrNonSquare.
func TestGramSchmidt_NonSquare(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	_, _, err = qr.GramSchmidt(a)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "3×2 input must error")
}

// TestGramSchmidt_NilInput ensures a nil matrix is rejected, not dereferenced.
func TestGramSchmidt_NilInput(t *testing.T) {
	t.Parallel()

	_, _, err := qr.GramSchmidt(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGramSchmidt_Reconstruction5x5 checks Q·R ≈ A and orthonormality on
// the full-rank reference matrix.
func TestGramSchmidt_Reconstruction5x5(t *testing.T) {
	t.Parallel()

	a := fixture5x5(t)
	q, r, err := qr.GramSchmidt(a)
	require.NoError(t, err)

	assert.Less(t, reconstructionResidual(t, q, r, a), 1e-8, "‖Q·R − A‖ too large")
	assert.Less(t, orthonormalityResidual(t, q), 1e-8, "Qᵀ·Q must be ≈ I")
}

// TestGramSchmidt_UpperTriangularR verifies R carries exact zeros below the
// diagonal — the lower triangle is never written.
func TestGramSchmidt_UpperTriangularR(t *testing.T) {
	t.Parallel()

	a := fixture5x5(t)
	_, r, err := qr.GramSchmidt(a)
	require.NoError(t, err)

	for i := 1; i < r.Rows(); i++ {
		for j := 0; j < i; j++ {
			assert.Zero(t, mustAt(t, r, i, j), "R(%d,%d) below diagonal", i, j)
		}
	}
}

// TestGramSchmidt_DependentColumnPolicy verifies the degeneracy policy: a
// duplicate column yields a ZERO basis column in Q at the dependent index,
// silently — no error is raised.
func TestGramSchmidt_DependentColumnPolicy(t *testing.T) {
	t.Parallel()

	// Column 1 duplicates column 0; column 2 is independent.
	a, err := matrix.NewFromRows([][]float64{
		{1, 1, 2},
		{0, 0, 1},
		{0, 0, 3},
	})
	require.NoError(t, err)

	q, _, err := qr.GramSchmidt(a)
	require.NoError(t, err, "rank deficiency is a policy, not an error")

	// Column 0 survives as a unit vector.
	assert.InDelta(t, 1.0, mustAt(t, q, 0, 0), 1e-12)

	// Column 1 is exactly zero.
	for i := 0; i < 3; i++ {
		assert.Zero(t, mustAt(t, q, i, 1), "Q(%d,1) must be zeroed", i)
	}

	// Column 2 still has unit norm.
	var norm2 float64
	for i := 0; i < 3; i++ {
		v := mustAt(t, q, i, 2)
		norm2 += v * v
	}
	assert.InDelta(t, 1.0, norm2, 1e-12, "independent column stays orthonormal")
}

// TestGramSchmidt_OneByOne covers the smallest square input.
func TestGramSchmidt_OneByOne(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{-4}})
	require.NoError(t, err)

	q, r, err := qr.GramSchmidt(a)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, mustAt(t, q, 0, 0), 1e-15, "Q normalizes the sign into the basis")
	assert.InDelta(t, 4.0, mustAt(t, r, 0, 0), 1e-15, "R carries the magnitude")
}
