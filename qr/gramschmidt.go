// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/decomp/matrix"
)

// DependencyTol is the squared-norm threshold below which a residual column
// is declared linearly dependent by GramSchmidt and replaced with a zero
// basis column. Deliberately loose; see the package doc for the policy.
const DependencyTol = 1e-6

// opGramSchmidt tags GramSchmidt errors for uniform wrapping.
const opGramSchmidt = "GramSchmidt"

// GramSchmidt computes the QR decomposition of a square matrix using the
// classical Gram-Schmidt process.
//
// Description:
//
//	Columns are orthonormalized in order. For column j, projections onto
//	every previously computed basis column k < j are subtracted, with each
//	projection coefficient taken against the ORIGINAL column j (classical
//	variant — the corrections are not re-taken against the running
//	residual, which is what the modified variant would do). If the residual
//	squared norm exceeds DependencyTol the column is normalized to unit
//	length; otherwise it is numerically dependent and a ZERO basis column
//	is emitted in its place — a degeneracy policy, not an error.
//
//	R is then derived by projection: R[i][j] = Σ_k Q[k][i]·A[k][j] for
//	j ≥ i, and 0 below the diagonal.
//
// Guarantee: Q·R ≈ A whenever no column was flagged degenerate; otherwise
// reconstruction is only approximate in the degenerate subspace. Prefer
// Householder for ill-conditioned input.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//   - matrix.ErrNonSquare — the classical process assumes a square matrix;
//     use Householder for rectangular input.
//
// Complexity: O(n³) time, O(n²) memory.
func GramSchmidt(a matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input (non-nil, square).
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, qrErrorf(opGramSchmidt, err)
	}
	n := a.Rows() // common dimension

	// Stage 2: Extract the columns of A into contiguous vectors.
	cols, err := columnsOf(a)
	if err != nil {
		return nil, nil, qrErrorf(opGramSchmidt, err)
	}

	// Stage 3: Orthonormalize column by column (classical variant).
	var (
		basis = make([][]float64, n) // basis[j] = column j of Q
		v     []float64              // running residual of the current column
		coef  float64                // projection coefficient q_k · a_j
		norm2 float64                // squared norm of the residual
		j, k  int                    // loop indices
	)
	for j = 0; j < n; j++ {
		// 3.1: Start from a private copy of the original column.
		v = make([]float64, n)
		copy(v, cols[j])

		// 3.2: Subtract projections onto every prior basis column.
		for k = 0; k < j; k++ {
			// Coefficient against the ORIGINAL column (classical Gram-Schmidt).
			coef, _ = matrix.Dot(basis[k], cols[j]) // equal lengths by construction
			// v -= coef · basis[k]
			_ = matrix.Axpy(-coef, basis[k], v)
		}

		// 3.3: Normalize or zero out per the degeneracy policy.
		norm2, _ = matrix.Dot(v, v)
		if norm2 > DependencyTol {
			scale := 1.0 / math.Sqrt(norm2)
			for k = 0; k < n; k++ {
				v[k] *= scale
			}
			basis[j] = v
		} else {
			// Numerically dependent column → zero basis vector, no error.
			basis[j] = make([]float64, n)
		}
	}

	// Stage 4: Assemble Q from the basis columns.
	q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, qrErrorf(opGramSchmidt, err)
	}
	var i int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = q.Set(i, j, basis[j][i]) // basis is column-major
		}
	}

	// Stage 5: Derive R by projecting A's columns onto the basis.
	r, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, qrErrorf(opGramSchmidt, err)
	}
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // strictly upper-triangular fill
			coef, _ = matrix.Dot(basis[i], cols[j])
			_ = r.Set(i, j, coef)
		}
	}

	return q, r, nil
}

// qrErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only when err != nil.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// columnsOf copies the columns of a into a slice of vectors:
// cols[j][i] = a[i][j]. The copies are private to the caller.
// Complexity: O(m·n) time and memory.
func columnsOf(a matrix.Matrix) ([][]float64, error) {
	rows, colCnt := a.Rows(), a.Cols()
	cols := make([][]float64, colCnt)

	var i, j int
	var v float64
	var err error
	for j = 0; j < colCnt; j++ {
		cols[j] = make([]float64, rows)
		for i = 0; i < rows; i++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			cols[j][i] = v
		}
	}

	return cols, nil
}
