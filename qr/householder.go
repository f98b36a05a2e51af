// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/katalvlaran/decomp/matrix"
)

// opHouseholder tags Householder errors for uniform wrapping.
const opHouseholder = "Householder"

// Householder computes the QR decomposition of an m×n matrix as a product
// of elementary reflectors.
//
// Description:
//
//	The algorithm keeps a working copy W = Aᵀ, so the columns of A become
//	rows of W and each pivot step mutates W in place. For pivot step k:
//	 1. Extract the active tail x = W[k][k:] of column k.
//	 2. Build the target y with y[0] = copysign(‖x‖, −x[0]) and zeros
//	    elsewhere. Choosing the sign OPPOSITE to x[0] avoids catastrophic
//	    cancellation when x[0] and ‖x‖ are close.
//	 3. Form the reflector H = I − (2/‖x−y‖²)·(x−y)(x−y)ᵀ, sized to the
//	    tail. A zero tail yields the identity reflector, so the step is
//	    simply skipped — no degeneracy special-casing is needed.
//	 4. Accumulate Q := Q·Ĥ, where Ĥ embeds H into the trailing block of
//	    an m×m identity (the first effective step seeds Q with H itself).
//	 5. Apply H to the tails of the remaining rows of W (columns k: of the
//	    original matrix), zeroing the sub-diagonal of column k.
//
// Output: Q is m×m orthogonal; R is m×n, upper-triangular for square input
// and upper-trapezoidal otherwise, extracted from W with zeros below the
// diagonal.
//
// Guarantee: Q·R = A to floating-point precision for ANY real input —
// rank-deficient, tall, wide or square — and Qᵀ·Q = I.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//
// Complexity: O(m·n·min(m,n)) reflector applications (O(m²·min(m,n)) with
// the dense Q accumulation), O(m·n + m²) memory.
func Householder(a matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, qrErrorf(opHouseholder, err)
	}
	m, n := a.Rows(), a.Cols() // input shape
	steps := m                 // pivot steps = min(m, n)
	if n < steps {
		steps = n
	}

	// Stage 2: Prepare the working copy W = Aᵀ (rows of W are columns of A)
	// and the Q accumulator rows, seeded with the m×m identity.
	w, err := columnsOf(a) // w[j] has length m
	if err != nil {
		return nil, nil, qrErrorf(opHouseholder, err)
	}
	qRows := make([][]float64, m)
	for i := 0; i < m; i++ {
		qRows[i] = make([]float64, m)
		qRows[i][i] = 1.0
	}

	// Stage 3: Execute the reflector steps.
	var (
		k, i, j, l int       // loop indices
		size       int       // active tail length m−k
		norm, beta float64   // tail norm and ‖v‖²
		tau        float64   // 2/‖v‖²
		v          []float64 // reflector direction x − y
		h          []float64 // dense reflector H, size×size row-major
		tmp        []float64 // scratch row for in-place products
	)
	for k = 0; k < steps; k++ {
		size = m - k
		x := w[k][k:] // active tail of column k

		// 3.1: Tail norm ‖x‖.
		norm, _ = matrix.Dot(x, x)
		norm = math.Sqrt(norm)

		// 3.2: v = x − y with y[0] = copysign(‖x‖, −x[0]).
		v = make([]float64, size)
		copy(v, x)
		v[0] -= math.Copysign(norm, -x[0])

		// 3.3: ‖v‖²; a zero direction means H = I, skip the step.
		beta, _ = matrix.Dot(v, v)
		if beta == matrix.NormZero {
			continue
		}
		tau = 2.0 / beta

		// 3.4: Build the dense reflector H = I − tau·v·vᵀ (symmetric).
		h = make([]float64, size*size)
		for i = 0; i < size; i++ {
			for j = 0; j < size; j++ {
				h[i*size+j] = -tau * v[i] * v[j]
			}
			h[i*size+i] += 1.0
		}

		// 3.5: Accumulate Q := Q·Ĥ — only columns k: of each Q row change.
		tmp = make([]float64, size)
		for i = 0; i < m; i++ {
			row := qRows[i]
			for j = 0; j < size; j++ {
				sum := matrix.ZeroSum
				for l = 0; l < size; l++ {
					sum += row[k+l] * h[l*size+j]
				}
				tmp[j] = sum
			}
			copy(row[k:], tmp)
		}

		// 3.6: Apply H to the tails of rows k..n-1 of W (trailing submatrix).
		for j = k; j < n; j++ {
			tail := w[j][k:]
			for i = 0; i < size; i++ {
				sum := matrix.ZeroSum
				for l = 0; l < size; l++ {
					sum += h[i*size+l] * tail[l]
				}
				tmp[i] = sum
			}
			copy(tail, tmp)
		}
	}

	// Stage 4: Materialize Q (m×m) from the accumulator rows.
	q, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, nil, qrErrorf(opHouseholder, err)
	}
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			_ = q.Set(i, j, qRows[i][j])
		}
	}

	// Stage 5: Extract R (m×n) — the upper-trapezoidal part of W, zeros below.
	r, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, nil, qrErrorf(opHouseholder, err)
	}
	for j = 0; j < n; j++ {
		for i = 0; i <= j && i < m; i++ { // on/above the diagonal only
			_ = r.Set(i, j, w[j][i])
		}
	}

	return q, r, nil
}
