// SPDX-License-Identifier: MIT
// Package matrix: convenience constructors on top of NewDense.
// NewFromRows enforces the package numeric policy at ingestion: every
// element must be finite (no NaN, no ±Inf) and every row must have the
// same length.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity creates an n×n identity matrix (1 on the main diagonal).
// Returns ErrBadShape for n < 0.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	// Allocate zeroed n×n storage (validates n).
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, err)
	}
	// Set the main diagonal to 1.
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a Dense matrix from row slices.
// Stage 1 (Validate): all rows must share one length; all values finite.
// Stage 2 (Execute): copy values into fresh flat storage.
// Stage 3 (Finalize): return the Dense; the input remains caller-owned.
//
// Errors:
//   - ErrDimensionMismatch — ragged rows (unequal lengths).
//   - ErrNaNInf            — any NaN or ±Inf element.
//
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Degenerate 0×n input is a legal size-only matrix.
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Allocate target storage up front.
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}

	// Validate and copy row by row.
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		// Every row must match the first row's length.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			// Reject non-finite values at the boundary.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewFromRows: element (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}
