// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Errors live in errors.go, validators in validators.go, kernels in
// kernels.go per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Decompositions accept any Matrix and return fresh *Dense results, so
// alternative storages can feed the kernels without conversion.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Shape reports (rows, cols) for m. A nil matrix is size-only (0, 0), and a
// matrix with zero rows reports zero columns — there are no elements to
// address either way.
// Complexity: O(1).
func Shape(m Matrix) (rows, cols int) {
	// Nil carries no size at all.
	if m == nil {
		return 0, 0
	}
	rows = m.Rows()
	// A 0×n matrix has no addressable columns.
	if rows == 0 {
		return 0, 0
	}

	return rows, m.Cols()
}
