// Package matrix provides the dense storage and vector/matrix primitives
// shared by every decomposition in decomp.
//
// The package offers:
//
//   - Dense — a row-major float64 matrix with O(1) element access, behind a
//     minimal Matrix interface (Rows/Cols/At/Set/Clone).
//   - Vector kernels: Dot (inner product) and Axpy (y := alpha·x + y).
//   - Matrix kernels: Mul (gemm), Transpose, Add, Sub, Scale, MatVec and
//     the Frobenius norm — each with a *Dense fast path over the flat
//     backing slice and a generic At/Set fallback.
//   - Centralized validators and package-level sentinel errors; every
//     kernel fails fast on dimension mismatches and never silently
//     truncates or pads.
//
// All kernels are pure: operands are never mutated (Axpy's in-place update
// of y is its sole, documented purpose) and results are freshly allocated.
// Matrices are best kept small-to-medium dense; no sparse format is
// provided or planned here.
//
// See qr/ and lup/ for the decompositions built on these primitives.
package matrix
