// Package decomp is a small, dependency-light toolbox for dense-matrix
// factorization — QR and LUP decompositions over plain float64 storage.
//
// 🚀 What is decomp?
//
//	A pure-Go kernel library that brings together:
//		• Dense primitives: row-major storage, dot/axpy, gemm, transpose
//		• QR, two strategies: classical Gram-Schmidt and Householder reflections
//		• LUP: Crout elimination with partial pivoting, rectangular-friendly
//		• Direct solvers on LUP factors: Solve, Det, Inverse
//
// ✨ Why choose decomp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – documented degeneracy policies, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Reentrant – no shared state; decompose in parallel from many goroutines
//
// Everything is organized under three subpackages:
//
//	matrix/ — Dense storage, vector/matrix kernels, validators & sentinels
//	qr/     — GramSchmidt (square, degeneracy-tolerant) and Householder (any shape)
//	lup/    — Crout LUP, factor splitting, permutation views, Solve/Det/Inverse
//
// Quick sketch:
//
//	A, _ := matrix.NewFromRows([][]float64{{3, 5}, {6, 0}})
//	Q, R, err := qr.Householder(A) // A = Q·R, Qᵀ·Q = I
//	p, lu, err := lup.Decompose(A) // P·A = L·U
//
//	go get github.com/katalvlaran/decomp
package decomp
