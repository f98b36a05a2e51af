// Package qr factors a dense matrix A into an orthogonal Q and a
// right-triangular R, with two independently usable strategies.
//
// 🚀 Which strategy?
//
//   - GramSchmidt — the classical (not modified) Gram-Schmidt process on a
//     square matrix. Fast and simple, but numerically loose: a column whose
//     residual squared norm falls below DependencyTol (1e-6) is treated as
//     linearly dependent and emitted as a ZERO column of Q — a policy, not
//     an error. Reconstruction Q·R ≈ A holds only outside the degenerate
//     subspace.
//   - Householder — QR via elementary reflectors. Numerically stable for
//     ill-conditioned and near-dependent columns, accepts any m×n shape
//     (R comes back upper-trapezoidal when m ≠ n), and guarantees
//     Q·R = A to floating-point precision with Qᵀ·Q = I.
//
// The two entry points are deliberately separate: they differ in stability
// and degeneracy behavior, and hiding that behind one polymorphic call
// would only obscure which policy applies.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decomp/qr"
//
//	Q, R, err := qr.Householder(A) // any m×n
//	Q, R, err := qr.GramSchmidt(A) // square only
//
// Both functions are pure: A is never mutated, results are fresh matrices,
// and concurrent calls on different inputs need no synchronization.
//
// Complexity: O(m·n·min(m,n)) time for both strategies.
package qr
