// Package matrix is the system-matrix layer of metamat: a single Matrix type
// that a finite-element engine assembles into and solves with, whatever the
// storage underneath.
//
// The matrix package provides:
//
//   - Three storage variants behind one surface: Full (dense row-major),
//     Symmetric (upper triangle only) and Sparse (triplet, condensable to
//     CSR or CSC).
//   - Checked (Get/Set/Add) and unchecked (UnsafeAdd/UnsafeSet) element access,
//     accumulation of whole matrices or triplets across any storage pair, and
//     the Unify/Nullify edits used to impose boundary conditions.
//   - A solve dispatch: direct factorization (gonum LU or Cholesky, or a
//     Markowitz sparse LU) when the Setting names no Krylov method, otherwise
//     GMRES or BiCGSTAB with a Jacobi or ILU(0) preconditioner, fanned out
//     over right-hand-side columns.
//   - A factorization state machine (Editable, Condensed, Factored) that keeps
//     cached factors consistent with the stored values.
//
// A Matrix satisfies gonum's mat.Matrix, so it can be passed wherever gonum
// expects a read-only container.
//
// Errors are sentinels matched with errors.Is. Every numeric solve failure
// wraps ErrSolveFailed, so callers need only one check to decide whether to
// cut a step or retry with another setting.
//
// See the examples in this package and the spring_chain program under
// examples/ for usage patterns.
package matrix
