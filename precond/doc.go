// Package precond provides the preconditioners used by the Krylov solvers of
// the metamat module.
//
// What & Why:
//
//	A preconditioner M approximates the system matrix A so that M⁻¹A is better
//	conditioned than A. Each solve builds one from the current system matrix,
//	calls Init once, applies it read-only from every worker, then drops it.
//
// Family:
//   - Unity: the identity (Apply copies).
//   - Jacobi: diagonal scaling; Init fails on a zero diagonal entry.
//   - ILU: zero-fill incomplete LU on the sparsity pattern of A; Init fails on a
//     zero or missing pivot.
//
// Concurrency:
//
//	After a successful Init, Apply is safe for concurrent use: it allocates
//	nothing shared and only writes to dst.
package precond
