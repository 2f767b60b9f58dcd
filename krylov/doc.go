// Package krylov implements the two Krylov subspace solvers used for iterative
// solution of assembled systems: restarted GMRES with left preconditioning and
// BiCGSTAB with right preconditioning.
//
// Both solvers see the system matrix only through Operator (y = A x) and the
// preconditioner only through Preconditioner (z = M⁻¹ r), so they work with any
// storage. x and b are blas64 vectors and may be strided, which lets a caller
// solve straight into one column of a row-major block. Work vectors are
// contiguous and owned by the call, so one Operator and one Preconditioner may
// serve many concurrent solves.
//
// Convergence is declared when the residual norm drops to
// Tolerance * max(‖b‖, 1). For GMRES both norms are of left-preconditioned
// vectors. The test runs before the first iteration and after every iteration;
// MaxIterations bounds the total number of iterations across restarts.
package krylov
