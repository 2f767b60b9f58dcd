// Package metamat is the system-matrix layer of a structural / finite-element
// engine: one matrix abstraction to assemble stiffness, mass and damping
// systems into, and one solve call to get displacements back out.
//
// What is in the box?
//
//	A storage-agnostic toolkit built on gonum that brings together:
//		• Storage: dense, symmetric (upper triangle) and sparse (triplet) matrices
//		• Conversions: lossless triplet ⇄ CSR ⇄ CSC ⇄ dense, duplicates summed
//		• Boundary conditions: Unify / Nullify a degree of freedom in place
//		• Direct solves: gonum LU and Cholesky, Markowitz sparse LU
//		• Krylov solves: restarted GMRES and BiCGSTAB, one goroutine per column
//		• Preconditioners: Jacobi and ILU(0)
//
// Layout:
//
//	sparse/  : Triplet, CSR and CSC forms and the conversions between them
//	precond/ : preconditioner family: unity, Jacobi, ILU(0)
//	krylov/  : GMRES and BiCGSTAB over an abstract linear operator
//	matrix/  : the Matrix type, storage variants, settings and solve dispatch
//	examples/: spring_chain: assemble, clamp and solve every way
//
// Quick ASCII example (three springs, left end clamped):
//
//	|-/\/\/-o-/\/\/-o-/\/\/-o --> F
//
//	[ 1   0   0   0 ] [u0]   [0]
//	[ 0  2k  -k   0 ] [u1] = [0]
//	[ 0  -k  2k  -k ] [u2]   [0]
//	[ 0   0  -k   k ] [u3]   [F]
//
//	go get github.com/katalvlaran/metamat/matrix
package metamat
