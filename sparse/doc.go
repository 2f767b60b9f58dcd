// Package sparse holds the sparse representations a system matrix passes through
// between finite-element assembly and a solver.
//
// What & Why:
//
//	Assembly naturally produces overlapping (row, col, value) contributions at
//	shared degrees of freedom. Triplet accumulates them without deduplication;
//	CSR and CSC are the compressed forms most solvers want, produced on demand.
//	The triplet form is the source of truth while a system is still editable.
//
// Key features:
//   - Triplet (coordinate list) with duplicate-summing materialization.
//   - CSR / CSC with optional compaction (sorted, duplicates summed).
//   - Dense materialization through gonum's *mat.Dense; every form implements mat.Matrix.
//   - Unify / Nullify row-column edits used to impose or deactivate a degree of freedom.
//
// Invariant:
//
//	For every conversion, the sum of all stored values at a coordinate equals the
//	dense cell at that coordinate. Nothing is dropped silently.
//
// Complexity:
//   - Append: amortized O(1); At: O(nnz); ToDense: O(nnz + r*c).
//   - ToCSR/ToCSC: O(nnz) without compaction, O(nnz log nnz) with compaction.
package sparse
