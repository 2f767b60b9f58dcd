// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every checked operation returns one of these sentinels, wrapped with the
// operation name. Callers and tests match them with errors.Is.
// Panics are reserved for programmer errors on the Unsafe* paths and for
// invalid functional options.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced by every public entry point):
// shape -> index -> state -> setting -> numeric failure.

var (
	// ErrInvalidDimensions is returned when a matrix is created with negative rows or cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	// Checked accessors (Get/Set/Add/Unify/Nullify) return it; At never does.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. accumulating a 3×3 into a 4×4 or solving with a right-hand side of the wrong height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrFactored is returned when an edit is attempted on a matrix whose
	// factorization is cached. Call SetFactored(false) or Zeros first.
	ErrFactored = errors.New("matrix: matrix is factored")

	// ErrNoIterativeSolver is returned by IterativeSolve when the setting names no algorithm.
	// It is a configuration error and never wraps ErrSolveFailed.
	ErrNoIterativeSolver = errors.New("matrix: no iterative solver selected")

	// ErrInvalidSetting is returned when a solver setting fails validation.
	ErrInvalidSetting = errors.New("matrix: invalid solver setting")

	// ErrSolveFailed is the single aggregate code for every numeric solve failure.
	// The underlying cause is joined to it and reachable through errors.Is.
	ErrSolveFailed = errors.New("matrix: solve failed")

	// ErrSingular is returned when a direct factorization meets a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// solveFailure joins ErrSolveFailed with its causes under an operation tag.
func solveFailure(tag string, causes ...error) error {
	return matrixErrorf(tag, errors.Join(append([]error{ErrSolveFailed}, causes...)...))
}
