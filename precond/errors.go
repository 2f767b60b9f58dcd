// SPDX-License-Identifier: MIT

package precond

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDiagonal is returned by Jacobi.Init when a diagonal entry is numerically zero.
	ErrZeroDiagonal = errors.New("precond: zero diagonal entry")

	// ErrZeroPivot is returned by ILU.Init when a pivot is zero or absent from the pattern.
	ErrZeroPivot = errors.New("precond: zero pivot")

	// ErrUnknownKind is returned when a kind name or value is not recognised.
	ErrUnknownKind = errors.New("precond: unknown kind")

	// ErrNonSquare is returned when a preconditioner is requested for a rectangular matrix.
	ErrNonSquare = errors.New("precond: matrix is not square")
)

// precondErrorf wraps err with an operation tag and the offending row.
func precondErrorf(tag string, row int, err error) error {
	return fmt.Errorf("%s(row %d): %w", tag, row, err)
}
