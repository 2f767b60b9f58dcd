// SPDX-License-Identifier: MIT

package krylov

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned when MaxIterations is reached above tolerance.
	ErrNotConverged = errors.New("krylov: did not converge")

	// ErrBreakdown is returned when a recurrence divides by an exact zero.
	ErrBreakdown = errors.New("krylov: breakdown")

	// ErrDimensionMismatch is returned when x and b differ in length.
	ErrDimensionMismatch = errors.New("krylov: dimension mismatch")

	// ErrUnknownMethod is returned for a Method without a solver.
	ErrUnknownMethod = errors.New("krylov: unknown method")
)

// krylovErrorf tags err with the solver name and the iteration it stopped at.
func krylovErrorf(tag string, iter int, err error) error {
	return fmt.Errorf("%s(iter %d): %w", tag, iter, err)
}
