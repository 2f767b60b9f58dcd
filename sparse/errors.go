// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All checked operations return these sentinels; tests match them via errors.Is.
// Unchecked (Unsafe*) paths may panic on out-of-range input by contract.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a form is created with negative rows or cols.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index lies outside the declared shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// sparseErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
