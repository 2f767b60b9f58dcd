// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep Matrix methods and the solve dispatch minimal by delegating guards here.
//
// Note:
//  - Validators accept any gonum mat.Matrix, so right-hand sides and solution
//    blocks go through the same checks as system matrices.
//  - An empty *mat.Dense reports 0×0 and is treated as such.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateIndex ensures (i, j) addresses a cell of m.
// Returns wrapped ErrOutOfRange otherwise. Complexity: O(1).
func ValidateIndex(m mat.Matrix, i, j int) error {
	r, c := m.Dims()
	if !sparse.InShape(i, j, r, c) {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, j), ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square.
// Errors: ErrNonSquare.
func ValidateSquare(m mat.Matrix) error {
	if r, c := m.Dims(); r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSystem is the composite guard of every solve: Square(a) → Rows(b) == n
// → x empty or n×k.
//
// Errors: ErrNonSquare, ErrDimensionMismatch.
func ValidateSystem(a mat.Matrix, x *mat.Dense, b mat.Matrix) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	n, _ := a.Dims()
	br, bc := b.Dims()
	if br != n {
		return validatorErrorf("ValidateSystem: rhs rows", ErrDimensionMismatch)
	}
	if x.IsEmpty() {
		return nil
	}
	if xr, xc := x.Dims(); xr != n || xc != bc {
		return validatorErrorf("ValidateSystem: solution shape", ErrDimensionMismatch)
	}

	return nil
}
