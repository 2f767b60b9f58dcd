// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/metamat/matrix"
	"github.com/katalvlaran/metamat/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestValidateIndex covers in-range and out-of-range cells.
func TestValidateIndex(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 3, nil)
	tests := []struct {
		name    string
		i, j    int
		wantErr error
	}{
		{"origin", 0, 0, nil},
		{"last", 1, 2, nil},
		{"row past end", 2, 0, matrix.ErrOutOfRange},
		{"col past end", 0, 3, matrix.ErrOutOfRange},
		{"negative", -1, 1, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateIndex(a, tc.i, tc.j)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSameShape covers matching and mismatched dimensions across types.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameShape(mat.NewDense(2, 3, nil), sparse.MustNew(2, 3, 0)))
	require.ErrorIs(t, matrix.ValidateSameShape(mat.NewDense(2, 3, nil), mat.NewDense(3, 3, nil)),
		matrix.ErrDimensionMismatch) // rows
	require.ErrorIs(t, matrix.ValidateSameShape(mat.NewDense(2, 3, nil), mat.NewDense(2, 4, nil)),
		matrix.ErrDimensionMismatch) // cols
}

// TestValidateSquare covers square and non-square inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(mat.NewDense(3, 3, nil)))
	require.NoError(t, matrix.ValidateSquare(sparse.MustNew(0, 0, 0)))
	require.ErrorIs(t, matrix.ValidateSquare(mat.NewDense(3, 2, nil)), matrix.ErrNonSquare)
}

// TestValidateSystem walks the guard order: square, rhs rows, solution shape.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(3, 3, nil)
	b := mat.NewDense(3, 2, nil)

	require.NoError(t, matrix.ValidateSystem(a, &mat.Dense{}, b))            // empty x is shaped later
	require.NoError(t, matrix.ValidateSystem(a, mat.NewDense(3, 2, nil), b)) // exact shape

	require.ErrorIs(t, matrix.ValidateSystem(mat.NewDense(3, 2, nil), &mat.Dense{}, b), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSystem(a, &mat.Dense{}, mat.NewDense(2, 2, nil)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSystem(a, mat.NewDense(3, 1, nil), b), matrix.ErrDimensionMismatch)
}
