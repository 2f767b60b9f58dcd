// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the triplet form.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/metamat/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewInvalidDimensions ensures that negative shapes are rejected.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := sparse.New(-1, 3, 0)                       // negative rows
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = sparse.New(3, -1, 0)                        // negative cols
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions

	tr, err := sparse.New(0, 0, -5) // empty shape with negative hint is fine
	require.NoError(t, err)
	require.Equal(t, 0, tr.Hint()) // hint clamps at zero
	require.True(t, tr.IsEmpty())
}

// TestAppendOutOfRange verifies the checked append.
func TestAppendOutOfRange(t *testing.T) {
	tr := sparse.MustNew(2, 3, 4)

	require.ErrorIs(t, tr.Append(2, 0, 1), sparse.ErrOutOfRange)  // row too large
	require.ErrorIs(t, tr.Append(0, 3, 1), sparse.ErrOutOfRange)  // col too large
	require.ErrorIs(t, tr.Append(-1, 0, 1), sparse.ErrOutOfRange) // negative row
	require.NoError(t, tr.Append(1, 2, 5))
	require.Equal(t, 1, tr.Len())
	require.Equal(t, 0.0, tr.At(5, 5)) // out-of-range reads are zero
}

// TestDuplicatesSumEverywhere checks that every materialization sums duplicates.
func TestDuplicatesSumEverywhere(t *testing.T) {
	tr := sparse.MustNew(3, 3, 8)
	tr.UnsafeAppend(0, 0, 1)
	tr.UnsafeAppend(0, 0, 2)
	tr.UnsafeAppend(2, 1, -1)
	tr.UnsafeAppend(1, 2, 4)
	tr.UnsafeAppend(2, 1, 0.5)

	want := mat.NewDense(3, 3, []float64{
		3, 0, 0,
		0, 0, 4,
		0, -0.5, 0,
	})

	require.Equal(t, 3.0, tr.At(0, 0))
	require.True(t, mat.Equal(want, tr.ToDense()))
	require.True(t, mat.Equal(want, tr.ToCSR(false).ToDense()))
	require.True(t, mat.Equal(want, tr.ToCSC(false).ToDense()))
	require.True(t, mat.Equal(want, tr.ToCSR(true).ToDense()))
	require.True(t, mat.Equal(want, tr.ToCSC(true).ToDense()))
	require.Equal(t, 5, tr.Len()) // compaction works on a copy
}

// TestCondense verifies sorting and in-place duplicate summation.
func TestCondense(t *testing.T) {
	tr := sparse.MustNew(2, 2, 0)
	tr.UnsafeAppend(1, 1, 1)
	tr.UnsafeAppend(0, 1, 2)
	tr.UnsafeAppend(1, 1, 3)
	tr.UnsafeAppend(0, 0, 4)
	tr.UnsafeAppend(0, 1, -2)

	tr.Condense()
	require.Equal(t, 3, tr.Len()) // (0,0) (0,1) (1,1)

	i, j, v := tr.Entry(0)
	require.Equal(t, []any{0, 0, 4.0}, []any{i, j, v})
	i, j, v = tr.Entry(1)
	require.Equal(t, []any{0, 1, 0.0}, []any{i, j, v}) // zero sum keeps its slot
	i, j, v = tr.Entry(2)
	require.Equal(t, []any{1, 1, 4.0}, []any{i, j, v})
}

// TestRoundTripThroughDense checks FromDense(ToDense(t)) keeps every cell.
func TestRoundTripThroughDense(t *testing.T) {
	tr := sparse.MustNew(3, 4, 0)
	tr.UnsafeAppend(0, 3, 1.5)
	tr.UnsafeAppend(2, 0, -2)
	tr.UnsafeAppend(2, 0, -1)
	tr.UnsafeAppend(1, 1, 7)

	back := sparse.FromDense(tr.ToDense())
	r, c := back.Dims()
	require.Equal(t, []int{3, 4}, []int{r, c})
	require.True(t, mat.Equal(tr.ToDense(), back.ToDense()))
	require.Equal(t, 3, back.Len()) // duplicates are merged by the dense pass
}

// TestUnifyIdempotent verifies that unifying twice equals unifying once.
func TestUnifyIdempotent(t *testing.T) {
	tr := sparse.MustNew(3, 3, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tr.UnsafeAppend(i, j, float64(1+i+j))
		}
	}

	once := tr.Clone()
	once.Unify(1)
	twice := once.Clone()
	twice.Unify(1)

	require.True(t, mat.Equal(once.ToDense(), twice.ToDense()))
	require.Equal(t, 1.0, once.At(1, 1))
	require.Equal(t, 0.0, once.At(0, 1))
	require.Equal(t, 0.0, once.At(1, 2))
	require.Equal(t, 1.0, once.At(0, 0)) // untouched cells survive

	tr.Nullify(2)
	tr.Nullify(2)
	require.Equal(t, 0.0, tr.At(2, 2))
	require.Equal(t, 4, tr.Len())
}

// TestArithmetic covers Scale, AddScaled, MulVecTo, Diag and MaxAbs.
func TestArithmetic(t *testing.T) {
	a := sparse.MustNew(2, 2, 0)
	a.UnsafeAppend(0, 0, 2)
	a.UnsafeAppend(0, 1, 1)
	a.UnsafeAppend(1, 1, 3)

	b := a.Clone()
	b.Scale(2)
	require.NoError(t, a.AddScaled(-1, b))
	require.Equal(t, -2.0, a.At(0, 0))
	require.Equal(t, -3.0, a.At(1, 1))

	require.ErrorIs(t, a.AddScaled(1, sparse.MustNew(3, 2, 0)), sparse.ErrDimensionMismatch)

	dst := make([]float64, 2)
	b.MulVecTo(dst, []float64{1, 1})
	require.Equal(t, []float64{6, 6}, dst)

	require.Equal(t, []float64{4, 6}, b.Diag())
	require.Equal(t, -3.0, a.MaxAbs()) // sign is kept
	require.Equal(t, 0.0, sparse.MustNew(2, 2, 0).MaxAbs())

	b.Reset()
	require.True(t, b.IsEmpty())
}

// TestTransposeView checks the mat.Matrix transpose.
func TestTransposeView(t *testing.T) {
	tr := sparse.MustNew(2, 3, 0)
	tr.UnsafeAppend(0, 2, 9)

	tt := tr.T()
	r, c := tt.Dims()
	require.Equal(t, []int{3, 2}, []int{r, c})
	require.Equal(t, 9.0, tt.At(2, 0))
}
