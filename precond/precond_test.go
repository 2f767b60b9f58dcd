// SPDX-License-Identifier: MIT

package precond_test

import (
	"testing"

	"github.com/katalvlaran/metamat/precond"
	"github.com/katalvlaran/metamat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// tridiag builds the n×n matrix with d on the diagonal and o off it.
func tridiag(n int, d, o float64) *sparse.Triplet {
	t := sparse.MustNew(n, n, 3*n)
	for i := 0; i < n; i++ {
		t.UnsafeAppend(i, i, d)
		if i > 0 {
			t.UnsafeAppend(i, i-1, o)
			t.UnsafeAppend(i-1, i, o)
		}
	}

	return t
}

// source adapts a triplet to precond.Source.
type source struct{ t *sparse.Triplet }

func (s source) Diag() []float64          { return s.t.Diag() }
func (s source) Triplet() *sparse.Triplet { return s.t }

// TestUnity checks that the identity copies its input.
func TestUnity(t *testing.T) {
	p, err := precond.New(precond.None, source{tridiag(3, 2, -1)})
	require.NoError(t, err)
	require.NoError(t, p.Init())

	dst := make([]float64, 3)
	p.Apply(dst, []float64{1, 2, 3})
	require.Equal(t, []float64{1, 2, 3}, dst)
}

// TestJacobi covers the scaling and the zero-diagonal failure.
func TestJacobi(t *testing.T) {
	p := precond.NewJacobi([]float64{2, 4, -5})
	require.NoError(t, p.Init())

	dst := make([]float64, 3)
	p.Apply(dst, []float64{2, 2, 10})
	require.Equal(t, []float64{1, 0.5, -2}, dst)

	bad := precond.NewJacobi([]float64{1, 1e-15, 1})
	require.ErrorIs(t, bad.Init(), precond.ErrZeroDiagonal) // below DiagonalTolerance

	tr := tridiag(3, 2, -1)
	tr.Nullify(1) // removes the (1,1) entry
	p2, err := precond.New(precond.Jacobi, source{tr})
	require.NoError(t, err)
	require.ErrorIs(t, p2.Init(), precond.ErrZeroDiagonal)
}

// TestILUExactOnTridiagonal: a tridiagonal matrix has no fill, so ILU(0) is its exact LU.
func TestILUExactOnTridiagonal(t *testing.T) {
	const n = 6
	a := tridiag(n, 4, -1)
	a.UnsafeAppend(2, 2, 0) // duplicates are summed
	p := precond.NewILU(a)
	require.NoError(t, p.Init())

	x := []float64{1, -2, 3, 0.5, 7, -1}
	b := make([]float64, n)
	a.MulVecTo(b, x)

	got := make([]float64, n)
	p.Apply(got, b)
	assert.True(t, floats.EqualApprox(x, got, 1e-12), "got %v", got)
}

// TestILUReducesResidual checks that ILU(0) with dropped fill still approximates A⁻¹.
func TestILUReducesResidual(t *testing.T) {
	const n = 5
	a := tridiag(n, 4, -1)
	a.UnsafeAppend(0, 4, -1) // corner couplings create fill that ILU(0) drops
	a.UnsafeAppend(4, 0, -1)

	p, err := precond.New(precond.ILU, source{a})
	require.NoError(t, err)
	require.NoError(t, p.Init())

	b := []float64{1, 1, 1, 1, 1}
	z := make([]float64, n)
	p.Apply(z, b)

	az := make([]float64, n)
	a.MulVecTo(az, z)
	floats.Sub(az, b)
	assert.Less(t, floats.Norm(az, 2), floats.Norm(b, 2)/2)
}

// TestILUZeroPivot checks missing and zero pivots.
func TestILUZeroPivot(t *testing.T) {
	a := tridiag(3, 2, -1)
	a.Nullify(2)
	a.UnsafeAppend(2, 1, 1)
	require.ErrorIs(t, precond.NewILU(a).Init(), precond.ErrZeroPivot) // (2,2) missing

	z := sparse.MustNew(2, 2, 0)
	z.UnsafeAppend(0, 0, 1)
	z.UnsafeAppend(0, 1, 1)
	z.UnsafeAppend(1, 0, 1)
	z.UnsafeAppend(1, 1, 1)
	require.ErrorIs(t, precond.NewILU(z).Init(), precond.ErrZeroPivot) // u_11 = 1 - 1*1

	require.ErrorIs(t, precond.NewILU(sparse.MustNew(2, 3, 0)).Init(), precond.ErrNonSquare)
	require.NoError(t, precond.NewILU(nil).Init())
}

// TestKindText covers names and the text codec.
func TestKindText(t *testing.T) {
	cases := []struct {
		in   string
		want precond.Kind
	}{
		{"", precond.None},
		{"none", precond.None},
		{"Jacobi", precond.Jacobi},
		{" ilu ", precond.ILU},
	}
	for _, tc := range cases {
		var k precond.Kind
		require.NoError(t, k.UnmarshalText([]byte(tc.in)), tc.in)
		require.Equal(t, tc.want, k, tc.in)
	}

	var k precond.Kind
	require.ErrorIs(t, k.UnmarshalText([]byte("ssor")), precond.ErrUnknownKind)

	b, err := precond.ILU.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "ilu", string(b))
	require.Equal(t, "Kind(9)", precond.Kind(9).String())

	_, err = precond.New(precond.Kind(9), source{tridiag(2, 1, 0)})
	require.ErrorIs(t, err, precond.ErrUnknownKind)
}

// TestNewSelectsVariant maps every kind to its concrete preconditioner.
func TestNewSelectsVariant(t *testing.T) {
	a := tridiag(3, 4, -1)
	cases := []struct {
		kind precond.Kind
		want precond.Preconditioner
	}{
		{precond.None, precond.Unity{}},
		{precond.Jacobi, &precond.JacobiPreconditioner{}},
		{precond.ILU, &precond.ILUPreconditioner{}},
	}
	for _, tc := range cases {
		p, err := precond.New(tc.kind, source{a})
		require.NoError(t, err, tc.kind.String())
		require.IsType(t, tc.want, p, tc.kind.String())
	}

	_, err := precond.New(precond.Kind(5), source{a})
	require.ErrorIs(t, err, precond.ErrUnknownKind)
}
