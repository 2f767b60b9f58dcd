// SPDX-License-Identifier: MIT

// Package matrix - Symmetric storage (upper triangle).
//
// Only cells with i <= j are addressable. Writes aimed at the strict lower
// triangle are dropped, reads of it return the mirrored upper value. The
// direct factorization is Cholesky; an indefinite matrix falls back to a
// partially pivoted LU of the mirrored matrix.

package matrix

import (
	"math"

	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type symm struct {
	n    int
	s    *mat.SymDense // upper storage; zero value when n == 0
	chol *mat.Cholesky
	lu   *mat.LU // set only when Cholesky fails
}

var _ storage = (*symm)(nil)

func newSymm(n int) *symm {
	if n == 0 {
		return &symm{s: &mat.SymDense{}}
	}

	return &symm{n: n, s: mat.NewSymDense(n, nil)}
}

func (y *symm) kind() Kind { return Symmetric }

func (y *symm) at(i, j int) float64 { return y.s.At(i, j) }

func (y *symm) set(i, j int, v float64) {
	if i > j {
		return
	}
	y.s.SetSym(i, j, v)
}

func (y *symm) add(i, j int, v float64) {
	if i > j {
		return
	}
	y.s.SetSym(i, j, y.s.At(i, j)+v)
}

// addTriplet reads only the records with i <= j.
func (y *symm) addTriplet(alpha float64, t *sparse.Triplet) {
	for k := 0; k < t.Len(); k++ {
		i, j, v := t.Entry(k)
		y.add(i, j, alpha*v)
	}
}

func (y *symm) addDense(alpha float64, d *mat.Dense) {
	for i := 0; i < y.n; i++ {
		for j := i; j < y.n; j++ {
			y.add(i, j, alpha*d.At(i, j))
		}
	}
}

// upper visits the stored triangle through the raw BLAS layout.
func (y *symm) upper(fn func(p *float64)) {
	raw := y.s.RawSymmetric()
	for i := 0; i < y.n; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+y.n]
		for j := i; j < y.n; j++ {
			fn(&row[j])
		}
	}
}

func (y *symm) scale(alpha float64) {
	y.upper(func(p *float64) { *p *= alpha })
}

// mulVecTo computes dst = A x with BLAS Symv.
func (y *symm) mulVecTo(dst, x []float64) {
	if y.n == 0 {
		return
	}
	blas64.Symv(1, y.s.RawSymmetric(),
		blas64.Vector{N: y.n, Inc: 1, Data: x},
		0, blas64.Vector{N: y.n, Inc: 1, Data: dst})
}

func (y *symm) diag() []float64 {
	d := make([]float64, y.n)
	for i := range d {
		d[i] = y.s.At(i, i)
	}

	return d
}

func (y *symm) maxAbs() float64 {
	var best float64
	y.upper(func(p *float64) {
		if math.Abs(*p) > math.Abs(best) {
			best = *p
		}
	})

	return best
}

func (y *symm) nullify(k int) {
	for j := 0; j < y.n; j++ {
		y.s.SetSym(k, j, 0)
	}
}

func (y *symm) unify(k int) {
	y.nullify(k)
	y.s.SetSym(k, k, 1)
}

func (y *symm) zeros() {
	if y.n > 0 {
		y.s.Zero()
	}
}

func (y *symm) isEmpty() bool { return y.n == 0 }

func (y *symm) clone() storage {
	c := newSymm(y.n)
	if y.n > 0 {
		c.s.CopySym(y.s)
	}

	return c
}

func (y *symm) condense(bool) {}

func (y *symm) triplet() *sparse.Triplet { return nil }

func (y *symm) dense() *mat.Dense {
	if y.n == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(y.n, y.n, nil)
	d.Copy(y.s)

	return d
}

// factorize tries Cholesky on the stored triangle first. When the matrix is
// not positive definite it factorizes the mirrored matrix with LU instead.
//
// Errors:
//   - ErrSingular when the LU meets a zero pivot.
func (y *symm) factorize() error {
	y.invalidate()
	if y.n == 0 {
		return nil
	}
	var ch mat.Cholesky
	if ch.Factorize(y.s) {
		y.chol = &ch
		return nil
	}
	lu := &mat.LU{}
	lu.Factorize(y.s)
	if logdet, _ := lu.LogDet(); math.IsInf(logdet, -1) {
		return ErrSingular
	}
	y.lu = lu

	return nil
}

// solveTo may return a mat.Condition alongside a usable x.
func (y *symm) solveTo(x, b *mat.Dense) error {
	switch {
	case y.n == 0:
		return nil
	case y.chol != nil:
		return y.chol.SolveTo(x, b)
	default:
		return y.lu.SolveTo(x, false, b)
	}
}

func (y *symm) invalidate() { y.chol, y.lu = nil, nil }

// signDet is +1 whenever a Cholesky factorization exists; otherwise the sign
// comes from an LU factorization of the mirrored matrix.
func (y *symm) signDet() int {
	switch {
	case y.n == 0 || y.chol != nil:
		return 1
	case y.lu != nil:
		return signOf(y.lu.LogDet())
	}
	var ch mat.Cholesky
	if ch.Factorize(y.s) {
		return 1
	}
	var lu mat.LU
	lu.Factorize(y.s)

	return signOf(lu.LogDet())
}
