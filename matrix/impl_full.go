// SPDX-License-Identifier: MIT

// Package matrix - Full storage (row-major).
//
// Purpose:
//   - Keep every cell of an r×c matrix in one flat buffer with the explicit
//     index formula i*c + j.
//   - Hand the buffer to gonum without copying: BLAS Gemv for products and
//     mat.LU for the direct factorization.
//
// Complexity quicksheet:
//   - at/set/add: O(1); mulVecTo: O(r*c); factorize: O(n³); solveTo: O(n²) per column.

package matrix

import (
	"math"

	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// full is dense row-major storage.
//   - r,c hold dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - lu caches the factorization while the owning Matrix is Factored.
type full struct {
	r, c int
	data []float64
	lu   *mat.LU
}

var _ storage = (*full)(nil)

// newFull allocates a zeroed r×c buffer.
// Complexity: O(r*c).
func newFull(r, c int) *full {
	return &full{r: r, c: c, data: make([]float64, r*c)}
}

func (f *full) kind() Kind { return Full }

func (f *full) at(i, j int) float64 { return f.data[i*f.c+j] }

func (f *full) set(i, j int, v float64) { f.data[i*f.c+j] = v }

func (f *full) add(i, j int, v float64) { f.data[i*f.c+j] += v }

// addTriplet deposits alpha*t cell by cell; duplicates accumulate.
func (f *full) addTriplet(alpha float64, t *sparse.Triplet) {
	for k := 0; k < t.Len(); k++ {
		i, j, v := t.Entry(k)
		f.data[i*f.c+j] += alpha * v
	}
}

func (f *full) addDense(alpha float64, d *mat.Dense) {
	raw := d.RawMatrix()
	for i := 0; i < f.r; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+f.c]
		for j, v := range row {
			f.data[i*f.c+j] += alpha * v
		}
	}
}

func (f *full) scale(alpha float64) {
	for k := range f.data {
		f.data[k] *= alpha
	}
}

// general exposes the buffer as a BLAS general matrix.
func (f *full) general() blas64.General {
	return blas64.General{Rows: f.r, Cols: f.c, Data: f.data, Stride: f.c}
}

// mulVecTo computes dst = A x with BLAS Gemv.
func (f *full) mulVecTo(dst, x []float64) {
	if f.r == 0 || f.c == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	blas64.Gemv(blas.NoTrans, 1, f.general(),
		blas64.Vector{N: f.c, Inc: 1, Data: x},
		0, blas64.Vector{N: f.r, Inc: 1, Data: dst})
}

func (f *full) diag() []float64 {
	d := make([]float64, min(f.r, f.c))
	for i := range d {
		d[i] = f.data[i*f.c+i]
	}

	return d
}

// maxAbs returns the cell of largest magnitude with its sign.
func (f *full) maxAbs() float64 {
	var best float64
	for _, v := range f.data {
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}

	return best
}

func (f *full) nullify(k int) {
	for j := 0; j < f.c; j++ {
		f.data[k*f.c+j] = 0
	}
	for i := 0; i < f.r; i++ {
		f.data[i*f.c+k] = 0
	}
}

func (f *full) unify(k int) {
	f.nullify(k)
	f.data[k*f.c+k] = 1
}

func (f *full) zeros() {
	for k := range f.data {
		f.data[k] = 0
	}
}

// isEmpty reports a zero-sized buffer.
func (f *full) isEmpty() bool { return len(f.data) == 0 }

func (f *full) clone() storage {
	return &full{r: f.r, c: f.c, data: append([]float64(nil), f.data...)}
}

func (f *full) condense(bool) {}

func (f *full) triplet() *sparse.Triplet { return nil }

// dense returns a copy as *mat.Dense; zero-sized storage yields an empty Dense.
func (f *full) dense() *mat.Dense {
	if f.r == 0 || f.c == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(f.r, f.c, append([]float64(nil), f.data...))
}

// view wraps the live buffer without copying. Callers must not retain it.
func (f *full) view() *mat.Dense {
	return mat.NewDense(f.r, f.c, f.data)
}

// factorize computes the partially pivoted LU through gonum. The buffer is left
// intact, so reads and products stay valid while factored.
//
// Errors:
//   - ErrSingular when a pivot is exactly zero.
func (f *full) factorize() error {
	if f.r == 0 {
		return nil
	}
	lu := &mat.LU{}
	lu.Factorize(f.view())
	if logdet, _ := lu.LogDet(); math.IsInf(logdet, -1) {
		return ErrSingular
	}
	f.lu = lu

	return nil
}

// solveTo may return a mat.Condition alongside a usable x.
func (f *full) solveTo(x, b *mat.Dense) error {
	if f.r == 0 {
		return nil
	}

	return f.lu.SolveTo(x, false, b)
}

func (f *full) invalidate() { f.lu = nil }

func (f *full) signDet() int {
	if f.r == 0 {
		return 1
	}
	lu := f.lu
	if lu == nil {
		lu = &mat.LU{}
		lu.Factorize(f.view())
	}

	return signOf(lu.LogDet())
}

// signOf folds a (log|det|, sign) pair into -1, 0 or 1.
func signOf(logdet, sign float64) int {
	if math.IsInf(logdet, -1) || sign == 0 {
		return 0
	}
	if sign < 0 {
		return -1
	}

	return 1
}
