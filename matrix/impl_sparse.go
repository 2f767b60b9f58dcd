// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage.
//
// Purpose:
//   - Accumulate assembly contributions in a sparse.Triplet.
//   - Condense on request into a compacted CSR or CSC and free the triplet.
//   - Expand the compressed form back into a triplet on the next edit.
//   - Factorize directly with the Markowitz-ordered sparse LU of
//     github.com/edp1096/sparse, which indexes rows and columns from 1.
//
// At most one of trip, csr and csc is non-nil at any time.

package matrix

import (
	"fmt"
	"math"

	markowitz "github.com/edp1096/sparse"
	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/mat"
)

type sparseStore struct {
	r, c int
	hint int
	trip *sparse.Triplet
	csr  *sparse.CSR
	csc  *sparse.CSC
	fac  *markowitz.Matrix
}

var _ storage = (*sparseStore)(nil)

func newSparse(r, c, hint int) *sparseStore {
	return &sparseStore{r: r, c: c, hint: hint, trip: sparse.MustNew(r, c, hint)}
}

// factorConfig mirrors the real-valued, expandable, modified-nodal setup the
// factorization service is exercised with.
func factorConfig() *markowitz.Configuration {
	return &markowitz.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            80,
		Annotate:                0,
	}
}

func (s *sparseStore) kind() Kind { return Sparse }

// editable makes the triplet the live form again.
func (s *sparseStore) editable() *sparse.Triplet {
	switch {
	case s.trip != nil:
	case s.csr != nil:
		s.trip = s.csr.ToTriplet()
	case s.csc != nil:
		s.trip = s.csc.ToTriplet()
	default:
		s.trip = sparse.MustNew(s.r, s.c, s.hint)
	}
	s.csr, s.csc = nil, nil

	return s.trip
}

// entries returns a triplet view of the current content without changing form.
func (s *sparseStore) entries() *sparse.Triplet {
	switch {
	case s.trip != nil:
		return s.trip
	case s.csr != nil:
		return s.csr.ToTriplet()
	case s.csc != nil:
		return s.csc.ToTriplet()
	default:
		return sparse.MustNew(s.r, s.c, 0)
	}
}

func (s *sparseStore) at(i, j int) float64 {
	switch {
	case s.trip != nil:
		return s.trip.At(i, j)
	case s.csr != nil:
		return s.csr.At(i, j)
	case s.csc != nil:
		return s.csc.At(i, j)
	}

	return 0
}

// set appends the difference to the current summed value.
func (s *sparseStore) set(i, j int, v float64) {
	t := s.editable()
	if cur := t.At(i, j); cur != v {
		t.UnsafeAppend(i, j, v-cur)
	}
}

func (s *sparseStore) add(i, j int, v float64) { s.editable().UnsafeAppend(i, j, v) }

// addTriplet reads o.Len() once, so o may be the live triplet itself.
func (s *sparseStore) addTriplet(alpha float64, o *sparse.Triplet) {
	t := s.editable()
	for k, n := 0, o.Len(); k < n; k++ {
		i, j, v := o.Entry(k)
		t.UnsafeAppend(i, j, alpha*v)
	}
}

func (s *sparseStore) addDense(alpha float64, d *mat.Dense) {
	t := s.editable()
	for i := 0; i < s.r; i++ {
		for j := 0; j < s.c; j++ {
			if v := d.At(i, j); v != 0 {
				t.UnsafeAppend(i, j, alpha*v)
			}
		}
	}
}

// values returns the live value slice of whichever form is current.
func (s *sparseStore) values() []float64 {
	switch {
	case s.csr != nil:
		return s.csr.Values()
	case s.csc != nil:
		return s.csc.Values()
	}

	return nil
}

func (s *sparseStore) scale(alpha float64) {
	if s.trip != nil {
		s.trip.Scale(alpha)
		return
	}
	vals := s.values()
	for k := range vals {
		vals[k] *= alpha
	}
}

func (s *sparseStore) mulVecTo(dst, x []float64) {
	switch {
	case s.trip != nil:
		s.trip.MulVecTo(dst, x)
	case s.csr != nil:
		s.csr.MulVecTo(dst, x)
	case s.csc != nil:
		s.csc.MulVecTo(dst, x)
	}
}

func (s *sparseStore) diag() []float64 {
	if s.trip != nil {
		return s.trip.Diag()
	}
	d := make([]float64, min(s.r, s.c))
	for i := range d {
		d[i] = s.at(i, i)
	}

	return d
}

// maxAbs reads compacted values directly; the triplet sums duplicates first.
func (s *sparseStore) maxAbs() float64 {
	if s.trip != nil {
		return s.trip.MaxAbs()
	}
	var best float64
	for _, v := range s.values() {
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}

	return best
}

func (s *sparseStore) unify(k int) { s.editable().Unify(k) }

func (s *sparseStore) nullify(k int) { s.editable().Nullify(k) }

func (s *sparseStore) zeros() {
	s.trip = sparse.MustNew(s.r, s.c, s.hint)
	s.csr, s.csc = nil, nil
}

func (s *sparseStore) isEmpty() bool {
	switch {
	case s.trip != nil:
		return s.trip.IsEmpty()
	case s.csr != nil:
		return s.csr.NNZ() == 0
	case s.csc != nil:
		return s.csc.NNZ() == 0
	}

	return true
}

// clone copies the current form; compressed forms keep their storage order.
func (s *sparseStore) clone() storage {
	c := &sparseStore{r: s.r, c: s.c, hint: s.hint}
	switch {
	case s.trip != nil:
		c.trip = s.trip.Clone()
	case s.csr != nil:
		c.csr = s.csr.ToTriplet().ToCSR(false)
	case s.csc != nil:
		c.csc = s.csc.ToTriplet().ToCSC(false)
	}

	return c
}

// condense compacts into CSC when byColumn, CSR otherwise, and frees the triplet.
func (s *sparseStore) condense(byColumn bool) {
	if byColumn && s.csc != nil || !byColumn && s.csr != nil {
		return
	}
	t := s.editable()
	if byColumn {
		s.csc = t.ToCSC(true)
	} else {
		s.csr = t.ToCSR(true)
	}
	s.trip = nil
}

func (s *sparseStore) triplet() *sparse.Triplet { return s.trip }

func (s *sparseStore) dense() *mat.Dense {
	switch {
	case s.csr != nil:
		return s.csr.ToDense()
	case s.csc != nil:
		return s.csc.ToDense()
	}

	return s.entries().ToDense()
}

// factorize loads every entry into the Markowitz solver (1-based) and factors it.
//
// Errors:
//   - ErrSingular, joined with the service message, on a zero pivot.
func (s *sparseStore) factorize() error {
	s.invalidate()
	if s.r == 0 {
		return nil
	}
	fac, err := markowitz.Create(int64(s.r), factorConfig())
	if err != nil {
		return fmt.Errorf("sparse factorization: %w", err)
	}
	t := s.entries()
	for k := 0; k < t.Len(); k++ {
		i, j, v := t.Entry(k)
		fac.GetElement(int64(i+1), int64(j+1)).Real += v
	}
	if err := fac.Factor(); err != nil {
		fac.Destroy()
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	s.fac = fac

	return nil
}

// solveTo solves one column at a time; the service keeps shared scratch, so
// calls are sequential.
func (s *sparseStore) solveTo(x, b *mat.Dense) error {
	n, k := b.Dims()
	if n == 0 {
		return nil
	}
	rhs := make([]float64, n+1)
	for col := 0; col < k; col++ {
		for i := 0; i < n; i++ {
			rhs[i+1] = b.At(i, col)
		}
		sol, err := s.fac.Solve(rhs)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		for i := 0; i < n; i++ {
			x.Set(i, col, sol[i+1])
		}
	}

	return nil
}

func (s *sparseStore) invalidate() {
	if s.fac != nil {
		s.fac.Destroy()
		s.fac = nil
	}
}

// signDet falls back to a dense LU; the sparse service does not expose the
// determinant sign.
func (s *sparseStore) signDet() int {
	if s.r == 0 {
		return 1
	}
	var lu mat.LU
	lu.Factorize(s.dense())

	return signOf(lu.LogDet())
}
