// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// CSR is a compressed-sparse-row matrix.
//
// Layout:
//   - ptr has length rows+1, is non-decreasing and ptr[rows] == NNZ().
//   - Row i owns the half-open range [ptr[i], ptr[i+1]) of idx and val.
//   - idx holds column indices. They are sorted and unique only when the form
//     was built with compact == true; otherwise duplicates are summed on read.
type CSR struct {
	r, c int
	ptr  []int
	idx  []int
	val  []float64
}

var _ mat.Matrix = (*CSR)(nil)

// ToCSR compresses t by rows. With compact == true duplicates are summed and
// column indices inside each row come out sorted; t itself is not modified.
//
// Complexity: O(r + nnz) plus O(nnz log nnz) when compact.
func (t *Triplet) ToCSR(compact bool) *CSR {
	src := t
	if compact {
		src = t.Clone()
		src.Condense()
	}
	ptr, idx, val := compress(t.r, src.row, src.col, src.val)

	return &CSR{r: t.r, c: t.c, ptr: ptr, idx: idx, val: val}
}

// NewCSR wraps existing compressed arrays. The slices are used as is.
// Errors:
//   - ErrInvalidDimensions for negative shapes or a malformed ptr slice.
//   - ErrDimensionMismatch when idx and val differ in length.
func NewCSR(rows, cols int, ptr, idx []int, val []float64) (*CSR, error) {
	if err := validateCompressed(rows, cols, ptr, idx, val); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}

	return &CSR{r: rows, c: cols, ptr: ptr, idx: idx, val: val}, nil
}

// Dims returns the shape.
func (m *CSR) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.val) }

// Values exposes the value slice.
func (m *CSR) Values() []float64 { return m.val }

// Index exposes the column-index slice.
func (m *CSR) Index() []int { return m.idx }

// Ptr exposes the row-pointer slice.
func (m *CSR) Ptr() []int { return m.ptr }

// At sums the entries stored at (i, j); out-of-range reads return zero.
func (m *CSR) At(i, j int) float64 {
	if !InShape(i, j, m.r, m.c) {
		return 0
	}
	var sum float64
	for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
		if m.idx[k] == j {
			sum += m.val[k]
		}
	}

	return sum
}

// T returns the transpose view.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// MulVecTo computes dst = M*x.
func (m *CSR) MulVecTo(dst, x []float64) {
	if len(dst) != m.r || len(x) != m.c {
		panic(ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		var s float64
		for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
			s += m.val[k] * x[m.idx[k]]
		}
		dst[i] = s
	}
}

// ToDense deposits every entry into a dense matrix in one walk over the value slice.
func (m *CSR) ToDense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(m.r, m.c, nil)
	raw := out.RawMatrix()
	walk(m.ptr, m.idx, m.val, func(i, j int, v float64) {
		raw.Data[i*raw.Stride+j] += v
	})

	return out
}

// ToTriplet expands the compressed form back into coordinate records.
func (m *CSR) ToTriplet() *Triplet {
	t := MustNew(m.r, m.c, len(m.val))
	walk(m.ptr, m.idx, m.val, func(i, j int, v float64) {
		t.UnsafeAppend(i, j, v)
	})

	return t
}
