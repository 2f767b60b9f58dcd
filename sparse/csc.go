// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// CSC is a compressed-sparse-column matrix. It mirrors CSR with the roles of
// rows and columns exchanged: ptr has length cols+1 and idx holds row indices.
type CSC struct {
	r, c int
	ptr  []int
	idx  []int
	val  []float64
}

var _ mat.Matrix = (*CSC)(nil)

// ToCSC compresses t by columns. With compact == true duplicates are summed and
// row indices inside each column come out sorted.
func (t *Triplet) ToCSC(compact bool) *CSC {
	src := t
	if compact {
		src = t.Clone()
		// Row-sorted input stays row-sorted inside each column: compress is stable.
		src.Condense()
	}
	ptr, idx, val := compress(t.c, src.col, src.row, src.val)

	return &CSC{r: t.r, c: t.c, ptr: ptr, idx: idx, val: val}
}

// NewCSC wraps existing compressed arrays.
func NewCSC(rows, cols int, ptr, idx []int, val []float64) (*CSC, error) {
	if err := validateCompressed(cols, rows, ptr, idx, val); err != nil {
		return nil, sparseErrorf("NewCSC", err)
	}

	return &CSC{r: rows, c: cols, ptr: ptr, idx: idx, val: val}, nil
}

// Dims returns the shape.
func (m *CSC) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return len(m.val) }

// Values exposes the value slice.
func (m *CSC) Values() []float64 { return m.val }

// Index exposes the row-index slice.
func (m *CSC) Index() []int { return m.idx }

// Ptr exposes the column-pointer slice.
func (m *CSC) Ptr() []int { return m.ptr }

// At sums the entries stored at (i, j); out-of-range reads return zero.
func (m *CSC) At(i, j int) float64 {
	if !InShape(i, j, m.r, m.c) {
		return 0
	}
	var sum float64
	for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
		if m.idx[k] == i {
			sum += m.val[k]
		}
	}

	return sum
}

// T returns the transpose view.
func (m *CSC) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// MulVecTo computes dst = M*x by scattering each column.
func (m *CSC) MulVecTo(dst, x []float64) {
	if len(dst) != m.r || len(x) != m.c {
		panic(ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < m.c; j++ {
		xj := x[j]
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			dst[m.idx[k]] += m.val[k] * xj
		}
	}
}

// ToDense deposits every entry into a dense matrix in one walk over the value slice.
func (m *CSC) ToDense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(m.r, m.c, nil)
	raw := out.RawMatrix()
	walk(m.ptr, m.idx, m.val, func(j, i int, v float64) {
		raw.Data[i*raw.Stride+j] += v
	})

	return out
}

// ToTriplet expands the compressed form back into coordinate records.
func (m *CSC) ToTriplet() *Triplet {
	t := MustNew(m.r, m.c, len(m.val))
	walk(m.ptr, m.idx, m.val, func(j, i int, v float64) {
		t.UnsafeAppend(i, j, v)
	})

	return t
}
