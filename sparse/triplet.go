// SPDX-License-Identifier: MIT

// Package sparse - Triplet (coordinate list) form.
//
// Purpose:
//   - Accumulate finite-element contributions as (row, col, value) records.
//   - Keep duplicates until materialization; every consumer sums them.
//
// Determinism:
//   - Records keep insertion order until Condense, which sorts by (row, col).

package sparse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for error wrapping.
const (
	opAppend    = "Triplet.Append"
	opAddScaled = "Triplet.AddScaled"
	opNew       = "New"
)

// Triplet is a coordinate-list sparse matrix.
// row, col and val are parallel slices; entry k is (row[k], col[k], val[k]).
type Triplet struct {
	r, c int       // declared shape
	hint int       // nominal element count, used to size the first allocation
	row  []int     // row index per entry
	col  []int     // column index per entry
	val  []float64 // value per entry
}

// Compile-time check: every sparse form can be handed to gonum as a container.
var _ mat.Matrix = (*Triplet)(nil)

// New returns an empty rows×cols triplet form with capacity for hint entries.
// A negative hint is treated as zero.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//
// Complexity: O(hint) allocation.
func New(rows, cols, hint int) (*Triplet, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNew, ErrInvalidDimensions)
	}
	if hint < 0 {
		hint = 0
	}

	return &Triplet{
		r:    rows,
		c:    cols,
		hint: hint,
		row:  make([]int, 0, hint),
		col:  make([]int, 0, hint),
		val:  make([]float64, 0, hint),
	}, nil
}

// MustNew is New for shapes known to be valid; it panics on negative dimensions.
func MustNew(rows, cols, hint int) *Triplet {
	t, err := New(rows, cols, hint)
	if err != nil {
		panic(err)
	}

	return t
}

// Dims returns the declared shape.
func (t *Triplet) Dims() (r, c int) { return t.r, t.c }

// Hint returns the nominal element count given at construction.
func (t *Triplet) Hint() int { return t.hint }

// Len returns the number of stored records, duplicates included.
func (t *Triplet) Len() int { return len(t.val) }

// IsEmpty reports whether no record is stored.
func (t *Triplet) IsEmpty() bool { return len(t.val) == 0 }

// Reset drops every record and keeps the shape and the allocated capacity.
func (t *Triplet) Reset() {
	t.row = t.row[:0]
	t.col = t.col[:0]
	t.val = t.val[:0]
}

// Entry returns record k. It panics if k is out of [0, Len()).
func (t *Triplet) Entry(k int) (i, j int, v float64) {
	return t.row[k], t.col[k], t.val[k]
}

// Append stores the contribution v at (i, j).
//
// Errors:
//   - ErrOutOfRange if (i, j) is outside the declared shape.
//
// Complexity: amortized O(1).
func (t *Triplet) Append(i, j int, v float64) error {
	if !InShape(i, j, t.r, t.c) {
		return sparseErrorf(opAppend, ErrOutOfRange)
	}
	t.UnsafeAppend(i, j, v)

	return nil
}

// UnsafeAppend stores v at (i, j) without a bounds check.
// Out-of-range records surface later as a panic in the consumer.
func (t *Triplet) UnsafeAppend(i, j int, v float64) {
	t.row = append(t.row, i)
	t.col = append(t.col, j)
	t.val = append(t.val, v)
}

// At returns the summed value at (i, j), or zero when (i, j) is out of range.
// Complexity: O(nnz).
func (t *Triplet) At(i, j int) float64 {
	if !InShape(i, j, t.r, t.c) {
		return 0
	}
	var sum float64
	for k := range t.val {
		if t.row[k] == i && t.col[k] == j {
			sum += t.val[k]
		}
	}

	return sum
}

// T returns the transpose view expected by mat.Matrix.
func (t *Triplet) T() mat.Matrix { return mat.Transpose{Matrix: t} }

// Clone returns a deep copy.
func (t *Triplet) Clone() *Triplet {
	return &Triplet{
		r:    t.r,
		c:    t.c,
		hint: t.hint,
		row:  append([]int(nil), t.row...),
		col:  append([]int(nil), t.col...),
		val:  append([]float64(nil), t.val...),
	}
}

// Scale multiplies every stored value by alpha.
func (t *Triplet) Scale(alpha float64) {
	for k := range t.val {
		t.val[k] *= alpha
	}
}

// AddScaled appends alpha*o to t. With alpha = -1 it subtracts o.
//
// Errors:
//   - ErrDimensionMismatch if shapes differ.
//
// Complexity: O(nnz(o)).
func (t *Triplet) AddScaled(alpha float64, o *Triplet) error {
	if t.r != o.r || t.c != o.c {
		return sparseErrorf(opAddScaled, ErrDimensionMismatch)
	}
	t.row = append(t.row, o.row...)
	t.col = append(t.col, o.col...)
	base := len(t.val)
	t.val = append(t.val, o.val...)
	if alpha != 1 {
		for k := base; k < len(t.val); k++ {
			t.val[k] *= alpha
		}
	}

	return nil
}

// Condense sorts the records by (row, col) and sums duplicates in place.
// Entries whose sum is exactly zero are kept so that the sparsity pattern survives.
//
// Complexity: O(nnz log nnz).
func (t *Triplet) Condense() {
	if len(t.val) < 2 {
		return
	}
	sort.Sort(byRowCol{t})

	w := 0
	for k := 1; k < len(t.val); k++ {
		if t.row[k] == t.row[w] && t.col[k] == t.col[w] {
			t.val[w] += t.val[k]
			continue
		}
		w++
		t.row[w], t.col[w], t.val[w] = t.row[k], t.col[k], t.val[k]
	}
	t.row = t.row[:w+1]
	t.col = t.col[:w+1]
	t.val = t.val[:w+1]
}

// MulVecTo computes dst = T*x. dst must have length r and x length c.
// Complexity: O(r + nnz).
func (t *Triplet) MulVecTo(dst, x []float64) {
	if len(dst) != t.r || len(x) != t.c {
		panic(ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	for k, v := range t.val {
		dst[t.row[k]] += v * x[t.col[k]]
	}
}

// Diag returns the main diagonal with duplicates summed.
func (t *Triplet) Diag() []float64 {
	d := make([]float64, min(t.r, t.c))
	for k, v := range t.val {
		if t.row[k] == t.col[k] {
			d[t.row[k]] += v
		}
	}

	return d
}

// MaxAbs returns the stored value of largest magnitude after duplicates are summed.
// The sign of the value is kept. An empty form returns zero.
func (t *Triplet) MaxAbs() float64 {
	if len(t.val) == 0 {
		return 0
	}
	work := t.Clone()
	work.Condense()
	best := work.val[0]
	for _, v := range work.val[1:] {
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}

	return best
}

// Nullify removes every record in row k and column k.
// Applying it twice is the same as applying it once.
func (t *Triplet) Nullify(k int) {
	w := 0
	for n := range t.val {
		if t.row[n] == k || t.col[n] == k {
			continue
		}
		t.row[w], t.col[w], t.val[w] = t.row[n], t.col[n], t.val[n]
		w++
	}
	t.row = t.row[:w]
	t.col = t.col[:w]
	t.val = t.val[:w]
}

// Unify turns row and column k into the identity equation: every record in the row
// and the column is removed and a single unit diagonal record is stored.
func (t *Triplet) Unify(k int) {
	t.Nullify(k)
	t.UnsafeAppend(k, k, 1)
}

// ToDense deposits every record additively into a zero-initialised dense matrix.
// A zero-sized shape returns an empty *mat.Dense.
// Complexity: O(r*c + nnz).
func (t *Triplet) ToDense() *mat.Dense {
	if t.r == 0 || t.c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(t.r, t.c, nil)
	raw := out.RawMatrix()
	for k, v := range t.val {
		raw.Data[t.row[k]*raw.Stride+t.col[k]] += v
	}

	return out
}

// FromDense rebuilds a triplet form by reading every cell of m.
// Zero cells carry no mass and are skipped.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) *Triplet {
	r, c := m.Dims()
	t := MustNew(r, c, 0)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := m.At(i, j); v != 0 {
				t.UnsafeAppend(i, j, v)
			}
		}
	}

	return t
}

// byRowCol sorts a triplet by row then column.
type byRowCol struct{ t *Triplet }

func (s byRowCol) Len() int { return len(s.t.val) }

func (s byRowCol) Less(a, b int) bool {
	if s.t.row[a] != s.t.row[b] {
		return s.t.row[a] < s.t.row[b]
	}

	return s.t.col[a] < s.t.col[b]
}

func (s byRowCol) Swap(a, b int) {
	t := s.t
	t.row[a], t.row[b] = t.row[b], t.row[a]
	t.col[a], t.col[b] = t.col[b], t.col[a]
	t.val[a], t.val[b] = t.val[b], t.val[a]
}
