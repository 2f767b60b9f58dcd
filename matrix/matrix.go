// SPDX-License-Identifier: MIT

// Package matrix - the Matrix type: construction, element access, accumulation
// and structural edits shared by every storage variant.
//
// Purpose:
//   - One surface for Full, Symmetric and Sparse storage, so assembly code
//     never branches on representation.
//   - Enforce the factorization state machine: edits on a Factored matrix fail
//     with ErrFactored instead of silently invalidating the cached factors.
//
// Concurrency:
//   - A *Matrix is not safe for concurrent mutation. Read-only products
//     (MulVecTo, At) may run concurrently, which IterativeSolve relies on.
//     Use MakeCopy to hand an independent matrix to another goroutine.

package matrix

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	opNew       = "New"
	opGet       = "Get"
	opSet       = "Set"
	opAdd       = "Add"
	opAccum     = "AddMatrix"
	opTriplet   = "AddTriplet"
	opUnify     = "Unify"
	opNullify   = "Nullify"
	opMul       = "Mul"
	opMulVec    = "MulVecTo"
	opSignDet   = "SignDet"
	opSetting   = "SetSetting"
	opUnsafeAdd = "UnsafeAdd"
	opUnsafeSet = "UnsafeSet"
)

// Matrix is a system matrix with a selectable storage variant and an attached
// solver setting. Create it with New, NewFull, NewSymmetric or NewSparse.
type Matrix struct {
	r, c    int
	hint    int
	setting Setting
	state   State
	store   storage
	logger  *slog.Logger
	workers int
}

// Compile-time assertion: a *Matrix is a gonum container.
var _ mat.Matrix = (*Matrix)(nil)

// New creates a zero rows×cols matrix with the given storage kind.
//
// Errors:
//   - ErrInvalidDimensions for negative rows or cols, or an unknown kind.
//   - ErrNonSquare for a Symmetric kind with rows != cols.
//
// Complexity: O(rows*cols) for dense kinds, O(hint) for Sparse.
func New(kind Kind, rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	var st storage
	switch kind {
	case Full:
		st = newFull(rows, cols)
	case Symmetric:
		if rows != cols {
			return nil, matrixErrorf(opNew, ErrNonSquare)
		}
		st = newSymm(rows)
	case Sparse:
		st = newSparse(rows, cols, o.hint)
	default:
		return nil, fmt.Errorf("%s(%v): %w", opNew, kind, ErrInvalidDimensions)
	}

	return &Matrix{
		r:       rows,
		c:       cols,
		hint:    o.hint,
		setting: o.setting,
		state:   Editable,
		store:   st,
		logger:  o.logger,
		workers: o.workers,
	}, nil
}

// NewFull creates a dense rows×cols matrix.
func NewFull(rows, cols int, opts ...Option) (*Matrix, error) {
	return New(Full, rows, cols, opts...)
}

// NewSymmetric creates an n×n matrix storing only its upper triangle.
func NewSymmetric(n int, opts ...Option) (*Matrix, error) {
	return New(Symmetric, n, n, opts...)
}

// NewSparse creates a rows×cols triplet-backed matrix. Use WithHint to reserve
// room for the expected number of contributions.
func NewSparse(rows, cols int, opts ...Option) (*Matrix, error) {
	return New(Sparse, rows, cols, opts...)
}

// Dims returns the shape.
func (m *Matrix) Dims() (r, c int) { return m.r, m.c }

// Kind reports the storage variant.
func (m *Matrix) Kind() Kind { return m.store.kind() }

// State reports the factorization state.
func (m *Matrix) State() State { return m.state }

// Hint returns the nominal element count given at construction.
func (m *Matrix) Hint() int { return m.hint }

// IsFactored reports whether a factorization is cached.
func (m *Matrix) IsFactored() bool { return m.state == Factored }

// SetFactored overrides the factorization state. Passing false drops any
// cached factorization and returns the matrix to Editable. Passing true marks
// the matrix Factored without factorizing; the next direct solve then
// factorizes on demand.
func (m *Matrix) SetFactored(f bool) {
	if !f {
		m.reset()
		return
	}
	m.state = Factored
}

// Setting returns the current solver setting.
func (m *Matrix) Setting() Setting { return m.setting }

// SetSetting replaces the solver setting as a unit.
//
// Errors:
//   - ErrInvalidSetting when s does not validate; the old setting is kept.
func (m *Matrix) SetSetting(s Setting) error {
	if err := s.Validate(); err != nil {
		return matrixErrorf(opSetting, err)
	}
	m.setting = s

	return nil
}

// At returns the summed value at (i, j), or zero when (i, j) is out of range.
// It never fails.
func (m *Matrix) At(i, j int) float64 {
	if !sparse.InShape(i, j, m.r, m.c) {
		return 0
	}

	return m.store.at(i, j)
}

// T returns the transpose view.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Get is the checked read.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the matrix.
func (m *Matrix) Get(i, j int) (float64, error) {
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opGet, err)
	}

	return m.store.at(i, j), nil
}

// Set overwrites the value at (i, j). On Symmetric storage a write to the
// strict lower triangle is dropped.
//
// Errors:
//   - ErrOutOfRange, ErrFactored.
func (m *Matrix) Set(i, j int, v float64) error {
	if err := m.checkEdit(i, j); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.store.set(i, j, v)
	m.touch()

	return nil
}

// Add accumulates v at (i, j).
//
// Errors:
//   - ErrOutOfRange, ErrFactored.
func (m *Matrix) Add(i, j int, v float64) error {
	if err := m.checkEdit(i, j); err != nil {
		return matrixErrorf(opAdd, err)
	}
	m.store.add(i, j, v)
	m.touch()

	return nil
}

// UnsafeAdd accumulates v at (i, j) without a bounds check. It is the hot path
// for element assembly; the caller guarantees the indices. Panics on a
// Factored matrix.
func (m *Matrix) UnsafeAdd(i, j int, v float64) {
	if m.state == Factored {
		panic(matrixErrorf(opUnsafeAdd, ErrFactored))
	}
	m.store.add(i, j, v)
	m.touch()
}

// UnsafeSet overwrites (i, j) without a bounds check. Panics on a Factored matrix.
func (m *Matrix) UnsafeSet(i, j int, v float64) {
	if m.state == Factored {
		panic(matrixErrorf(opUnsafeSet, ErrFactored))
	}
	m.store.set(i, j, v)
	m.touch()
}

// AddMatrix accumulates o into m. Any storage pair is accepted: a contribution
// that retains a triplet is applied through the triplet path, anything else
// through its dense materialization.
//
// Errors:
//   - ErrDimensionMismatch, ErrFactored.
func (m *Matrix) AddMatrix(o *Matrix) error { return m.accumulate(1, o) }

// SubMatrix subtracts o from m. Same rules as AddMatrix.
func (m *Matrix) SubMatrix(o *Matrix) error { return m.accumulate(-1, o) }

func (m *Matrix) accumulate(alpha float64, o *Matrix) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opAccum, err)
	}
	if m.state == Factored {
		return matrixErrorf(opAccum, ErrFactored)
	}
	if o == m {
		o = m.MakeCopy()
	}
	if t := o.store.triplet(); t != nil {
		m.store.addTriplet(alpha, t)
	} else if o.Kind() == Sparse {
		m.store.addTriplet(alpha, ToTriplet(o))
	} else if !o.store.isEmpty() {
		m.store.addDense(alpha, o.store.dense())
	}
	m.touch()

	return nil
}

// AddTriplet accumulates a triplet contribution. Symmetric storage reads only
// the records with i <= j.
//
// Errors:
//   - ErrDimensionMismatch, ErrFactored.
func (m *Matrix) AddTriplet(t *sparse.Triplet) error { return m.accumulateTriplet(1, t) }

// SubTriplet subtracts a triplet contribution.
func (m *Matrix) SubTriplet(t *sparse.Triplet) error { return m.accumulateTriplet(-1, t) }

func (m *Matrix) accumulateTriplet(alpha float64, t *sparse.Triplet) error {
	if r, c := t.Dims(); r != m.r || c != m.c {
		return matrixErrorf(opTriplet, ErrDimensionMismatch)
	}
	if m.state == Factored {
		return matrixErrorf(opTriplet, ErrFactored)
	}
	m.store.addTriplet(alpha, t)
	m.touch()

	return nil
}

// Scale multiplies every stored value by alpha. It never fails and always
// leaves the matrix Editable.
func (m *Matrix) Scale(alpha float64) {
	m.store.scale(alpha)
	m.reset()
}

// Mul returns the exact product m·b.
//
// Errors:
//   - ErrDimensionMismatch when b has the wrong number of rows.
//
// Complexity: O(k * cost(MulVecTo)) for a b with k columns.
func (m *Matrix) Mul(b *mat.Dense) (*mat.Dense, error) {
	br, bc := b.Dims()
	if br != m.c {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if m.r == 0 || bc == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(m.r, bc, nil)
	x := make([]float64, m.c)
	y := make([]float64, m.r)
	for j := 0; j < bc; j++ {
		mat.Col(x, j, b)
		m.store.mulVecTo(y, x)
		out.SetCol(j, y)
	}

	return out, nil
}

// MulVecTo computes dst = m·x. It is the linear operator handed to the Krylov
// solvers and is safe for concurrent use while m is not mutated.
// Panics when len(dst) != rows or len(x) != cols.
func (m *Matrix) MulVecTo(dst, x []float64) {
	if len(dst) != m.r || len(x) != m.c {
		panic(matrixErrorf(opMulVec, ErrDimensionMismatch))
	}
	m.store.mulVecTo(dst, x)
}

// Evaluate returns m·x in a new slice.
func (m *Matrix) Evaluate(x []float64) []float64 {
	dst := make([]float64, m.r)
	m.MulVecTo(dst, x)

	return dst
}

// Max returns the stored value of largest magnitude, sign included.
func (m *Matrix) Max() float64 { return m.store.maxAbs() }

// Diag returns a copy of the main diagonal.
func (m *Matrix) Diag() []float64 { return m.store.diag() }

// SignDet returns the sign of the determinant: -1, 0 or 1.
// A cached factorization is reused when available.
//
// Errors:
//   - ErrNonSquare.
func (m *Matrix) SignDet() (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opSignDet, err)
	}

	return m.store.signDet(), nil
}

// CSRCondense compacts sparse storage into CSR and frees its triplet.
// It is a no-op for dense kinds.
func (m *Matrix) CSRCondense() { m.condense(false) }

// CSCCondense compacts sparse storage into CSC and frees its triplet.
// It is a no-op for dense kinds.
func (m *Matrix) CSCCondense() { m.condense(true) }

func (m *Matrix) condense(byColumn bool) {
	if m.Kind() != Sparse {
		return
	}
	m.store.condense(byColumn)
	if m.state == Editable {
		m.state = Condensed
	}
}

// Unify turns row and column k into the identity equation: every entry in them
// is cleared and the diagonal is set to one. Applying it twice equals applying
// it once.
//
// Errors:
//   - ErrOutOfRange when k is not a diagonal index.
//   - ErrFactored.
func (m *Matrix) Unify(k int) error {
	if err := m.checkEdit(k, k); err != nil {
		return matrixErrorf(opUnify, err)
	}
	m.store.unify(k)
	m.touch()

	return nil
}

// Nullify clears row and column k, diagonal included.
//
// Errors:
//   - ErrOutOfRange when k is not a diagonal index.
//   - ErrFactored.
func (m *Matrix) Nullify(k int) error {
	if err := m.checkEdit(k, k); err != nil {
		return matrixErrorf(opNullify, err)
	}
	m.store.nullify(k)
	m.touch()

	return nil
}

// MakeCopy returns a deep copy with the same storage kind, setting, logger and
// worker limit. The cached factorization is not shared: a Factored source
// yields an Editable copy.
func (m *Matrix) MakeCopy() *Matrix {
	cp := *m
	cp.store = m.store.clone()
	if cp.state == Factored {
		cp.state = Editable
	}

	return &cp
}

// IsEmpty reports whether nothing is stored: a zero-sized dense buffer or a
// sparse matrix without entries.
func (m *Matrix) IsEmpty() bool { return m.store.isEmpty() }

// Zeros clears every value, drops the cached factorization and returns the
// matrix to Editable. Shape, setting and options are kept.
func (m *Matrix) Zeros() {
	m.store.zeros()
	m.reset()
}

// Triplet returns the retained triplet of sparse storage, or nil for dense
// kinds and for sparse storage that has been condensed. The triplet is live:
// edits through it bypass the state machine.
func (m *Matrix) Triplet() *sparse.Triplet { return m.store.triplet() }

// checkEdit validates an edit at (i, j) against bounds and state.
func (m *Matrix) checkEdit(i, j int) error {
	if err := ValidateIndex(m, i, j); err != nil {
		return err
	}
	if m.state == Factored {
		return ErrFactored
	}

	return nil
}

// touch records an edit: a Condensed matrix becomes Editable again.
func (m *Matrix) touch() {
	if m.state == Condensed {
		m.state = Editable
	}
}

// reset drops the cached factorization and returns to Editable.
func (m *Matrix) reset() {
	m.store.invalidate()
	m.state = Editable
}
