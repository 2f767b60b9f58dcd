// SPDX-License-Identifier: MIT

// Package matrix - solve dispatch.
//
// Purpose:
//   - Route a solve to the direct factorization service of the storage variant
//     when the setting names no Krylov method, and to the Krylov solver otherwise.
//   - Keep one success/failure contract for both: on success the solution is
//     filled in place; on failure it is zeroed, never partially filled, and the
//     error wraps ErrSolveFailed.
//
// Concurrency:
//   - Iterative solves fan out over right-hand-side columns on a bounded
//     errgroup. Every column owns its settings copy and Krylov workspace; the
//     matrix and the preconditioner are shared read-only.

package matrix

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/metamat/krylov"
	"github.com/katalvlaran/metamat/precond"
	"github.com/katalvlaran/metamat/sparse"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	opDirect    = "DirectSolve"
	opIterative = "IterativeSolve"
)

// Solve returns the solution of m·X = b in a new matrix, or nil on failure.
// See SolveTo for the contract.
func (m *Matrix) Solve(b mat.Matrix) (*mat.Dense, error) {
	var x mat.Dense
	if err := m.SolveTo(&x, b); err != nil {
		return nil, err
	}

	return &x, nil
}

// SolveTo solves m·X = b into x. x must be empty or n×k for an n×k right-hand
// side. b may be any mat.Matrix; sparse forms are materialized densely.
//
// The setting decides the route: krylov.None selects DirectSolveTo, anything
// else IterativeSolveTo.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch for shape problems (x untouched).
//   - ErrSolveFailed, joined with the cause, for numeric failure (x zeroed).
func (m *Matrix) SolveTo(x *mat.Dense, b mat.Matrix) error {
	if m.setting.Solver == krylov.None {
		return m.DirectSolveTo(x, b)
	}

	return m.IterativeSolveTo(x, b)
}

// DirectSolve is DirectSolveTo into a new matrix.
func (m *Matrix) DirectSolve(b mat.Matrix) (*mat.Dense, error) {
	var x mat.Dense
	if err := m.DirectSolveTo(&x, b); err != nil {
		return nil, err
	}

	return &x, nil
}

// DirectSolveTo solves with the factorization service of the storage variant.
// The first call factorizes and moves the matrix to Factored; later calls
// reuse the cached factors until an edit path resets the state.
//
// Implementation:
//   - Stage 1: validate shapes and normalise b.
//   - Stage 2: factorize unless Factored.
//   - Stage 3: solve every column; a gonum Condition warning is logged and
//     accepted, any other error fails the solve and drops the factors.
func (m *Matrix) DirectSolveTo(x *mat.Dense, b mat.Matrix) error {
	n, bd, err := m.prepare(opDirect, x, b)
	if err != nil || n == 0 {
		return err
	}

	if m.state != Factored || !m.hasFactors() {
		if err := m.store.factorize(); err != nil {
			m.logger.Warn("direct factorization failed",
				slog.String("kind", m.Kind().String()), slog.Int("n", n), slog.Any("err", err))
			m.reset()
			x.Zero()
			return solveFailure(opDirect, err)
		}
		m.state = Factored
	}

	err = m.store.solveTo(x, bd)
	var cond mat.Condition
	switch {
	case err == nil:
	case errors.As(err, &cond):
		m.logger.Warn("ill-conditioned system",
			slog.String("kind", m.Kind().String()), slog.Float64("cond", float64(cond)))
	default:
		m.logger.Warn("direct solve failed",
			slog.String("kind", m.Kind().String()), slog.Any("err", err))
		m.reset()
		x.Zero()
		return solveFailure(opDirect, err)
	}

	return nil
}

// IterativeSolve is IterativeSolveTo into a new matrix.
func (m *Matrix) IterativeSolve(b mat.Matrix) (*mat.Dense, error) {
	var x mat.Dense
	if err := m.IterativeSolveTo(&x, b); err != nil {
		return nil, err
	}

	return &x, nil
}

// IterativeSolveTo solves every column of b with the Krylov method of the
// current setting, starting from a zero guess. The state of m is not changed.
//
// Implementation:
//   - Stage 1: build the preconditioner of the setting from m and Init it.
//   - Stage 2: fan out one Krylov solve per column over at most the worker
//     limit, each writing straight into its strided column of x.
//   - Stage 3: after every column has finished, fail if any column failed.
//
// Errors:
//   - ErrNoIterativeSolver when the setting names no method (configuration error).
//   - ErrSolveFailed joined with the preconditioner error, or with one error per
//     failed column (krylov.ErrNotConverged, krylov.ErrBreakdown).
func (m *Matrix) IterativeSolveTo(x *mat.Dense, b mat.Matrix) error {
	method := m.setting.Solver
	if method == krylov.None {
		return matrixErrorf(opIterative, ErrNoIterativeSolver)
	}
	n, bd, err := m.prepare(opIterative, x, b)
	if err != nil || n == 0 {
		return err
	}
	// x is zeroed before iterating, so a caller-owned b must not share its storage.
	if bd == b {
		bd = mat.DenseCopyOf(bd)
	}
	x.Zero()

	pc, err := precond.New(m.setting.Preconditioner, precondSource{m})
	if err == nil {
		err = pc.Init()
	}
	if err != nil {
		m.logger.Warn("preconditioner init failed",
			slog.String("preconditioner", m.setting.Preconditioner.String()), slog.Any("err", err))
		return solveFailure(opIterative, err)
	}

	_, k := bd.Dims()
	xr, br := x.RawMatrix(), bd.RawMatrix()
	errs := make([]error, k)
	var failed atomic.Int32

	var g errgroup.Group
	g.SetLimit(m.workers)
	for j := 0; j < k; j++ {
		g.Go(func() error {
			s := m.setting.iteration()
			res, err := method.Solve(m, column(xr, j), column(br, j), pc, s)
			if err != nil {
				failed.Add(1)
				errs[j] = fmt.Errorf("column %d: %w", j, err)
				m.logger.Warn("iterative solve failed",
					slog.String("method", method.String()), slog.Int("column", j),
					slog.Int("iterations", res.Iterations), slog.Float64("residual", res.Residual))
				return nil
			}
			m.logger.Debug("iterative solve converged",
				slog.String("method", method.String()), slog.Int("column", j),
				slog.Int("iterations", res.Iterations), slog.Float64("residual", res.Residual))
			return nil
		})
	}
	_ = g.Wait()

	if failed.Load() > 0 {
		x.Zero()
		return solveFailure(opIterative, errs...)
	}

	return nil
}

// prepare validates the system, normalises b and shapes x. n == 0 or an empty
// right-hand side is a successful no-op.
func (m *Matrix) prepare(tag string, x *mat.Dense, b mat.Matrix) (int, *mat.Dense, error) {
	if err := ValidateSystem(m, x, b); err != nil {
		return 0, nil, matrixErrorf(tag, err)
	}
	n, k := b.Dims()
	if n == 0 || k == 0 {
		return 0, nil, nil
	}
	if x.IsEmpty() {
		x.ReuseAs(n, k)
	}

	return n, denseOf(b), nil
}

// hasFactors reports whether the storage holds factors. SetFactored(true)
// can set the state without them.
func (m *Matrix) hasFactors() bool {
	switch s := m.store.(type) {
	case *full:
		return s.lu != nil
	case *symm:
		return s.chol != nil || s.lu != nil
	case *sparseStore:
		return s.fac != nil
	}

	return false
}

// column views column j of a row-major block as a strided vector.
func column(raw blas64.General, j int) blas64.Vector {
	return blas64.Vector{N: raw.Rows, Inc: raw.Stride, Data: raw.Data[j:]}
}

// precondSource exposes m to precond.New. Triplet always yields a fresh
// triplet so ILU works for every storage kind.
type precondSource struct{ m *Matrix }

func (s precondSource) Diag() []float64          { return s.m.Diag() }
func (s precondSource) Triplet() *sparse.Triplet { return ToTriplet(s.m) }
