// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the matrix tests.
//   - Keep every fixture well-conditioned so the direct and Krylov paths
//     agree to a tight tolerance.

package matrix_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/metamat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tol is the comparison tolerance of solution vectors.
const tol = 1e-8

// kinds lists every storage variant.
var kinds = []matrix.Kind{matrix.Full, matrix.Symmetric, matrix.Sparse}

// quiet returns a logger that drops everything.
func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mustNew creates a quiet rows×cols matrix of the given kind or fails the test.
func mustNew(t *testing.T, kind matrix.Kind, rows, cols int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(kind, rows, cols, append([]matrix.Option{matrix.WithLogger(quiet())}, opts...)...)
	require.NoError(t, err)

	return m
}

// fill writes the symmetric (or general) dense rows into m through Add, so
// Symmetric storage keeps only the upper triangle.
func fill(t *testing.T, m *matrix.Matrix, rows [][]float64) {
	t.Helper()
	for i, row := range rows {
		for j, v := range row {
			if v == 0 {
				continue
			}
			if m.Kind() == matrix.Symmetric && i > j {
				continue
			}
			require.NoError(t, m.Add(i, j, v))
		}
	}
}

// tridiag is the 3×3 system with x = [1, 2, 3] and b = [2, 4, 10].
var tridiag = [][]float64{
	{4, -1, 0},
	{-1, 4, -1},
	{0, -1, 4},
}

// newTridiag builds tridiag with the given kind.
func newTridiag(t *testing.T, kind matrix.Kind, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m := mustNew(t, kind, 3, 3, opts...)
	fill(t, m, tridiag)

	return m
}

// iterative returns a setting for method and preconditioner with a
// tolerance loose enough for 3×3 systems to converge.
func iterative(t *testing.T, method string, pc string) matrix.Setting {
	t.Helper()
	s := matrix.DefaultSetting()
	require.NoError(t, s.Solver.UnmarshalText([]byte(method)))
	require.NoError(t, s.Preconditioner.UnmarshalText([]byte(pc)))
	s.Tolerance = 1e-12
	s.MaxIterations = 100

	return s
}

// col returns column j of d as a slice.
func col(d *mat.Dense, j int) []float64 {
	return mat.Col(nil, j, d)
}
