// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/metamat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestOptions_Panics checks that nonsensical option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	bad := matrix.DefaultSetting()
	bad.MaxIterations = -1

	assert.Panics(t, func() { matrix.WithSetting(bad) })
	assert.Panics(t, func() { matrix.WithLogger(nil) })
	assert.Panics(t, func() { matrix.WithWorkers(-1) })
	assert.Panics(t, func() { matrix.WithHint(-1) })
	assert.NotPanics(t, func() { matrix.WithWorkers(matrix.DefaultWorkers) })
}

// TestOptions_LastWriterWins applies the same option twice.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	s := iterative(t, "gmres", "none")
	m, err := matrix.NewSparse(2, 2,
		matrix.WithHint(3), matrix.WithHint(5),
		matrix.WithSetting(matrix.DefaultSetting()), matrix.WithSetting(s))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Hint())
	assert.Equal(t, s, m.Setting())
}

// TestWithLogger routes solve diagnostics to the given logger.
func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := matrix.NewFull(2, 2, matrix.WithLogger(l))
	require.NoError(t, err)
	_, err = m.Solve(mat.NewDense(2, 1, []float64{1, 1}))
	require.ErrorIs(t, err, matrix.ErrSolveFailed)
	assert.Contains(t, buf.String(), "direct factorization failed")
	assert.Contains(t, buf.String(), "kind=full")

	buf.Reset()
	require.NoError(t, m.SetSetting(iterative(t, "bicgstab", "none")))
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(1, 1, 2))
	_, err = m.Solve(mat.NewDense(2, 1, []float64{1, 1}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "iterative solve converged")
	assert.Contains(t, buf.String(), "method=bicgstab")
}
