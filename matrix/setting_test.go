// SPDX-License-Identifier: MIT
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/metamat/krylov"
	"github.com/katalvlaran/metamat/matrix"
	"github.com/katalvlaran/metamat/precond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSetting documents the defaults.
func TestDefaultSetting(t *testing.T) {
	t.Parallel()

	s := matrix.DefaultSetting()
	assert.Equal(t, krylov.None, s.Solver)
	assert.Equal(t, precond.None, s.Preconditioner)
	assert.Equal(t, krylov.DefaultTolerance, s.Tolerance)
	assert.Equal(t, krylov.DefaultMaxIterations, s.MaxIterations)
	assert.Equal(t, krylov.DefaultRestart, s.Restart)
	require.NoError(t, s.Validate())
}

// TestSetting_Validate rejects each invalid field.
func TestSetting_Validate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(s *matrix.Setting){
		"solver":         func(s *matrix.Setting) { s.Solver = krylov.Method(7) },
		"preconditioner": func(s *matrix.Setting) { s.Preconditioner = precond.Kind(-1) },
		"zero tolerance": func(s *matrix.Setting) { s.Tolerance = 0 },
		"neg tolerance":  func(s *matrix.Setting) { s.Tolerance = -1e-8 },
		"iterations":     func(s *matrix.Setting) { s.MaxIterations = 0 },
		"restart":        func(s *matrix.Setting) { s.Restart = -3 },
	}
	for name, mutate := range cases {
		s := matrix.DefaultSetting()
		mutate(&s)
		require.ErrorIs(t, s.Validate(), matrix.ErrInvalidSetting, name)
	}
}

// TestLoadSetting decodes YAML over the defaults.
func TestLoadSetting(t *testing.T) {
	t.Parallel()

	doc := `
solver: GMRES
preconditioner: ilu
tolerance: 1e-10
max_iterations: 200
restart: 30
`
	s, err := matrix.LoadSetting(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, matrix.Setting{
		Solver:         krylov.GMRES,
		Preconditioner: precond.ILU,
		Tolerance:      1e-10,
		MaxIterations:  200,
		Restart:        30,
	}, s)

	s, err = matrix.LoadSetting(strings.NewReader("solver: bicgstab\n"))
	require.NoError(t, err)
	assert.Equal(t, krylov.BiCGSTAB, s.Solver)
	assert.Equal(t, krylov.DefaultTolerance, s.Tolerance) // absent keys keep defaults

	s, err = matrix.LoadSetting(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, matrix.DefaultSetting(), s)
}

// TestLoadSetting_Errors covers unknown keys, unknown names and invalid values.
func TestLoadSetting_Errors(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"unknown key":    "solver: gmres\nprecision: 3\n",
		"unknown solver": "solver: cg\n",
		"unknown pc":     "preconditioner: amg\n",
		"bad tolerance":  "tolerance: -1\n",
		"bad restart":    "restart: 0\n",
		"not a mapping":  "- gmres\n",
	} {
		_, err := matrix.LoadSetting(strings.NewReader(doc))
		require.ErrorIs(t, err, matrix.ErrInvalidSetting, name)
	}
}
