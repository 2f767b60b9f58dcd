// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/metamat/krylov"
	"github.com/katalvlaran/metamat/precond"
	"gopkg.in/yaml.v3"
)

// Setting selects how a Matrix solves. The zero Solver routes every solve to
// the direct factorization service of the storage variant.
//
// The active preconditioner object is never stored here: each iterative solve
// builds one from Preconditioner, uses it, and drops it.
type Setting struct {
	Solver         krylov.Method `yaml:"solver"`
	Preconditioner precond.Kind  `yaml:"preconditioner"`
	Tolerance      float64       `yaml:"tolerance"`
	MaxIterations  int           `yaml:"max_iterations"`
	Restart        int           `yaml:"restart"`
}

// DefaultSetting returns a direct-solve setting with the Krylov defaults filled in.
func DefaultSetting() Setting {
	return Setting{
		Solver:         krylov.None,
		Preconditioner: precond.None,
		Tolerance:      krylov.DefaultTolerance,
		MaxIterations:  krylov.DefaultMaxIterations,
		Restart:        krylov.DefaultRestart,
	}
}

// Validate checks every field.
//
// Errors:
//   - ErrInvalidSetting for an unknown solver or preconditioner, a tolerance
//     that is not finite and positive, or non-positive iteration limits.
func (s Setting) Validate() error {
	switch {
	case s.Solver < krylov.None || s.Solver > krylov.BiCGSTAB:
		return fmt.Errorf("Setting.Validate: solver %v: %w", s.Solver, ErrInvalidSetting)
	case s.Preconditioner < precond.None || s.Preconditioner > precond.ILU:
		return fmt.Errorf("Setting.Validate: preconditioner %v: %w", s.Preconditioner, ErrInvalidSetting)
	case !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 1):
		return fmt.Errorf("Setting.Validate: tolerance %g: %w", s.Tolerance, ErrInvalidSetting)
	case s.MaxIterations <= 0:
		return fmt.Errorf("Setting.Validate: max_iterations %d: %w", s.MaxIterations, ErrInvalidSetting)
	case s.Restart <= 0:
		return fmt.Errorf("Setting.Validate: restart %d: %w", s.Restart, ErrInvalidSetting)
	}

	return nil
}

// iteration converts the iteration controls for one Krylov call.
func (s Setting) iteration() krylov.Settings {
	return krylov.Settings{
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
		Restart:       s.Restart,
	}
}

// LoadSetting decodes a YAML document over DefaultSetting. Absent keys keep
// their defaults, unknown keys are rejected and an empty document yields the
// defaults.
//
//	solver: gmres
//	preconditioner: ilu
//	tolerance: 1e-10
//	max_iterations: 200
//	restart: 30
func LoadSetting(r io.Reader) (Setting, error) {
	s := DefaultSetting()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Setting{}, matrixErrorf("LoadSetting", errors.Join(ErrInvalidSetting, err))
	}
	if err := s.Validate(); err != nil {
		return Setting{}, matrixErrorf("LoadSetting", err)
	}

	return s, nil
}
