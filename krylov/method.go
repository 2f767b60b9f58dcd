// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
)

// Method names an iterative algorithm.
type Method int

const (
	// None selects no iterative algorithm; callers use a direct solve instead.
	None Method = iota
	// GMRES is restarted GMRES with left preconditioning.
	GMRES
	// BiCGSTAB is the stabilised bi-conjugate gradient method with right preconditioning.
	BiCGSTAB
)

var methodNames = [...]string{None: "none", GMRES: "gmres", BiCGSTAB: "bicgstab"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, fmt.Errorf("Method.MarshalText(%d): %w", int(m), ErrUnknownMethod)
	}

	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string selects None.
func (m *Method) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*m = None
		return nil
	}
	for i, name := range methodNames {
		if name == s {
			*m = Method(i)
			return nil
		}
	}

	return fmt.Errorf("Method.UnmarshalText(%q): %w", s, ErrUnknownMethod)
}

// Solve runs the algorithm selected by m. See GMRESSolve and BiCGSTABSolve.
//
// Errors:
//   - ErrUnknownMethod for None or a value outside the enum.
func (m Method) Solve(a Operator, x, b blas64.Vector, p Preconditioner, s Settings) (Result, error) {
	switch m {
	case GMRES:
		return GMRESSolve(a, x, b, p, s)
	case BiCGSTAB:
		return BiCGSTABSolve(a, x, b, p, s)
	default:
		return Result{}, fmt.Errorf("Method.Solve(%v): %w", m, ErrUnknownMethod)
	}
}
