// SPDX-License-Identifier: MIT

package krylov

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// Defaults for Settings fields left at zero.
const (
	// DefaultTolerance is the relative residual target.
	DefaultTolerance = 1e-14

	// DefaultMaxIterations caps the total number of iterations.
	DefaultMaxIterations = 20

	// DefaultRestart is the GMRES restart length.
	DefaultRestart = 20
)

// Operator is the linear map A seen by the solvers. MulVecTo computes dst = A x
// and must not retain or share scratch across calls.
type Operator interface {
	MulVecTo(dst, x []float64)
}

// Preconditioner computes dst = M⁻¹ src. A nil Preconditioner is the identity.
type Preconditioner interface {
	Apply(dst, src []float64)
}

// Settings controls one solve. Non-positive fields fall back to the defaults.
type Settings struct {
	Tolerance     float64
	MaxIterations int
	Restart       int
}

// Result reports the final iteration count and the residual norm the
// convergence test last saw.
type Result struct {
	Iterations int
	Residual   float64
}

// withDefaults fills unset fields.
func (s Settings) withDefaults() Settings {
	if !(s.Tolerance > 0) {
		s.Tolerance = DefaultTolerance
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Restart <= 0 {
		s.Restart = DefaultRestart
	}

	return s
}

// target is the absolute residual threshold for a right-hand side of norm bnorm.
func (s Settings) target(bnorm float64) float64 {
	return s.Tolerance * math.Max(bnorm, 1)
}

// workspace copies the strided x and b into contiguous vectors.
func workspace(x, b blas64.Vector) (xx, bb []float64) {
	xx = make([]float64, x.N)
	bb = make([]float64, b.N)
	blas64.Copy(x, blas64.Vector{N: x.N, Inc: 1, Data: xx})
	blas64.Copy(b, blas64.Vector{N: b.N, Inc: 1, Data: bb})

	return xx, bb
}

// store writes the contiguous iterate back into the strided x.
func store(x blas64.Vector, xx []float64) {
	blas64.Copy(blas64.Vector{N: x.N, Inc: 1, Data: xx}, x)
}

// precondition applies p, or copies when p is nil.
func precondition(p Preconditioner, dst, src []float64) {
	if p == nil {
		copy(dst, src)
		return
	}
	p.Apply(dst, src)
}
