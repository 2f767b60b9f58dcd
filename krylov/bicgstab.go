// SPDX-License-Identifier: MIT

package krylov

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

const tagBiCGSTAB = "BiCGSTAB"

// breakdownLimit is eps² for float64; recurrence scalars below it in magnitude
// count as zero.
const breakdownLimit = (1.0 / (1 << 53)) * (1.0 / (1 << 53))

// BiCGSTABSolve solves A x = b with BiCGSTAB, right preconditioned by p.
// The residual tested for convergence is the true (unpreconditioned) one.
// On return x holds the last iterate.
//
// Errors:
//   - ErrDimensionMismatch when x.N != b.N.
//   - ErrBreakdown when rho, rhat·v, ‖t‖² or omega vanish before convergence.
//   - ErrNotConverged when MaxIterations is exhausted.
//
// Complexity: two matvecs and two preconditioner applications per iteration,
// O(n) extra memory.
func BiCGSTABSolve(a Operator, x, b blas64.Vector, p Preconditioner, s Settings) (Result, error) {
	if x.N != b.N {
		return Result{}, krylovErrorf(tagBiCGSTAB, 0, ErrDimensionMismatch)
	}
	s = s.withDefaults()
	n := b.N
	if n == 0 {
		return Result{}, nil
	}

	xx, bb := workspace(x, b)
	defer store(x, xx)

	var (
		r    = make([]float64, n)
		rt   = make([]float64, n)
		pv   = make([]float64, n)
		v    = make([]float64, n)
		t    = make([]float64, n)
		phat = make([]float64, n)
		shat = make([]float64, n)
	)
	target := s.target(floats.Norm(bb, 2))

	// r = b - A x
	a.MulVecTo(r, xx)
	floats.SubTo(r, bb, r)
	copy(rt, r)

	res := Result{Residual: floats.Norm(r, 2)}
	if res.Residual <= target {
		return res, nil
	}

	var rhoPrev, alpha, omega float64
	for res.Iterations < s.MaxIterations {
		rho := floats.Dot(rt, r)
		if math.Abs(rho) < breakdownLimit {
			return res, krylovErrorf(tagBiCGSTAB, res.Iterations, ErrBreakdown)
		}
		if res.Iterations == 0 {
			copy(pv, r)
		} else {
			beta := (rho / rhoPrev) * (alpha / omega)
			floats.AddScaled(pv, -omega, v) // p -= ω v
			floats.Scale(beta, pv)          // p *= β
			floats.Add(pv, r)               // p += r
		}

		precondition(p, phat, pv)
		a.MulVecTo(v, phat)
		den := floats.Dot(rt, v)
		if den == 0 {
			return res, krylovErrorf(tagBiCGSTAB, res.Iterations, ErrBreakdown)
		}
		alpha = rho / den

		// r now holds s = r - α v
		floats.AddScaled(r, -alpha, v)
		res.Iterations++
		if res.Residual = floats.Norm(r, 2); res.Residual <= target {
			floats.AddScaled(xx, alpha, phat)
			return res, nil
		}

		precondition(p, shat, r)
		a.MulVecTo(t, shat)
		tt := floats.Dot(t, t)
		if tt == 0 {
			floats.AddScaled(xx, alpha, phat)
			return res, krylovErrorf(tagBiCGSTAB, res.Iterations, ErrBreakdown)
		}
		omega = floats.Dot(t, r) / tt

		floats.AddScaled(xx, alpha, phat)
		floats.AddScaled(xx, omega, shat)
		floats.AddScaled(r, -omega, t)

		if res.Residual = floats.Norm(r, 2); res.Residual <= target {
			return res, nil
		}
		if math.Abs(omega) < breakdownLimit {
			return res, krylovErrorf(tagBiCGSTAB, res.Iterations, ErrBreakdown)
		}
		rhoPrev = rho
	}

	return res, krylovErrorf(tagBiCGSTAB, res.Iterations, ErrNotConverged)
}
