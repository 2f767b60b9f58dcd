// SPDX-License-Identifier: MIT

package krylov

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

const tagGMRES = "GMRES"

// givens holds one plane rotation.
type givens struct{ c, s float64 }

// GMRESSolve solves A x = b with restarted GMRES, left preconditioned by p.
// On entry x holds the initial guess; on return it holds the last iterate,
// whether or not the solve converged.
//
// Implementation:
//   - Stage 1: r = M⁻¹(b - A x); stop if ‖r‖ already meets the target.
//   - Stage 2: Arnoldi with modified Gram-Schmidt builds an orthonormal basis V
//     and the Hessenberg matrix H, reduced to triangular form by Givens
//     rotations as each column arrives; |g[k]| tracks the residual norm.
//   - Stage 3: at convergence, at a happy breakdown, or after Restart steps,
//     solve the triangular system for y and update x += V y; restart from Stage 1
//     unless converged or out of iterations.
//
// Errors:
//   - ErrDimensionMismatch when x.N != b.N.
//   - ErrBreakdown when the Krylov space degenerates before convergence.
//   - ErrNotConverged when MaxIterations is exhausted.
//
// Complexity: O(MaxIterations * (matvec + Restart*n)) time, O(Restart*n) memory.
func GMRESSolve(a Operator, x, b blas64.Vector, p Preconditioner, s Settings) (Result, error) {
	if x.N != b.N {
		return Result{}, krylovErrorf(tagGMRES, 0, ErrDimensionMismatch)
	}
	s = s.withDefaults()
	n := b.N
	if n == 0 {
		return Result{}, nil
	}
	restart := min(s.Restart, n)

	xx, bb := workspace(x, b)
	defer store(x, xx)

	var (
		tmp  = make([]float64, n)
		w    = make([]float64, n)
		v    = make([]float64, (restart+1)*n) // basis vectors, one per row
		h    = make([]float64, (restart+1)*restart)
		y    = make([]float64, restart)
		g    = make([]float64, restart+1)
		givs = make([]givens, restart)
	)
	basis := func(k int) []float64 { return v[k*n : (k+1)*n] }

	precondition(p, w, bb)
	target := s.target(floats.Norm(w, 2))

	var res Result
	for {
		// r = M⁻¹(b - A x)
		a.MulVecTo(tmp, xx)
		floats.SubTo(tmp, bb, tmp)
		precondition(p, w, tmp)
		beta := floats.Norm(w, 2)
		res.Residual = beta
		if beta <= target {
			return res, nil
		}
		if res.Iterations >= s.MaxIterations {
			return res, krylovErrorf(tagGMRES, res.Iterations, ErrNotConverged)
		}

		floats.ScaleTo(basis(0), 1/beta, w)
		for i := range g {
			g[i] = 0
		}
		g[0] = beta

		k := 0
		converged := false
		for k < restart && res.Iterations < s.MaxIterations {
			a.MulVecTo(tmp, basis(k))
			precondition(p, w, tmp)

			for j := 0; j <= k; j++ {
				vj := basis(j)
				hjk := floats.Dot(vj, w)
				h[j*restart+k] = hjk
				floats.AddScaled(w, -hjk, vj)
			}
			wnorm := floats.Norm(w, 2)
			if wnorm != 0 {
				floats.ScaleTo(basis(k+1), 1/wnorm, w)
			}

			for j := 0; j < k; j++ {
				h[j*restart+k], h[(j+1)*restart+k] = rotvec(h[j*restart+k], h[(j+1)*restart+k], givs[j])
			}
			givs[k] = drotg(h[k*restart+k], wnorm)
			h[k*restart+k], _ = rotvec(h[k*restart+k], wnorm, givs[k])
			if h[k*restart+k] == 0 {
				return res, krylovErrorf(tagGMRES, res.Iterations, ErrBreakdown)
			}
			g[k], g[k+1] = rotvec(g[k], g[k+1], givs[k])

			k++
			res.Iterations++
			res.Residual = math.Abs(g[k])
			if res.Residual <= target || wnorm == 0 {
				converged = true
				break
			}
		}

		// Solve the leading k×k upper triangle of H for y.
		copy(y, g[:k])
		blas64.Trsv(blas.NoTrans, blas64.Triangular{
			Uplo:   blas.Upper,
			Diag:   blas.NonUnit,
			N:      k,
			Data:   h,
			Stride: restart,
		}, blas64.Vector{N: k, Inc: 1, Data: y})
		for j := 0; j < k; j++ {
			floats.AddScaled(xx, y[j], basis(j))
		}

		if converged {
			return res, nil
		}
	}
}

// drotg returns the rotation that zeroes b against a under rotvec.
func drotg(a, b float64) givens {
	if b == 0 {
		return givens{c: 1, s: 0}
	}
	if math.Abs(b) > math.Abs(a) {
		tmp := -a / b
		s := 1 / math.Sqrt(1+tmp*tmp)
		return givens{c: tmp * s, s: s}
	}
	tmp := -b / a
	c := 1 / math.Sqrt(1+tmp*tmp)

	return givens{c: c, s: tmp * c}
}

func rotvec(x, y float64, g givens) (rx, ry float64) {
	rx = g.c*x - g.s*y
	ry = g.s*x + g.c*y

	return rx, ry
}
