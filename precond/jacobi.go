// SPDX-License-Identifier: MIT

package precond

import "math"

// DiagonalTolerance is the magnitude below which a diagonal entry counts as zero.
const DiagonalTolerance = 1e-14

// JacobiPreconditioner scales each component by the reciprocal of the matching diagonal entry.
type JacobiPreconditioner struct {
	diag []float64 // owned copy of the diagonal
	inv  []float64 // reciprocals, filled by Init
}

// NewJacobi returns a Jacobi preconditioner over a copy of diag.
func NewJacobi(diag []float64) *JacobiPreconditioner {
	return &JacobiPreconditioner{diag: append([]float64(nil), diag...)}
}

// Init computes the reciprocals.
//
// Errors:
//   - ErrZeroDiagonal when |d_i| < DiagonalTolerance for some i.
func (p *JacobiPreconditioner) Init() error {
	p.inv = make([]float64, len(p.diag))
	for i, d := range p.diag {
		if math.Abs(d) < DiagonalTolerance {
			p.inv = nil
			return precondErrorf("Jacobi.Init", i, ErrZeroDiagonal)
		}
		p.inv[i] = 1 / d
	}

	return nil
}

// Apply computes dst_i = src_i / d_i.
func (p *JacobiPreconditioner) Apply(dst, src []float64) {
	for i, v := range src {
		dst[i] = v * p.inv[i]
	}
}
