// SPDX-License-Identifier: MIT

package precond

import (
	"fmt"

	"github.com/katalvlaran/metamat/sparse"
)

// ILUPreconditioner is the zero-fill incomplete LU factorization, ILU(0).
//
// L (unit lower) and U (upper) are stored together in one compact CSR with the
// sparsity pattern of A: entries left of the diagonal belong to L, the rest to U.
// Fill-in outside the pattern is discarded.
type ILUPreconditioner struct {
	src  *sparse.Triplet
	n    int
	ptr  []int
	idx  []int
	val  []float64
	diag []int // position of the diagonal entry inside each row
}

// NewILU returns an ILU preconditioner for the matrix held by t.
// t is only read by Init; it may be nil for an empty system.
func NewILU(t *sparse.Triplet) *ILUPreconditioner {
	return &ILUPreconditioner{src: t}
}

// Init factorizes a compacted copy of the source pattern in place.
//
// Implementation:
//   - Stage 1: compact CSR (sorted columns, duplicates summed).
//   - Stage 2: IKJ elimination restricted to the existing pattern, using a
//     dense column→position map per row.
//
// Errors:
//   - ErrNonSquare for a rectangular source.
//   - ErrZeroPivot when a diagonal entry is missing or becomes exactly zero.
//
// Complexity: O(sum over rows of nnz(row)²) worst case, O(n) extra memory.
func (p *ILUPreconditioner) Init() error {
	if p.src == nil {
		p.n = 0
		return nil
	}
	r, c := p.src.Dims()
	if r != c {
		return fmt.Errorf("ILU.Init(%dx%d): %w", r, c, ErrNonSquare)
	}
	csr := p.src.ToCSR(true)
	p.n = r
	p.ptr = csr.Ptr()
	p.idx = csr.Index()
	p.val = csr.Values()
	p.diag = make([]int, r)

	pos := make([]int, r)
	for j := range pos {
		pos[j] = -1
	}

	for i := 0; i < r; i++ {
		lo, hi := p.ptr[i], p.ptr[i+1]
		for k := lo; k < hi; k++ {
			pos[p.idx[k]] = k
		}

		p.diag[i] = -1
		for k := lo; k < hi; k++ {
			col := p.idx[k]
			if col >= i {
				if col == i {
					p.diag[i] = k
				}
				break
			}
			// l_ik = a_ik / u_kk
			p.val[k] /= p.val[p.diag[col]]
			lik := p.val[k]
			for kk := p.diag[col] + 1; kk < p.ptr[col+1]; kk++ {
				if at := pos[p.idx[kk]]; at >= 0 {
					p.val[at] -= lik * p.val[kk]
				}
			}
		}

		for k := lo; k < hi; k++ {
			pos[p.idx[k]] = -1
		}
		if p.diag[i] < 0 || p.val[p.diag[i]] == 0 {
			p.val = nil
			return precondErrorf("ILU.Init", i, ErrZeroPivot)
		}
	}

	return nil
}

// Apply solves L U dst = src by a forward unit-lower sweep followed by a
// backward upper sweep, both in place in dst.
func (p *ILUPreconditioner) Apply(dst, src []float64) {
	copy(dst, src)
	for i := 0; i < p.n; i++ {
		s := dst[i]
		for k := p.ptr[i]; k < p.diag[i]; k++ {
			s -= p.val[k] * dst[p.idx[k]]
		}
		dst[i] = s
	}
	for i := p.n - 1; i >= 0; i-- {
		s := dst[i]
		for k := p.diag[i] + 1; k < p.ptr[i+1]; k++ {
			s -= p.val[k] * dst[p.idx[k]]
		}
		dst[i] = s / p.val[p.diag[i]]
	}
}
