// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/mat"
)

// ToDense materializes m as a new *mat.Dense. Every stored contribution is
// deposited additively, so duplicates in sparse storage are summed.
// A zero-sized matrix yields an empty Dense.
func ToDense(m *Matrix) *mat.Dense { return m.store.dense() }

// ToTriplet returns a triplet holding the content of m:
//   - a copy of the retained triplet of sparse storage;
//   - otherwise the expansion of its compressed form;
//   - otherwise a reconstruction reading every cell of a dense kind.
//
// The result never aliases m.
func ToTriplet(m *Matrix) *sparse.Triplet {
	if s, ok := m.store.(*sparseStore); ok {
		if s.trip != nil {
			return s.trip.Clone()
		}

		return s.entries()
	}

	return sparse.FromDense(m)
}

// denseOf normalises a right-hand side to *mat.Dense. A *mat.Dense is used as
// is; sparse forms materialize through their own ToDense; anything else is copied.
func denseOf(b mat.Matrix) *mat.Dense {
	if r, c := b.Dims(); r == 0 || c == 0 {
		return &mat.Dense{}
	}
	switch v := b.(type) {
	case *mat.Dense:
		return v
	case *sparse.Triplet:
		return v.ToDense()
	case *sparse.CSR:
		return v.ToDense()
	case *sparse.CSC:
		return v.ToDense()
	case *Matrix:
		return ToDense(v)
	default:
		return mat.DenseCopyOf(b)
	}
}
