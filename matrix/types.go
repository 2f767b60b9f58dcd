// SPDX-License-Identifier: MIT

// Package matrix: storage kinds, factorization state and the internal storage
// contract shared by the Full, Symmetric and Sparse variants.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/metamat/sparse"
	"gonum.org/v1/gonum/mat"
)

// Kind is the storage representation of a Matrix. The set is closed.
type Kind int

const (
	// Full is dense row-major storage of every cell.
	Full Kind = iota
	// Symmetric is dense storage of the upper triangle; the lower triangle mirrors it.
	Symmetric
	// Sparse is triplet storage, optionally condensed to CSR or CSC.
	Sparse
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "full"
	case Symmetric:
		return "symmetric"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the factorization state of a Matrix.
//
//	Editable  --CSRCondense/CSCCondense--> Condensed
//	Editable | Condensed --direct solve--> Factored
//	any --Zeros / SetFactored(false) / Scale--> Editable
//
// Edits on a Factored matrix fail with ErrFactored; edits on a Condensed
// matrix return it to Editable.
type State int

const (
	// Editable accepts every edit.
	Editable State = iota
	// Condensed holds compacted storage; the next edit expands it again.
	Condensed
	// Factored caches a direct factorization that later direct solves reuse.
	Factored
)

func (s State) String() string {
	switch s {
	case Editable:
		return "editable"
	case Condensed:
		return "condensed"
	case Factored:
		return "factored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// storage is implemented by each variant. Indices reaching it are in range.
type storage interface {
	kind() Kind
	at(i, j int) float64
	set(i, j int, v float64)
	add(i, j int, v float64)
	addTriplet(alpha float64, t *sparse.Triplet)
	addDense(alpha float64, d *mat.Dense)
	scale(alpha float64)
	mulVecTo(dst, x []float64)
	diag() []float64
	maxAbs() float64
	unify(k int)
	nullify(k int)
	zeros()
	isEmpty() bool
	clone() storage
	condense(byColumn bool)
	triplet() *sparse.Triplet
	dense() *mat.Dense

	// direct factorization service
	factorize() error
	solveTo(x, b *mat.Dense) error
	invalidate()
	signDet() int
}
