// SPDX-License-Identifier: MIT

package precond

import (
	"fmt"

	"github.com/katalvlaran/metamat/sparse"
)

// Preconditioner is the contract shared by every member of the family.
//
// Init prepares internal state and may fail; it must be called exactly once
// before Apply. Apply computes dst = M⁻¹ src. dst and src have the system
// length and may not alias.
type Preconditioner interface {
	Init() error
	Apply(dst, src []float64)
}

// Source is what New needs to know about a system matrix.
// Triplet may return nil when only Diag is needed.
type Source interface {
	Diag() []float64
	Triplet() *sparse.Triplet
}

// New selects a preconditioner of the given kind for src. It does not call Init.
//
// Errors:
//   - ErrUnknownKind for a kind outside the family.
func New(kind Kind, src Source) (Preconditioner, error) {
	switch kind {
	case None:
		return Unity{}, nil
	case Jacobi:
		return NewJacobi(src.Diag()), nil
	case ILU:
		return NewILU(src.Triplet()), nil
	default:
		return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
	}
}

// Unity is the identity preconditioner.
type Unity struct{}

// Init never fails.
func (Unity) Init() error { return nil }

// Apply copies src into dst.
func (Unity) Apply(dst, src []float64) { copy(dst, src) }
