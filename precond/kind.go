// SPDX-License-Identifier: MIT

package precond

import (
	"fmt"
	"strings"
)

// Kind selects a preconditioner.
type Kind int

const (
	// None selects the identity preconditioner.
	None Kind = iota
	// Jacobi selects diagonal scaling.
	Jacobi
	// ILU selects the zero-fill incomplete LU factorization.
	ILU
)

var kindNames = [...]string{None: "none", Jacobi: "jacobi", ILU: "ilu"}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("Kind.MarshalText(%d): %w", int(k), ErrUnknownKind)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive
// and the empty string selects None.
func (k *Kind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*k = None
		return nil
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}

	return fmt.Errorf("Kind.UnmarshalText(%q): %w", s, ErrUnknownKind)
}
