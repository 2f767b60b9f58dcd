// SPDX-License-Identifier: MIT

package sparse

import "golang.org/x/exp/constraints"

// InRange reports whether 0 <= i < n for any integer index type.
func InRange[I constraints.Integer](i, n I) bool {
	return i >= 0 && i < n
}

// InShape reports whether (i, j) addresses a cell of an r×c matrix.
func InShape[I constraints.Integer](i, j, r, c I) bool {
	return InRange(i, r) && InRange(j, c)
}
