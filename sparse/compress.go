// SPDX-License-Identifier: MIT

package sparse

// compress buckets parallel (major, minor, val) records into compressed arrays.
//
// Implementation:
//   - Stage 1: count entries per major index.
//   - Stage 2: prefix sum into ptr.
//   - Stage 3: scatter in input order, so the bucketing is stable.
//
// Complexity: O(n + nnz) time, O(n + nnz) memory.
func compress(n int, major, minor []int, v []float64) (ptr, idx []int, val []float64) {
	ptr = make([]int, n+1)
	for _, p := range major {
		ptr[p+1]++
	}
	for i := 0; i < n; i++ {
		ptr[i+1] += ptr[i]
	}

	idx = make([]int, len(v))
	val = make([]float64, len(v))
	next := make([]int, n)
	copy(next, ptr[:n])
	for k, p := range major {
		dst := next[p]
		idx[dst] = minor[k]
		val[dst] = v[k]
		next[p]++
	}

	return ptr, idx, val
}

// walk visits every stored entry in storage order. The cursor into ptr advances
// with a loop, so majors that own no entries are skipped.
func walk(ptr, idx []int, val []float64, fn func(major, minor int, v float64)) {
	p := 0
	for k, v := range val {
		for k >= ptr[p+1] {
			p++
		}
		fn(p, idx[k], v)
	}
}

// validateCompressed checks the structural invariants of a compressed form with
// n majors and m minors.
func validateCompressed(n, m int, ptr, idx []int, val []float64) error {
	if n < 0 || m < 0 || len(ptr) != n+1 || ptr[0] != 0 {
		return ErrInvalidDimensions
	}
	if len(idx) != len(val) || ptr[n] != len(val) {
		return ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if ptr[i+1] < ptr[i] {
			return ErrInvalidDimensions
		}
	}
	for _, j := range idx {
		if !InRange(j, m) {
			return ErrOutOfRange
		}
	}

	return nil
}
