// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import "gonum.org/v1/gonum/mat"

// EnumerateFast returns the same partition set as Enumerate, but
// generates it iteratively into a preallocated Count(n)×n matrix
// rather than recursively into a growing buffer. It walks the
// partitions as non-increasing part lists in reverse lexicographic
// order, the classic descending-composition generator (see [1],
// Algorithm P), and converts each to multiplicity form as it goes.
//
// The row order differs from Enumerate. Callers that fold over the
// rows, like an inclusion-exclusion sum, are unaffected.
//
// [1] Donald E. Knuth. The Art of Computer Programming, Volume 4A.
//     Addison-Wesley, 2011. §7.2.1.4.
func EnumerateFast(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}

	m := mat.NewDense(Count(n), n, nil)

	// parts is the current partition as a non-increasing list. Each
	// step decrements the rightmost part that exceeds 1 and repacks
	// that part plus all trailing 1s greedily into parts no larger
	// than the decremented value.
	parts := append(make([]int, 0, n), n)
	for row := 0; ; row++ {
		out := m.RawRowView(row)
		for _, p := range parts {
			out[p-1]++
		}

		q := len(parts) - 1
		for q >= 0 && parts[q] == 1 {
			q--
		}
		if q < 0 {
			// All parts are 1. Enumeration is complete.
			return m, nil
		}
		x := parts[q] - 1
		rem := parts[q] + len(parts) - 1 - q
		parts = parts[:q]
		for ; rem > x; rem -= x {
			parts = append(parts, x)
		}
		parts = append(parts, rem)
	}
}
