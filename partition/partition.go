// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition enumerates the integer partitions of n.
//
// A partition of n is a way of writing n as a sum of positive
// integers, disregarding order. This package represents a partition
// in multiplicity form: a vector t of length n where t[i] counts the
// parts of size i+1, so every partition satisfies Σ (i+1)·t[i] = n.
// For example, 4 = 2+1+1 is the vector [2 1 0 0].
//
// The enumerators return the full partition set as a matrix with one
// row per partition. The number of rows is Count(n), which grows
// subexponentially but becomes large quickly: Count(60) is already
// 966,467, so exhaustive enumeration is only practical for n up to a
// few dozen.
package partition // import "github.com/aclements/go-birthday/partition"

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNonPositive is returned by the enumerators when n < 1.
var ErrNonPositive = errors.New("partitions are only defined for positive n")

// Enumerate returns a matrix whose rows are all integer partitions of
// n in multiplicity form. The matrix has Count(n) rows and n columns.
// The rows are distinct and their order is fixed but unspecified.
//
// This is the reference implementation: a recursive descent over part
// sizes from n down to 1 that, at each size i, chooses a multiplicity
// in {0, …, ⌊remaining/i⌋} and recurses on the remainder with the
// smaller sizes.
func Enumerate(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}

	var rows []float64
	t := make([]float64, n)
	var descend func(size, rem int)
	descend = func(size, rem int) {
		if rem == 0 {
			rows = append(rows, t...)
			return
		}
		if size == 1 {
			// Only unit parts remain, so they are forced.
			t[0] = float64(rem)
			rows = append(rows, t...)
			t[0] = 0
			return
		}
		for m := 0; m <= rem/size; m++ {
			t[size-1] = float64(m)
			descend(size-1, rem-size*m)
		}
		t[size-1] = 0
	}
	descend(n, n)

	return mat.NewDense(len(rows)/n, n, rows), nil
}

// Count returns p(n), the number of integer partitions of n. Count(0)
// is 1 (the empty partition) and Count of a negative n is 0.
//
// This is the standard O(n²) dynamic program over part sizes. p(n)
// grows subexponentially (Hardy and Ramanujan 1918), overflowing
// int64 only near n = 400, far beyond the range where enumerating the
// partitions themselves is feasible.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	p := make([]int, n+1)
	p[0] = 1
	for k := 1; k <= n; k++ {
		for j := k; j <= n; j++ {
			p[j] += p[j-k]
		}
	}
	return p[n]
}
