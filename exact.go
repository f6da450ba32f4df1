// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"fmt"
	"math"

	"github.com/aclements/go-birthday/mathx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// exactProb fills res with the exact collision probability
//
//	1 - Σ_t a(t) Π_i P[i]^t_i
//
// where t ranges over the integer partitions of n produced by enum
// and a(t) is the inclusion-exclusion coefficient of t. The sum is
// order-independent, so any enumerator that produces the complete
// partition set yields the same probability.
func exactProb(n int, prob []float64, enum Enumerator, res *CollisionProbResult) error {
	parts, err := enum(n)
	if err != nil {
		return err
	}
	rows, cols := parts.Dims()
	if cols != n {
		return fmt.Errorf("%w: got %d columns for %d draws", ErrEnumerator, cols, n)
	}
	if ValidatePartitions {
		for r := 0; r < rows; r++ {
			sum := 0.0
			for i, ti := range parts.RawRowView(r) {
				sum += float64(i+1) * ti
			}
			if sum != float64(n) {
				return fmt.Errorf("%w: row %d sums to %g, want %d", ErrEnumerator, r, sum, n)
			}
		}
	}

	res.Partitions = parts
	res.PowerSums = PowerSums(prob, n)
	res.Coefficients = coefficients(n, parts)

	terms := make([]float64, rows)
	for r := range terms {
		term := res.Coefficients[r]
		for i, ti := range parts.RawRowView(r) {
			// A part size with multiplicity 0 contributes the
			// factor P[i+1]^0 = 1.
			if ti != 0 {
				term *= math.Pow(res.PowerSums[i+1], ti)
			}
		}
		terms[r] = term
	}
	res.Prob = 1 - floats.Sum(terms)
	return nil
}

// coefficients returns the signed inclusion-exclusion coefficient
//
//	a(t) = n! (-1)^(n+Σ_i t_i) / Π_i (i+1)^t_i t_i!
//
// of each partition row of parts, with part sizes i+1 for column i.
// The magnitude is accumulated in log space with the sign carried
// separately: the n! factor alone overflows float64 at n = 171, and
// in log form the coefficients stay representable for any n whose
// partition set can be enumerated at all.
func coefficients(n int, parts *mat.Dense) []float64 {
	lfact := make([]float64, n+1)
	for k := range lfact {
		lfact[k] = mathx.LogFactorial(k)
	}

	rows, _ := parts.Dims()
	a := make([]float64, rows)
	for r := range a {
		mag := lfact[n]
		tsum := 0
		for i, ti := range parts.RawRowView(r) {
			if ti == 0 {
				continue
			}
			k := int(ti)
			tsum += k
			mag -= ti*math.Log(float64(i+1)) + lfact[k]
		}
		if (n+tsum)%2 == 0 {
			a[r] = math.Exp(mag)
		} else {
			a[r] = -math.Exp(mag)
		}
	}
	return a
}
