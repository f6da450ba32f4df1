// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import "gonum.org/v1/gonum/floats"

// PowerSums returns the power sums P_0 through P_n of prob, where
// P[k] = Σ_i prob[i]^k. P[0] is the number of categories. Both the
// exact inclusion-exclusion sum and the Mase approximation are
// functions of these sums rather than of the individual
// probabilities. The cost is O(len(prob)·n).
func PowerSums(prob []float64, n int) []float64 {
	ps := make([]float64, n+1)
	ps[0] = float64(len(prob))
	pow := make([]float64, len(prob))
	copy(pow, prob)
	for k := 1; k <= n; k++ {
		ps[k] = floats.Sum(pow)
		if k < n {
			floats.Mul(pow, prob)
		}
	}
	return ps
}
