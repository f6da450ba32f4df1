// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import "testing"

func TestPowerSums(t *testing.T) {
	check := func(want []float64, prob []float64, n int) {
		t.Helper()
		got := PowerSums(prob, n)
		if len(got) != len(want) {
			t.Fatalf("PowerSums(%v, %d) = %v, want %v", prob, n, got, want)
		}
		for k := range want {
			if !aeq(want[k], got[k]) {
				t.Errorf("PowerSums(%v, %d)[%d] = %v, want %v", prob, n, k, got[k], want[k])
			}
		}
	}

	check([]float64{3, 1, 0.38, 0.16}, []float64{0.2, 0.3, 0.5}, 3)

	// Uniform probabilities: P_k = m^(1-k) for m categories.
	check([]float64{4, 1, 0.25, 0.0625, 0.015625}, uniform(4), 4)

	// Power sums do not assume normalization.
	check([]float64{1, 2, 4, 8}, []float64{2}, 3)

	// Degenerate inputs still have well-defined sums.
	check([]float64{0, 0, 0}, nil, 2)
}
