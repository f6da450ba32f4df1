// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// uniform returns a probability vector of n equally likely categories.
func uniform(n int) []float64 {
	prob := make([]float64, n)
	for i := range prob {
		prob[i] = 1 / float64(n)
	}
	return prob
}
