// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"math"

	"github.com/aclements/go-birthday/mathx"
)

// maseProb returns the asymptotic collision probability of Mase
// (1992) for n draws given power sums ps, where ps[k] must be valid
// for k up to min(n, 5).
//
// The probability of no collision is approximated by a product of
// correction factors, one per expansion order m = 2..5, each of the
// form exp((n)_m · poly(P)) with (n)_m the falling factorial. A
// factor only applies while m ≤ n, since (n)_m is undefined beyond
// that; with a single draw no factor applies and the probability is
// 0. The expansion is asymptotic for n·max(prob) small, but in
// practice it tracks the exact probability to three or four digits
// well past the point where exact enumeration is affordable.
func maseProb(n int, ps []float64) float64 {
	q := 1.0
	if n >= 2 {
		q *= math.Exp(-mathx.FallingFactorial(n, 2) / 2 * ps[2])
	}
	if n >= 3 {
		q *= math.Exp(mathx.FallingFactorial(n, 3) *
			(-ps[2]*ps[2]/2 + ps[3]/3))
	}
	if n >= 4 {
		q *= math.Exp(mathx.FallingFactorial(n, 4) *
			(-5.0/6*ps[2]*ps[2]*ps[2] + ps[2]*ps[3] - ps[4]/4))
	}
	if n >= 5 {
		q *= math.Exp(mathx.FallingFactorial(n, 5) *
			(-7.0/4*ps[2]*ps[2]*ps[2]*ps[2] + 3*ps[2]*ps[2]*ps[3] -
				ps[2]*ps[4] + ps[5]/5 - ps[3]*ps[3]/2))
	}
	return 1 - q
}
